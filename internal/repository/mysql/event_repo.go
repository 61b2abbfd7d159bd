package mysql

import (
	"time"

	"Band_Plan/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository() *EventRepository {
	return &EventRepository{DB: DB}
}

// AssignmentWithDate 阵容行拼上事件的日期和归属乐队
type AssignmentWithDate struct {
	UserID  *uint64
	GroupID uint64
	Date    time.Time
}

func (r *EventRepository) ListByGroup(groupID uint64) ([]model.Event, error) {
	var list []model.Event
	err := r.DB.Where("group_id = ?", groupID).Order("date").Find(&list).Error
	return list, err
}

func (r *EventRepository) FindByID(id uint64) (*model.Event, error) {
	var e model.Event
	err := r.DB.First(&e, id).Error
	return &e, err
}

func (r *EventRepository) FindByGroupAndDate(groupID uint64, date time.Time) (*model.Event, error) {
	var e model.Event
	err := r.DB.Where("group_id = ? AND date = ?", groupID, date.Format("2006-01-02")).First(&e).Error
	return &e, err
}

func (r *EventRepository) AssignmentsForEvent(eventID uint64) ([]model.EventAssignment, error) {
	var list []model.EventAssignment
	err := r.DB.Where("event_id = ?", eventID).Find(&list).Error
	return list, err
}

// AssignmentsInGroup 本队全部事件的阵容占用
func (r *EventRepository) AssignmentsInGroup(groupID uint64) ([]AssignmentWithDate, error) {
	var rows []AssignmentWithDate
	err := r.DB.Model(&model.EventAssignment{}).
		Select("event_assignments.user_id, events.group_id, events.date").
		Joins("JOIN events ON events.id = event_assignments.event_id").
		Where("events.group_id = ? AND event_assignments.user_id IS NOT NULL", groupID).
		Scan(&rows).Error
	return rows, err
}

// AssignmentsOutsideGroup 一批用户在其他乐队的事件占用
func (r *EventRepository) AssignmentsOutsideGroup(groupID uint64, userIDs []uint64) ([]AssignmentWithDate, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var rows []AssignmentWithDate
	err := r.DB.Model(&model.EventAssignment{}).
		Select("event_assignments.user_id, events.group_id, events.date").
		Joins("JOIN events ON events.id = event_assignments.event_id").
		Where("events.group_id <> ? AND event_assignments.user_id IN ?", groupID, userIDs).
		Scan(&rows).Error
	return rows, err
}

// CountAssignmentsForUserOnDate 该用户这天（任意乐队）的阵容记录数，
// 用于禁止在有演出的日子改空闲标记
func (r *EventRepository) CountAssignmentsForUserOnDate(userID uint64, date time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.EventAssignment{}).
		Joins("JOIN events ON events.id = event_assignments.event_id").
		Where("event_assignments.user_id = ? AND events.date = ?", userID, date.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

// CreateWithAssignments 建事件和阵容同一事务
func (r *EventRepository) CreateWithAssignments(e *model.Event, assignments []model.EventAssignment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		for i := range assignments {
			assignments[i].EventID = e.ID
		}
		if len(assignments) == 0 {
			return nil
		}
		return tx.Create(&assignments).Error
	})
}

// UpdateWithAssignments 更新事件并整体替换阵容。
// 先删后插放在同一事务里，外部永远看不到空阵容的中间态。
func (r *EventRepository) UpdateWithAssignments(e *model.Event, assignments []model.EventAssignment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(e).
			Select("name", "time", "notes", "location").
			Updates(map[string]any{
				"name":     e.Name,
				"time":     e.Time,
				"notes":    e.Notes,
				"location": e.Location,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", e.ID).Delete(&model.EventAssignment{}).Error; err != nil {
			return err
		}
		for i := range assignments {
			assignments[i].EventID = e.ID
		}
		if len(assignments) == 0 {
			return nil
		}
		return tx.Create(&assignments).Error
	})
}

// DeleteWithAssignments 删除事件级联阵容
func (r *EventRepository) DeleteWithAssignments(eventID uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&model.EventAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Event{}, eventID).Error
	})
}
