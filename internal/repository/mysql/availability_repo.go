package mysql

import (
	"time"

	"Band_Plan/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AvailabilityRepository struct {
	DB *gorm.DB
}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{DB: DB}
}

// ListForUsers 批量取一批用户的全部空闲标记
func (r *AvailabilityRepository) ListForUsers(userIDs []uint64) ([]model.AvailabilityMark, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var list []model.AvailabilityMark
	err := r.DB.Where("user_id IN ?", userIDs).Order("date").Find(&list).Error
	return list, err
}

// Mark 幂等插入：重复标同一天不算错
func (r *AvailabilityRepository) Mark(userID uint64, date time.Time) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(&model.AvailabilityMark{UserID: userID, Date: date}).Error
}

// Unmark 幂等删除：没标过也返回成功
func (r *AvailabilityRepository) Unmark(userID uint64, date time.Time) error {
	return r.DB.Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		Delete(&model.AvailabilityMark{}).Error
}
