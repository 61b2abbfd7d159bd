package service

import (
	"context"
	"errors"
	"time"

	"Band_Plan/internal/coverage"
	"Band_Plan/internal/model"
	"Band_Plan/internal/pkg"
	"Band_Plan/internal/repository/mysql"

	"gorm.io/gorm"
)

type EventService struct {
	repo     *mysql.EventRepository
	members  *mysql.MemberRepository
	users    *mysql.UserRepository
	coverage *CoverageService
	producer *pkg.KafkaProducer
}

func NewEventService(coverageSvc *CoverageService, producer *pkg.KafkaProducer) *EventService {
	return &EventService{
		repo:     mysql.NewEventRepository(),
		members:  mysql.NewMemberRepository(),
		users:    mysql.NewUserRepository(),
		coverage: coverageSvc,
		producer: producer,
	}
}

type EventInput struct {
	Name      string
	Date      time.Time
	Time      string
	Notes     string
	Location  string
	MemberIDs []uint64 // 勾选的阵容
}

// Create 建事件。日期必须在整队可用集合里且当天没有本队事件；
// 阵容先过校验器再落库。解算结果只是建议，落库前以此刻的数据重新校验。
func (s *EventService) Create(ctx context.Context, actorID, groupID uint64, in EventInput) (*model.Event, error) {
	if err := s.checkSchedulePermission(actorID, groupID); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByGroupAndDate(groupID, in.Date); err == nil {
		return nil, ErrDateTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	res, err := s.coverage.Resolve(ctx, groupID)
	if err != nil {
		return nil, err
	}
	dateStr := in.Date.Format(coverage.DateLayout)
	if !containsDate(res.Available, dateStr) {
		return nil, ErrDateNotAvailable
	}

	members, selected, err := s.resolveSelection(groupID, in.MemberIDs)
	if err != nil {
		return nil, err
	}
	if err = coverage.ValidateSelection(members, selected); err != nil {
		return nil, err
	}

	event := &model.Event{
		GroupID:   groupID,
		Name:      in.Name,
		Date:      in.Date,
		Time:      in.Time,
		Notes:     in.Notes,
		Location:  in.Location,
		CreatedBy: actorID,
	}
	if err = s.repo.CreateWithAssignments(event, buildAssignments(members, selected, actorID)); err != nil {
		return nil, err
	}

	s.coverage.Invalidate(ctx, groupID)
	_ = s.producer.Notify(ctx, pkg.Notification{
		Type: "event_saved", GroupID: groupID, Subject: event.Name, Date: dateStr,
	})
	return event, nil
}

// Update 改事件详情并整体替换阵容（同一事务先删后插）。
// 日期不允许改，和原流程一致：改日期等于删了重建。
func (s *EventService) Update(ctx context.Context, actorID, eventID uint64, in EventInput) (*model.Event, error) {
	event, err := s.repo.FindByID(eventID)
	if err != nil {
		return nil, err
	}
	if err = s.checkSchedulePermission(actorID, event.GroupID); err != nil {
		return nil, err
	}

	members, selected, err := s.resolveSelection(event.GroupID, in.MemberIDs)
	if err != nil {
		return nil, err
	}
	if err = coverage.ValidateSelection(members, selected); err != nil {
		return nil, err
	}

	event.Name = in.Name
	event.Time = in.Time
	event.Notes = in.Notes
	event.Location = in.Location
	if err = s.repo.UpdateWithAssignments(event, buildAssignments(members, selected, actorID)); err != nil {
		return nil, err
	}

	s.coverage.Invalidate(ctx, event.GroupID)
	_ = s.producer.Notify(ctx, pkg.Notification{
		Type: "event_saved", GroupID: event.GroupID, Subject: event.Name,
		Date: event.Date.Format(coverage.DateLayout),
	})
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, actorID, eventID uint64) error {
	event, err := s.repo.FindByID(eventID)
	if err != nil {
		return err
	}
	if err = s.checkSchedulePermission(actorID, event.GroupID); err != nil {
		return err
	}
	if err = s.repo.DeleteWithAssignments(eventID); err != nil {
		return err
	}
	s.coverage.Invalidate(ctx, event.GroupID)
	_ = s.producer.Notify(ctx, pkg.Notification{
		Type: "event_deleted", GroupID: event.GroupID, Subject: event.Name,
		Date: event.Date.Format(coverage.DateLayout),
	})
	return nil
}

type EventWithLineup struct {
	Event  model.Event             `json:"event"`
	Lineup []model.EventAssignment `json:"lineup"`
}

func (s *EventService) ListByGroup(groupID uint64) ([]EventWithLineup, error) {
	events, err := s.repo.ListByGroup(groupID)
	if err != nil {
		return nil, err
	}
	out := make([]EventWithLineup, 0, len(events))
	for _, e := range events {
		lineup, err := s.repo.AssignmentsForEvent(e.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, EventWithLineup{Event: e, Lineup: lineup})
	}
	return out, nil
}

// resolveSelection 把勾选的成员ID映射到花名册，引用了别队成员直接报错
func (s *EventService) resolveSelection(groupID uint64, memberIDs []uint64) ([]model.GroupMember, map[uint64]bool, error) {
	members, err := s.members.ListByGroup(groupID)
	if err != nil {
		return nil, nil, err
	}
	inGroup := make(map[uint64]bool, len(members))
	for _, m := range members {
		inGroup[m.ID] = true
	}
	selected := make(map[uint64]bool, len(memberIDs))
	for _, id := range memberIDs {
		if !inGroup[id] {
			return nil, nil, ErrMemberNotInGroup
		}
		selected[id] = true
	}
	return members, selected, nil
}

// checkSchedulePermission 管理员或本队主力才能排事件
func (s *EventService) checkSchedulePermission(actorID, groupID uint64) error {
	actor, err := s.users.FindByID(actorID)
	if err != nil {
		return err
	}
	if actor.Role == 1 {
		return nil
	}
	members, err := s.members.ListByGroup(groupID)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.UserID != nil && *m.UserID == actorID && m.Role == model.RolePrincipal {
			return nil
		}
	}
	return ErrPermissionDenied
}

func buildAssignments(members []model.GroupMember, selected map[uint64]bool, createdBy uint64) []model.EventAssignment {
	var out []model.EventAssignment
	for _, m := range members {
		if !selected[m.ID] {
			continue
		}
		out = append(out, model.EventAssignment{
			MemberID:  m.ID,
			UserID:    m.UserID,
			CreatedBy: createdBy,
		})
	}
	return out
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
