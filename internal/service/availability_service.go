package service

import (
	"context"
	"errors"
	"time"

	"Band_Plan/internal/model"
	"Band_Plan/internal/repository/mysql"

	"gorm.io/gorm"
)

type AvailabilityService struct {
	repo     *mysql.AvailabilityRepository
	members  *mysql.MemberRepository
	events   *mysql.EventRepository
	users    *mysql.UserRepository
	coverage *CoverageService
}

func NewAvailabilityService(coverageSvc *CoverageService) *AvailabilityService {
	return &AvailabilityService{
		repo:     mysql.NewAvailabilityRepository(),
		members:  mysql.NewMemberRepository(),
		events:   mysql.NewEventRepository(),
		users:    mysql.NewUserRepository(),
		coverage: coverageSvc,
	}
}

// Mark 给 targetUserID 标某天有空。重复标记静默成功（库里 DoNothing 兜底）。
func (s *AvailabilityService) Mark(ctx context.Context, actorID, targetUserID uint64, date time.Time) error {
	if err := s.checkManage(actorID, targetUserID); err != nil {
		return err
	}
	if err := s.checkNoEvent(targetUserID, date); err != nil {
		return err
	}
	if err := s.repo.Mark(targetUserID, date); err != nil {
		return err
	}
	return s.invalidateFor(ctx, targetUserID)
}

// Unmark 撤回标记，没标过也算成功
func (s *AvailabilityService) Unmark(ctx context.Context, actorID, targetUserID uint64, date time.Time) error {
	if err := s.checkManage(actorID, targetUserID); err != nil {
		return err
	}
	if err := s.checkNoEvent(targetUserID, date); err != nil {
		return err
	}
	if err := s.repo.Unmark(targetUserID, date); err != nil {
		return err
	}
	return s.invalidateFor(ctx, targetUserID)
}

func (s *AvailabilityService) DatesFor(userID uint64) ([]model.AvailabilityMark, error) {
	return s.repo.ListForUsers([]uint64{userID})
}

// checkManage 本人随便改；改别人要么是系统管理员，要么在某个共同乐队里当主力
func (s *AvailabilityService) checkManage(actorID, targetUserID uint64) error {
	if actorID == targetUserID {
		return nil
	}
	actor, err := s.users.FindByID(actorID)
	if err != nil {
		return err
	}
	if actor.Role == 1 {
		return nil
	}
	membership, err := s.members.FindSharedMembership(actorID, targetUserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPermissionDenied
	}
	if err != nil {
		return err
	}
	if !CanManageAvailability(membership.Role) {
		return ErrPermissionDenied
	}
	return nil
}

// checkNoEvent 当天有演出的标记冻结，跟着事件走
func (s *AvailabilityService) checkNoEvent(userID uint64, date time.Time) error {
	count, err := s.events.CountAssignmentsForUserOnDate(userID, date)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEventOnDate
	}
	return nil
}

func (s *AvailabilityService) invalidateFor(ctx context.Context, userID uint64) error {
	groupIDs, err := s.members.GroupIDsForUser(userID)
	if err != nil {
		return err
	}
	s.coverage.Invalidate(ctx, groupIDs...)
	return nil
}

// CanManageAvailability 共同乐队里只有主力能替别人标记
func CanManageAvailability(roleInSharedGroup string) bool {
	return roleInSharedGroup == model.RolePrincipal
}
