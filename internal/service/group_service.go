package service

import (
	"context"
	"errors"

	"Band_Plan/internal/model"
	"Band_Plan/internal/repository/mysql"
)

type GroupService struct {
	repo     *mysql.GroupRepository
	users    *mysql.UserRepository
	coverage *CoverageService
}

func NewGroupService(coverageSvc *CoverageService) *GroupService {
	return &GroupService{
		repo:     mysql.NewGroupRepository(),
		users:    mysql.NewUserRepository(),
		coverage: coverageSvc,
	}
}

func (s *GroupService) CreateGroup(userID uint64, name string) (*model.Group, error) {
	if name == "" {
		return nil, errors.New("group name required")
	}
	creator, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	group := &model.Group{
		Name:      name,
		CreatorID: userID,
	}
	if err = s.repo.Create(group, creator.Username); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) ListGroups(userID uint64) ([]model.Group, error) {
	return s.repo.ListForUser(userID)
}

// DeleteGroup 只有创建者或管理员能删；级联在仓储层一把事务做完
func (s *GroupService) DeleteGroup(ctx context.Context, actorID, groupID uint64) error {
	group, err := s.repo.FindByID(groupID)
	if err != nil {
		return err
	}
	actor, err := s.users.FindByID(actorID)
	if err != nil {
		return err
	}
	if group.CreatorID != actorID && actor.Role != 1 {
		return ErrPermissionDenied
	}
	if err = s.repo.Delete(groupID); err != nil {
		return err
	}
	s.coverage.Invalidate(ctx, groupID)
	return nil
}
