package service

import (
	"context"

	"Band_Plan/internal/model"
	"Band_Plan/internal/pkg"
	"Band_Plan/internal/repository/mysql"
)

type MemberService struct {
	repo     *mysql.MemberRepository
	users    *mysql.UserRepository
	coverage *CoverageService
	producer *pkg.KafkaProducer
}

func NewMemberService(coverageSvc *CoverageService, producer *pkg.KafkaProducer) *MemberService {
	return &MemberService{
		repo:     mysql.NewMemberRepository(),
		users:    mysql.NewUserRepository(),
		coverage: coverageSvc,
		producer: producer,
	}
}

func (s *MemberService) ListMembers(groupID uint64) ([]model.GroupMember, error) {
	return s.repo.ListByGroup(groupID)
}

type MemberInput struct {
	Name        string
	Role        string
	Instruments []string
}

// AddMember 新成员先作为占位进花名册，等邀请确认后再关联账号
func (s *MemberService) AddMember(ctx context.Context, actorID, groupID uint64, in MemberInput) (*model.GroupMember, error) {
	if err := s.checkManagePermission(actorID, groupID); err != nil {
		return nil, err
	}
	role := in.Role
	if role != model.RolePrincipal && role != model.RoleSubstitute {
		role = model.RolePrincipal
	}

	member := &model.GroupMember{
		GroupID:   groupID,
		Name:      in.Name,
		Role:      role,
		CreatedBy: actorID,
	}
	if err := s.repo.CreateWithInstruments(member, in.Instruments); err != nil {
		return nil, err
	}

	s.coverage.Invalidate(ctx, groupID)
	_ = s.producer.Notify(ctx, pkg.Notification{
		Type: "member_added", GroupID: groupID, Subject: member.Name,
	})
	return member, nil
}

// EditMember 改角色和乐器；两者都影响覆盖判定，缓存随之失效
func (s *MemberService) EditMember(ctx context.Context, actorID, memberID uint64, in MemberInput) (*model.GroupMember, error) {
	member, err := s.repo.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if err = s.checkManagePermission(actorID, member.GroupID); err != nil {
		return nil, err
	}
	role := in.Role
	if role != model.RolePrincipal && role != model.RoleSubstitute {
		role = member.Role
	}
	if err = s.repo.UpdateRoleAndInstruments(member, role, in.Instruments); err != nil {
		return nil, err
	}

	s.coverage.Invalidate(ctx, member.GroupID)
	return s.repo.FindByID(memberID)
}

func (s *MemberService) RemoveMember(ctx context.Context, actorID, memberID uint64) error {
	member, err := s.repo.FindByID(memberID)
	if err != nil {
		return err
	}
	if err = s.checkManagePermission(actorID, member.GroupID); err != nil {
		return err
	}
	if err = s.repo.Delete(memberID); err != nil {
		return err
	}
	s.coverage.Invalidate(ctx, member.GroupID)
	return nil
}

// checkManagePermission 管理员或本队主力可以动花名册
func (s *MemberService) checkManagePermission(actorID, groupID uint64) error {
	actor, err := s.users.FindByID(actorID)
	if err != nil {
		return err
	}
	if actor.Role == 1 {
		return nil
	}
	members, err := s.repo.ListByGroup(groupID)
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
