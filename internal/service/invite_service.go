package service

import (
	"context"

	"Band_Plan/internal/pkg"
	"Band_Plan/internal/repository/mysql"
	"Band_Plan/internal/repository/redis"
)

// InviteService 给占位成员发邀请邮件；接受方用邀请码把成员和自己的账号关联。
// 邀请码存 redis，72小时过期，一次性使用。
type InviteService struct {
	rInvite  *redis.InviteRepository
	members  *mysql.MemberRepository
	groups   *mysql.GroupRepository
	users    *mysql.UserRepository
	emailCfg pkg.SMTPConfig
	coverage *CoverageService
	producer *pkg.KafkaProducer
}

func NewInviteService(emailCfg pkg.SMTPConfig, coverageSvc *CoverageService, producer *pkg.KafkaProducer) *InviteService {
	return &InviteService{
		rInvite:  &redis.InviteRepository{},
		members:  mysql.NewMemberRepository(),
		groups:   mysql.NewGroupRepository(),
		users:    mysql.NewUserRepository(),
		emailCfg: emailCfg,
		coverage: coverageSvc,
		producer: producer,
	}
}

// SendInvite 生成邀请码并发邮件。邮件发送失败时回收邀请码，避免留下死码。
func (s *InviteService) SendInvite(actorID, memberID uint64, email string) error {
	member, err := s.members.FindByID(memberID)
	if err != nil {
		return err
	}
	if member.UserID != nil {
		return ErrMemberAlreadyLinked
	}
	group, err := s.groups.FindByID(member.GroupID)
	if err != nil {
		return err
	}

	code, err := pkg.RandToken(16)
	if err != nil {
		return err
	}
	if err = s.rInvite.SaveInvite(code, redis.InvitePayload{
		GroupID:   member.GroupID,
		MemberID:  memberID,
		Email:     email,
		InvitedBy: actorID,
	}); err != nil {
		return err
	}

	html := pkg.InviteHTML(group.Name, member.Name, code)
	if err = pkg.SendEmail(s.emailCfg, email, "乐队邀请", html); err != nil {
		_ = s.rInvite.DeleteInvite(code)
		return err
	}
	return nil
}

// AcceptInvite 用邀请码把当前用户关联到占位成员上
func (s *InviteService) AcceptInvite(ctx context.Context, userID uint64, code string) error {
	payload, err := s.rInvite.GetInvite(code)
	if err != nil {
		return err
	}

	member, err := s.members.FindByID(payload.MemberID)
	if err != nil {
		return err
	}
	if member.UserID != nil {
		// 码还在但位置已被占，当过期处理
		_ = s.rInvite.DeleteInvite(code)
		return ErrMemberAlreadyLinked
	}

	if err = s.members.LinkUser(payload.MemberID, userID); err != nil {
		return err
	}
	_ = s.rInvite.DeleteInvite(code)

	// 关联后该用户的空闲标记开始对这支乐队生效
	s.coverage.Invalidate(ctx, payload.GroupID)
	_ = s.producer.Notify(ctx, pkg.Notification{
		Type: "member_linked", GroupID: payload.GroupID, Subject: member.Name,
	})
	return nil
}
