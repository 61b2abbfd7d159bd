package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrInviteNotFound = errors.New("invite not found or expired")
)

const (
	InviteKeyPrefix  = "bandplan:invite:code"
	DefaultInviteTTL = 72 * time.Hour
)

// InvitePayload 邀请码背后的上下文：哪支乐队的哪个占位成员，发给谁
type InvitePayload struct {
	GroupID   uint64 `json:"group_id"`
	MemberID  uint64 `json:"member_id"`
	Email     string `json:"email"`
	InvitedBy uint64 `json:"invited_by"`
}

type InviteRepository struct{}

func (r *InviteRepository) inviteKey(code string) string {
	return fmt.Sprintf("%s:%s", InviteKeyPrefix, code)
}

func (r *InviteRepository) SaveInvite(code string, payload InvitePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err = Client.Set(context.Background(), r.inviteKey(code), raw, DefaultInviteTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *InviteRepository) GetInvite(code string) (*InvitePayload, error) {
	raw, err := Client.Get(context.Background(), r.inviteKey(code)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrInviteNotFound
	}
	if err != nil {
		return nil, ErrRedisUnavailable
	}
	var payload InvitePayload
	if err = json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DeleteInvite 邀请码一次性使用，接受后删除
func (r *InviteRepository) DeleteInvite(code string) error {
	if err := Client.Del(context.Background(), r.inviteKey(code)).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}
