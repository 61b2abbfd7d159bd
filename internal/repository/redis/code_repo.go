package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCodeMismatch = errors.New("verification code mismatch or expired")
)

const (
	EmailCodePrefix = "bandplan:register:code"
	EmailCodeTTL    = 5 * time.Minute
)

// CodeRepository 注册邮箱验证码，5分钟内有效
type CodeRepository struct{}

func (r *CodeRepository) codeKey(email string) string {
	return fmt.Sprintf("%s:%s", EmailCodePrefix, email)
}

func (r *CodeRepository) SaveEmailCode(email, code string) error {
	if err := Client.Set(context.Background(), r.codeKey(email), code, EmailCodeTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

// VerifyEmailCode 校验通过后删码，一次性使用
func (r *CodeRepository) VerifyEmailCode(email, code string) error {
	stored, err := Client.Get(context.Background(), r.codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCodeMismatch
	}
	if err != nil {
		return ErrRedisUnavailable
	}
	if stored != code {
		return ErrCodeMismatch
	}
	return Client.Del(context.Background(), r.codeKey(email)).Err()
}
