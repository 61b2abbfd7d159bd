package service

import (
	"errors"

	"Band_Plan/internal/model"
	"Band_Plan/internal/pkg"
	"Band_Plan/internal/repository/mysql"
	"Band_Plan/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo     *mysql.UserRepository
	rUser    *redis.UserRepository
	rCode    *redis.CodeRepository
	emailCfg pkg.SMTPConfig
}

func NewUserService(emailCfg pkg.SMTPConfig) *UserService {
	return &UserService{
		repo:     mysql.NewUserRepository(),
		rUser:    &redis.UserRepository{},
		rCode:    &redis.CodeRepository{},
		emailCfg: emailCfg,
	}
}

// SendRegisterCode 给待注册邮箱发验证码，已注册的邮箱直接拒绝
func (s *UserService) SendRegisterCode(email string) error {
	if _, err := s.repo.FindByEmail(email); err == nil {
		return errors.New("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}
	if err = s.rCode.SaveEmailCode(email, code); err != nil {
		return err
	}
	return pkg.SendEmail(s.emailCfg, email, "注册验证码", pkg.RegisterCodeHTML(code))
}

// Register 验证码校验通过才建账号
func (s *UserService) Register(username, password, email, code string) error {
	if err := s.rCode.VerifyEmailCode(email, code); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
	}
	return s.repo.Create(user)
}

func (s *UserService) Login(username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New("invalid password")
	}

	token, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	// token 写入 redis 做单点登录
	if err = s.rUser.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.rUser.DeleteUserToken(userID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

// ChangePassword 登录态修改密码，成功后踢掉旧 token
func (s *UserService) ChangePassword(userID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errors.New("old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err = s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}
	return s.Logout(userID)
}
