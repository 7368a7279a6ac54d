package service

import (
	"ITInventory/internal/model"
	"ITInventory/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrAuthFailure — единая ошибка входа: не различает неизвестный логин и неверный пароль.
	ErrAuthFailure = errors.New("invalid username or password")
	// ErrPasswordMismatch — пароль и подтверждение не совпали.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrEmptyPassword — пустой пароль не принимается.
	ErrEmptyPassword = errors.New("password must not be empty")
)

// UserService — проверка учётных данных и смена пароля.
type UserService struct {
	repo repo.UserRepository
	log  *zap.SugaredLogger
}

func NewUserService(r repo.UserRepository, log *zap.SugaredLogger) *UserService {
	return &UserService{repo: r, log: log}
}

// Authenticate проверяет пару логин/пароль. Без блокировок и выдачи токенов.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.repo.FindUser(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		s.log.Infow("login failed", "username", username)
		return nil, ErrAuthFailure
	}
	s.log.Infow("login ok", "username", username)
	return u, nil
}

// ResetPassword задаёт новый пароль пользователю; если его нет — создаёт.
// Возвращает created=true, когда пользователь был создан.
func (s *UserService) ResetPassword(ctx context.Context, username, password, confirm string) (bool, error) {
	if password != confirm {
		return false, ErrPasswordMismatch
	}
	if password == "" {
		return false, ErrEmptyPassword
	}
	updated, err := s.repo.SetPassword(ctx, username, password)
	if err != nil {
		return false, fmt.Errorf("set password: %w", err)
	}
	if updated {
		s.log.Infow("password reset", "username", username)
		return false, nil
	}
	if _, err := s.repo.CreateUser(ctx, username, password); err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}
	s.log.Infow("user created on password reset", "username", username)
	return true, nil
}
