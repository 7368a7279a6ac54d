package service

import (
	"ITInventory/internal/model"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, zap.NewNop().Sugar())

	t.Run("ok with valid credentials", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("FindUser", mock.Anything, "admin", "admin").Return(&model.User{ID: "1", Username: "admin"}, nil).Once()

		u, err := svc.Authenticate(ctx, "admin", "admin")
		assert.NoError(t, err)
		assert.Equal(t, "admin", u.Username)
		m.AssertExpectations(t)
	})

	t.Run("wrong password and unknown user give the same error", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("FindUser", mock.Anything, "admin", "wrong").Return((*model.User)(nil), nil).Once()
		m.On("FindUser", mock.Anything, "nobody", "admin").Return((*model.User)(nil), nil).Once()

		_, err1 := svc.Authenticate(ctx, "admin", "wrong")
		_, err2 := svc.Authenticate(ctx, "nobody", "admin")
		assert.ErrorIs(t, err1, ErrAuthFailure)
		assert.ErrorIs(t, err2, ErrAuthFailure)
		assert.Equal(t, err1.Error(), err2.Error())
		m.AssertExpectations(t)
	})

	t.Run("repository error is not an auth failure", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("FindUser", mock.Anything, "admin", "admin").Return((*model.User)(nil), errors.New("db down")).Once()

		u, err := svc.Authenticate(ctx, "admin", "admin")
		assert.Nil(t, u)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrAuthFailure)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, zap.NewNop().Sugar())

	t.Run("mismatch", func(t *testing.T) {
		m.ExpectedCalls = nil
		_, err := svc.ResetPassword(ctx, "admin", "a", "b")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
		m.AssertNotCalled(t, "SetPassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty", func(t *testing.T) {
		m.ExpectedCalls = nil
		_, err := svc.ResetPassword(ctx, "admin", "", "")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})

	t.Run("existing user updated", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("SetPassword", mock.Anything, "admin", "n3w").Return(true, nil).Once()

		created, err := svc.ResetPassword(ctx, "admin", "n3w", "n3w")
		assert.NoError(t, err)
		assert.False(t, created)
		m.AssertExpectations(t)
	})

	t.Run("missing user created", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("SetPassword", mock.Anything, "admin", "n3w").Return(false, nil).Once()
		m.On("CreateUser", mock.Anything, "admin", "n3w").Return(&model.User{ID: "7", Username: "admin"}, nil).Once()

		created, err := svc.ResetPassword(ctx, "admin", "n3w", "n3w")
		assert.NoError(t, err)
		assert.True(t, created)
		m.AssertExpectations(t)
	})

	t.Run("create error", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("SetPassword", mock.Anything, "admin", "n3w").Return(false, nil).Once()
		m.On("CreateUser", mock.Anything, "admin", "n3w").Return((*model.User)(nil), errors.New("db")).Once()

		_, err := svc.ResetPassword(ctx, "admin", "n3w", "n3w")
		assert.Error(t, err)
	})
}
