package service

import (
	"ITInventory/internal/model"
	"ITInventory/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindUser(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) SetPassword(ctx context.Context, username, password string) (bool, error) {
	args := m.Called(ctx, username, password)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ReconcileUsers(ctx context.Context, allow []model.Credential) error {
	return m.Called(ctx, allow).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.InventoryRepository
type mockInventoryRepo struct{ mock.Mock }

func (m *mockInventoryRepo) ListInventory(ctx context.Context) ([]model.InventoryItem, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.InventoryItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) GetInventory(ctx context.Context, id string) (*model.InventoryItem, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.InventoryItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) InsertInventory(ctx context.Context, f model.ItemFields) (*model.InventoryItem, error) {
	args := m.Called(ctx, f)
	if v, ok := args.Get(0).(*model.InventoryItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) UpdateInventory(ctx context.Context, id string, f model.ItemFields) (*model.InventoryItem, error) {
	args := m.Called(ctx, id, f)
	if v, ok := args.Get(0).(*model.InventoryItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) DeleteInventory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockInventoryRepo) CountInventory(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.InventoryRepository = (*mockInventoryRepo)(nil)
