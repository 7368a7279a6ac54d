package repo

import (
	"ITInventory/internal/model"
	"context"
	"errors"
)

// ErrNotFound возвращается при обращении к записи, которой нет в хранилище
// (например, её удалили извне между загрузкой и изменением).
var ErrNotFound = errors.New("record not found")

// UserRepository определяет контракт доступа к учётным записям.
type UserRepository interface {
	// ListUsers возвращает все учётные записи.
	ListUsers(ctx context.Context) ([]model.User, error)

	// FindUser ищет пользователя по точному логину и проверяет пароль.
	// Если совпадения нет — возвращает (nil, nil), ошибкой это не считается.
	FindUser(ctx context.Context, username, password string) (*model.User, error)

	// CreateUser создаёт пользователя, пароль сохраняется в виде хэша.
	CreateUser(ctx context.Context, username, password string) (*model.User, error)

	// SetPassword меняет пароль. false — пользователя с таким логином нет.
	SetPassword(ctx context.Context, username, password string) (bool, error)

	// ReconcileUsers приводит набор пользователей к allow-list:
	// удаляет лишних, добавляет недостающих. Пароли существующих не трогает.
	ReconcileUsers(ctx context.Context, allow []model.Credential) error
}

// InventoryRepository определяет контракт доступа к записям инвентаря.
type InventoryRepository interface {
	// ListInventory возвращает все записи в порядке добавления.
	ListInventory(ctx context.Context) ([]model.InventoryItem, error)

	// GetInventory возвращает запись по id или ErrNotFound.
	GetInventory(ctx context.Context, id string) (*model.InventoryItem, error)

	// InsertInventory сохраняет новую запись и возвращает её вместе с выданным id.
	InsertInventory(ctx context.Context, fields model.ItemFields) (*model.InventoryItem, error)

	// UpdateInventory полностью заменяет изменяемые поля записи. ErrNotFound если id неизвестен.
	UpdateInventory(ctx context.Context, id string, fields model.ItemFields) (*model.InventoryItem, error)

	// DeleteInventory удаляет запись. ErrNotFound если id неизвестен.
	DeleteInventory(ctx context.Context, id string) error

	// CountInventory возвращает количество записей.
	CountInventory(ctx context.Context) (int64, error)
}

// Repository — полный набор операций хранилища с явным жизненным циклом.
type Repository interface {
	UserRepository
	InventoryRepository
	Close() error
}
