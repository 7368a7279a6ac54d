package repo

import (
	"ITInventory/internal/model"
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"
)

func (u userRecord) toModel() model.User {
	return model.User{
		ID:           strconv.FormatUint(uint64(u.ID), 10),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
	}
}

// ListUsers возвращает всех пользователей в порядке создания.
func (r *GormRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	var rows []userRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toModel())
	}
	return users, nil
}

// FindUser ищет пользователя по логину и сверяет пароль с хэшем.
func (r *GormRepository) FindUser(ctx context.Context, username, password string) (*model.User, error) {
	var row userRecord
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ok, err := CheckPassword(row.PasswordHash, password)
	if err != nil || !ok {
		return nil, err
	}
	u := row.toModel()
	return &u, nil
}

// CreateUser создаёт пользователя. Повторный логин даёт ошибку уникального индекса.
func (r *GormRepository) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	row := userRecord{Username: username, PasswordHash: hash}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	u := row.toModel()
	return &u, nil
}

// SetPassword обновляет хэш пароля пользователя.
func (r *GormRepository) SetPassword(ctx context.Context, username, password string) (bool, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	tx := r.db.WithContext(ctx).Model(&userRecord{}).
		Where("username = ?", username).
		Update("password_hash", hash)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// ReconcileUsers выполняет сверку с allow-list в одной транзакции.
func (r *GormRepository) ReconcileUsers(ctx context.Context, allow []model.Credential) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		allowed := make(map[string]model.Credential, len(allow))
		names := make([]string, 0, len(allow))
		for _, c := range allow {
			if _, dup := allowed[c.Username]; dup {
				continue
			}
			allowed[c.Username] = c
			names = append(names, c.Username)
		}

		// удаляем всех, кого нет в allow-list
		del := tx.Model(&userRecord{})
		if len(names) > 0 {
			del = del.Where("username NOT IN ?", names)
		} else {
			del = del.Where("1 = 1")
		}
		if err := del.Delete(&userRecord{}).Error; err != nil {
			return err
		}

		var existing []string
		if err := tx.Model(&userRecord{}).Pluck("username", &existing).Error; err != nil {
			return err
		}
		have := make(map[string]struct{}, len(existing))
		for _, u := range existing {
			have[u] = struct{}{}
		}

		for _, name := range names {
			if _, ok := have[name]; ok {
				continue
			}
			hash, err := HashPassword(allowed[name].Password)
			if err != nil {
				return err
			}
			if err := tx.Create(&userRecord{Username: name, PasswordHash: hash}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
