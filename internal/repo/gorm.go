package repo

import "gorm.io/gorm"

// GormRepository — реализация Repository поверх gorm (sqlite или postgres).
type GormRepository struct {
	db *gorm.DB
}

var _ Repository = (*GormRepository)(nil)

// NewGormRepository создаёт репозиторий поверх уже открытого и мигрированного соединения.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Close закрывает соединение с БД.
func (r *GormRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
