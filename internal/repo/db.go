package repo

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// Драйверы реляционного хранилища.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// userRecord — строка таблицы users.
type userRecord struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (userRecord) TableName() string { return "users" }

// inventoryRecord — строка таблицы inventory. Автоинкрементный id задаёт порядок добавления.
type inventoryRecord struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	DeviceName   string `gorm:"not null"`
	SerialNumber string
	Location     string
	Status       string `gorm:"index"`
	AssignedTo   string

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (inventoryRecord) TableName() string { return "inventory" }

// InitDB открывает соединение через gorm, проверяет его и создаёт недостающие таблицы.
// Для sqlite используется драйвер modernc.org/sqlite (без cgo).
func InitDB(driver, dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch driver {
	case DriverSQLite:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	case DriverPostgres:
		dial = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if err := db.AutoMigrate(&userRecord{}, &inventoryRecord{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
