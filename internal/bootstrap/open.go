// Package bootstrap открывает хранилище и приводит его в начальное состояние.
package bootstrap

import (
	"ITInventory/internal/config"
	"ITInventory/internal/repo"
	"ITInventory/internal/repo/mongo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrConnection — не удалось подключиться к хранилищу.
var ErrConnection = errors.New("storage connection failed")

// Target описывает, куда подключаться.
type Target struct {
	Backend  string
	DSN      string // путь sqlite, DSN postgres или URI MongoDB
	Database string // имя базы MongoDB
}

func (t Target) String() string {
	return t.Backend + ":" + t.DSN
}

// PrimaryTarget — хранилище из конфигурации.
func PrimaryTarget(cfg *config.Config) Target {
	if cfg.Backend == config.BackendMongo {
		return Target{Backend: config.BackendMongo, DSN: cfg.MongoURI, Database: cfg.MongoDatabase}
	}
	return Target{Backend: cfg.Backend, DSN: cfg.DatabaseDSN}
}

// DefaultTarget — локальное хранилище, к которому откатываемся при сбое основного:
// локальный MongoDB для mongo, файл sqlite для остальных.
func DefaultTarget(cfg *config.Config) Target {
	if cfg.Backend == config.BackendMongo {
		return Target{Backend: config.BackendMongo, DSN: config.DefaultMongoURI, Database: cfg.MongoDatabase}
	}
	return Target{Backend: config.BackendSQLite, DSN: config.DefaultSQLitePath}
}

// Opener открывает репозиторий для цели.
type Opener func(ctx context.Context, t Target) (repo.Repository, error)

// OpenTarget — Opener по умолчанию.
func OpenTarget(ctx context.Context, t Target) (repo.Repository, error) {
	switch t.Backend {
	case config.BackendSQLite:
		db, err := repo.InitDB(repo.DriverSQLite, t.DSN)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnection, err)
		}
		return repo.NewGormRepository(db), nil
	case config.BackendPostgres:
		db, err := repo.InitDB(repo.DriverPostgres, t.DSN)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnection, err)
		}
		return repo.NewGormRepository(db), nil
	case config.BackendMongo:
		r, err := mongo.Open(ctx, t.DSN, t.Database)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnection, err)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrConnection, t.Backend)
	}
}

// Open подключается к основному хранилищу, а при ошибке — к хранилищу по умолчанию.
// Ошибка возвращается только если недоступны оба.
func Open(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (repo.Repository, error) {
	return OpenWith(ctx, cfg, log, OpenTarget)
}

// OpenWith — Open с заданным Opener.
func OpenWith(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger, open Opener) (repo.Repository, error) {
	primary := PrimaryTarget(cfg)
	r, err := open(ctx, primary)
	if err == nil {
		log.Debugw("storage opened", "backend", primary.Backend)
		return r, nil
	}
	fallback := DefaultTarget(cfg)
	if fallback == primary {
		return nil, err
	}
	log.Warnw("primary storage unavailable, using default", "backend", primary.Backend, "error", err, "fallback", fallback.String())
	r, ferr := open(ctx, fallback)
	if ferr != nil {
		return nil, fmt.Errorf("default storage: %w", ferr)
	}
	return r, nil
}
