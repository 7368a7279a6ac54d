package bootstrap

import (
	"ITInventory/internal/config"
	"ITInventory/internal/model"
	"ITInventory/internal/repo"
	"ITInventory/internal/seed"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Run приводит хранилище в начальное состояние:
// сверяет пользователей с allow-list согласно policy и,
// если инвентарь пуст, вставляет пример записей по порядку.
// Повторный запуск ничего не меняет.
func Run(ctx context.Context, r repo.Repository, data seed.Data, policy string, log *zap.SugaredLogger) error {
	switch policy {
	case config.PolicyReconcile, "":
		if err := r.ReconcileUsers(ctx, data.Users); err != nil {
			return fmt.Errorf("reconcile users: %w", err)
		}
	case config.PolicyEnsure:
		if err := EnsureUsers(ctx, r, data.Users); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown user policy %q", policy)
	}

	n, err := r.CountInventory(ctx)
	if err != nil {
		return fmt.Errorf("count inventory: %w", err)
	}
	if n > 0 {
		log.Debugw("inventory already populated", "count", n)
		return nil
	}
	for _, f := range data.Inventory {
		if _, err := r.InsertInventory(ctx, f); err != nil {
			return fmt.Errorf("seed inventory: %w", err)
		}
	}
	log.Infow("sample inventory inserted", "count", len(data.Inventory))
	return nil
}

// EnsureUsers добавляет недостающих пользователей allow-list, никого не удаляя.
func EnsureUsers(ctx context.Context, r repo.UserRepository, allow []model.Credential) error {
	existing, err := r.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	have := make(map[string]struct{}, len(existing))
	for _, u := range existing {
		have[u.Username] = struct{}{}
	}
	for _, c := range allow {
		if _, ok := have[c.Username]; ok {
			continue
		}
		if _, err := r.CreateUser(ctx, c.Username, c.Password); err != nil {
			return fmt.Errorf("create user %q: %w", c.Username, err)
		}
		have[c.Username] = struct{}{}
	}
	return nil
}
