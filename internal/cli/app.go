// Package cli implements the itinventory command-line front end on top of cobra.
package cli

import (
	"ITInventory/internal/bootstrap"
	"ITInventory/internal/config"
	"ITInventory/internal/repo"
	"ITInventory/internal/seed"
	"ITInventory/internal/session"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// OpenFunc opens the configured storage.
type OpenFunc func(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (repo.Repository, error)

// App carries the dependencies shared by all commands.
type App struct {
	cfg  *config.Config
	log  *zap.SugaredLogger
	open OpenFunc
}

// NewApp builds an App. A nil logger is replaced in PersistentPreRun by one
// built from the configured log level.
func NewApp(cfg *config.Config, log *zap.SugaredLogger) *App {
	return &App{cfg: cfg, log: log, open: bootstrap.Open}
}

// Logger returns the logger in use (nil before the command tree ran).
func (a *App) Logger() *zap.SugaredLogger { return a.log }

func (a *App) sessions() *session.FileStore {
	return session.NewFileStore(a.cfg.SessionFile)
}

// withStore opens storage, brings it to the initial state and runs fn.
// Bootstrap failures are logged and do not abort the command.
func (a *App) withStore(ctx context.Context, fn func(r repo.Repository) error) error {
	r, err := a.open(ctx, a.cfg, a.log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			a.log.Warnw("close storage", "error", cerr)
		}
	}()

	data, err := seed.Load(a.cfg.SeedFile)
	if err != nil {
		a.log.Errorw("load seed data", "error", err)
	} else if err := bootstrap.Run(ctx, r, data, a.cfg.UserPolicy, a.log); err != nil {
		a.log.Errorw("bootstrap", "error", err)
	}
	return fn(r)
}

// requireLogin returns the logged in username. A session that points to a
// user no longer present in the store is cleared.
func (a *App) requireLogin(ctx context.Context, r repo.UserRepository) (string, error) {
	st := a.sessions()
	login, err := st.LoadLogin()
	if err != nil {
		return "", err
	}
	users, err := r.ListUsers(ctx)
	if err != nil {
		return "", fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		if u.Username == login {
			return login, nil
		}
	}
	_ = st.Clear()
	a.log.Warnw("session user no longer exists", "username", login)
	return "", session.ErrNoSession
}

// errUsage is returned for invalid argument combinations cobra cannot check itself.
var errUsage = errors.New("invalid arguments")
