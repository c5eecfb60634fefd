// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpov/passvault/internal/config"
	"github.com/akarpov/passvault/internal/crypto"
	"github.com/akarpov/passvault/internal/logger"
	"github.com/akarpov/passvault/internal/service"
	"github.com/akarpov/passvault/internal/store"
	"github.com/akarpov/passvault/internal/tui"
	"github.com/akarpov/passvault/internal/vault"
	"github.com/akarpov/passvault/internal/workers"
)

// App owns every long-lived component of the interactive vault process.
type App struct {
	session vault.Session
	ui      *tui.TUI
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp connects the database, runs migrations and wires the session,
// services, workers and terminal UI from the given configuration.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	var (
		db  *store.DB
		err error
	)
	switch cfg.Storage.DB.Driver {
	case config.DriverPostgres:
		db, err = store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	default:
		db, err = store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("connect storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate storage: %w", err)
	}

	storages := store.NewStorages(db, log)

	box := crypto.NewCipherBox()
	session := vault.NewSession(crypto.NewKeyring(), box, crypto.NewFieldCodec(box), storages.MasterKeys, log)

	services := service.NewServices(session, storages, log)
	ui := tui.New(services, session, cfg.Vault.ClipboardClearAfter, log)

	autoLock := vault.NewAutoLock(session, cfg.Vault.AutoLockTimeout, log)

	return &App{
		session: session,
		ui:      ui,
		workers: workers.NewWorkers(autoLock),
		logger:  log,
	}, nil
}

// Run drives the unlock/browse cycle until the user quits.
//
// Each iteration blocks on the unlock screen, then runs the main loop until
// the user either quits or the vault locks again (manually or by the
// auto-lock worker). The session is always locked between iterations so key
// material never outlives the main loop.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	a.workers.Run()
	defer a.workers.Stop()

	for {
		if err := a.ui.UnlockFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("unlock flow: %w", err)
		}
		a.logger.Info().Msg("vault unlocked")

		lock, err := a.ui.MainLoop(ctx)
		a.session.Lock()
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !lock {
			return nil
		}
		a.logger.Info().Msg("vault locked, returning to unlock screen")
	}
}
