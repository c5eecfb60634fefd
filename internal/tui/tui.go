// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/passvault/internal/logger"
	"github.com/akarpov/passvault/internal/service"
	"github.com/akarpov/passvault/internal/utils"
	"github.com/akarpov/passvault/internal/vault"
)

// ErrUserQuit is returned when the user exits the program from the UI.
var ErrUserQuit = errors.New("user quit")

// TUI drives the two interactive programs: the unlock screen and the main
// vault loop. Each runs as its own Bubble Tea program so the main loop never
// exists while the vault is locked.
type TUI struct {
	services *service.Services
	session  vault.Session

	clipboardClearAfter time.Duration
	clearClipboard      func() error
	logger              *logger.Logger
}

// New constructs the terminal front end.
func New(services *service.Services, session vault.Session, clipboardClearAfter time.Duration, log *logger.Logger) *TUI {
	return &TUI{
		services:            services,
		session:             session,
		clipboardClearAfter: clipboardClearAfter,
		clearClipboard:      utils.ClearClipboard,
		logger:              log,
	}
}

// UnlockFlow shows the unlock screen (or the first-run setup when no vault
// exists yet) and blocks until the session is unlocked or the user quits.
func (t *TUI) UnlockFlow(ctx context.Context) error {
	model := newUnlockModel(ctx, t.session)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(unlockModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the account browser until the user quits or locks the vault.
// Returns lock=true when the UI should return to the unlock screen.
func (t *TUI) MainLoop(ctx context.Context) (lock bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.clipboardClearAfter)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	t.drainClipboard(result.copied)
	return result.lock, nil
}

// drainClipboard wipes the clipboard when a copy is still pending at exit,
// so a decrypted password never outlives the program or survives a lock.
func (t *TUI) drainClipboard(pending bool) {
	if !pending {
		return
	}
	if err := t.clearClipboard(); err != nil {
		t.logger.Warn().Err(err).Msg("failed to clear clipboard on exit")
	}
}
