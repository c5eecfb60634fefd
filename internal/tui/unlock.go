// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/passvault/internal/store"
	"github.com/akarpov/passvault/internal/utils"
	"github.com/akarpov/passvault/internal/vault"
)

type unlockMode int

const (
	modeUnlock unlockMode = iota
	modeSetup
)

// unlockModel is the Bubble Tea model for the unlock screen. It starts in
// unlock mode with a single master-password input; when the storage reports
// an uninitialized vault it switches to the first-run setup form with a
// confirmation input and a live strength indicator.
type unlockModel struct {
	ctx     context.Context
	session vault.Session

	mode       unlockMode
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	quitByUser bool
}

func newPasswordInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	return input
}

func newUnlockModel(ctx context.Context, session vault.Session) unlockModel {
	password := newPasswordInput("master password")
	password.Focus()

	return unlockModel{
		ctx:     ctx,
		session: session,
		mode:    modeUnlock,
		inputs:  []textinput.Model{password},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m unlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [unlockDoneMsg] — quits on success; switches to setup mode when the
//     vault has never been initialized; shows the error otherwise.
//   - [initDoneMsg]   — quits on success, shows the error otherwise.
//   - esc/ctrl+c      — quits, marking the exit as user-initiated.
//   - tab/shift+tab   — moves focus between inputs in setup mode.
//   - enter           — submits the form.
func (m unlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockDoneMsg:
		m.submitting = false
		if msg.err == nil {
			return m, tea.Quit
		}
		if errors.Is(msg.err, store.ErrNotInitialized) {
			m.enterSetupMode()
			return m, nil
		}
		if errors.Is(msg.err, vault.ErrInvalidMasterPassword) {
			m.errMsg = "invalid master password"
		} else {
			m.errMsg = msg.err.Error()
		}
		return m, nil
	case initDoneMsg:
		m.submitting = false
		if msg.err == nil {
			return m, tea.Quit
		}
		m.errMsg = msg.err.Error()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m unlockModel) submit() (tea.Model, tea.Cmd) {
	password := m.inputs[0].Value()
	if password == "" {
		m.errMsg = "master password is required"
		return m, nil
	}

	if m.mode == modeSetup {
		if password != m.inputs[1].Value() {
			m.errMsg = "passwords do not match"
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdInitialize(password)
	}

	m.errMsg = ""
	m.submitting = true
	return m, m.cmdUnlock(password)
}

// enterSetupMode switches to the first-run form, keeping the password the
// user already typed.
func (m *unlockModel) enterSetupMode() {
	confirm := newPasswordInput("confirm master password")

	m.mode = modeSetup
	m.inputs = append(m.inputs, confirm)
	m.errMsg = ""
	m.focusNext()
}

// View implements [tea.Model].
func (m unlockModel) View() string {
	var b strings.Builder

	if m.mode == modeSetup {
		b.WriteString("No vault found. Choose a master password to create one.\n\n")
		b.WriteString("Password  │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\n")
		b.WriteString("Confirm   │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
		b.WriteString("\nStrength: ")
		b.WriteString(string(utils.CheckPasswordStrength(m.inputs[0].Value())))
		b.WriteString("\n")
	} else {
		b.WriteString("Password  │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Unlocking...]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	title := "UNLOCK VAULT"
	hotkeys := "enter: unlock │ esc: quit"
	if m.mode == modeSetup {
		title = "CREATE VAULT"
		hotkeys = "enter: create │ tab: next field │ esc: quit"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotkeys)
}

func (m unlockModel) cmdUnlock(password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return unlockDoneMsg{err: session.Unlock(ctx, password)}
	}
}

func (m unlockModel) cmdInitialize(password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return initDoneMsg{err: session.Initialize(ctx, password)}
	}
}

func (m *unlockModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *unlockModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
