// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/passvault/internal/service"
	"github.com/akarpov/passvault/internal/utils"
	"github.com/akarpov/passvault/internal/vault"
	"github.com/akarpov/passvault/models"
)

type formMode int

const (
	formNone formMode = iota
	formCreate
	formEdit
	formFieldCreate
	formFieldEdit
)

// Account form input indexes.
const (
	inputTitle = iota
	inputUsername
	inputPassword
	inputURL
	inputNotes
	inputExpiration
)

const expirationLayout = "2006-01-02"

// generatedPasswordLength is used by the in-form generator hotkey.
const generatedPasswordLength = 20

type mainLoopModel struct {
	ctx                 context.Context
	services            *service.Services
	clipboardClearAfter time.Duration

	items   []models.Account
	idx     int
	loading bool
	status  string
	errMsg  string

	detail   bool
	reveal   bool
	fields   []models.CustomField
	fieldIdx int

	mode           formMode
	inputs         []textinput.Model
	focus          int
	saving         bool
	editingID      string
	editingFieldID string

	lock bool

	// copied is true while a decrypted value sits on the clipboard; it
	// stays set until the scheduled clear fires, so the program can wipe
	// the clipboard if it exits first.
	copied  bool
	copyFn  func(string) error
	clearFn func() error
}

func newMainLoopModel(ctx context.Context, services *service.Services, clipboardClearAfter time.Duration) mainLoopModel {
	return mainLoopModel{
		ctx:                 ctx,
		services:            services,
		clipboardClearAfter: clipboardClearAfter,
		loading:             true,
		copyFn:              utils.CopyToClipboard,
		clearFn:             utils.ClearClipboard,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadItems()
}

// fail records an error; a locked vault quits back to the unlock screen
// instead of rendering the error.
func (m *mainLoopModel) fail(err error) tea.Cmd {
	if errors.Is(err, vault.ErrVaultLocked) {
		m.lock = true
		return tea.Quit
	}
	m.errMsg = err.Error()
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case fieldsLoadedMsg:
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.fields = msg.fields
		if m.fieldIdx >= len(m.fields) {
			m.fieldIdx = len(m.fields) - 1
		}
		if m.fieldIdx < 0 {
			m.fieldIdx = 0
		}
		return m, nil
	case accountSavedMsg:
		m.saving = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.resetForm()
		m.status = "account saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	case accountDeletedMsg:
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.detail = false
		m.status = "account deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	case fieldSavedMsg:
		m.saving = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		accountID := m.editingID
		m.resetForm()
		m.detail = true
		m.status = "custom field saved"
		m.errMsg = ""
		return m, m.cmdLoadFields(accountID)
	case fieldDeletedMsg:
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.status = "custom field deleted"
		m.errMsg = ""
		if item, ok := m.current(); ok {
			return m, m.cmdLoadFields(item.ID)
		}
		return m, nil
	case clipboardClearMsg:
		if err := m.clearFn(); err == nil {
			m.copied = false
			m.status = "clipboard cleared"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode != formNone {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode != formNone {
		return m.updateForm(msg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.lock = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "n":
		m.startCreate()
		return m, nil
	case "e":
		item, ok := m.current()
		if !ok {
			m.status = "no accounts"
			return m, nil
		}
		m.startEdit(item)
		return m, nil
	case "ctrl+d":
		item, ok := m.current()
		if !ok {
			m.status = "no accounts"
			return m, nil
		}
		return m, m.cmdDeleteAccount(item.ID)
	case "enter":
		item, ok := m.current()
		if !ok {
			m.status = "no accounts"
			return m, nil
		}
		m.detail = true
		m.reveal = false
		m.fields = nil
		m.fieldIdx = 0
		return m, m.cmdLoadFields(item.ID)
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.detail = false
		m.reveal = false
	case " ":
		m.reveal = !m.reveal
	case "c":
		return m.copyToClipboard(item.Secret.Password, "password copied")
	case "u":
		return m.copyToClipboard(item.Username, "username copied")
	case "e":
		m.detail = false
		m.reveal = false
		m.startEdit(item)
		return m, nil
	case "ctrl+d":
		m.reveal = false
		return m, m.cmdDeleteAccount(item.ID)
	case "f":
		m.startFieldCreate(item.ID)
		return m, nil
	case "up", "k":
		if m.fieldIdx > 0 {
			m.fieldIdx--
		}
	case "down", "j":
		if m.fieldIdx < len(m.fields)-1 {
			m.fieldIdx++
		}
	case "enter":
		if field, ok := m.currentField(); ok {
			m.startFieldEdit(field)
			return m, nil
		}
	case "x":
		if field, ok := m.currentField(); ok {
			return m, m.cmdDeleteField(field.ID)
		}
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			backToDetail := m.mode == formFieldCreate || m.mode == formFieldEdit
			m.resetForm()
			m.detail = backToDetail
			return m, nil
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "ctrl+g":
			if m.mode == formCreate || m.mode == formEdit {
				if pw, err := utils.GeneratePassword(generatedPasswordLength, true, true, true); err == nil {
					m.inputs[inputPassword].SetValue(pw)
					m.status = "password generated"
				}
				return m, nil
			}
		case "enter":
			if m.saving {
				return m, nil
			}
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.mode {
	case formCreate, formEdit:
		return m.submitAccountForm()
	case formFieldCreate, formFieldEdit:
		return m.submitFieldForm()
	default:
		return m, nil
	}
}

func (m mainLoopModel) submitAccountForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.inputs[inputTitle].Value())
	username := strings.TrimSpace(m.inputs[inputUsername].Value())
	password := m.inputs[inputPassword].Value()
	url := strings.TrimSpace(m.inputs[inputURL].Value())
	notes := m.inputs[inputNotes].Value()
	expiration := strings.TrimSpace(m.inputs[inputExpiration].Value())

	if title == "" || username == "" || password == "" {
		m.errMsg = "title, username and password are required"
		return m, nil
	}

	var expirationDate *time.Time
	if expiration != "" {
		parsed, err := time.Parse(expirationLayout, expiration)
		if err != nil {
			m.errMsg = "expiration must be YYYY-MM-DD"
			return m, nil
		}
		expirationDate = &parsed
	}

	m.errMsg = ""
	m.saving = true

	if m.mode == formEdit {
		return m, m.cmdUpdateAccount(m.editingID, models.UpdateAccountDTO{
			Title:          &title,
			Username:       &username,
			Password:       &password,
			URL:            &url,
			Notes:          &notes,
			ExpirationDate: expirationDate,
			// An emptied input clears a previously set date.
			ClearExpirationDate: expirationDate == nil,
		})
	}

	return m, m.cmdCreateAccount(models.CreateAccountDTO{
		Title:          title,
		Username:       username,
		Password:       password,
		URL:            url,
		Notes:          notes,
		ExpirationDate: expirationDate,
	})
}

func (m mainLoopModel) submitFieldForm() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[0].Value())
	value := m.inputs[1].Value()
	if name == "" || value == "" {
		m.errMsg = "name and value are required"
		return m, nil
	}

	m.errMsg = ""
	m.saving = true

	if m.mode == formFieldEdit {
		return m, m.cmdUpdateField(m.editingFieldID, models.UpdateCustomFieldDTO{
			Name:  &name,
			Value: &value,
		})
	}

	return m, m.cmdCreateField(models.CreateCustomFieldDTO{
		AccountID: m.editingID,
		Name:      name,
		Value:     value,
	})
}

func (m *mainLoopModel) copyToClipboard(text, status string) (tea.Model, tea.Cmd) {
	if text == "" {
		m.status = "nothing to copy"
		return *m, nil
	}
	if err := m.copyFn(text); err != nil {
		m.errMsg = fmt.Sprintf("clipboard error: %v", err)
		return *m, nil
	}

	m.copied = true
	m.status = status
	if m.clipboardClearAfter <= 0 {
		return *m, nil
	}
	return *m, tea.Tick(m.clipboardClearAfter, func(time.Time) tea.Msg {
		return clipboardClearMsg{}
	})
}

func newFormInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Width = 40
	return input
}

func (m *mainLoopModel) startCreate() {
	m.initAccountInputs(models.Account{})
	m.mode = formCreate
	m.editingID = ""
	m.errMsg = ""
}

func (m *mainLoopModel) startEdit(item models.Account) {
	m.initAccountInputs(item)
	m.mode = formEdit
	m.editingID = item.ID
	m.errMsg = ""
}

func (m *mainLoopModel) initAccountInputs(item models.Account) {
	title := newFormInput("title")
	title.SetValue(item.Title)
	title.Focus()

	username := newFormInput("username")
	username.SetValue(item.Username)

	password := newFormInput("password (ctrl+g to generate)")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.SetValue(item.Secret.Password)

	url := newFormInput("url (optional)")
	url.SetValue(item.Secret.URL)

	notes := newFormInput("notes (optional)")
	notes.SetValue(item.Secret.Notes)

	expiration := newFormInput("expires YYYY-MM-DD (optional)")
	if item.Secret.ExpirationDate != nil {
		expiration.SetValue(item.Secret.ExpirationDate.Format(expirationLayout))
	}

	m.inputs = []textinput.Model{title, username, password, url, notes, expiration}
	m.focus = 0
}

func (m *mainLoopModel) startFieldCreate(accountID string) {
	name := newFormInput("field name")
	name.Focus()
	value := newFormInput("value")

	m.inputs = []textinput.Model{name, value}
	m.focus = 0
	m.mode = formFieldCreate
	m.editingID = accountID
	m.editingFieldID = ""
	m.detail = false
	m.errMsg = ""
}

func (m *mainLoopModel) startFieldEdit(field models.CustomField) {
	name := newFormInput("field name")
	name.SetValue(field.Name)
	name.Focus()
	value := newFormInput("value")
	value.SetValue(field.Value)

	m.inputs = []textinput.Model{name, value}
	m.focus = 0
	m.mode = formFieldEdit
	m.editingID = field.AccountID
	m.editingFieldID = field.ID
	m.detail = false
	m.errMsg = ""
}

func (m *mainLoopModel) resetForm() {
	m.mode = formNone
	m.inputs = nil
	m.focus = 0
	m.saving = false
	m.editingID = ""
	m.editingFieldID = ""
}

func (m mainLoopModel) current() (models.Account, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Account{}, false
	}
	return m.items[m.idx], true
}

func (m mainLoopModel) currentField() (models.CustomField, bool) {
	if m.fieldIdx < 0 || m.fieldIdx >= len(m.fields) {
		return models.CustomField{}, false
	}
	return m.fields[m.fieldIdx], true
}

func (m *mainLoopModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *mainLoopModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m mainLoopModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts

	return func() tea.Msg {
		items, err := accounts.GetAll(ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdLoadFields(accountID string) tea.Cmd {
	ctx := m.ctx
	fields := m.services.CustomFields

	return func() tea.Msg {
		items, err := fields.GetAllForAccount(ctx, accountID)
		return fieldsLoadedMsg{fields: items, err: err}
	}
}

func (m mainLoopModel) cmdCreateAccount(dto models.CreateAccountDTO) tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts

	return func() tea.Msg {
		_, err := accounts.Create(ctx, dto)
		return accountSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdateAccount(id string, dto models.UpdateAccountDTO) tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts

	return func() tea.Msg {
		_, err := accounts.Update(ctx, id, dto)
		return accountSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteAccount(id string) tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts

	return func() tea.Msg {
		return accountDeletedMsg{err: accounts.Delete(ctx, id)}
	}
}

func (m mainLoopModel) cmdCreateField(dto models.CreateCustomFieldDTO) tea.Cmd {
	ctx := m.ctx
	fields := m.services.CustomFields

	return func() tea.Msg {
		_, err := fields.Create(ctx, dto)
		return fieldSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdateField(id string, dto models.UpdateCustomFieldDTO) tea.Cmd {
	ctx := m.ctx
	fields := m.services.CustomFields

	return func() tea.Msg {
		_, err := fields.Update(ctx, id, dto)
		return fieldSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteField(id string) tea.Cmd {
	ctx := m.ctx
	fields := m.services.CustomFields

	return func() tea.Msg {
		return fieldDeletedMsg{err: fields.Delete(ctx, id)}
	}
}
