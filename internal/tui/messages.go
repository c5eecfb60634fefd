package tui

import (
	"github.com/akarpov/passvault/models"
)

type unlockDoneMsg struct {
	err error
}

type initDoneMsg struct {
	err error
}

type listLoadedMsg struct {
	items []models.Account
	err   error
}

type fieldsLoadedMsg struct {
	fields []models.CustomField
	err    error
}

type accountSavedMsg struct {
	err error
}

type accountDeletedMsg struct {
	err error
}

type fieldSavedMsg struct {
	err error
}

type fieldDeletedMsg struct {
	err error
}

type clipboardClearMsg struct{}
