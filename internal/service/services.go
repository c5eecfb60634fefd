package service

import (
	"github.com/akarpov/passvault/internal/logger"
	"github.com/akarpov/passvault/internal/store"
	"github.com/akarpov/passvault/internal/vault"
)

// Services aggregates the business services the presentation layer depends
// on.
type Services struct {
	Accounts     AccountService
	CustomFields CustomFieldService
}

// NewServices wires the services over the shared vault session and storage.
func NewServices(session vault.Session, storages store.Storages, logger *logger.Logger) *Services {
	return &Services{
		Accounts:     NewAccountService(session, storages, logger),
		CustomFields: NewCustomFieldService(session, storages, logger),
	}
}
