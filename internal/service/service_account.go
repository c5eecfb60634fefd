// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/akarpov/passvault/internal/logger"
	"github.com/akarpov/passvault/internal/store"
	"github.com/akarpov/passvault/internal/utils"
	"github.com/akarpov/passvault/internal/validators"
	"github.com/akarpov/passvault/internal/vault"
	"github.com/akarpov/passvault/models"
)

type accountService struct {
	session      vault.Session
	accounts     store.AccountRepository
	customFields store.CustomFieldRepository
	ids          *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAccountService constructs the [AccountService] over the vault session
// and the storage collaborator.
func NewAccountService(session vault.Session, storages store.Storages, log *logger.Logger) AccountService {
	return &accountService{
		session:      session,
		accounts:     storages.Accounts,
		customFields: storages.CustomFields,
		ids:          utils.NewUUIDGenerator(),
		logger:       log,
	}
}

func (a *accountService) Create(ctx context.Context, dto models.CreateAccountDTO) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateCreateAccount(dto); err != nil {
		return models.Account{}, err
	}

	secret := models.SecretFields{
		Password:       dto.Password,
		URL:            dto.URL,
		Notes:          dto.Notes,
		ExpirationDate: dto.ExpirationDate,
	}

	payload, err := a.session.EncryptSecret(secret)
	if err != nil {
		return models.Account{}, fmt.Errorf("encrypt secret for create: %w", err)
	}

	now := time.Now()
	rec := models.AccountRecord{
		ID:        a.ids.Generate(),
		Title:     dto.Title,
		Username:  dto.Username,
		Secret:    payload.Blob(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := a.accounts.SaveAccount(ctx, rec); err != nil {
		return models.Account{}, fmt.Errorf("save created account: %w", err)
	}

	log.Debug().Str("func", "accountService.Create").Str("account_id", rec.ID).Msg("account created")

	secret.Version = models.SecretFieldsVersion
	return models.Account{
		ID:        rec.ID,
		Title:     rec.Title,
		Username:  rec.Username,
		Secret:    secret,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

func (a *accountService) Get(ctx context.Context, id string) (models.Account, error) {
	rec, err := a.accounts.GetAccount(ctx, id)
	if err != nil {
		return models.Account{}, err
	}

	return a.decryptRecord(rec)
}

func (a *accountService) GetAll(ctx context.Context) ([]models.Account, error) {
	recs, err := a.accounts.GetAllAccounts(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]models.Account, 0, len(recs))
	for _, rec := range recs {
		account, err := a.decryptRecord(rec)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (a *accountService) Update(ctx context.Context, id string, dto models.UpdateAccountDTO) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateUpdateAccount(dto); err != nil {
		return models.Account{}, err
	}

	current, err := a.Get(ctx, id)
	if err != nil {
		return models.Account{}, err
	}

	update := models.AccountUpdate{ID: id, UpdatedAt: time.Now()}
	if dto.Title != nil && *dto.Title != current.Title {
		current.Title = *dto.Title
		update.Title = dto.Title
	}
	if dto.Username != nil && *dto.Username != current.Username {
		current.Username = *dto.Username
		update.Username = dto.Username
	}

	secretChanged := false
	if dto.Password != nil && *dto.Password != current.Secret.Password {
		current.Secret.Password = *dto.Password
		secretChanged = true
	}
	if dto.URL != nil && *dto.URL != current.Secret.URL {
		current.Secret.URL = *dto.URL
		secretChanged = true
	}
	if dto.Notes != nil && *dto.Notes != current.Secret.Notes {
		current.Secret.Notes = *dto.Notes
		secretChanged = true
	}
	if dto.ExpirationDate != nil {
		current.Secret.ExpirationDate = dto.ExpirationDate
		secretChanged = true
	} else if dto.ClearExpirationDate && current.Secret.ExpirationDate != nil {
		current.Secret.ExpirationDate = nil
		secretChanged = true
	}

	if secretChanged {
		// Fresh nonce on every re-encryption; the previous payload is
		// never written back.
		payload, err := a.session.EncryptSecret(current.Secret)
		if err != nil {
			return models.Account{}, fmt.Errorf("encrypt secret for update: %w", err)
		}
		blob := payload.Blob()
		update.Secret = &blob
	}

	if update.Title == nil && update.Username == nil && update.Secret == nil {
		return current, nil
	}

	if err := a.accounts.UpdateAccount(ctx, update); err != nil {
		return models.Account{}, fmt.Errorf("update account: %w", err)
	}

	log.Debug().Str("func", "accountService.Update").Str("account_id", id).Msg("account updated")

	current.UpdatedAt = update.UpdatedAt
	return current, nil
}

// Delete removes the account and its custom fields. Referential cleanup is
// this service's responsibility, not the storage collaborator's: fields go
// first so a crash in between leaves no orphaned encrypted values.
func (a *accountService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := a.accounts.GetAccount(ctx, id); err != nil {
		return err
	}

	if err := a.customFields.DeleteCustomFieldsForAccount(ctx, id); err != nil {
		return fmt.Errorf("cascade delete custom fields: %w", err)
	}

	if err := a.accounts.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	log.Debug().Str("func", "accountService.Delete").Str("account_id", id).Msg("account deleted with custom fields")
	return nil
}

func (a *accountService) Any(ctx context.Context) (bool, error) {
	recs, err := a.accounts.GetAllAccounts(ctx)
	if err != nil {
		return false, err
	}
	return len(recs) > 0, nil
}

func (a *accountService) decryptRecord(rec models.AccountRecord) (models.Account, error) {
	payload, err := models.ParseBlob(rec.Secret)
	if err != nil {
		return models.Account{}, err
	}

	secret, err := a.session.DecryptSecret(payload)
	if err != nil {
		return models.Account{}, err
	}

	return models.Account{
		ID:        rec.ID,
		Title:     rec.Title,
		Username:  rec.Username,
		Secret:    secret,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}
