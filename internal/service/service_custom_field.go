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

type customFieldService struct {
	session      vault.Session
	accounts     store.AccountRepository
	customFields store.CustomFieldRepository
	ids          *utils.UUIDGenerator

	logger *logger.Logger
}

// NewCustomFieldService constructs the [CustomFieldService] over the vault
// session and the storage collaborator.
func NewCustomFieldService(session vault.Session, storages store.Storages, log *logger.Logger) CustomFieldService {
	return &customFieldService{
		session:      session,
		accounts:     storages.Accounts,
		customFields: storages.CustomFields,
		ids:          utils.NewUUIDGenerator(),
		logger:       log,
	}
}

func (c *customFieldService) Create(ctx context.Context, dto models.CreateCustomFieldDTO) (models.CustomField, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateCreateCustomField(dto); err != nil {
		return models.CustomField{}, err
	}

	// A field is meaningless without its account.
	if _, err := c.accounts.GetAccount(ctx, dto.AccountID); err != nil {
		return models.CustomField{}, err
	}

	payload, err := c.session.EncryptValue(dto.Value)
	if err != nil {
		return models.CustomField{}, fmt.Errorf("encrypt value for create: %w", err)
	}

	now := time.Now()
	rec := models.CustomFieldRecord{
		ID:        c.ids.Generate(),
		AccountID: dto.AccountID,
		Name:      dto.Name,
		Value:     payload.Blob(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.customFields.SaveCustomField(ctx, rec); err != nil {
		return models.CustomField{}, fmt.Errorf("save created custom field: %w", err)
	}

	log.Debug().
		Str("func", "customFieldService.Create").
		Str("field_id", rec.ID).
		Str("account_id", rec.AccountID).
		Msg("custom field created")

	return models.CustomField{
		ID:        rec.ID,
		AccountID: rec.AccountID,
		Name:      rec.Name,
		Value:     dto.Value,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

func (c *customFieldService) Get(ctx context.Context, id string) (models.CustomField, error) {
	rec, err := c.customFields.GetCustomField(ctx, id)
	if err != nil {
		return models.CustomField{}, err
	}

	return c.decryptRecord(rec)
}

func (c *customFieldService) GetAllForAccount(ctx context.Context, accountID string) ([]models.CustomField, error) {
	recs, err := c.customFields.GetCustomFieldsForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	fields := make([]models.CustomField, 0, len(recs))
	for _, rec := range recs {
		field, err := c.decryptRecord(rec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return fields, nil
}

func (c *customFieldService) Update(ctx context.Context, id string, dto models.UpdateCustomFieldDTO) (models.CustomField, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateUpdateCustomField(dto); err != nil {
		return models.CustomField{}, err
	}

	current, err := c.Get(ctx, id)
	if err != nil {
		return models.CustomField{}, err
	}

	update := models.CustomFieldUpdate{ID: id, UpdatedAt: time.Now()}
	if dto.Name != nil && *dto.Name != current.Name {
		current.Name = *dto.Name
		update.Name = dto.Name
	}
	if dto.Value != nil && *dto.Value != current.Value {
		current.Value = *dto.Value

		payload, err := c.session.EncryptValue(current.Value)
		if err != nil {
			return models.CustomField{}, fmt.Errorf("encrypt value for update: %w", err)
		}
		blob := payload.Blob()
		update.Value = &blob
	}

	if update.Name == nil && update.Value == nil {
		return current, nil
	}

	if err := c.customFields.UpdateCustomField(ctx, update); err != nil {
		return models.CustomField{}, fmt.Errorf("update custom field: %w", err)
	}

	log.Debug().Str("func", "customFieldService.Update").Str("field_id", id).Msg("custom field updated")

	current.UpdatedAt = update.UpdatedAt
	return current, nil
}

func (c *customFieldService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := c.customFields.DeleteCustomField(ctx, id); err != nil {
		return err
	}

	log.Debug().Str("func", "customFieldService.Delete").Str("field_id", id).Msg("custom field deleted")
	return nil
}

func (c *customFieldService) decryptRecord(rec models.CustomFieldRecord) (models.CustomField, error) {
	payload, err := models.ParseBlob(rec.Value)
	if err != nil {
		return models.CustomField{}, err
	}

	value, err := c.session.DecryptValue(payload)
	if err != nil {
		return models.CustomField{}, err
	}

	return models.CustomField{
		ID:        rec.ID,
		AccountID: rec.AccountID,
		Name:      rec.Name,
		Value:     value,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}
