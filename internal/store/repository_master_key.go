// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/akarpov/passvault/internal/logger"
	"github.com/akarpov/passvault/models"
)

// masterKeyRowID pins the master_key table to a single row: one vault, one
// active master key.
const masterKeyRowID = 1

type masterKeyRepository struct {
	*DB
	logger *logger.Logger
}

// NewMasterKeyRepository constructs the [MasterKeyStore] backed by the
// master_key table.
func NewMasterKeyRepository(db *DB, logger *logger.Logger) MasterKeyStore {
	return &masterKeyRepository{
		DB:     db,
		logger: logger,
	}
}

func (m *masterKeyRepository) SaveMasterKeyRecord(ctx context.Context, rec models.MasterKeyRecord) error {
	log := logger.FromContext(ctx)

	if _, err := m.LoadMasterKeyRecord(ctx); err == nil {
		return ErrMasterKeyExists
	} else if !errors.Is(err, ErrNotInitialized) {
		return err
	}

	query, args, err := m.builder.
		Insert("master_key").
		Columns("id", "algorithm", "salt", "verification_token", "time_cost", "memory_kib", "threads", "key_length").
		Values(
			masterKeyRowID,
			rec.Algorithm,
			base64.StdEncoding.EncodeToString(rec.Salt),
			base64.StdEncoding.EncodeToString(rec.VerificationToken),
			rec.TimeCost,
			rec.MemoryKiB,
			rec.Threads,
			rec.KeyLength,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := m.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "masterKeyRepository.SaveMasterKeyRecord").Msg("failed to insert master key record")
		return fmt.Errorf("failed to save master key record: %w", err)
	}

	return nil
}

func (m *masterKeyRepository) LoadMasterKeyRecord(ctx context.Context) (models.MasterKeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.builder.
		Select("algorithm", "salt", "verification_token", "time_cost", "memory_kib", "threads", "key_length").
		From("master_key").
		Where(sq.Eq{"id": masterKeyRowID}).
		ToSql()
	if err != nil {
		return models.MasterKeyRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		rec     models.MasterKeyRecord
		salt64  string
		token64 string
	)
	row := m.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&rec.Algorithm, &salt64, &token64, &rec.TimeCost, &rec.MemoryKiB, &rec.Threads, &rec.KeyLength)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.MasterKeyRecord{}, ErrNotInitialized
	}
	if scanErr != nil {
		log.Err(scanErr).Str("func", "masterKeyRepository.LoadMasterKeyRecord").Msg("failed to scan master key row")
		return models.MasterKeyRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	if rec.Salt, err = base64.StdEncoding.DecodeString(salt64); err != nil {
		return models.MasterKeyRecord{}, fmt.Errorf("decode salt: %w", err)
	}
	if rec.VerificationToken, err = base64.StdEncoding.DecodeString(token64); err != nil {
		return models.MasterKeyRecord{}, fmt.Errorf("decode verification token: %w", err)
	}

	return rec, nil
}
