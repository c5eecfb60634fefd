// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package vault

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akarpov/passvault/internal/crypto"
	"github.com/akarpov/passvault/internal/logger"
	"github.com/akarpov/passvault/internal/store"
	"github.com/akarpov/passvault/models"
)

//go:generate mockgen -source=session.go -destination=../mock/vault_mock.go -package=mock

// Session is the single holder of the unlocked vault key for the process
// lifetime. It cycles between Locked and Unlocked; every encrypt/decrypt
// operation requires Unlocked and fails with ErrVaultLocked otherwise.
type Session interface {
	// Initialize creates a brand-new vault: derives the key from
	// masterPassword, persists the master-key record and leaves the
	// session Unlocked. Fails with ErrAlreadyInitialized over an existing
	// vault and crypto.ErrWeakMasterPassword for an empty password.
	Initialize(ctx context.Context, masterPassword string) error

	// Unlock verifies masterPassword against the stored record and, on
	// success, holds the derived key in memory. A failed verification
	// leaves the session Locked and returns ErrInvalidMasterPassword.
	// store.ErrNotInitialized propagates unchanged for the first-run flow.
	Unlock(ctx context.Context, masterPassword string) error

	// Lock transitions back to Locked. The in-memory key buffer is
	// overwritten before the method returns, not merely dropped.
	Lock()

	// Unlocked reports the current state.
	Unlocked() bool

	// IdleFor reports how long ago the key was last used. Zero while
	// locked.
	IdleFor() time.Duration

	// EncryptField and DecryptField operate on raw bytes with the held
	// key.
	EncryptField(plaintext []byte) (models.EncryptedPayload, error)
	DecryptField(payload models.EncryptedPayload) ([]byte, error)

	// EncryptSecret/DecryptSecret and EncryptValue/DecryptValue run the
	// field codec under the held key, for structured account secrets and
	// single custom-field values respectively.
	EncryptSecret(secret models.SecretFields) (models.EncryptedPayload, error)
	DecryptSecret(payload models.EncryptedPayload) (models.SecretFields, error)
	EncryptValue(value string) (models.EncryptedPayload, error)
	DecryptValue(payload models.EncryptedPayload) (string, error)
}

// session is the private implementation of [Session].
//
// The key is the one piece of shared mutable state in the process: the mutex
// guards both the Locked/Unlocked transition and every use of the key, so a
// Lock racing an in-flight decrypt can never tear the key mid-read.
type session struct {
	mu       sync.Mutex
	key      []byte
	lastUsed time.Time

	keyring    crypto.Keyring
	box        crypto.CipherBox
	codec      crypto.FieldCodec
	masterKeys store.MasterKeyStore

	logger *logger.Logger
}

// NewSession constructs a locked [Session].
func NewSession(keyring crypto.Keyring, box crypto.CipherBox, codec crypto.FieldCodec, masterKeys store.MasterKeyStore, log *logger.Logger) Session {
	return &session{
		keyring:    keyring,
		box:        box,
		codec:      codec,
		masterKeys: masterKeys,
		logger:     log,
	}
}

func (s *session) Initialize(ctx context.Context, masterPassword string) error {
	if _, err := s.masterKeys.LoadMasterKeyRecord(ctx); err == nil {
		return ErrAlreadyInitialized
	} else if !errors.Is(err, store.ErrNotInitialized) {
		return err
	}

	rec, key, err := s.keyring.Initialize(masterPassword)
	if err != nil {
		return err
	}

	if err := s.masterKeys.SaveMasterKeyRecord(ctx, rec); err != nil {
		crypto.Zero(key)
		return fmt.Errorf("save master key record: %w", err)
	}

	s.hold(key)
	s.logger.Info().Str("func", "session.Initialize").Msg("vault initialized and unlocked")
	return nil
}

func (s *session) Unlock(ctx context.Context, masterPassword string) error {
	rec, err := s.masterKeys.LoadMasterKeyRecord(ctx)
	if err != nil {
		return err
	}

	key, ok, err := s.keyring.Verify(masterPassword, rec)
	if err != nil {
		return err
	}
	if !ok {
		// No detail beyond the sentinel: the message must not reveal
		// whether the vault exists or the password is wrong.
		return ErrInvalidMasterPassword
	}

	s.hold(key)
	s.logger.Info().Str("func", "session.Unlock").Msg("vault unlocked")
	return nil
}

// hold installs key as the session key, scrubbing any previous one.
func (s *session) hold(key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	crypto.Zero(s.key)
	s.key = key
	s.lastUsed = time.Now()
}

func (s *session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil {
		return
	}

	crypto.Zero(s.key)
	s.key = nil
	s.logger.Info().Str("func", "session.Lock").Msg("vault locked")
}

func (s *session) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key != nil
}

func (s *session) IdleFor() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil {
		return 0
	}
	return time.Since(s.lastUsed)
}

// withKey runs fn with the session key while holding the mutex. Every
// encrypt/decrypt path goes through here, which is what enforces the locked
// precondition in exactly one place.
func (s *session) withKey(fn func(key []byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil {
		return ErrVaultLocked
	}
	s.lastUsed = time.Now()

	return fn(s.key)
}

func (s *session) EncryptField(plaintext []byte) (models.EncryptedPayload, error) {
	var payload models.EncryptedPayload
	err := s.withKey(func(key []byte) error {
		var err error
		payload, err = s.box.Encrypt(key, plaintext)
		return err
	})
	return payload, err
}

func (s *session) DecryptField(payload models.EncryptedPayload) ([]byte, error) {
	var plaintext []byte
	err := s.withKey(func(key []byte) error {
		var err error
		plaintext, err = s.box.Decrypt(key, payload)
		return err
	})
	return plaintext, err
}

func (s *session) EncryptSecret(secret models.SecretFields) (models.EncryptedPayload, error) {
	var payload models.EncryptedPayload
	err := s.withKey(func(key []byte) error {
		var err error
		payload, err = s.codec.EncodeSecret(secret, key)
		return err
	})
	return payload, err
}

func (s *session) DecryptSecret(payload models.EncryptedPayload) (models.SecretFields, error) {
	var secret models.SecretFields
	err := s.withKey(func(key []byte) error {
		var err error
		secret, err = s.codec.DecodeSecret(payload, key)
		return err
	})
	return secret, err
}

func (s *session) EncryptValue(value string) (models.EncryptedPayload, error) {
	var payload models.EncryptedPayload
	err := s.withKey(func(key []byte) error {
		var err error
		payload, err = s.codec.EncodeValue(value, key)
		return err
	})
	return payload, err
}

func (s *session) DecryptValue(payload models.EncryptedPayload) (string, error) {
	var value string
	err := s.withKey(func(key []byte) error {
		var err error
		value, err = s.codec.DecodeValue(payload, key)
		return err
	})
	return value, err
}
