// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != DriverSQLite && cfg.Storage.DB.Driver != DriverPostgres {
		return ErrInvalidStorageConfigs
	}

	if cfg.Vault.AutoLockTimeout < 0 || cfg.Vault.ClipboardClearAfter < 0 {
		return ErrInvalidVaultConfigs
	}

	return nil
}
