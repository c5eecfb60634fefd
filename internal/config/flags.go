package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (vault file path for sqlite3)
//	-driver database driver ("sqlite3" or "pgx")
//	-c/-config json file path with configs
//	-auto-lock idle duration before the vault locks itself (e.g., "5m")
//	-clipboard-clear duration before a copied password is wiped (e.g., "30s")
//	-log-path log file path
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var autoLockTimeout time.Duration
	var clipboardClearAfter time.Duration
	var logPath string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (sqlite3 or pgx)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&autoLockTimeout, "auto-lock", 0, "Auto-lock idle timeout (e.g., 5m)")
	flag.DurationVar(&clipboardClearAfter, "clipboard-clear", 0, "Clipboard clear delay (e.g., 30s)")
	flag.StringVar(&logPath, "log-path", "", "Log file path")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Vault: Vault{
			AutoLockTimeout:     autoLockTimeout,
			ClipboardClearAfter: clipboardClearAfter,
		},
		Log: Log{
			Path: logPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}
