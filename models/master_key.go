// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package models

// AlgorithmArgon2id identifies the Argon2id key-derivation function in a
// persisted [MasterKeyRecord]. Recording the algorithm and its cost
// parameters alongside the salt allows a future version to re-derive keys
// for vaults created under older parameters.
const AlgorithmArgon2id = "argon2id"

// MasterKeyRecord holds everything needed to re-derive and verify the master
// key without ever storing the key or the password themselves. It is created
// once, on first run, and is immutable thereafter.
type MasterKeyRecord struct {
	// Salt is the random per-vault salt fed into the KDF, 16 bytes.
	Salt []byte

	// VerificationToken is a one-way digest of the derived key. It lets a
	// wrong master password be detected before any decryption is attempted,
	// and cannot be inverted to recover the key.
	VerificationToken []byte

	// Algorithm identifies the KDF used (currently always
	// [AlgorithmArgon2id]).
	Algorithm string

	// TimeCost is the Argon2 iteration count.
	TimeCost uint32

	// MemoryKiB is the Argon2 memory cost in KiB.
	MemoryKiB uint32

	// Threads is the Argon2 parallelism degree.
	Threads uint8

	// KeyLength is the derived key length in bytes.
	KeyLength uint32
}
