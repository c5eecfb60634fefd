package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/akarpov/passvault/models"
)

func TestInitialize_RecordShape(t *testing.T) {
	kr := NewKeyring()

	rec, key, err := kr.Initialize("Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	if len(rec.Salt) != 16 {
		t.Fatalf("salt length = %d, want 16", len(rec.Salt))
	}
	if len(rec.VerificationToken) != 32 {
		t.Fatalf("token length = %d, want 32", len(rec.VerificationToken))
	}
	if len(key) != 32 {
		t.Fatalf("key length = %d, want 32", len(key))
	}
	if rec.Algorithm != models.AlgorithmArgon2id {
		t.Fatalf("algorithm = %q, want %q", rec.Algorithm, models.AlgorithmArgon2id)
	}
	if rec.TimeCost == 0 || rec.MemoryKiB == 0 || rec.Threads == 0 || rec.KeyLength == 0 {
		t.Fatalf("derivation parameters not recorded: %+v", rec)
	}

	// The token must not equal the key itself.
	if bytes.Equal(rec.VerificationToken, key) {
		t.Fatalf("verification token equals the derived key")
	}
}

func TestInitialize_EmptyPasswordRejected(t *testing.T) {
	kr := NewKeyring()

	_, _, err := kr.Initialize("")
	if !errors.Is(err, ErrWeakMasterPassword) {
		t.Fatalf("expected ErrWeakMasterPassword, got %v", err)
	}
}

func TestInitialize_SaltsDiffer(t *testing.T) {
	kr := NewKeyring()

	rec1, _, err := kr.Initialize("same password")
	if err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	rec2, _, err := kr.Initialize("same password")
	if err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	if bytes.Equal(rec1.Salt, rec2.Salt) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDerive_DeterministicForSameInputs(t *testing.T) {
	kr := NewKeyring()

	rec, key, err := kr.Initialize("correct horse battery staple")
	if err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	again, err := kr.Derive("correct horse battery staple", rec)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if !bytes.Equal(key, again) {
		t.Fatalf("expected derived keys to match for same password+record")
	}
}

func TestDerive_UnknownAlgorithm(t *testing.T) {
	kr := NewKeyring()

	rec := models.MasterKeyRecord{Algorithm: "pbkdf2-sha1"}
	if _, err := kr.Derive("pw", rec); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestVerify_CorrectPassword(t *testing.T) {
	kr := NewKeyring()

	rec, key, err := kr.Initialize("Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	got, ok, err := kr.Verify("Tr0ub4dor&3", rec)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected verification to succeed for the correct password")
	}
	if !bytes.Equal(got, key) {
		t.Fatalf("verified key differs from initialized key")
	}
}

func TestVerify_CaseChangedPasswordFails(t *testing.T) {
	kr := NewKeyring()

	rec, _, err := kr.Initialize("Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	key, ok, err := kr.Verify("tr0ub4dor&3", rec)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatalf("expected verification to fail for a case-changed password")
	}
	if key != nil {
		t.Fatalf("expected no key to be returned on failed verification")
	}
}

func TestZero_OverwritesBuffer(t *testing.T) {
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	Zero(buf)

	if !bytes.Equal(buf, make([]byte, 4)) {
		t.Fatalf("buffer not zeroed: %x", buf)
	}
}
