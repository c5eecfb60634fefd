package crypto

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/akarpov/passvault/models"
)

func TestFieldCodec_SecretRoundTrip(t *testing.T) {
	codec := NewFieldCodec(NewCipherBox())
	key := testKey(0x33)

	exp := time.Date(2027, 5, 1, 0, 0, 0, 0, time.UTC)
	secret := models.SecretFields{
		Password:       "p@ssw0rd!",
		URL:            "https://example.com/login",
		Notes:          "primary mailbox",
		ExpirationDate: &exp,
	}

	payload, err := codec.EncodeSecret(secret, key)
	if err != nil {
		t.Fatalf("EncodeSecret error: %v", err)
	}

	got, err := codec.DecodeSecret(payload, key)
	if err != nil {
		t.Fatalf("DecodeSecret error: %v", err)
	}

	if got.Password != secret.Password || got.URL != secret.URL || got.Notes != secret.Notes {
		t.Fatalf("decoded secret mismatch: %+v", got)
	}
	if got.ExpirationDate == nil || !got.ExpirationDate.Equal(exp) {
		t.Fatalf("expiration date mismatch: %v", got.ExpirationDate)
	}
	if got.Version != models.SecretFieldsVersion {
		t.Fatalf("version = %d, want %d", got.Version, models.SecretFieldsVersion)
	}
}

func TestFieldCodec_CiphertextHidesPlaintext(t *testing.T) {
	codec := NewFieldCodec(NewCipherBox())
	key := testKey(0x33)

	payload, err := codec.EncodeSecret(models.SecretFields{Password: "p@ssw0rd!"}, key)
	if err != nil {
		t.Fatalf("EncodeSecret error: %v", err)
	}

	if bytes.Contains(payload.Ciphertext, []byte("p@ssw0rd!")) {
		t.Fatalf("ciphertext contains the plaintext password")
	}
	if bytes.Contains([]byte(payload.Blob()), []byte("p@ssw0rd!")) {
		t.Fatalf("stored blob contains the plaintext password")
	}
}

func TestFieldCodec_MalformedRecord(t *testing.T) {
	box := NewCipherBox()
	codec := NewFieldCodec(box)
	key := testKey(0x44)

	// Authenticates fine but is not the canonical secret structure.
	payload, err := box.Encrypt(key, []byte("not json at all"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := codec.DecodeSecret(payload, key); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestFieldCodec_VersionZeroIsMalformed(t *testing.T) {
	box := NewCipherBox()
	codec := NewFieldCodec(box)
	key := testKey(0x44)

	// Valid JSON, but not produced by the encoder: version is missing.
	payload, err := box.Encrypt(key, []byte(`{"password":"x"}`))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := codec.DecodeSecret(payload, key); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord for missing version, got %v", err)
	}
}

func TestFieldCodec_TamperedSecretPropagates(t *testing.T) {
	codec := NewFieldCodec(NewCipherBox())
	key := testKey(0x55)

	payload, err := codec.EncodeSecret(models.SecretFields{Password: "secret"}, key)
	if err != nil {
		t.Fatalf("EncodeSecret error: %v", err)
	}
	payload.Ciphertext[0] ^= 0x01

	if _, err := codec.DecodeSecret(payload, key); !errors.Is(err, ErrTamperedData) {
		t.Fatalf("expected ErrTamperedData, got %v", err)
	}
}

func TestFieldCodec_ValueRoundTrip(t *testing.T) {
	codec := NewFieldCodec(NewCipherBox())
	key := testKey(0x66)

	payload, err := codec.EncodeValue("4111 1111 1111 1111", key)
	if err != nil {
		t.Fatalf("EncodeValue error: %v", err)
	}

	got, err := codec.DecodeValue(payload, key)
	if err != nil {
		t.Fatalf("DecodeValue error: %v", err)
	}
	if got != "4111 1111 1111 1111" {
		t.Fatalf("decoded value mismatch: %q", got)
	}
}
