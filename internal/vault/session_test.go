package vault

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarpov/passvault/internal/crypto"
	"github.com/akarpov/passvault/internal/logger"
	"github.com/akarpov/passvault/internal/mock"
	"github.com/akarpov/passvault/internal/store"
	"github.com/akarpov/passvault/models"
)

const testMasterPassword = "Tr0ub4dor&3"

// newTestSession wires a session over the real crypto components and a
// mocked master-key store.
func newTestSession(t *testing.T) (Session, *mock.MockMasterKeyStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	masterKeys := mock.NewMockMasterKeyStore(ctrl)

	box := crypto.NewCipherBox()
	s := NewSession(crypto.NewKeyring(), box, crypto.NewFieldCodec(box), masterKeys, logger.Nop())

	return s, masterKeys
}

// unlockedTestSession initializes a fresh vault and leaves it unlocked.
func unlockedTestSession(t *testing.T) Session {
	t.Helper()

	s, masterKeys := newTestSession(t)
	masterKeys.EXPECT().LoadMasterKeyRecord(gomock.Any()).Return(models.MasterKeyRecord{}, store.ErrNotInitialized)
	masterKeys.EXPECT().SaveMasterKeyRecord(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.Initialize(context.Background(), testMasterPassword))
	require.True(t, s.Unlocked())
	return s
}

func TestSession_InitializeLeavesUnlocked(t *testing.T) {
	s := unlockedTestSession(t)

	payload, err := s.EncryptField([]byte("secret"))
	require.NoError(t, err)

	plaintext, err := s.DecryptField(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), plaintext)
}

func TestSession_InitializeOverExistingVault(t *testing.T) {
	s, masterKeys := newTestSession(t)
	masterKeys.EXPECT().LoadMasterKeyRecord(gomock.Any()).Return(models.MasterKeyRecord{Algorithm: models.AlgorithmArgon2id}, nil)

	err := s.Initialize(context.Background(), testMasterPassword)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.False(t, s.Unlocked())
}

func TestSession_InitializeWeakPassword(t *testing.T) {
	s, masterKeys := newTestSession(t)
	masterKeys.EXPECT().LoadMasterKeyRecord(gomock.Any()).Return(models.MasterKeyRecord{}, store.ErrNotInitialized)

	err := s.Initialize(context.Background(), "")
	assert.ErrorIs(t, err, crypto.ErrWeakMasterPassword)
	assert.False(t, s.Unlocked())
}

func TestSession_InitializeSaveFailureStaysLocked(t *testing.T) {
	s, masterKeys := newTestSession(t)
	masterKeys.EXPECT().LoadMasterKeyRecord(gomock.Any()).Return(models.MasterKeyRecord{}, store.ErrNotInitialized)
	masterKeys.EXPECT().SaveMasterKeyRecord(gomock.Any(), gomock.Any()).Return(assert.AnError)

	err := s.Initialize(context.Background(), testMasterPassword)
	require.Error(t, err)
	assert.False(t, s.Unlocked())
}

func TestSession_UnlockWithCorrectPassword(t *testing.T) {
	rec, key, err := crypto.NewKeyring().Initialize(testMasterPassword)
	require.NoError(t, err)
	crypto.Zero(key)

	s, masterKeys := newTestSession(t)
	masterKeys.EXPECT().LoadMasterKeyRecord(gomock.Any()).Return(rec, nil)

	require.NoError(t, s.Unlock(context.Background(), testMasterPassword))
	assert.True(t, s.Unlocked())
}

func TestSession_UnlockWithWrongPassword(t *testing.T) {
	rec, key, err := crypto.NewKeyring().Initialize(testMasterPassword)
	require.NoError(t, err)
	crypto.Zero(key)

	s, masterKeys := newTestSession(t)
	masterKeys.EXPECT().LoadMasterKeyRecord(gomock.Any()).Return(rec, nil)

	err = s.Unlock(context.Background(), "tr0ub4dor&3")
	assert.ErrorIs(t, err, ErrInvalidMasterPassword)
	assert.False(t, s.Unlocked())
}

func TestSession_UnlockUninitializedVault(t *testing.T) {
	s, masterKeys := newTestSession(t)
	masterKeys.EXPECT().LoadMasterKeyRecord(gomock.Any()).Return(models.MasterKeyRecord{}, store.ErrNotInitialized)

	err := s.Unlock(context.Background(), testMasterPassword)
	assert.ErrorIs(t, err, store.ErrNotInitialized)
}

func TestSession_LockedOperationsFail(t *testing.T) {
	s, _ := newTestSession(t)
	require.False(t, s.Unlocked())

	_, err := s.EncryptField([]byte("x"))
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = s.DecryptField(models.EncryptedPayload{})
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = s.EncryptSecret(models.SecretFields{Password: "x"})
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = s.DecryptSecret(models.EncryptedPayload{})
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = s.EncryptValue("x")
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = s.DecryptValue(models.EncryptedPayload{})
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestSession_LockStopsFurtherOperations(t *testing.T) {
	s := unlockedTestSession(t)

	s.Lock()
	assert.False(t, s.Unlocked())

	_, err := s.EncryptField([]byte("x"))
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestSession_LockIsIdempotent(t *testing.T) {
	s := unlockedTestSession(t)

	s.Lock()
	s.Lock()
	assert.False(t, s.Unlocked())
}

func TestSession_UnlockAfterLock(t *testing.T) {
	rec, key, err := crypto.NewKeyring().Initialize(testMasterPassword)
	require.NoError(t, err)
	crypto.Zero(key)

	s, masterKeys := newTestSession(t)
	masterKeys.EXPECT().LoadMasterKeyRecord(gomock.Any()).Return(rec, nil).Times(2)

	require.NoError(t, s.Unlock(context.Background(), testMasterPassword))
	payload, err := s.EncryptValue("api-token")
	require.NoError(t, err)

	s.Lock()

	require.NoError(t, s.Unlock(context.Background(), testMasterPassword))
	value, err := s.DecryptValue(payload)
	require.NoError(t, err)
	assert.Equal(t, "api-token", value)
}

func TestSession_SecretRoundTrip(t *testing.T) {
	s := unlockedTestSession(t)

	secret := models.SecretFields{
		Password: testMasterPassword,
		URL:      "https://example.com",
		Notes:    "rotate quarterly",
	}

	payload, err := s.EncryptSecret(secret)
	require.NoError(t, err)

	got, err := s.DecryptSecret(payload)
	require.NoError(t, err)

	assert.Equal(t, secret.Password, got.Password)
	assert.Equal(t, secret.URL, got.URL)
	assert.Equal(t, secret.Notes, got.Notes)
}

func TestSession_TamperedPayloadSurfaces(t *testing.T) {
	s := unlockedTestSession(t)

	payload, err := s.EncryptValue("secret-value")
	require.NoError(t, err)

	payload.Ciphertext[0] ^= 0xFF

	_, err = s.DecryptValue(payload)
	assert.ErrorIs(t, err, crypto.ErrTamperedData)
}

func TestSession_IdleFor(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Zero(t, s.IdleFor(), "locked session reports zero idle time")

	unlocked := unlockedTestSession(t)
	time.Sleep(10 * time.Millisecond)
	assert.Greater(t, unlocked.IdleFor(), time.Duration(0))
}
