package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarpov/passvault/internal/logger"
	"github.com/akarpov/passvault/internal/mock"
	"github.com/akarpov/passvault/internal/store"
	"github.com/akarpov/passvault/internal/utils"
	"github.com/akarpov/passvault/internal/validators"
	"github.com/akarpov/passvault/internal/vault"
	"github.com/akarpov/passvault/models"
)

type fieldSvcMocks struct {
	session      *mock.MockSession
	accounts     *mock.MockAccountRepository
	customFields *mock.MockCustomFieldRepository
}

func newTestFieldSvc(t *testing.T) (CustomFieldService, fieldSvcMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := fieldSvcMocks{
		session:      mock.NewMockSession(ctrl),
		accounts:     mock.NewMockAccountRepository(ctrl),
		customFields: mock.NewMockCustomFieldRepository(ctrl),
	}

	svc := &customFieldService{
		session:      m.session,
		accounts:     m.accounts,
		customFields: m.customFields,
		ids:          utils.NewUUIDGenerator(),
		logger:       logger.Nop(),
	}

	return svc, m
}

func TestCustomFieldService_Create(t *testing.T) {
	svc, m := newTestFieldSvc(t)
	payload := testPayload(20)

	dto := models.CreateCustomFieldDTO{AccountID: "acc-1", Name: "PIN", Value: "4242"}

	m.accounts.EXPECT().
		GetAccount(gomock.Any(), "acc-1").
		Return(models.AccountRecord{ID: "acc-1"}, nil)
	m.session.EXPECT().EncryptValue("4242").Return(payload, nil)

	var saved models.CustomFieldRecord
	m.customFields.EXPECT().
		SaveCustomField(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.CustomFieldRecord) error {
			saved = rec
			return nil
		})

	field, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)

	assert.NotEmpty(t, field.ID)
	assert.Equal(t, "acc-1", saved.AccountID)
	assert.Equal(t, "PIN", saved.Name)
	assert.Equal(t, payload.Blob(), saved.Value, "only the encrypted blob is persisted")
	assert.Equal(t, "4242", field.Value)
}

func TestCustomFieldService_CreateValidation(t *testing.T) {
	svc, _ := newTestFieldSvc(t)

	_, err := svc.Create(context.Background(), models.CreateCustomFieldDTO{Name: "n", Value: "v"})
	assert.ErrorIs(t, err, validators.ErrAccountIDRequired)

	_, err = svc.Create(context.Background(), models.CreateCustomFieldDTO{AccountID: "a", Value: "v"})
	assert.ErrorIs(t, err, validators.ErrFieldNameRequired)

	_, err = svc.Create(context.Background(), models.CreateCustomFieldDTO{AccountID: "a", Name: "n"})
	assert.ErrorIs(t, err, validators.ErrFieldValueRequired)
}

func TestCustomFieldService_CreateMissingAccount(t *testing.T) {
	svc, m := newTestFieldSvc(t)

	m.accounts.EXPECT().
		GetAccount(gomock.Any(), "missing").
		Return(models.AccountRecord{}, store.ErrAccountNotFound)

	_, err := svc.Create(context.Background(), models.CreateCustomFieldDTO{
		AccountID: "missing", Name: "PIN", Value: "4242",
	})
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestCustomFieldService_CreateLockedVault(t *testing.T) {
	svc, m := newTestFieldSvc(t)

	m.accounts.EXPECT().
		GetAccount(gomock.Any(), "acc-1").
		Return(models.AccountRecord{ID: "acc-1"}, nil)
	m.session.EXPECT().
		EncryptValue(gomock.Any()).
		Return(models.EncryptedPayload{}, vault.ErrVaultLocked)

	_, err := svc.Create(context.Background(), models.CreateCustomFieldDTO{
		AccountID: "acc-1", Name: "PIN", Value: "4242",
	})
	assert.ErrorIs(t, err, vault.ErrVaultLocked)
}

func TestCustomFieldService_Get(t *testing.T) {
	svc, m := newTestFieldSvc(t)
	payload := testPayload(21)

	m.customFields.EXPECT().
		GetCustomField(gomock.Any(), "f-1").
		Return(models.CustomFieldRecord{ID: "f-1", AccountID: "acc-1", Name: "PIN", Value: payload.Blob()}, nil)
	m.session.EXPECT().DecryptValue(payload).Return("4242", nil)

	field, err := svc.Get(context.Background(), "f-1")
	require.NoError(t, err)

	assert.Equal(t, "f-1", field.ID)
	assert.Equal(t, "4242", field.Value)
}

func TestCustomFieldService_GetNotFound(t *testing.T) {
	svc, m := newTestFieldSvc(t)

	m.customFields.EXPECT().
		GetCustomField(gomock.Any(), "missing").
		Return(models.CustomFieldRecord{}, store.ErrCustomFieldNotFound)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrCustomFieldNotFound)
}

func TestCustomFieldService_GetAllForAccount(t *testing.T) {
	svc, m := newTestFieldSvc(t)
	p1, p2 := testPayload(22), testPayload(23)

	m.customFields.EXPECT().
		GetCustomFieldsForAccount(gomock.Any(), "acc-1").
		Return([]models.CustomFieldRecord{
			{ID: "f-1", AccountID: "acc-1", Name: "PIN", Value: p1.Blob()},
			{ID: "f-2", AccountID: "acc-1", Name: "Recovery", Value: p2.Blob()},
		}, nil)
	m.session.EXPECT().DecryptValue(p1).Return("4242", nil)
	m.session.EXPECT().DecryptValue(p2).Return("correct horse", nil)

	fields, err := svc.GetAllForAccount(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "4242", fields[0].Value)
	assert.Equal(t, "correct horse", fields[1].Value)
}

func TestCustomFieldService_UpdateValueReEncrypts(t *testing.T) {
	svc, m := newTestFieldSvc(t)
	oldPayload, newPayload := testPayload(24), testPayload(25)

	m.customFields.EXPECT().
		GetCustomField(gomock.Any(), "f-1").
		Return(models.CustomFieldRecord{ID: "f-1", AccountID: "acc-1", Name: "PIN", Value: oldPayload.Blob()}, nil)
	m.session.EXPECT().DecryptValue(oldPayload).Return("4242", nil)
	m.session.EXPECT().EncryptValue("1337").Return(newPayload, nil)

	var captured models.CustomFieldUpdate
	m.customFields.EXPECT().
		UpdateCustomField(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update models.CustomFieldUpdate) error {
			captured = update
			return nil
		})

	newValue := "1337"
	field, err := svc.Update(context.Background(), "f-1", models.UpdateCustomFieldDTO{Value: &newValue})
	require.NoError(t, err)

	assert.Equal(t, "1337", field.Value)
	require.NotNil(t, captured.Value)
	assert.Equal(t, newPayload.Blob(), *captured.Value)
}

func TestCustomFieldService_UpdateNothingToUpdate(t *testing.T) {
	svc, _ := newTestFieldSvc(t)

	_, err := svc.Update(context.Background(), "f-1", models.UpdateCustomFieldDTO{})
	assert.ErrorIs(t, err, validators.ErrNothingToUpdate)
}

func TestCustomFieldService_Delete(t *testing.T) {
	svc, m := newTestFieldSvc(t)

	m.customFields.EXPECT().DeleteCustomField(gomock.Any(), "f-1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "f-1"))
}

func TestCustomFieldService_DeleteNotFound(t *testing.T) {
	svc, m := newTestFieldSvc(t)

	m.customFields.EXPECT().
		DeleteCustomField(gomock.Any(), "missing").
		Return(store.ErrCustomFieldNotFound)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrCustomFieldNotFound)
}
