// Package validators checks service-layer input before any encryption or
// persistence happens. Rules mirror the create/update contracts: required
// fields on create, at least one change on update.
package validators

import "github.com/akarpov/passvault/models"

// ValidateCreateAccount rejects accounts missing title, username or
// password.
func ValidateCreateAccount(dto models.CreateAccountDTO) error {
	if dto.Title == "" {
		return ErrTitleRequired
	}
	if dto.Username == "" {
		return ErrUsernameRequired
	}
	if dto.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateUpdateAccount rejects updates that change nothing.
func ValidateUpdateAccount(dto models.UpdateAccountDTO) error {
	if dto.Title == nil && dto.Username == nil && dto.Password == nil &&
		dto.URL == nil && dto.Notes == nil && dto.ExpirationDate == nil {
		return ErrNothingToUpdate
	}
	return nil
}

// ValidateCreateCustomField rejects fields without an account reference,
// name or value.
func ValidateCreateCustomField(dto models.CreateCustomFieldDTO) error {
	if dto.AccountID == "" {
		return ErrAccountIDRequired
	}
	if dto.Name == "" {
		return ErrFieldNameRequired
	}
	if dto.Value == "" {
		return ErrFieldValueRequired
	}
	return nil
}

// ValidateUpdateCustomField rejects updates that change nothing.
func ValidateUpdateCustomField(dto models.UpdateCustomFieldDTO) error {
	if dto.Name == nil && dto.Value == nil {
		return ErrNothingToUpdate
	}
	return nil
}
