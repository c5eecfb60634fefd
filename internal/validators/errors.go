package validators

import "errors"

var (
	ErrTitleRequired      = errors.New("account title must not be empty")
	ErrUsernameRequired   = errors.New("account username must not be empty")
	ErrPasswordRequired   = errors.New("account password must not be empty")
	ErrFieldNameRequired  = errors.New("custom field name must not be empty")
	ErrFieldValueRequired = errors.New("custom field value must not be empty")
	ErrAccountIDRequired  = errors.New("custom field must reference an account")
	ErrNothingToUpdate    = errors.New("update contains no changes")
)
