package core

import (
	"errors"
	"fmt"
)

// Domain errors. Lower layers wrap them with fmt.Errorf("...: %w", err);
// handlers map them to status codes with errors.Is.
var (
	ErrUnauthenticated    = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found") // absent OR owned by someone else
	ErrQuotaExceeded      = errors.New("upload limit reached, upgrade your plan")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = fmt.Errorf("%w: email already exists", ErrValidation)
)
