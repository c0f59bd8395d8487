// Package businessflow contains the core business logic and use cases for lead intake and admin workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Lead intake errors
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	ErrLeadPersistence    = errors.New("failed to persist lead")
	ErrPaymentMismatch    = errors.New("monthly payment could not be computed")

	// Admin authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminInactive      = errors.New("admin account is inactive")

	// Infrastructure errors
	ErrCacheNotAvailable = errors.New("cache not available")
)

// BusinessError represents a business logic error with context
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsVehicleNotFound(err error) bool {
	return errors.Is(err, ErrVehicleNotFound)
}

func IsVehicleUnavailable(err error) bool {
	return errors.Is(err, ErrVehicleUnavailable)
}

func IsLeadPersistence(err error) bool {
	return errors.Is(err, ErrLeadPersistence)
}

func IsPaymentMismatch(err error) bool {
	return errors.Is(err, ErrPaymentMismatch)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsAdminInactive(err error) bool {
	return errors.Is(err, ErrAdminInactive)
}
