package services

import (
	"errors"
	"fmt"
)

// Sentinel errors consumed by the central handler mapping.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
)

func validationError(err error) error {
	return fmt.Errorf("%w: %v", ErrValidationFailed, err)
}

func notFoundError(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func forbiddenError(reason string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, reason)
}

// Classification helpers for handler error mapping.

func IsValidationError(err error) bool    { return errors.Is(err, ErrValidationFailed) }
func IsUnauthorizedError(err error) bool  { return errors.Is(err, ErrUnauthorized) }
func IsForbiddenError(err error) bool     { return errors.Is(err, ErrForbidden) }
func IsNotFoundError(err error) bool      { return errors.Is(err, ErrNotFound) }
func IsAlreadyExistsError(err error) bool { return errors.Is(err, ErrAlreadyExists) }
