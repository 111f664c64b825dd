// Package services defines the business logic of the auction data gateway.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// Translation into HTTP status codes is performed at the handler layer.
package services

import (
	"errors"
	"fmt"

	"github.com/tbourn/wow-auctions/internal/repo"
)

var (
	// ErrRealmNotFound indicates that the referenced realm does not exist.
	ErrRealmNotFound = errors.New("realm not found")

	// ErrAuctionFileNotFound indicates that the referenced auction file does
	// not exist.
	ErrAuctionFileNotFound = errors.New("auction file not found")

	// ErrConstraintViolation is returned when the store rejects a write on a
	// unique or foreign-key constraint (duplicate realm name or slug in a
	// region, duplicate realm folder, unknown realm reference).
	ErrConstraintViolation = repo.ErrConstraintViolation

	// ErrInvalidInput is returned for arguments that could never be stored
	// (blank realm name, unknown region, folder type or file status). It
	// matches ErrConstraintViolation under errors.Is.
	ErrInvalidInput = fmt.Errorf("%w: invalid input", ErrConstraintViolation)
)

// invalid wraps ErrInvalidInput with a field-specific reason.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
