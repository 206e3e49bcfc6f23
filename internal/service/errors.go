package service

import (
	"errors"
	"fmt"

	"contracting-cms/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// translate maps store errors onto the service sentinels, keeping the cause.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, repository.ErrUnknownReference):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

// isStoreFailure is true for errors that are not the caller's fault.
func isStoreFailure(err error) bool {
	return !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrInvalidInput) && !errors.Is(err, ErrConflict)
}
