package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrDrawNotFound    = fmt.Errorf("%w: draw", ErrNotFound)
	ErrGameNotFound    = fmt.Errorf("%w: game", ErrNotFound)
	ErrWeightsNotFound = fmt.Errorf("%w: weight vector", ErrNotFound)

	// Validation errors
	ErrInvalidCombination = errors.New("invalid combination")
	ErrWrongSize          = fmt.Errorf("%w: wrong number of values", ErrInvalidCombination)
	ErrOutOfRange         = fmt.Errorf("%w: value out of range", ErrInvalidCombination)
	ErrDuplicateValue     = fmt.Errorf("%w: duplicate value", ErrInvalidCombination)

	// Statistical context errors (recoverable - callers degrade to defaults)
	ErrEmptyHistory      = errors.New("empty draw history")
	ErrInsufficientDraws = errors.New("insufficient draws for analysis")

	// Generation errors
	ErrPoolExhausted    = errors.New("generation pool exhausted")
	ErrQualityFloor     = errors.New("quality floor not reached")
	ErrStrategyFailed   = errors.New("generation strategy failed")
	ErrUnknownStrategy  = errors.New("unknown generation strategy")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidCombination)
}

func IsDegradable(err error) bool {
	return errors.Is(err, ErrEmptyHistory) ||
		errors.Is(err, ErrInsufficientDraws) ||
		errors.Is(err, ErrPoolExhausted)
}
