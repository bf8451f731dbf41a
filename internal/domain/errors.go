package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrContractorNotFound = errors.New("contractor not found")
	ErrWorkNotFound       = errors.New("work not found")
	ErrBillNotFound       = errors.New("bill not found")
	ErrInvalidBillType    = errors.New("invalid bill type")
	ErrValidation         = errors.New("bill validation failed")
	ErrCeilingChanged     = errors.New("work ceiling no longer permits this bill")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrBackupFailed       = errors.New("backup upload failed")
	ErrInvalidDateRange   = errors.New("from date must not be after to date")
)

// Violation is a single failed validation rule on a bill submission.
type Violation struct {
	Rule    string `json:"rule"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found on a bill submission.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return "bill validation failed: " + strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrValidation) match any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
