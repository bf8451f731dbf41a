package validator

import (
	"context"

	"worksbill/internal/validator/bill"
)

// Validator is the interface for a single built-in bill rule.
type Validator interface {
	Validate(ctx context.Context, in *bill.Input) []bill.ValidationResult
	RuleKey() string
	RuleName() string
	// Blocking rules stop evaluation of every later rule when they fail.
	Blocking() bool
}
