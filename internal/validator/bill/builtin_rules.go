package bill

import (
	"context"
)

// BuiltinValidator wraps a rule and its metadata for the registry.
type BuiltinValidator struct {
	key      string
	name     string
	blocking bool
	fn       func(context.Context, *Input) []ValidationResult
}

func (b *BuiltinValidator) Validate(ctx context.Context, in *Input) []ValidationResult {
	return b.fn(ctx, in)
}
func (b *BuiltinValidator) RuleKey() string  { return b.key }
func (b *BuiltinValidator) RuleName() string { return b.name }
func (b *BuiltinValidator) Blocking() bool   { return b.blocking }

type rule interface {
	RuleKey() string
	RuleName() string
	Blocking() bool
	Validate(context.Context, *Input) []ValidationResult
}

func wrap(r rule) *BuiltinValidator {
	return &BuiltinValidator{key: r.RuleKey(), name: r.RuleName(), blocking: r.Blocking(), fn: r.Validate}
}

// AllBuiltinValidators returns every bill rule in evaluation order: the restricted-to
// parse check first, then required fields, ceilings, the remaining amount checks and
// the CC bill ordinal.
func AllBuiltinValidators() []*BuiltinValidator {
	reqVals := RequiredFieldValidators()
	ceilVals := CeilingValidators()
	amtVals := AmountValidators()
	all := make([]*BuiltinValidator, 0, 3+len(reqVals)+len(ceilVals)+len(amtVals))

	all = append(all, wrap(RestrictedToValidator()))

	for _, v := range reqVals {
		all = append(all, wrap(v))
	}

	all = append(all, wrap(budgetPresenceValidator{}))

	for _, v := range ceilVals {
		all = append(all, wrap(v))
	}

	for _, v := range amtVals {
		all = append(all, wrap(v))
	}

	all = append(all, wrap(ccBillValidator{}))

	return all
}
