package validator

import (
	"context"

	"worksbill/internal/domain"
	"worksbill/internal/validator/bill"
)

// Engine runs the registered rules against a bill.
type Engine struct {
	registry *Registry
}

// NewEngine creates a new validation engine.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// NewBillEngine creates an engine with every built-in bill rule registered.
func NewBillEngine() *Engine {
	reg := NewRegistry()
	for _, v := range bill.AllBuiltinValidators() {
		reg.Register(v)
	}
	return NewEngine(reg)
}

// Result is the outcome of validating one bill.
type Result struct {
	Valid         bool                    `json:"valid"`
	Summary       Summary                 `json:"summary"`
	Violations    []domain.Violation      `json:"violations"`
	FieldStatuses map[string]*FieldStatus `json:"field_statuses"`
}

// Summary holds aggregate counts of checks.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Err returns a *domain.ValidationError carrying the violations, or nil when valid.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	return &domain.ValidationError{Violations: r.Violations}
}

// Validate runs every rule in order. A failing blocking rule ends the run so that
// only its violation is reported.
func (e *Engine) Validate(ctx context.Context, in *bill.Input) *Result {
	return e.run(ctx, in, e.registry.All())
}

// ValidateRules runs only the named rules, in registration order, with the same
// blocking behaviour as Validate. Unknown keys are ignored.
func (e *Engine) ValidateRules(ctx context.Context, in *bill.Input, keys ...string) *Result {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	var rules []Validator
	for _, v := range e.registry.All() {
		if want[v.RuleKey()] {
			rules = append(rules, v)
		}
	}
	return e.run(ctx, in, rules)
}

func (e *Engine) run(ctx context.Context, in *bill.Input, rules []Validator) *Result {
	var all []bill.ValidationResult
	res := &Result{Violations: []domain.Violation{}}

	for _, v := range rules {
		vResults := v.Validate(ctx, in)
		failed := false
		for _, vr := range vResults {
			all = append(all, vr)
			res.Summary.Total++
			if vr.Passed {
				res.Summary.Passed++
				continue
			}
			failed = true
			res.Summary.Failed++
			res.Violations = append(res.Violations, domain.Violation{
				Rule:    v.RuleKey(),
				Field:   vr.FieldPath,
				Message: vr.Message,
			})
		}
		if failed && v.Blocking() {
			break
		}
	}

	res.Valid = len(res.Violations) == 0
	res.FieldStatuses = ComputeFieldStatuses(all)
	return res
}
