package validator

import (
	"worksbill/internal/validator/bill"
)

// FieldState is the live validation state of one form field.
type FieldState string

const (
	FieldStateValid   FieldState = "valid"
	FieldStateInvalid FieldState = "invalid"
)

// FieldStatus represents the computed validation state for a single field path.
type FieldStatus struct {
	Status   FieldState `json:"status"`
	Messages []string   `json:"messages"`
}

// ComputeFieldStatuses groups check results by field path. A field is invalid
// if any check on it failed.
func ComputeFieldStatuses(results []bill.ValidationResult) map[string]*FieldStatus {
	statuses := make(map[string]*FieldStatus)
	for _, r := range results {
		fs, ok := statuses[r.FieldPath]
		if !ok {
			fs = &FieldStatus{Status: FieldStateValid, Messages: []string{}}
			statuses[r.FieldPath] = fs
		}
		if !r.Passed {
			fs.Status = FieldStateInvalid
			fs.Messages = append(fs.Messages, r.Message)
		}
	}
	return statuses
}
