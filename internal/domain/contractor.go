package domain

import (
	"regexp"
	"strings"
)

var (
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

// ValidPAN reports whether s is a 10-character PAN (AAAAA9999A).
func ValidPAN(s string) bool {
	return panPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// ValidGSTIN reports whether s is a 15-character GSTIN.
func ValidGSTIN(s string) bool {
	return gstinPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// Valid reports whether c is one of ContractorClasses.
func (c ContractorClass) Valid() bool {
	for _, k := range ContractorClasses {
		if k == c {
			return true
		}
	}
	return false
}

// Validate checks the contractor's identity and payment fields.
func (c *Contractor) Validate() error {
	var v []Violation
	if strings.TrimSpace(c.Name) == "" {
		v = append(v, Violation{Rule: "contractor.name", Field: "name", Message: "Name is required"})
	}
	if !c.Class.Valid() {
		v = append(v, Violation{Rule: "contractor.class", Field: "class", Message: "Class must be one of A, B, C, D, E"})
	}
	if !ValidPAN(c.PAN) {
		v = append(v, Violation{Rule: "contractor.pan", Field: "pan", Message: "PAN must be 10 characters in the form AAAAA9999A"})
	}
	if !ValidGSTIN(c.GSTIN) {
		v = append(v, Violation{Rule: "contractor.gstin", Field: "gstin", Message: "GSTIN must be a valid 15 character GSTIN"})
	}
	if strings.TrimSpace(c.AccountNumber) == "" {
		v = append(v, Violation{Rule: "contractor.account_number", Field: "account_number", Message: "Account number is required"})
	}
	if len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}
