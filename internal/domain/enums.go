package domain

import "strings"

// BillType distinguishes Plan bills (charged to a sanctioned work) from Non Plan bills
// (charged directly to a budget head).
type BillType string

const (
	BillTypePlan    BillType = "Plan"
	BillTypeNonPlan BillType = "Non Plan"
)

// Valid reports whether t is a known bill type.
func (t BillType) Valid() bool {
	return t == BillTypePlan || t == BillTypeNonPlan
}

// SchemeLabel returns the name of the second budget level for the bill type.
func (t BillType) SchemeLabel() string {
	if t == BillTypeNonPlan {
		return "Detailed Head"
	}
	return "Scheme"
}

// ParseBillType accepts "Plan", "Non Plan", "NonPlan" and "non-plan" in any case.
func ParseBillType(s string) (BillType, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	switch norm {
	case "plan":
		return BillTypePlan, true
	case "nonplan":
		return BillTypeNonPlan, true
	}
	return "", false
}

// ContractorClass is the registration class of a contractor.
type ContractorClass string

const (
	ContractorClassA ContractorClass = "A"
	ContractorClassB ContractorClass = "B"
	ContractorClassC ContractorClass = "C"
	ContractorClassD ContractorClass = "D"
	ContractorClassE ContractorClass = "E"
)

// ContractorClasses lists the accepted contractor classes.
var ContractorClasses = []ContractorClass{
	ContractorClassA, ContractorClassB, ContractorClassC, ContractorClassD, ContractorClassE,
}

// BillStatus represents the lifecycle of a bill.
type BillStatus string

const (
	BillStatusPending BillStatus = "Pending"
)

// CCBillOrdinals are the running-bill ordinals a bill may carry.
var CCBillOrdinals = []string{
	"1st", "2nd", "3rd", "4th", "5th", "6th",
	"7th", "8th", "9th", "10th", "11th", "12th",
}

// ValidCCBill reports whether s is one of CCBillOrdinals.
func ValidCCBill(s string) bool {
	for _, o := range CCBillOrdinals {
		if o == s {
			return true
		}
	}
	return false
}

// ExpenditurePolicy controls whether creating a bill increments the work's expenditure.
type ExpenditurePolicy string

const (
	ExpenditureSync ExpenditurePolicy = "sync"
	ExpenditureNone ExpenditurePolicy = "none"
)
