// Package budget indexes budget rows into the Major Head → Scheme/Detailed Head
// selection hierarchy used when preparing a bill.
package budget

import (
	"sort"
	"strings"

	"worksbill/internal/domain"
)

// Options is the selectable budget hierarchy for one bill type.
type Options struct {
	BillType           domain.BillType     `json:"bill_type"`
	SchemeLabel        string              `json:"scheme_label"`
	MajorHeads         []string            `json:"major_heads"`
	SchemesByMajorHead map[string][]string `json:"schemes_by_major_head"`
}

// Schemes returns the scheme options for majorHead, matched case-insensitively.
func (o *Options) Schemes(majorHead string) []string {
	for mh, schemes := range o.SchemesByMajorHead {
		if domain.SameKey(mh, majorHead) {
			return schemes
		}
	}
	return []string{}
}

// SourceRows picks the budget table for the bill type.
func SourceRows(billType domain.BillType, planRows, npRows []domain.BudgetEntry) []domain.BudgetEntry {
	if billType == domain.BillTypeNonPlan {
		return npRows
	}
	return planRows
}

// Index builds the selection options for billType from the plan and non-plan budget tables.
func Index(billType domain.BillType, planRows, npRows []domain.BudgetEntry) *Options {
	rows := SourceRows(billType, planRows, npRows)

	opts := &Options{
		BillType:           billType,
		SchemeLabel:        billType.SchemeLabel(),
		MajorHeads:         distinctSorted(rows, func(e *domain.BudgetEntry) string { return e.MajorHead }),
		SchemesByMajorHead: make(map[string][]string),
	}
	for _, mh := range opts.MajorHeads {
		opts.SchemesByMajorHead[mh] = SchemesFor(rows, mh)
	}
	return opts
}

// SchemesFor returns the sorted distinct schemes whose major head matches majorHead.
func SchemesFor(rows []domain.BudgetEntry, majorHead string) []string {
	var matched []domain.BudgetEntry
	for i := range rows {
		if domain.SameKey(rows[i].MajorHead, majorHead) {
			matched = append(matched, rows[i])
		}
	}
	return distinctSorted(matched, func(e *domain.BudgetEntry) string { return e.Scheme })
}

// FindEntry returns the budget row matching majorHead and scheme, or false if none does.
func FindEntry(rows []domain.BudgetEntry, majorHead, scheme string) (*domain.BudgetEntry, bool) {
	for i := range rows {
		if domain.SameKey(rows[i].MajorHead, majorHead) && domain.SameKey(rows[i].Scheme, scheme) {
			return &rows[i], true
		}
	}
	return nil, false
}

func distinctSorted(rows []domain.BudgetEntry, field func(*domain.BudgetEntry) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for i := range rows {
		v := strings.TrimSpace(field(&rows[i]))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
