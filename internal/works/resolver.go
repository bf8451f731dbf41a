// Package works resolves sanctioned-work records for a budget selection.
package works

import (
	"sort"
	"strings"

	"worksbill/internal/domain"
)

// Sentinel option values shown when a lookup matches nothing. They are not valid selections.
const (
	NoWorksFound        = "No works found"
	NoNomenclatureFound = "No nomenclature found"
)

// IsSentinel reports whether s is one of the "not found" placeholder options.
func IsSentinel(s string) bool {
	s = strings.TrimSpace(s)
	return s == NoWorksFound || s == NoNomenclatureFound
}

// Resolution lists the nomenclatures sanctioned under one workcode.
type Resolution struct {
	Workcode      string                 `json:"workcode"`
	Nomenclatures []string               `json:"nomenclatures"`
	Records       map[string]domain.Work `json:"-"`
	Available     bool                   `json:"available"`
}

// Record returns the work record for nomenclature. Sentinels never resolve.
func (r *Resolution) Record(nomenclature string) (*domain.Work, bool) {
	if !r.Available || IsSentinel(nomenclature) {
		return nil, false
	}
	if w, ok := r.Records[strings.TrimSpace(nomenclature)]; ok {
		return &w, true
	}
	return nil, false
}

// ResolvePlanWork filters rows to workcode and indexes them by nomenclature.
// When two rows share a nomenclature the first one wins.
func ResolvePlanWork(workcode string, rows []domain.Work) *Resolution {
	res := &Resolution{
		Workcode: strings.TrimSpace(workcode),
		Records:  make(map[string]domain.Work),
	}
	if res.Workcode == "" || IsSentinel(res.Workcode) {
		res.Nomenclatures = []string{NoNomenclatureFound}
		return res
	}

	for i := range rows {
		if !domain.SameKey(rows[i].Workcode, workcode) {
			continue
		}
		n := strings.TrimSpace(rows[i].Nomenclature)
		if n == "" {
			continue
		}
		if _, seen := res.Records[n]; seen {
			continue
		}
		res.Records[n] = rows[i]
		res.Nomenclatures = append(res.Nomenclatures, n)
	}

	if len(res.Nomenclatures) == 0 {
		res.Nomenclatures = []string{NoNomenclatureFound}
		return res
	}
	sort.Strings(res.Nomenclatures)
	res.Available = true
	return res
}

// WorkcodeOptions returns the sorted distinct workcodes under a major head and scheme.
// When nothing matches it returns the NoWorksFound sentinel and false.
func WorkcodeOptions(majorHead, scheme string, rows []domain.Work) ([]string, bool) {
	seen := make(map[string]bool)
	var codes []string
	for i := range rows {
		w := &rows[i]
		if !domain.SameKey(w.MajorHead, majorHead) || !domain.SameKey(w.Scheme, scheme) {
			continue
		}
		code := strings.TrimSpace(w.Workcode)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return []string{NoWorksFound}, false
	}
	sort.Strings(codes)
	return codes, true
}
