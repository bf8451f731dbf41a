package works_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksbill/internal/domain"
	"worksbill/internal/works"
)

func sampleWorks() []domain.Work {
	return []domain.Work{
		{MajorHead: "PHE ", Scheme: "JJM", Workcode: "W-101", Nomenclature: "Pipeline Phase II", AllotAmount: decimal.NewFromInt(250000)},
		{MajorHead: "phe", Scheme: "jjm ", Workcode: "W-101", Nomenclature: "Overhead Tank", AllotAmount: decimal.NewFromInt(900000)},
		{MajorHead: "PHE", Scheme: "JJM", Workcode: "w-101 ", Nomenclature: "Pipeline Phase II", AllotAmount: decimal.NewFromInt(1)},
		{MajorHead: "PHE", Scheme: "JJM", Workcode: "W-099", Nomenclature: "Borewell"},
		{MajorHead: "PHE", Scheme: "Urban", Workcode: "W-500", Nomenclature: "Treatment Plant"},
	}
}

func TestWorkcodeOptions(t *testing.T) {
	codes, ok := works.WorkcodeOptions("phe", "JJM", sampleWorks())
	require.True(t, ok)
	assert.Equal(t, []string{"W-099", "W-101", "w-101"}, codes)
}

func TestWorkcodeOptions_Idempotent(t *testing.T) {
	rows := sampleWorks()
	first, _ := works.WorkcodeOptions("PHE", "JJM", rows)
	second, _ := works.WorkcodeOptions("PHE", "JJM", rows)
	assert.Equal(t, first, second)
}

func TestWorkcodeOptions_NoMatch(t *testing.T) {
	codes, ok := works.WorkcodeOptions("PHE", "Missing", sampleWorks())
	assert.False(t, ok)
	assert.Equal(t, []string{works.NoWorksFound}, codes)
}

func TestResolvePlanWork(t *testing.T) {
	res := works.ResolvePlanWork(" W-101", sampleWorks())

	require.True(t, res.Available)
	assert.Equal(t, []string{"Overhead Tank", "Pipeline Phase II"}, res.Nomenclatures)

	w, ok := res.Record("Pipeline Phase II")
	require.True(t, ok)
	// first matching row wins
	assert.True(t, decimal.NewFromInt(250000).Equal(w.AllotAmount))
}

func TestResolvePlanWork_NoMatch(t *testing.T) {
	res := works.ResolvePlanWork("W-404", sampleWorks())

	assert.False(t, res.Available)
	assert.Equal(t, []string{works.NoNomenclatureFound}, res.Nomenclatures)

	_, ok := res.Record(works.NoNomenclatureFound)
	assert.False(t, ok)
}

func TestResolvePlanWork_SentinelWorkcode(t *testing.T) {
	res := works.ResolvePlanWork(works.NoWorksFound, sampleWorks())
	assert.False(t, res.Available)
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, works.IsSentinel("No works found"))
	assert.True(t, works.IsSentinel(" No nomenclature found "))
	assert.False(t, works.IsSentinel("W-101"))
}
