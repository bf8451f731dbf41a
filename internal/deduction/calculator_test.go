package deduction_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksbill/internal/deduction"
	"worksbill/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func defaultRates() deduction.Rates {
	return deduction.Rates{IncomeTax: d("2.24"), Deposit: d("10"), Cess: d("1")}
}

func TestCompute_JJM(t *testing.T) {
	res := deduction.Compute(deduction.Input{RestrictedTo: d("118000"), Rates: defaultRates(), Scheme: "JJM"})

	assert.True(t, res.GSTInclusive)
	assertDec(t, "100000", res.Basis, "basis")
	assertDec(t, "2240", res.IncomeTax, "income tax")
	assertDec(t, "10000", res.Deposit, "deposit")
	assertDec(t, "1000", res.Cess, "cess")
	assertDec(t, "0", res.CGST, "cgst")
	assertDec(t, "0", res.SGST, "sgst")
	assertDec(t, "13240", res.TotalDeduction, "total")
	assertDec(t, "104760", res.NetAmount, "net")
}

func TestCompute_NonJJM(t *testing.T) {
	res := deduction.Compute(deduction.Input{RestrictedTo: d("118000"), Rates: defaultRates(), Scheme: "PHE"})

	assert.False(t, res.GSTInclusive)
	assertDec(t, "118000", res.Basis, "basis")
	assertDec(t, "2643", res.IncomeTax, "income tax")
	assertDec(t, "11800", res.Deposit, "deposit")
	assertDec(t, "1180", res.Cess, "cess")
	assertDec(t, "15623", res.TotalDeduction, "total")
	assertDec(t, "103557", res.NetAmount, "net")
}

func TestCompute_NonJJMIgnoresCessAndGSTInNet(t *testing.T) {
	rates := deduction.Rates{IncomeTax: d("2"), Deposit: d("5"), Cess: d("1"), CGST: d("9"), SGST: d("9")}
	res := deduction.Compute(deduction.Input{RestrictedTo: d("500000"), Rates: rates, Scheme: "Urban"})

	assertDec(t, "45000", res.CGST, "cgst")
	assertDec(t, "45000", res.SGST, "sgst")
	assert.True(t, res.NetAmount.Equal(d("500000").Sub(res.IncomeTax).Sub(res.Deposit)))
	assertDec(t, "130000", res.TotalDeduction, "total")
}

func TestCompute_JJMSubtractsEveryComponent(t *testing.T) {
	rates := deduction.Rates{IncomeTax: d("2"), Deposit: d("10"), Cess: d("1"), CGST: d("1"), SGST: d("1")}
	res := deduction.Compute(deduction.Input{RestrictedTo: d("354000"), Rates: rates, Scheme: " jjm "})

	require.True(t, res.GSTInclusive)
	sum := res.IncomeTax.Add(res.Deposit).Add(res.Cess).Add(res.CGST).Add(res.SGST)
	assert.True(t, res.NetAmount.Equal(d("354000").Sub(sum)))
	assertDec(t, "6000", res.IncomeTax, "income tax")
	assertDec(t, "3000", res.CGST, "cgst")
}

func TestCompute_RoundsHalfAwayFromZero(t *testing.T) {
	// 50 * 1% = 0.5, 150 * 1% = 1.5, 250 * 1% = 2.5
	cases := map[string]string{"50": "1", "150": "2", "250": "3", "149": "1"}
	for amount, want := range cases {
		res := deduction.Compute(deduction.Input{
			RestrictedTo: d(amount),
			Rates:        deduction.Rates{IncomeTax: d("1")},
			Scheme:       "PHE",
		})
		assertDec(t, want, res.IncomeTax, "income tax on "+amount)
	}
}

func TestCompute_ZeroAmount(t *testing.T) {
	res := deduction.Compute(deduction.Input{RestrictedTo: decimal.Zero, Rates: defaultRates(), Scheme: "JJM"})
	assert.True(t, res.TotalDeduction.IsZero())
	assert.True(t, res.NetAmount.IsZero())
}

func TestCalculator_CustomInclusiveScheme(t *testing.T) {
	calc := deduction.NewCalculator("SBM", d("112"))

	assert.True(t, calc.GSTInclusive("sbm"))
	assert.False(t, calc.GSTInclusive("JJM"))

	res := calc.Compute(deduction.Input{RestrictedTo: d("112000"), Rates: defaultRates(), Scheme: "SBM"})
	assertDec(t, "100000", res.Basis, "basis")
	assertDec(t, "10000", res.Deposit, "deposit")
}

func TestNewCalculator_NonPositiveDivisor(t *testing.T) {
	calc := deduction.NewCalculator("JJM", decimal.Zero)
	res := calc.Compute(deduction.Input{RestrictedTo: d("118000"), Rates: defaultRates(), Scheme: "JJM"})
	assertDec(t, "100000", res.Basis, "basis")
}

func TestCessLimit(t *testing.T) {
	tests := []struct {
		name    string
		cessMax string
		want    string
	}{
		{"configured", "5", "5"},
		{"hundred", "100", "100"},
		{"zero_is_unset", "0", "100"},
		{"negative_is_unset", "-3", "100"},
		{"above_hundred_capped", "150", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDec(t, tt.want, deduction.CessLimit(d(tt.cessMax)), "cess limit")
		})
	}
}

func TestRates_WithoutGST(t *testing.T) {
	r := deduction.Rates{IncomeTax: d("2"), CGST: d("9"), SGST: d("9")}.WithoutGST()
	assert.True(t, r.CGST.IsZero())
	assert.True(t, r.SGST.IsZero())
	assertDec(t, "2", r.IncomeTax, "income tax")
}

func TestGSTApplicable(t *testing.T) {
	threshold := deduction.DefaultGSTThreshold
	at := &domain.Work{AllotAmount: d("250000")}
	below := &domain.Work{AllotAmount: d("249999.99")}

	assert.True(t, deduction.GSTApplicable(domain.BillTypePlan, at, threshold))
	assert.False(t, deduction.GSTApplicable(domain.BillTypePlan, below, threshold))
	assert.False(t, deduction.GSTApplicable(domain.BillTypeNonPlan, at, threshold))
	assert.False(t, deduction.GSTApplicable(domain.BillTypePlan, nil, threshold))
}
