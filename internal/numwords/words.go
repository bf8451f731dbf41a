// Package numwords renders amounts as English words using the Indian numbering
// system (thousand, lakh, crore).
package numwords

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ones = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var scales = []struct {
	value int64
	name  string
}{
	{10000000, "crore"},
	{100000, "lakh"},
	{1000, "thousand"},
}

// Cardinal returns the lower-case words for n, e.g. 104760 →
// "one lakh, four thousand, seven hundred and sixty".
func Cardinal(n int64) string {
	if n < 0 {
		return "minus " + Cardinal(-n)
	}
	return cardinal(n)
}

func cardinal(n int64) string {
	switch {
	case n < 20:
		return ones[n]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + "-" + ones[n%10]
	case n < 1000:
		head := ones[n/100] + " hundred"
		if n%100 == 0 {
			return head
		}
		return head + " and " + cardinal(n%100)
	}

	for _, s := range scales {
		if n < s.value {
			continue
		}
		head := cardinal(n/s.value) + " " + s.name
		rest := n % s.value
		switch {
		case rest == 0:
			return head
		case rest < 100:
			return head + " and " + cardinal(rest)
		default:
			return head + ", " + cardinal(rest)
		}
	}
	return ""
}

// Amount renders amount in title case. Paise, if any, are read digit by digit after "point".
func Amount(amount decimal.Decimal) string {
	return cases.Title(language.English).String(amountWords(amount))
}

func amountWords(amount decimal.Decimal) string {
	amount = amount.Round(2)
	neg := amount.IsNegative()
	amount = amount.Abs()

	whole := amount.Truncate(0)
	words := cardinal(whole.IntPart())

	frac := strings.TrimRight(strings.TrimPrefix(amount.Sub(whole).StringFixed(2), "0."), "0")
	if frac != "" {
		digits := make([]string, 0, len(frac))
		for _, r := range frac {
			digits = append(digits, ones[r-'0'])
		}
		words += " point " + strings.Join(digits, " ")
	}

	if neg {
		return "minus " + words
	}
	return words
}
