package layout

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	wordOnes = []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven",
		"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
		"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
	}
	wordTens = []string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
		"eighty", "ninety",
	}
	wordScales = []struct {
		value int64
		name  string
	}{
		{1_000_000_000, "billion"},
		{1_000_000, "million"},
		{1_000, "thousand"},
	}
)

// NumberToWords spells a non-negative integer in English, hyphenating
// compound tens ("fifty-five").
func NumberToWords(n int64) string {
	if n < 20 {
		return wordOnes[n]
	}
	var parts []string
	for _, scale := range wordScales {
		if n >= scale.value {
			parts = append(parts, NumberToWords(n/scale.value), scale.name)
			n %= scale.value
		}
	}
	if n >= 100 {
		parts = append(parts, wordOnes[n/100], "hundred")
		n %= 100
	}
	switch {
	case n == 0 && len(parts) > 0:
	case n < 20:
		parts = append(parts, wordOnes[n])
	default:
		word := wordTens[n/10]
		if n%10 != 0 {
			word += "-" + wordOnes[n%10]
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, " ")
}

// AmountInWords spells a monetary total the way the purchase-order view
// does: pascal-cased whole-dollar words, an AndXCents run when cents are
// present, and a trailing " Dollars".
func AmountInWords(total decimal.Decimal) string {
	dollars := total.IntPart()
	cents := total.Sub(decimal.NewFromInt(dollars)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	out := pascalCase(NumberToWords(dollars))
	if cents > 0 {
		out += "And" + NumberToWords(cents) + "Cents"
	}
	return out + " Dollars"
}

func pascalCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, "")
}
