package layout

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestAmount(t *testing.T) {
	tests := []struct {
		qty, rate, want string
	}{
		{"10", "25.5", "255.00"},
		{"2.5", "100", "250.00"},
		{"0", "480", "0.00"},
		{"1.333", "3", "4.00"},
		{"0.1", "0.2", "0.02"},
	}
	for _, tt := range tests {
		if got := Amount(dec(t, tt.qty), dec(t, tt.rate)); got != tt.want {
			t.Errorf("Amount(%s, %s) = %q, want %q", tt.qty, tt.rate, got, tt.want)
		}
	}
}

func TestSumAmounts(t *testing.T) {
	if got := SumAmounts(nil); got != "0.00" {
		t.Errorf("empty sum = %q, want 0.00", got)
	}
	pairs := [][2]decimal.Decimal{
		{dec(t, "10"), dec(t, "25.5")},
		{dec(t, "2"), dec(t, "0.25")},
	}
	if got := SumAmounts(pairs); got != "255.50" {
		t.Errorf("sum = %q, want 255.50", got)
	}
}
