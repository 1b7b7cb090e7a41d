package notes

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1052.5", "$1,052.50"},
		{"0", "$0.00"},
		{"1234567.891", "$1,234,567.89"},
		{"0.005", "$0.01"},
	}
	for _, test := range tests {
		if got := FormatMoney(D(test.amount), "USD"); got != test.want {
			t.Errorf("FormatMoney(%s, USD) = %q, want %q", test.amount, got, test.want)
		}
	}
	if got := FormatMoney(D("10"), ""); got != "$10.00" {
		t.Errorf("FormatMoney(10, \"\") = %q, want the default currency", got)
	}
}

func TestFormatNull(t *testing.T) {
	if got := FormatNullMoney(decimal.NullDecimal{}, "USD"); got != "n/a" {
		t.Errorf("FormatNullMoney(null) = %q, want n/a", got)
	}
	if got := FormatRate(ND("0.07")); got != "7%" {
		t.Errorf("FormatRate(0.07) = %q, want 7%%", got)
	}
	if got := FormatRate(ND("0.0525")); got != "5.25%" {
		t.Errorf("FormatRate(0.0525) = %q, want 5.25%%", got)
	}
	if got := FormatRate(decimal.NullDecimal{}); got != "n/a" {
		t.Errorf("FormatRate(null) = %q, want n/a", got)
	}
}
