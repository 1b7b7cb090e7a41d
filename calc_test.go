package notes

import (
	"errors"
	"testing"

	"github.com/etnz/notes/date"
	"github.com/shopspring/decimal"
)

func TestMaturityDate(t *testing.T) {
	tests := []struct {
		origin string
		months int
		want   string
	}{
		{"2024-01-01", 9, "2024-09-27"},
		{"2024-01-01", 0, "2024-01-01"},
		{"2024-01-31", 1, "2024-03-01"},
		{"2023-12-15", 12, "2024-12-09"},
		{"2024-02-29", 60, "2029-02-02"},
	}
	for _, test := range tests {
		got := MaturityDate(date.MustParse(test.origin), test.months)
		if got.String() != test.want {
			t.Errorf("MaturityDate(%s, %d) = %s, want %s", test.origin, test.months, got, test.want)
		}
	}
}

func TestParseMaturityDate(t *testing.T) {
	got, err := ParseMaturityDate("01/01/2024", 9)
	if err != nil {
		t.Fatalf("ParseMaturityDate() error = %v", err)
	}
	if got.String() != "2024-09-27" {
		t.Errorf("ParseMaturityDate() = %s, want 2024-09-27", got)
	}

	_, err = ParseMaturityDate("not a date", 9)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Column != ColOrigin {
		t.Errorf("ParseMaturityDate(not a date) error = %v, want a ParseError on %s", err, ColOrigin)
	}
}

func TestMaturityIsThirtyDaysPerMonth(t *testing.T) {
	origin := date.MustParse("2024-03-15")
	for m := 1; m <= MaxTerm; m++ {
		got := MaturityDate(origin, m).Sub(origin)
		if got != 30*m {
			t.Errorf("MaturityDate(%s, %d) is %d days after origin, want %d", origin, m, got, 30*m)
		}
	}
}

func TestPayoff(t *testing.T) {
	tests := []struct {
		principal, rate string
		months          int
		want            string
	}{
		{"1000", "0.07", 9, "1052.5"},
		{"1000", "0", 12, "1000"},
		{"0", "0.07", 12, "0"},
		{"500", "0.05", 12, "525"},
		{"1234.56", "0.045", 7, "1266.97"}, // 1266.9672
		{"100", "0.1", 1, "100.83"},        // 100.8333...
		{"100.005", "0", 1, "100.01"},      // half away from zero
		{"1052.5", "0.07", 9, "1107.76"},
	}
	for _, test := range tests {
		got := Payoff(D(test.principal), D(test.rate), test.months)
		if !got.Equal(D(test.want)) {
			t.Errorf("Payoff(%s, %s, %d) = %s, want %s", test.principal, test.rate, test.months, got, test.want)
		}
	}
}

func TestPayoffProperties(t *testing.T) {
	principal := D("2500")
	for m := 1; m <= MaxTerm; m++ {
		if got := Payoff(principal, decimal.Zero, m); !got.Equal(principal) {
			t.Errorf("Payoff(%s, 0, %d) = %s, want the principal", principal, m, got)
		}
		if got := Payoff(decimal.Zero, D("0.07"), m); !got.IsZero() {
			t.Errorf("Payoff(0, 0.07, %d) = %s, want 0", m, got)
		}
		if m > 1 {
			before := Payoff(principal, D("0.07"), m-1)
			if got := Payoff(principal, D("0.07"), m); got.LessThan(before) {
				t.Errorf("Payoff(%d months) = %s is less than Payoff(%d months) = %s", m, got, m-1, before)
			}
		}
	}
}

func TestParsePayoff(t *testing.T) {
	if got := ParsePayoff(" 1000 ", "0.07", 9); !got.Valid || !got.Decimal.Equal(D("1052.5")) {
		t.Errorf("ParsePayoff(1000, 0.07, 9) = %v, want 1052.5", got)
	}
	for _, test := range []struct{ principal, rate string }{
		{"abc", "0.07"},
		{"1000", "seven"},
		{"", "0.07"},
	} {
		if got := ParsePayoff(test.principal, test.rate, 9); got.Valid {
			t.Errorf("ParsePayoff(%q, %q, 9) = %v, want null", test.principal, test.rate, got.Decimal)
		}
	}
}

func TestCompute(t *testing.T) {
	r := note("John", "Doe", "Alpha", "2024-01-01", 9, "1000", "0.07")
	if got := r.Maturity.String(); got != "2024-09-27" {
		t.Errorf("Maturity = %s, want 2024-09-27", got)
	}
	if !r.Payoff.Valid || !r.Payoff.Decimal.Equal(D("1052.5")) {
		t.Errorf("Payoff = %v, want 1052.5", r.Payoff)
	}

	// Derived values become null when an input is missing, stale values
	// are cleared.
	r.SetCell(ColPrincipal, "a lot")
	r.Compute()
	if r.Payoff.Valid {
		t.Errorf("Payoff = %s, want null", r.Payoff.Decimal)
	}
	if got := r.Cell(ColPayoff); got != "" {
		t.Errorf("Cell(Payoff) = %q, want empty", got)
	}

	r.Origin = date.Date{}
	r.Compute()
	if !r.Maturity.IsZero() {
		t.Errorf("Maturity = %s, want zero", r.Maturity)
	}
}
