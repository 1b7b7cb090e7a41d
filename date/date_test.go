package date

import (
	"encoding/json"
	"testing"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{input: "2024-01-01", want: New(2024, 1, 1)},
		{input: "2024-1-5", want: New(2024, 1, 5)},
		{input: "01/05/2024", want: New(2024, 1, 5)},
		{input: "1/5/2024", want: New(2024, 1, 5)},
		{input: " 2024-02-29 ", want: New(2024, 2, 29)},
		{input: "2023-02-29", wantErr: true},
		{input: "05.01.2024", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestAddAndSub(t *testing.T) {
	origin := New(2024, 1, 1)
	got := origin.Add(270)
	if want := New(2024, 9, 27); got != want {
		t.Errorf("Add(270) = %v, want %v", got, want)
	}
	if n := got.Sub(origin); n != 270 {
		t.Errorf("Sub() = %d, want 270", n)
	}
	if n := origin.Sub(got); n != -270 {
		t.Errorf("Sub() = %d, want -270", n)
	}
}

func TestParseRelative(t *testing.T) {
	today := New(2025, 3, 15)
	testCases := []struct {
		input string
		want  Date
	}{
		{"0d", today},
		{"-7d", New(2025, 3, 8)},
		{"+2w", New(2025, 3, 29)},
		{"+1m", New(2025, 4, 15)},
		{"-1y", New(2024, 3, 15)},
		{"2025-01-02", New(2025, 1, 2)},
		{"12/31/2025", New(2025, 12, 31)},
	}
	for _, tc := range testCases {
		got, err := ParseRelative(tc.input, today)
		if err != nil {
			t.Errorf("ParseRelative(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRelative(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
	if _, err := ParseRelative("+3x", today); err == nil {
		t.Errorf("ParseRelative(%q) expected an error", "+3x")
	}
}

func TestZeroDate(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Errorf("zero Date is not IsZero()")
	}
	if d.String() != "" {
		t.Errorf("zero Date String() = %q, want empty", d.String())
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal(%s) error: %v", b, err)
	}
	if !back.IsZero() {
		t.Errorf("round trip of zero date = %v", back)
	}
}
