package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"NOTES_ENV", "NOTES_LOG_LEVEL", "NOTES_STORE", "NOTES_OUTPUT_DIR",
		"NOTES_LETTER_FORMAT", "NOTES_CURRENCY", "NOTES_FIRM", "NOTES_DUE_DAYS", "NOTES_DEFAULT_TERM"} {
		t.Setenv(k, "")
	}

	want := &Config{
		Env:          "development",
		LogLevel:     "warn",
		StorePath:    "investments.xlsx",
		OutputDir:    "output",
		LetterFormat: "pdf",
		Currency:     "USD",
		Firm:         "Your Investment Firm",
		DueDays:      7,
		DefaultTerm:  9,
	}
	if diff := cmp.Diff(want, Load()); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NOTES_STORE", "book.csv")
	t.Setenv("NOTES_DUE_DAYS", "14")
	t.Setenv("NOTES_DEFAULT_TERM", "twelve")
	t.Setenv("NOTES_CURRENCY", "EUR")

	c := Load()
	if c.StorePath != "book.csv" {
		t.Errorf("StorePath = %q, want %q", c.StorePath, "book.csv")
	}
	if c.DueDays != 14 {
		t.Errorf("DueDays = %d, want 14", c.DueDays)
	}
	if c.DefaultTerm != 9 {
		t.Errorf("DefaultTerm = %d, want the default 9 for an invalid value", c.DefaultTerm)
	}
	if c.Currency != "EUR" {
		t.Errorf("Currency = %q, want %q", c.Currency, "EUR")
	}
}
