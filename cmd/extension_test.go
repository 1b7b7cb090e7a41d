package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
)

func TestExtensionEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	store := filepath.Join(t.TempDir(), "book.csv")
	withFlag(t, &storeFile, store)
	withFlag(t, &currency, "XYZ")

	env := extensionEnv()

	for _, want := range []string{
		EnvStore + "=" + store,
		EnvCurrency + "=XYZ",
		EnvOutputDir + "=output",
		EnvVerbose + "=false",
	} {
		if !slices.Contains(env, want) {
			t.Errorf("extensionEnv() does not contain %q", want)
		}
	}
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script requires a POSIX shell")
	}
	t.Chdir(t.TempDir())
	bin := t.TempDir()
	script := "#!/bin/sh\necho \"$NOTES_STORE $NOTES_CURRENCY $1\" > \"$(dirname \"$0\")/out.txt\"\nexit 3\n"
	if err := os.WriteFile(filepath.Join(bin, "notes-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	withFlag(t, &storeFile, "book.csv")
	withFlag(t, &currency, "EUR")

	found, code := RunExtension("hello", []string{"world"})
	if !found {
		t.Fatal("RunExtension(hello) not found")
	}
	if code != 3 {
		t.Errorf("RunExtension(hello) exit code = %d, want 3", code)
	}
	out, err := os.ReadFile(filepath.Join(bin, "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(bytes.TrimSpace(out)), "book.csv EUR world"; got != want {
		t.Errorf("extension output = %q, want %q", got, want)
	}

	if found, _ := RunExtension("does-not-exist-"+strings.Repeat("x", 8), nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
