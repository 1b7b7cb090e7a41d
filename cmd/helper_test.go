package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// withFlag overrides a global string flag for the duration of the test.
func withFlag(t *testing.T, p **string, value string) {
	t.Helper()
	old := *p
	*p = &value
	t.Cleanup(func() { *p = old })
}

// createTempStore writes a csv store and points the -store flag to it.
func createTempStore(t *testing.T, content string) string {
	t.Helper()
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "investments.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write store: %v", err)
	}
	withFlag(t, &storeFile, path)
	withFlag(t, &outputDir, filepath.Join(t.TempDir(), "letters"))
	return path
}

// run executes cmd with args and returns its status and standard output.
func run(t *testing.T, cmd subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse %v: %v", args, err)
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = w
	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()
	status := cmd.Execute(context.Background(), f)
	w.Close()
	os.Stdout = stdout
	return status, <-done
}

func readStore(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read store: %v", err)
	}
	return strings.ReplaceAll(string(b), "\r\n", "\n")
}
