package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/etnz/notes/logger"
)

const (
	EnvStore     = "NOTES_STORE"
	EnvOutputDir = "NOTES_OUTPUT_DIR"
	EnvCurrency  = "NOTES_CURRENCY"
	EnvVerbose   = "NOTES_VERBOSE"
)

// extensionEnv returns the environment passed to extensions: the current
// one plus the resolved global settings.
func extensionEnv() []string {
	cfg := settings()
	env := os.Environ() // Start with existing environment variables
	env = append(env, EnvStore+"="+cfg.StorePath)
	env = append(env, EnvOutputDir+"="+cfg.OutputDir)
	env = append(env, EnvCurrency+"="+cfg.Currency)
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
	return env
}

// RunExtension attempts to find and execute an external notes-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "notes-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Get().Debugw("extension not found", "command", externalCmdName, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0
}
