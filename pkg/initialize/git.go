package initialize

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ravikantcool2024/sindri/pkg/internal/prompt"
)

const initialCommitMessage = "Initial commit."

// redactedOutput replaces captured subprocess buffers before they reach a
// log line; they can be arbitrarily large.
const redactedOutput = "<output elided>"

// CommandResult holds the captured outcome of one subprocess invocation.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes one external command with an optional working
// directory and captures its output. Run returns an error only when the
// command could not be executed at all; a process that runs and exits
// non-zero is reported through ExitCode.
type CommandRunner interface {
	Run(name string, args []string, dir string) (CommandResult, error)
}

type execRunner struct{}

func (execRunner) Run(name string, args []string, dir string) (CommandResult, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}

// bootstrapRepository optionally turns the scaffolded directory into a git
// repository with a single initial commit. Every failure here is contained:
// the scaffolded project stays on disk and the run still succeeds.
func bootstrapRepository(targetDir string, p prompt.Prompter, runner CommandRunner) {
	if _, err := runner.Run("git", []string{"version"}, ""); err != nil {
		log.Debug("git is not installed, skipping repository creation")
		return
	}

	// An existing repository is left alone rather than re-initialized.
	if info, err := os.Stat(filepath.Join(targetDir, ".git")); err == nil && info.IsDir() {
		return
	}

	ok, err := p.Confirm("Initialize a git repository?", true)
	if err != nil || !ok {
		return
	}

	steps := [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", initialCommitMessage},
	}
	for _, args := range steps {
		result, err := runner.Run("git", args, targetDir)
		if err == nil && result.ExitCode == 0 {
			continue
		}

		diag := redact(result)
		entry := log.WithFields(log.Fields{
			"command":  "git " + strings.Join(args, " "),
			"exitCode": result.ExitCode,
			"stdout":   diag.Stdout,
			"stderr":   diag.Stderr,
		})
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Error("failed to create a git repository, continuing without one")
		return
	}
}

// redact replaces every captured output buffer in a subprocess diagnostic
// with a fixed placeholder. Applied uniformly, not per field.
func redact(result CommandResult) CommandResult {
	result.Stdout = redactedOutput
	result.Stderr = redactedOutput
	return result
}
