package initialize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestBootstrapRepository(t *testing.T) {
	spec.Run(t, "BootstrapRepository", testBootstrapRepository, spec.Report(report.Terminal{}))
}

func testBootstrapRepository(t *testing.T, when spec.G, it spec.S) {
	var (
		targetDir string
		prompter  *scriptedPrompter
		runner    *scriptedRunner
	)

	it.Before(func() {
		targetDir = t.TempDir()
		prompter = &scriptedPrompter{}
		runner = &scriptedRunner{}
	})

	when("git is not installed", func() {
		it("skips without prompting", func() {
			runner.missing = true

			bootstrapRepository(targetDir, prompter, runner)

			if len(runner.calls) != 1 {
				t.Errorf("calls = %v, want only the probe", runner.calls)
			}
			if len(prompter.asked) != 0 {
				t.Errorf("asked %v, want no confirmation", prompter.asked)
			}
		})
	})

	when("the target already holds a repository", func() {
		it("skips silently", func() {
			if err := os.Mkdir(filepath.Join(targetDir, ".git"), 0755); err != nil {
				t.Fatal(err)
			}

			bootstrapRepository(targetDir, prompter, runner)

			if len(runner.calls) != 1 {
				t.Errorf("calls = %v, want only the probe", runner.calls)
			}
			if len(prompter.asked) != 0 {
				t.Errorf("asked %v, want no confirmation", prompter.asked)
			}
		})
	})

	when("the confirmation is declined", func() {
		it("skips the bootstrap", func() {
			prompter.confirms = []bool{false}

			bootstrapRepository(targetDir, prompter, runner)

			if len(runner.calls) != 1 {
				t.Errorf("calls = %v, want only the probe", runner.calls)
			}
		})
	})

	when("the bootstrap is accepted", func() {
		it("runs init, add and commit in the target directory", func() {
			bootstrapRepository(targetDir, prompter, runner)

			if len(runner.calls) != 4 {
				t.Fatalf("calls = %v, want probe plus three steps", runner.calls)
			}
			if runner.calls[3][len(runner.calls[3])-1] != initialCommitMessage {
				t.Errorf("commit message = %q, want %q", runner.calls[3][len(runner.calls[3])-1], initialCommitMessage)
			}
			for _, dir := range runner.dirs[1:] {
				if dir != targetDir {
					t.Errorf("step ran in %q, want %q", dir, targetDir)
				}
			}
		})
	})

	when("a bootstrap step fails", func() {
		it("logs a redacted diagnostic at error level and stops", func() {
			hook := logtest.NewGlobal()
			defer hook.Reset()
			runner.failOn = "add"

			bootstrapRepository(targetDir, prompter, runner)

			// probe, init, add; the commit is never attempted
			if len(runner.calls) != 3 {
				t.Fatalf("calls = %v, want the flow to stop after the failed step", runner.calls)
			}

			entry := hook.LastEntry()
			if entry == nil {
				t.Fatal("expected a log entry")
			}
			if entry.Level != log.ErrorLevel {
				t.Errorf("level = %v, want error", entry.Level)
			}
			if entry.Data["stdout"] != redactedOutput || entry.Data["stderr"] != redactedOutput {
				t.Errorf("diagnostic buffers were not redacted: %v", entry.Data)
			}
		})
	})

	when("redacting a diagnostic", func() {
		it("replaces every captured buffer with the placeholder", func() {
			result := redact(CommandResult{Stdout: "megabytes of output", Stderr: "more megabytes", ExitCode: 128})

			if result.Stdout != redactedOutput || result.Stderr != redactedOutput {
				t.Errorf("redact left buffers in place: %+v", result)
			}
			if result.ExitCode != 128 {
				t.Errorf("redact must keep the exit indication, got %d", result.ExitCode)
			}
		})
	})
}
