package initialize

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
)

func TestEnsureTargetDir(t *testing.T) {
	spec.Run(t, "EnsureTargetDir", testEnsureTargetDir, spec.Report(report.Terminal{}))
}

func testEnsureTargetDir(t *testing.T, when spec.G, it spec.S) {
	var prompter *scriptedPrompter

	it.Before(func() {
		prompter = &scriptedPrompter{}
	})

	when("the path does not exist", func() {
		it("creates it with missing parents and proceeds", func() {
			target := filepath.Join(t.TempDir(), "a", "b", "project")

			if err := ensureTargetDir(target, prompter); err != nil {
				t.Fatal(err)
			}
			info, err := os.Stat(target)
			if err != nil || !info.IsDir() {
				t.Errorf("expected %s to be a directory, got %v %v", target, info, err)
			}
			if len(prompter.asked) != 0 {
				t.Errorf("asked %v, want no confirmation", prompter.asked)
			}
		})
	})

	when("the path is a regular file", func() {
		it("aborts without asking", func() {
			target := filepath.Join(t.TempDir(), "occupied")
			if err := os.WriteFile(target, []byte("file"), 0644); err != nil {
				t.Fatal(err)
			}

			if err := ensureTargetDir(target, prompter); err == nil {
				t.Fatal("expected an error for a non-directory target")
			}
			if len(prompter.asked) != 0 {
				t.Errorf("asked %v, want no confirmation", prompter.asked)
			}
		})
	})

	when("the path is an empty directory", func() {
		it("proceeds silently", func() {
			target := t.TempDir()

			if err := ensureTargetDir(target, prompter); err != nil {
				t.Fatal(err)
			}
			if len(prompter.asked) != 0 {
				t.Errorf("asked %v, want no confirmation", prompter.asked)
			}
		})
	})

	when("the path is a non-empty directory", func() {
		var target string

		it.Before(func() {
			target = t.TempDir()
			if err := os.WriteFile(filepath.Join(target, "existing.txt"), []byte("keep"), 0644); err != nil {
				t.Fatal(err)
			}
		})

		it("asks for confirmation and aborts on decline", func() {
			prompter.confirms = []bool{false}

			if err := ensureTargetDir(target, prompter); !errors.Is(err, ErrAborted) {
				t.Fatalf("err = %v, want ErrAborted", err)
			}
			if len(prompter.asked) != 1 {
				t.Errorf("asked %v, want exactly one confirmation", prompter.asked)
			}
		})

		it("proceeds on acceptance", func() {
			prompter.confirms = []bool{true}

			if err := ensureTargetDir(target, prompter); err != nil {
				t.Fatal(err)
			}
		})
	})
}
