package initialize

import (
	"fmt"
	"os"

	"github.com/ravikantcool2024/sindri/pkg/internal/prompt"
)

// ensureTargetDir applies the directory safety rules before any question is
// asked: a missing path is created, a non-directory path aborts the run, and
// a non-empty directory needs explicit confirmation before files in it may
// be overwritten.
func ensureTargetDir(targetDir string, p prompt.Prompter) error {
	info, err := os.Stat(targetDir)
	if os.IsNotExist(err) {
		return os.MkdirAll(targetDir, 0755)
	}
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%s already exists and is not a directory", targetDir)
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	ok, err := p.Confirm(fmt.Sprintf("%s is not empty, scaffolding will overwrite existing files, continue?", targetDir), false)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	return nil
}
