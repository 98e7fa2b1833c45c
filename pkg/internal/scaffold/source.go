package scaffold

import (
	"os"

	git "github.com/go-git/go-git/v5"
	cp "github.com/otiai10/copy"
)

// sourceToDir makes an external template source available as a local
// directory under tmpDir. A path that exists locally is copied so rendering
// never reads the original; anything else is treated as a git URL and
// shallow cloned.
func sourceToDir(source string, tmpDir string) (string, error) {
	if _, err := os.Stat(source); err == nil {
		if err := cp.Copy(source, tmpDir); err != nil {
			return "", err
		}
		return tmpDir, nil
	}

	_, err := git.PlainClone(tmpDir, false, &git.CloneOptions{
		URL:   source,
		Depth: 1,
	})
	if err != nil {
		return "", err
	}
	return tmpDir, nil
}
