package scaffold

import (
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
)

// walk visits every entry below root, directories before their contents.
func walk(bfs billy.Filesystem, root string, fn func(path string, info os.FileInfo) error) error {
	entries, err := bfs.ReadDir(root)
	if err != nil {
		return err
	}

	for _, info := range entries {
		p := path.Join(root, info.Name())
		if err := fn(p, info); err != nil {
			return err
		}
		if info.IsDir() {
			if err := walk(bfs, p, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
