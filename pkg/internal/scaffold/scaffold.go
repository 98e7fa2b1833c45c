// Package scaffold renders named template sets into a project directory.
// Template files and file paths are both expanded against the wizard's
// answers; a template set is staged fully in memory before anything is
// written to the target.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	log "github.com/sirupsen/logrus"
)

//go:embed all:templates
var builtinTemplates embed.FS

// Renderer materializes template sets from the built-in templates or from an
// external source directory.
type Renderer struct {
	source fs.FS
	tmpDir string
}

// NewRenderer returns a Renderer over the built-in template sets. A
// non-empty source names a local directory or a git URL holding replacement
// sets; git sources are checked out into a temporary directory released by
// Close.
func NewRenderer(source string) (*Renderer, error) {
	if source == "" {
		sub, err := fs.Sub(builtinTemplates, "templates")
		if err != nil {
			return nil, err
		}
		return &Renderer{source: sub}, nil
	}

	tmpDir, err := os.MkdirTemp("", "sindri")
	if err != nil {
		return nil, err
	}
	dir, err := sourceToDir(source, tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, err
	}
	return &Renderer{source: os.DirFS(dir), tmpDir: tmpDir}, nil
}

// Close removes any temporary template checkout.
func (r *Renderer) Close() error {
	if r.tmpDir == "" {
		return nil
	}
	return os.RemoveAll(r.tmpDir)
}

// Render expands every file in the named set and writes the result under
// targetDir. The set is staged in memory first, so a template error leaves
// the target untouched.
func (r *Renderer) Render(set string, targetDir string, data map[string]interface{}) error {
	if _, err := fs.Stat(r.source, set); err != nil {
		return fmt.Errorf("unknown template set %q", set)
	}
	setFS, err := fs.Sub(r.source, set)
	if err != nil {
		return err
	}

	staged, err := apply(setFS, data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return err
	}
	return copyAll(staged, osfs.New(targetDir))
}

// apply renders every path and text file in the set into a fresh in-memory
// filesystem. A .tmpl suffix keeps template sources out of the Go
// toolchain's way and is dropped here.
func apply(in fs.FS, data map[string]interface{}) (billy.Filesystem, error) {
	out := memfs.New()

	err := fs.WalkDir(in, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}

		tpath, err := render(path, data)
		if err != nil {
			return fmt.Errorf("cannot expand template path %s: %w", path, err)
		}
		tpath = strings.TrimSuffix(tpath, ".tmpl")

		if entry.IsDir() {
			return out.MkdirAll(tpath, 0755)
		}

		raw, err := fs.ReadFile(in, path)
		if err != nil {
			return err
		}

		content := raw
		if isText(raw) {
			rendered, err := render(string(raw), data)
			if err != nil {
				return fmt.Errorf("failed to substitute variables in %s: %w", path, err)
			}
			content = []byte(rendered)
		}

		file, err := out.OpenFile(tpath, os.O_CREATE|os.O_RDWR, 0644)
		if err != nil {
			return err
		}
		defer file.Close()
		_, err = file.Write(content)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// copyAll writes the staged tree onto the output filesystem, reporting each
// created file.
func copyAll(in billy.Filesystem, out billy.Filesystem) error {
	return walk(in, "/", func(path string, info os.FileInfo) error {
		if info.IsDir() {
			return out.MkdirAll(path, 0755)
		}

		src, err := in.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open staged file %s: %w", path, err)
		}
		defer src.Close()

		dst, err := out.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_TRUNC, info.Mode())
		if err != nil {
			return fmt.Errorf("failed to create file %s: %w", path, err)
		}
		defer dst.Close()

		if _, err := io.Copy(dst, src); err != nil {
			return fmt.Errorf("failed to write data to file %s: %w", path, err)
		}
		log.Infof("    create  %s", strings.TrimPrefix(path, "/"))
		return nil
	})
}

func render(text string, data map[string]interface{}) (string, error) {
	tpl, err := template.New("scaffold").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := tpl.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}

// isText reports whether the contents look like renderable text; anything
// else is copied through untouched.
func isText(raw []byte) bool {
	for m := mimetype.Detect(raw); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
