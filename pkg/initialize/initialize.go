// Package initialize implements the interactive wizard behind `sindri init`.
// It asks a short series of validated questions about a new circuit project,
// scaffolds the matching template sets into a target directory and
// optionally creates a git repository there.
package initialize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/ravikantcool2024/sindri/pkg/internal/prompt"
	"github.com/ravikantcool2024/sindri/pkg/internal/scaffold"
)

// commonTemplateSet is rendered for every project kind, before the
// kind-specific set.
const commonTemplateSet = "common"

// placeholderFile keeps otherwise-empty template directories trackable and
// is removed from the scaffolded project.
const placeholderFile = ".gitkeep"

var (
	// ErrAborted is returned when the user declines a confirmation that
	// gates the rest of the run.
	ErrAborted = errors.New("aborted")

	// ErrUnsupportedKind is returned when the chosen project kind cannot be
	// scaffolded by this release.
	ErrUnsupportedKind = errors.New("not yet supported")
)

// Renderer materializes one named template set into the target directory.
type Renderer interface {
	Render(set string, targetDir string, data map[string]interface{}) error
}

// Initializer carries the configuration for one `init` run.
type Initializer struct {
	Presets        map[string]string
	TemplateSource string
	Prompter       prompt.Prompter
	Runner         CommandRunner
	Renderer       Renderer
}

type Option func(*Initializer)

// WithPresets supplies preset answers keyed by field name; preset questions
// are skipped in prompts.
func WithPresets(presets map[string]string) Option {
	return func(i *Initializer) {
		i.Presets = presets
	}
}

// WithTemplateSource scaffolds from a local directory or git URL instead of
// the built-in template sets.
func WithTemplateSource(source string) Option {
	return func(i *Initializer) {
		i.TemplateSource = source
	}
}

func WithPrompter(p prompt.Prompter) Option {
	return func(i *Initializer) {
		i.Prompter = p
	}
}

func WithRunner(r CommandRunner) Option {
	return func(i *Initializer) {
		i.Runner = r
	}
}

func WithRenderer(r Renderer) Option {
	return func(i *Initializer) {
		i.Renderer = r
	}
}

// NewInitializer creates an Initializer with the given options.
func NewInitializer(opts ...Option) Initializer {
	i := Initializer{
		Presets:  map[string]string{},
		Prompter: prompt.NewSurvey(),
		Runner:   execRunner{},
	}

	for _, opt := range opts {
		opt(&i)
	}

	return i
}

// Run drives the whole flow: directory checks, questions, scaffolding and
// the optional repository bootstrap. Scaffolded files are never rolled back
// once written.
func (i Initializer) Run(targetDir string) error {
	if err := ensureTargetDir(targetDir, i.Prompter); err != nil {
		return err
	}

	ctx, err := i.askQuestions(targetDir, i.Prompter)
	if err != nil {
		return err
	}

	renderer := i.Renderer
	if renderer == nil {
		r, err := scaffold.NewRenderer(i.TemplateSource)
		if err != nil {
			return err
		}
		defer r.Close()
		renderer = r
	}

	data := ctx.TemplateData()
	for _, set := range []string{commonTemplateSet, string(ctx.Kind)} {
		if err := renderer.Render(set, targetDir, data); err != nil {
			return fmt.Errorf("failed to scaffold %s templates: %w", set, err)
		}
	}

	if err := os.Remove(filepath.Join(targetDir, placeholderFile)); err != nil && !os.IsNotExist(err) {
		return err
	}

	bootstrapRepository(targetDir, i.Prompter, i.Runner)

	log.Infof("Project scaffolded in %s, run `cd %s` to get started", targetDir, targetDir)
	return nil
}
