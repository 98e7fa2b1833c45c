package initialize

import (
	"fmt"
	"strings"

	"github.com/ravikantcool2024/sindri/pkg/internal/prompt"
)

// Preset field names accepted in a defaults file.
const (
	fieldName          = "name"
	fieldCircuitType   = "circuitType"
	fieldPackageName   = "packageName"
	fieldProvingScheme = "provingScheme"
	fieldCurve         = "curve"
)

var (
	provingSchemes = []string{"groth16"}
	curves         = []string{"bn254", "bls12-377", "bls12-381", "bls24-315", "bw6-633", "bw6-761"}
)

// askQuestions runs the wizard and returns the finished context. Questions
// are strictly sequential; each default is computed from answers that are
// already fixed. Preset answers skip their question but are validated the
// same way.
func (i Initializer) askQuestions(targetDir string, p prompt.Prompter) (Context, error) {
	var ctx Context

	name, err := i.askText(p, "Project name:", DefaultProjectName(targetDir), fieldName, ValidateProjectName)
	if err != nil {
		return ctx, err
	}
	ctx.ProjectName = name

	kindChoices := make([]string, 0, len(Kinds))
	for _, k := range Kinds {
		kindChoices = append(kindChoices, string(k))
	}
	kind, err := i.askChoice(p, "Proving framework:", kindChoices, string(KindGnark), fieldCircuitType)
	if err != nil {
		return ctx, err
	}
	ctx.Kind = ProjectKind(kind)

	if !ctx.Kind.Supported() {
		return ctx, fmt.Errorf("%s circuits are %w", ctx.Kind, ErrUnsupportedKind)
	}

	pkg, err := i.askText(p, "Gnark package name:", DefaultPackageName(ctx.ProjectName), fieldPackageName, ValidatePackageName)
	if err != nil {
		return ctx, err
	}
	ctx.PackageName = pkg

	scheme, err := i.askChoice(p, "Proving scheme:", provingSchemes, provingSchemes[0], fieldProvingScheme)
	if err != nil {
		return ctx, err
	}
	ctx.ProvingScheme = scheme

	curve, err := i.askChoice(p, "Curve:", curves, curves[0], fieldCurve)
	if err != nil {
		return ctx, err
	}
	ctx.Curve = curve
	ctx.CurveConstant = CurveConstantFor(curve)

	return ctx, nil
}

func (i Initializer) askText(p prompt.Prompter, message, def, field string, validate func(string) error) (string, error) {
	if v, ok := i.Presets[field]; ok {
		if err := validate(v); err != nil {
			return "", fmt.Errorf("preset %s: %w", field, err)
		}
		return v, nil
	}
	return p.Input(message, def, validate)
}

func (i Initializer) askChoice(p prompt.Prompter, message string, options []string, def, field string) (string, error) {
	if v, ok := i.Presets[field]; ok {
		for _, o := range options {
			if o == v {
				return v, nil
			}
		}
		return "", fmt.Errorf("preset %s: %q is not one of %s", field, v, strings.Join(options, ", "))
	}
	return p.Select(message, options, def)
}
