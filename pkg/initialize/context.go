package initialize

import "strings"

// ProjectKind is one of the circuit frameworks the wizard recognises.
type ProjectKind string

const (
	KindGnark  ProjectKind = "gnark"
	KindCircom ProjectKind = "circom"
	KindHalo2  ProjectKind = "halo2"
	KindNoir   ProjectKind = "noir"
)

// Kinds lists every recognised project kind, in prompt order.
var Kinds = []ProjectKind{KindGnark, KindCircom, KindHalo2, KindNoir}

// Supported reports whether the kind can be scaffolded by this release.
// Unsupported kinds are still offered so that choosing one fails with a
// clear message rather than a missing menu entry.
func (k ProjectKind) Supported() bool {
	return k == KindGnark
}

// Context is the accumulated set of validated wizard answers. Each field is
// set once, as its question is answered, and never rewritten; kind-specific
// fields are only populated for the matching kind.
type Context struct {
	ProjectName string
	Kind        ProjectKind

	// gnark only
	PackageName   string
	ProvingScheme string
	Curve         string
	CurveConstant string
}

// TemplateData flattens the context for the template renderer.
func (c Context) TemplateData() map[string]interface{} {
	data := map[string]interface{}{
		"ProjectName": c.ProjectName,
		"Kind":        string(c.Kind),
	}
	if c.Kind == KindGnark {
		data["PackageName"] = c.PackageName
		data["ProvingScheme"] = c.ProvingScheme
		data["Curve"] = c.Curve
		data["CurveConstant"] = c.CurveConstant
	}
	return data
}

// CurveConstantFor derives the identifier used in circuit source for a curve
// choice, e.g. "bls12-377" becomes "BLS12_377".
func CurveConstantFor(curve string) string {
	return strings.ToUpper(strings.ReplaceAll(curve, "-", "_"))
}
