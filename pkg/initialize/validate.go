package initialize

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	projectNamePattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	packageNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
)

// ValidateProjectName accepts non-empty names made of ASCII alphanumerics,
// hyphens and underscores.
func ValidateProjectName(name string) error {
	if name == "" {
		return errors.New("please provide a non-empty project name")
	}
	if !projectNamePattern.MatchString(name) {
		return errors.New("project name may only contain letters, digits, hyphens and underscores")
	}
	return nil
}

// ValidatePackageName accepts Go-style package identifiers: a lowercase
// letter followed by lowercase letters or digits.
func ValidatePackageName(name string) error {
	if name == "" {
		return errors.New("please provide a non-empty package name")
	}
	if !packageNamePattern.MatchString(name) {
		return errors.New("package name must start with a lowercase letter and contain only lowercase letters and digits")
	}
	return nil
}

// DefaultProjectName derives a valid project name from the target directory,
// replacing every disallowed rune in its resolved base name with a hyphen.
func DefaultProjectName(targetDir string) string {
	abs, err := filepath.Abs(targetDir)
	if err != nil {
		abs = targetDir
	}
	base := filepath.Base(abs)

	var b strings.Builder
	for _, r := range base {
		if isAlphanumeric(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	return b.String()
}

// DefaultPackageName derives a package identifier from the project name by
// dropping every non-alphanumeric rune and then any leading run of runes
// that are not lowercase letters.
func DefaultPackageName(projectName string) string {
	var b strings.Builder
	for _, r := range projectName {
		if isAlphanumeric(r) {
			b.WriteRune(r)
		}
	}
	s := b.String()

	i := 0
	for i < len(s) && !(s[i] >= 'a' && s[i] <= 'z') {
		i++
	}
	return s[i:]
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
