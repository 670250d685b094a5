// Package warnings defines the structured non-fatal warning model.
//
// Warnings never abort a run. Anything that must halt packaging is an error
// in the owning package's taxonomy, not a Warning.
package warnings

import "fmt"

// Warning codes.
const (
	// CodeAssetIconReferenceMissing reports that the desktop entry did not
	// contain the expected icon-path literal, so no substitution happened.
	CodeAssetIconReferenceMissing = "ASSET_ICON_REFERENCE_MISSING"
	// CodeStagingRootNotEmpty reports that the staging root already held
	// files before the run; the lifecycle expects a fresh root per build.
	CodeStagingRootNotEmpty = "STAGING_ROOT_NOT_EMPTY"
	// CodeEnvOverrideShadowsBuiltin reports a .env key that replaces a
	// variable wheelstage relies on for reproducible builds.
	CodeEnvOverrideShadowsBuiltin = "ENV_OVERRIDE_SHADOWS_BUILTIN"
)

// Warning represents a non-fatal diagnostic surfaced to the operator.
type Warning struct {
	Code    string
	Subject string
	Message string
	Fix     string
	Details []string
}

func (w Warning) String() string {
	s := "WARNING " + w.Code + ": " + w.Message + "\n"
	s += "  subject: " + w.Subject + "\n"
	s += "  fix: " + w.Fix
	for _, d := range w.Details {
		s += "\n  details: " + d
	}
	return s
}

// Detailf formats a detail line for Warning.Details.
func Detailf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
