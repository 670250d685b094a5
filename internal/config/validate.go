package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/wheel"
)

var packageNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Validate checks required fields and value constraints.
//
// Channel routing conflicts (a dependency both host-satisfied and locally
// built) are deliberately NOT checked here: routing is the classifier's
// responsibility, and it reports conflicts against the full artifact set,
// which the recipe alone does not know.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Package.Name) == "" {
		return fmt.Errorf(messages.ConfigPackageNameRequired)
	}
	if !packageNamePattern.MatchString(r.Package.Name) {
		return fmt.Errorf(messages.ConfigPackageNameInvalidFmt, r.Package.Name)
	}
	if strings.TrimSpace(r.Package.Version) == "" {
		return fmt.Errorf(messages.ConfigPackageVersionRequired)
	}
	if strings.TrimSpace(r.Package.Source) == "" {
		return fmt.Errorf(messages.ConfigSourceRequired)
	}
	if r.Package.Prefix != "" && !filepath.IsAbs(r.Package.Prefix) {
		return fmt.Errorf(messages.ConfigPrefixNotAbsoluteFmt, r.Package.Prefix)
	}
	if strings.TrimSpace(r.Staging.Root) == "" {
		return fmt.Errorf(messages.ConfigStagingRootRequired)
	}
	seen := make(map[string]bool, len(r.Dependencies))
	for i, dep := range r.Dependencies {
		name := strings.TrimSpace(dep.Name)
		if name == "" {
			return fmt.Errorf(messages.ConfigDependencyNameRequiredFmt, i+1)
		}
		// Names that normalize to the same distribution are duplicates,
		// matching how the classifier keys its channels.
		key := wheel.NormalizeName(name)
		if seen[key] {
			return fmt.Errorf(messages.ConfigDuplicateDependencyFmt, name)
		}
		seen[key] = true
	}
	if err := validateDepsMode("primary_deps", r.Install.PrimaryDeps); err != nil {
		return err
	}
	return validateDepsMode("index_deps", r.Install.IndexDeps)
}

func validateDepsMode(field string, value string) error {
	switch value {
	case "", DepsModeNone, DepsModeFull:
		return nil
	default:
		return fmt.Errorf(messages.ConfigInstallModeInvalidFmt, field, value)
	}
}
