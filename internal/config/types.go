// Package config loads and validates the declarative wheelstage recipe.
//
// The recipe replaces the per-variant dependency-list edits of the historical
// packaging scripts: everything that used to be implied by "which recipe file
// happens to run" — the host-satisfied set, the subproject path, the
// dependency-install modes — is explicit configuration here.
package config

// Recipe is the parsed wheelstage.toml.
type Recipe struct {
	Package      PackageConfig      `toml:"package"`
	Staging      StagingConfig      `toml:"staging"`
	Channels     ChannelsConfig     `toml:"channels"`
	Dependencies []DependencyConfig `toml:"dependency"`
	Install      InstallConfig      `toml:"install"`
	Assets       AssetsConfig       `toml:"assets"`
}

// PackageConfig identifies the primary distributable unit.
type PackageConfig struct {
	// Name is the installed package name; it also names the desktop entry
	// and icon under the staging prefix.
	Name    string `toml:"name"`
	Version string `toml:"version"`
	// Source is the primary source tree, relative to the recipe root.
	Source string `toml:"source"`
	// Prefix is the install prefix inside the staging root (default /usr).
	Prefix     string            `toml:"prefix"`
	Subproject *SubprojectConfig `toml:"subproject"`
}

// SubprojectConfig points at an optional bundled subproject built as an
// independent artifact.
type SubprojectConfig struct {
	Path string `toml:"path"`
}

// StagingConfig controls filesystem locations for a run.
type StagingConfig struct {
	// Root is the staging root; all installation writes are confined under it.
	Root string `toml:"root"`
	// Output is the wheel output directory.
	Output string `toml:"output"`
}

// ChannelsConfig declares which dependency names the host package manager
// is trusted to have satisfied before this tool runs.
type ChannelsConfig struct {
	Host []string `toml:"host"`
}

// DependencyConfig is one declared runtime dependency.
type DependencyConfig struct {
	Name string `toml:"name"`
	// MinVersion optionally pins a minimum version for index installs.
	MinVersion string `toml:"min_version"`
}

// InstallConfig resolves the historical --no-deps ambiguity explicitly.
// Valid values are "none" and "full"; empty selects the default.
type InstallConfig struct {
	// PrimaryDeps controls dependency resolution when installing the primary
	// wheel. Default "none": the classifier already routed declared
	// dependencies, so the orchestrator refuses "full" whenever any
	// dependencies were routed.
	PrimaryDeps string `toml:"primary_deps"`
	// IndexDeps controls dependency resolution for index installs.
	// Default "full": transitive needs of index packages are accepted.
	IndexDeps string `toml:"index_deps"`
}

// AssetsConfig names the static desktop-integration assets.
type AssetsConfig struct {
	Desktop string `toml:"desktop"`
	Icon    string `toml:"icon"`
}

// Install mode values.
const (
	DepsModeNone = "none"
	DepsModeFull = "full"
)

// PrimaryDepsMode returns the effective primary_deps value.
func (c InstallConfig) PrimaryDepsMode() string {
	if c.PrimaryDeps == "" {
		return DepsModeNone
	}
	return c.PrimaryDeps
}

// IndexDepsMode returns the effective index_deps value.
func (c InstallConfig) IndexDepsMode() string {
	if c.IndexDeps == "" {
		return DepsModeFull
	}
	return c.IndexDeps
}

// EffectivePrefix returns the install prefix, defaulting to /usr.
func (c PackageConfig) EffectivePrefix() string {
	if c.Prefix == "" {
		return "/usr"
	}
	return c.Prefix
}
