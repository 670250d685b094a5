package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRecipe() *Recipe {
	return &Recipe{
		Package: PackageConfig{Name: "app", Version: "1.0", Source: "."},
		Staging: StagingConfig{Root: "staging"},
	}
}

func TestValidateAcceptsMinimalRecipe(t *testing.T) {
	require.NoError(t, baseRecipe().Validate())
}

func TestValidateRequiresName(t *testing.T) {
	r := baseRecipe()
	r.Package.Name = "  "
	assert.Error(t, r.Validate())
}

func TestValidateRejectsBadName(t *testing.T) {
	for _, name := range []string{"-leading", "has space", "slash/name"} {
		r := baseRecipe()
		r.Package.Name = name
		assert.Error(t, r.Validate(), "name %q should be rejected", name)
	}
	for _, name := range []string{"mcp-central", "my_tool", "pkg.name", "A1"} {
		r := baseRecipe()
		r.Package.Name = name
		assert.NoError(t, r.Validate(), "name %q should be accepted", name)
	}
}

func TestValidateRequiresVersionAndSource(t *testing.T) {
	r := baseRecipe()
	r.Package.Version = ""
	assert.Error(t, r.Validate())

	r = baseRecipe()
	r.Package.Source = ""
	assert.Error(t, r.Validate())
}

func TestValidateRequiresAbsolutePrefix(t *testing.T) {
	r := baseRecipe()
	r.Package.Prefix = "usr"
	assert.Error(t, r.Validate())

	r.Package.Prefix = "/usr/local"
	assert.NoError(t, r.Validate())
}

func TestValidateRequiresStagingRoot(t *testing.T) {
	r := baseRecipe()
	r.Staging.Root = ""
	assert.Error(t, r.Validate())
}

func TestValidateRejectsDuplicateDependency(t *testing.T) {
	r := baseRecipe()
	r.Dependencies = []DependencyConfig{{Name: "requests"}, {Name: "requests"}}
	assert.Error(t, r.Validate())
}

func TestValidateRejectsDuplicateDependencyAfterNormalization(t *testing.T) {
	cases := [][]DependencyConfig{
		{{Name: "requests"}, {Name: "Requests"}},
		{{Name: "my-pkg"}, {Name: "my_pkg"}},
		{{Name: "my.pkg"}, {Name: "my-pkg"}},
	}
	for _, deps := range cases {
		r := baseRecipe()
		r.Dependencies = deps
		assert.Errorf(t, r.Validate(), "deps %q and %q name the same distribution", deps[0].Name, deps[1].Name)
	}
}

func TestValidateRejectsUnnamedDependency(t *testing.T) {
	r := baseRecipe()
	r.Dependencies = []DependencyConfig{{Name: " "}}
	assert.Error(t, r.Validate())
}

func TestValidateInstallModes(t *testing.T) {
	r := baseRecipe()
	r.Install.PrimaryDeps = "all"
	assert.Error(t, r.Validate())

	r = baseRecipe()
	r.Install.IndexDeps = "transitive"
	assert.Error(t, r.Validate())

	r = baseRecipe()
	r.Install.PrimaryDeps = DepsModeFull
	r.Install.IndexDeps = DepsModeNone
	assert.NoError(t, r.Validate())
}
