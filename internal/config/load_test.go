package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRecipe = `
[package]
name = "mcp-central"
version = "2.4.1"
source = "."

[package.subproject]
path = "vendor/mcp-common"

[staging]
root = "staging"

[channels]
host = ["pyside6", "requests"]

[[dependency]]
name = "requests"

[[dependency]]
name = "platformdirs"
min_version = "3.0"

[install]
primary_deps = "none"
index_deps = "full"

[assets]
desktop = "packaging/mcp-central.desktop"
icon = "packaging/mcp-central.png"
`

func TestParseRecipeValid(t *testing.T) {
	recipe, err := ParseRecipe([]byte(validRecipe), "wheelstage.toml")
	require.NoError(t, err)

	assert.Equal(t, "mcp-central", recipe.Package.Name)
	assert.Equal(t, "2.4.1", recipe.Package.Version)
	require.NotNil(t, recipe.Package.Subproject)
	assert.Equal(t, "vendor/mcp-common", recipe.Package.Subproject.Path)
	assert.Equal(t, []string{"pyside6", "requests"}, recipe.Channels.Host)
	require.Len(t, recipe.Dependencies, 2)
	assert.Equal(t, "platformdirs", recipe.Dependencies[1].Name)
	assert.Equal(t, "3.0", recipe.Dependencies[1].MinVersion)
	assert.Equal(t, "packaging/mcp-central.desktop", recipe.Assets.Desktop)
}

func TestParseRecipeDefaults(t *testing.T) {
	recipe, err := ParseRecipe([]byte(`
[package]
name = "app"
version = "1.0"
source = "."

[staging]
root = "staging"
`), "wheelstage.toml")
	require.NoError(t, err)

	assert.Equal(t, "/usr", recipe.Package.EffectivePrefix())
	assert.Equal(t, DepsModeNone, recipe.Install.PrimaryDepsMode())
	assert.Equal(t, DepsModeFull, recipe.Install.IndexDepsMode())
}

func TestParseRecipeRejectsUnknownKeys(t *testing.T) {
	_, err := ParseRecipe([]byte(`
[package]
name = "app"
version = "1.0"
source = "."
sources = "typo"

[staging]
root = "staging"
`), "wheelstage.toml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRecipeValidation), "unknown keys should be a validation error, got %v", err)
}

func TestParseRecipeValidationErrorIsSentinel(t *testing.T) {
	_, err := ParseRecipe([]byte(`
[package]
name = ""
version = "1.0"
source = "."

[staging]
root = "staging"
`), "wheelstage.toml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRecipeValidation))
}

func TestParseRecipeSyntaxErrorIsNotValidationError(t *testing.T) {
	_, err := ParseRecipe([]byte("not [valid toml"), "wheelstage.toml")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRecipeValidation))
}

func TestParseRecipeLenientAcceptsInvalidFields(t *testing.T) {
	recipe, err := ParseRecipeLenient([]byte(`
[package]
name = ""
`), "wheelstage.toml")
	require.NoError(t, err)
	assert.Equal(t, "", recipe.Package.Name)
}

func TestLoadRecipeMissingFile(t *testing.T) {
	_, err := LoadRecipe(filepath.Join(t.TempDir(), "wheelstage.toml"))
	require.Error(t, err)
}

func TestLoadEnvMissingFileYieldsEmpty(t *testing.T) {
	env, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Empty(t, env)
}

func TestLoadEnvParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SOURCE_DATE_EPOCH=1700000000\n"), 0o644))
	env, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "1700000000", env["SOURCE_DATE_EPOCH"])
}

func TestLoadEnvInvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BROKEN\n"), 0o644))
	_, err := LoadEnv(path)
	require.Error(t, err)
}
