package config

import (
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths("/repo")
	assert.Equal(t, filepath.Join("/repo", "wheelstage.toml"), paths.RecipePath)
	assert.Equal(t, filepath.Join("/repo", ".env"), paths.EnvPath)
}

func TestResolveAnchorsRelativePaths(t *testing.T) {
	r := baseRecipe()
	r.Package.Subproject = &SubprojectConfig{Path: "vendor/lib"}
	r.Assets.Desktop = "packaging/app.desktop"
	r.Assets.Icon = "packaging/app.png"

	resolved, err := r.Resolve("/repo")
	require.NoError(t, err)

	assert.Equal(t, "/repo", resolved.SourceDir)
	assert.Equal(t, filepath.Join("/repo", "vendor/lib"), resolved.SubprojectDir)
	assert.Equal(t, filepath.Join("/repo", "staging"), resolved.StagingRoot)
	assert.Equal(t, filepath.Join("/repo", "dist"), resolved.OutputDir)
	assert.Equal(t, filepath.Join("/repo", "packaging/app.desktop"), resolved.DesktopAsset)
	assert.Equal(t, filepath.Join("/repo", "packaging/app.png"), resolved.IconAsset)
}

func TestResolveKeepsAbsolutePaths(t *testing.T) {
	r := baseRecipe()
	r.Staging.Root = "/var/tmp/stage"

	resolved, err := r.Resolve("/repo")
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/stage", resolved.StagingRoot)
}

func TestResolveEmptyOptionalPaths(t *testing.T) {
	resolved, err := baseRecipe().Resolve("/repo")
	require.NoError(t, err)
	assert.Empty(t, resolved.SubprojectDir)
	assert.Empty(t, resolved.DesktopAsset)
	assert.Empty(t, resolved.IconAsset)
}

func TestResolveExpandsHome(t *testing.T) {
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()
	t.Setenv("HOME", "/home/builder")
	r := baseRecipe()
	r.Staging.Root = "~/stage"

	resolved, err := r.Resolve("/repo")
	require.NoError(t, err)
	assert.Equal(t, "/home/builder/stage", resolved.StagingRoot)
}
