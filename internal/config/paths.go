package config

import (
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/root"
)

// Paths holds the well-known file locations under a recipe root.
type Paths struct {
	RecipePath string
	EnvPath    string
}

// DefaultPaths returns the standard paths for a recipe root.
func DefaultPaths(rootDir string) Paths {
	return Paths{
		RecipePath: filepath.Join(rootDir, root.RecipeFileName),
		EnvPath:    filepath.Join(rootDir, ".env"),
	}
}

// Resolved holds recipe paths resolved against the recipe root, with "~"
// expanded. All relative recipe paths are interpreted relative to the root.
type Resolved struct {
	SourceDir     string
	SubprojectDir string // empty when no subproject is declared
	StagingRoot   string
	OutputDir     string
	DesktopAsset  string // empty when not declared
	IconAsset     string // empty when not declared
}

// Resolve expands and anchors all recipe paths against rootDir.
func (r *Recipe) Resolve(rootDir string) (Resolved, error) {
	resolved := Resolved{}
	var err error
	if resolved.SourceDir, err = resolvePath(rootDir, r.Package.Source); err != nil {
		return Resolved{}, err
	}
	if r.Package.Subproject != nil && r.Package.Subproject.Path != "" {
		if resolved.SubprojectDir, err = resolvePath(rootDir, r.Package.Subproject.Path); err != nil {
			return Resolved{}, err
		}
	}
	if resolved.StagingRoot, err = resolvePath(rootDir, r.Staging.Root); err != nil {
		return Resolved{}, err
	}
	output := r.Staging.Output
	if output == "" {
		output = "dist"
	}
	if resolved.OutputDir, err = resolvePath(rootDir, output); err != nil {
		return Resolved{}, err
	}
	if r.Assets.Desktop != "" {
		if resolved.DesktopAsset, err = resolvePath(rootDir, r.Assets.Desktop); err != nil {
			return Resolved{}, err
		}
	}
	if r.Assets.Icon != "" {
		if resolved.IconAsset, err = resolvePath(rootDir, r.Assets.Icon); err != nil {
			return Resolved{}, err
		}
	}
	return resolved, nil
}

// resolvePath expands "~" and anchors relative paths at rootDir.
func resolvePath(rootDir string, path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(rootDir, expanded), nil
}
