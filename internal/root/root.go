// Package root locates the recipe root for the current working directory.
package root

import (
	"errors"
	"os"
	"path/filepath"
)

// RecipeFileName is the declarative recipe file that marks a recipe root.
const RecipeFileName = "wheelstage.toml"

// FindRecipeRoot walks up from start looking for a directory containing
// wheelstage.toml. It returns the directory, whether it was found, and any
// filesystem error other than absence.
func FindRecipeRoot(start string) (string, bool, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, RecipeFileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", false, errors.New(candidate + " is a directory, expected a file")
			}
			return dir, true, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
