package main

import (
	"fmt"
	"os"

	"github.com/conn-castle/wheelstage/internal/config"
	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/root"
)

var getwd = os.Getwd

// resolveRecipeRoot walks up from the working directory to the directory
// containing wheelstage.toml.
func resolveRecipeRoot() (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	rootDir, found, err := root.FindRecipeRoot(cwd)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf(messages.RootMissingRecipe)
	}
	return rootDir, nil
}

// loadRecipeFromRoot resolves the recipe root and strictly loads the recipe.
func loadRecipeFromRoot() (*config.Recipe, string, error) {
	rootDir, err := resolveRecipeRoot()
	if err != nil {
		return nil, "", err
	}
	recipe, err := config.LoadRecipe(config.DefaultPaths(rootDir).RecipePath)
	if err != nil {
		return nil, "", err
	}
	return recipe, rootDir, nil
}
