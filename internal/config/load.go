package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/wheelstage/internal/envfile"
	"github.com/conn-castle/wheelstage/internal/messages"
)

// ErrRecipeValidation is a sentinel that wraps recipe validation failures
// (as opposed to TOML syntax or filesystem errors). Callers can use
// errors.Is(err, ErrRecipeValidation) to distinguish configuration problems
// that must be fixed in wheelstage.toml from other loading failure modes.
var ErrRecipeValidation = errors.New("recipe validation failed")

// LoadRecipe reads wheelstage.toml from path and validates it.
func LoadRecipe(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return ParseRecipe(data, path)
}

// ParseRecipe parses and validates recipe TOML data.
// data is the TOML content; source is used in error messages.
func ParseRecipe(data []byte, source string) (*Recipe, error) {
	var recipe Recipe
	if err := toml.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrRecipeValidation, source, err)
	}
	if err := recipe.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w; "+messages.ConfigValidationGuidance, ErrRecipeValidation, err)
	}
	return &recipe, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
// This catches keys that toml.Unmarshal silently ignores (typically typos
// such as min-version for min_version).
func decodeStrict(data []byte) error {
	var recipe Recipe
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&recipe)
}

// ParseRecipeLenient parses recipe TOML data without validation.
// Returns an error only on TOML syntax errors. Suitable for doctor and the
// wizard, which need to read partially valid recipes.
func ParseRecipeLenient(data []byte, source string) (*Recipe, error) {
	var recipe Recipe
	if err := toml.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	return &recipe, nil
}

// LoadRecipeLenient reads wheelstage.toml without validation.
func LoadRecipeLenient(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return ParseRecipeLenient(data, path)
}

// LoadEnv reads the optional .env overrides beside the recipe into a map.
// A missing file is not an error; it simply yields no overrides.
func LoadEnv(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf(messages.ConfigMissingEnvFileFmt, path, err)
	}
	env, err := envfile.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, path, err)
	}
	return env, nil
}
