// Package doctor inspects the recipe and build environment and reports
// actionable results before a packaging run is attempted.
package doctor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/conn-castle/wheelstage/internal/config"
	"github.com/conn-castle/wheelstage/internal/messages"
)

// Status classifies a check outcome.
type Status string

// Check outcomes.
const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Result is one check outcome with an optional remediation hint.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

var lookPathFunc = exec.LookPath

// CheckTools verifies the external build and install tooling is reachable.
func CheckTools() []Result {
	var results []Result
	for _, tool := range []string{"python3"} {
		path, err := lookPathFunc(tool)
		if err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameTools,
				Message:        fmt.Sprintf(messages.DoctorToolMissingFmt, tool),
				Recommendation: fmt.Sprintf(messages.DoctorToolMissingRecommendFmt, tool),
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameTools,
			Message:   fmt.Sprintf(messages.DoctorToolFoundFmt, tool, path),
		})
	}
	return results
}

// CheckRecipe validates the recipe and returns the leniently loaded form so
// later checks can still run against a partially valid recipe.
func CheckRecipe(rootDir string) ([]Result, *config.Recipe) {
	paths := config.DefaultPaths(rootDir)
	_, strictErr := config.LoadRecipe(paths.RecipePath)
	if strictErr == nil {
		recipe, _ := config.LoadRecipeLenient(paths.RecipePath)
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameRecipe,
			Message:   fmt.Sprintf(messages.DoctorRecipeOKFmt, paths.RecipePath),
		}}, recipe
	}

	if errors.Is(strictErr, config.ErrRecipeValidation) {
		recipe, lenientErr := config.LoadRecipeLenient(paths.RecipePath)
		if lenientErr == nil {
			return []Result{{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameRecipe,
				Message:        fmt.Sprintf(messages.DoctorRecipeInvalidFmt, strictErr),
				Recommendation: messages.DoctorRecipeInvalidRecommend,
			}}, recipe
		}
	}
	return []Result{{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameRecipe,
		Message:        fmt.Sprintf(messages.DoctorRecipeUnreadableFmt, strictErr),
		Recommendation: messages.DoctorRecipeUnreadableRecommend,
	}}, nil
}

// CheckSources verifies each source tree carries a build manifest.
func CheckSources(rootDir string, recipe *config.Recipe) []Result {
	paths, err := recipe.Resolve(rootDir)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSource,
			Message:        err.Error(),
			Recommendation: messages.DoctorManifestRecommend,
		}}
	}

	dirs := []string{paths.SourceDir}
	if paths.SubprojectDir != "" {
		dirs = append(dirs, paths.SubprojectDir)
	}
	var results []Result
	for _, dir := range dirs {
		if _, err := os.Stat(filepath.Join(dir, "pyproject.toml")); err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameSource,
				Message:        fmt.Sprintf(messages.DoctorManifestMissingFmt, dir),
				Recommendation: messages.DoctorManifestRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameSource,
			Message:   fmt.Sprintf(messages.DoctorManifestFoundFmt, dir),
		})
	}
	return results
}

// CheckAssets verifies the declared static assets exist. Missing assets are
// warnings: desktop integration degrades gracefully.
func CheckAssets(rootDir string, recipe *config.Recipe) []Result {
	paths, err := recipe.Resolve(rootDir)
	if err != nil {
		return nil
	}
	var results []Result
	for _, asset := range []string{paths.DesktopAsset, paths.IconAsset} {
		if asset == "" {
			continue
		}
		if _, err := os.Stat(asset); err != nil {
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameAssets,
				Message:        fmt.Sprintf(messages.DoctorAssetMissingFmt, asset),
				Recommendation: messages.DoctorAssetRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameAssets,
			Message:   fmt.Sprintf(messages.DoctorAssetFoundFmt, asset),
		})
	}
	return results
}
