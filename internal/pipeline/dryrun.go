package pipeline

import (
	"path/filepath"

	"github.com/conn-castle/wheelstage/internal/config"
	"github.com/conn-castle/wheelstage/internal/plan"
	"github.com/conn-castle/wheelstage/internal/wheel"
)

// DryRunPlan classifies the recipe's dependencies without building anything
// or touching the staging root. Artifact names are synthesized from recipe
// metadata: the primary from package.name, the subproject from its directory
// name. This matches the built wheel names for conventionally laid out
// projects; `wheelstage run` always classifies against the real wheels.
func DryRunPlan(recipe *config.Recipe, rootDir string) (*plan.InstallPlan, error) {
	paths, err := recipe.Resolve(rootDir)
	if err != nil {
		return nil, err
	}

	primary := wheel.Artifact{
		Name:    wheel.NormalizeName(recipe.Package.Name),
		Version: recipe.Package.Version,
		Path:    filepath.Join(paths.OutputDir, "primary"),
	}
	var subprojects []wheel.Artifact
	if paths.SubprojectDir != "" {
		subprojects = append(subprojects, wheel.Artifact{
			Name: wheel.NormalizeName(filepath.Base(paths.SubprojectDir)),
			Path: filepath.Join(paths.OutputDir, "subproject"),
		})
	}

	return plan.Classify(plan.Input{
		Dependencies:    dependencyRefs(recipe),
		HostSatisfied:   recipe.Channels.Host,
		Primary:         primary,
		Subprojects:     subprojects,
		PrimaryFullDeps: recipe.Install.PrimaryDepsMode() == config.DepsModeFull,
		IndexNoDeps:     recipe.Install.IndexDepsMode() == config.DepsModeNone,
	})
}
