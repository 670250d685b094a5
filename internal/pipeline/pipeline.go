// Package pipeline sequences the packaging stages: build artifacts,
// classify dependencies, install into the staging root, place assets.
//
// The pipeline is single-threaded and idempotent: each stage's output is the
// next stage's only input, and a failed run may simply be re-run against a
// fresh staging root. A stage failure aborts the remaining stages and leaves
// partial staging state in place for inspection.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/conn-castle/wheelstage/internal/assets"
	"github.com/conn-castle/wheelstage/internal/config"
	"github.com/conn-castle/wheelstage/internal/envfile"
	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/plan"
	"github.com/conn-castle/wheelstage/internal/stage"
	"github.com/conn-castle/wheelstage/internal/warnings"
	"github.com/conn-castle/wheelstage/internal/wheel"
)

// ProgressFunc reports stage transitions for progress display.
type ProgressFunc func(step int, total int, name string)

// Options controls a pipeline run.
type Options struct {
	// StagingOverride replaces the recipe's staging root when non-empty.
	StagingOverride string
	// Verbose forwards external tool stdout and asset rewrite diffs to Out.
	Verbose bool
	// Python overrides the interpreter used for external tools; tests point
	// it at stubs on PATH.
	Python string
	// Out and Err are the run's output writers. Err always receives external
	// tool stderr verbatim.
	Out io.Writer
	Err io.Writer
	// Progress, when set, is called before each stage starts.
	Progress ProgressFunc
}

// Result describes a completed run.
type Result struct {
	Primary     wheel.Artifact
	Subproject  *wheel.Artifact
	Plan        *plan.InstallPlan
	StagingRoot string
	Warnings    []warnings.Warning
}

// Run executes the full pipeline for the recipe rooted at rootDir. When a
// stage fails after the result has started accumulating, Run returns the
// partial Result alongside the error so warnings gathered before the
// failure are not lost.
func Run(recipe *config.Recipe, rootDir string, opts Options) (*Result, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	paths, err := recipe.Resolve(rootDir)
	if err != nil {
		return nil, err
	}
	if opts.StagingOverride != "" {
		paths.StagingRoot = opts.StagingOverride
	}

	env, envWarns, err := buildEnv(rootDir)
	if err != nil {
		return nil, err
	}

	result := &Result{StagingRoot: paths.StagingRoot}
	result.Warnings = append(result.Warnings, envWarns...)
	result.Warnings = append(result.Warnings, stagingWarnings(paths.StagingRoot)...)

	total := 4
	if paths.SubprojectDir != "" {
		total = 5
	}
	step := 0
	advance := func(name string) {
		step++
		if opts.Progress != nil {
			opts.Progress(step, total, name)
		}
	}

	toolOut := io.Discard
	if opts.Verbose {
		toolOut = opts.Out
	}
	builder := &wheel.Builder{
		Python:    opts.Python,
		OutputDir: paths.OutputDir,
		Env:       env,
		Out:       toolOut,
		Err:       opts.Err,
	}

	advance(messages.PipelineStageBuildPrimary)
	result.Primary, err = builder.Build(paths.SourceDir, "primary")
	if err != nil {
		return result, stageErr(messages.PipelineStageBuildPrimary, err)
	}

	var subprojects []wheel.Artifact
	if paths.SubprojectDir != "" {
		advance(messages.PipelineStageBuildSubproject)
		sub, err := builder.Build(paths.SubprojectDir, "subproject")
		if err != nil {
			return result, stageErr(messages.PipelineStageBuildSubproject, err)
		}
		result.Subproject = &sub
		subprojects = append(subprojects, sub)
	}

	advance(messages.PipelineStageClassify)
	result.Plan, err = plan.Classify(plan.Input{
		Dependencies:    dependencyRefs(recipe),
		HostSatisfied:   recipe.Channels.Host,
		Primary:         result.Primary,
		Subprojects:     subprojects,
		PrimaryFullDeps: recipe.Install.PrimaryDepsMode() == config.DepsModeFull,
		IndexNoDeps:     recipe.Install.IndexDepsMode() == config.DepsModeNone,
	})
	if err != nil {
		return result, stageErr(messages.PipelineStageClassify, err)
	}

	advance(messages.PipelineStageInstall)
	orchestrator := &stage.Orchestrator{
		StagingRoot: paths.StagingRoot,
		Prefix:      recipe.Package.EffectivePrefix(),
		Python:      opts.Python,
		Env:         env,
		Out:         toolOut,
		Err:         opts.Err,
	}
	if err := orchestrator.Execute(result.Plan); err != nil {
		var installErr *stage.InstallError
		if errors.As(err, &installErr) {
			_, _ = fmt.Fprintf(opts.Err, messages.StageAbortedFmt+"\n", installErr.Subject, paths.StagingRoot)
		}
		return result, stageErr(messages.PipelineStageInstall, err)
	}

	advance(messages.PipelineStageAssets)
	var diffWriter io.Writer
	if opts.Verbose {
		diffWriter = opts.Out
	}
	placer := &assets.Placer{
		StagingRoot:   paths.StagingRoot,
		Prefix:        recipe.Package.EffectivePrefix(),
		PackageName:   recipe.Package.Name,
		DesktopSource: paths.DesktopAsset,
		IconSource:    paths.IconAsset,
		DiffWriter:    diffWriter,
	}
	assetWarns, err := placer.Place()
	result.Warnings = append(result.Warnings, assetWarns...)
	if err != nil {
		return result, stageErr(messages.PipelineStageAssets, err)
	}

	return result, nil
}

// buildEnv merges .env overrides from the recipe root onto the parent
// environment, warning on keys that shadow tool discovery.
func buildEnv(rootDir string) ([]string, []warnings.Warning, error) {
	overrides, err := config.LoadEnv(config.DefaultPaths(rootDir).EnvPath)
	if err != nil {
		return nil, nil, err
	}
	var warns []warnings.Warning
	for _, key := range []string{"PATH", "PYTHONPATH"} {
		if _, ok := overrides[key]; ok {
			warns = append(warns, warnings.Warning{
				Code:    warnings.CodeEnvOverrideShadowsBuiltin,
				Subject: key,
				Message: ".env overrides " + key + ", which can change which external tools the pipeline finds",
				Fix:     "remove " + key + " from .env unless the override is intentional",
			})
		}
	}
	return envfile.Merge(os.Environ(), overrides), warns, nil
}

// stagingWarnings reports a staging root that is not fresh.
func stagingWarnings(stagingRoot string) []warnings.Warning {
	entries, err := os.ReadDir(stagingRoot)
	if err != nil || len(entries) == 0 {
		return nil
	}
	return []warnings.Warning{{
		Code:    warnings.CodeStagingRootNotEmpty,
		Subject: stagingRoot,
		Message: "staging root already contains files; runs expect a fresh staging root",
		Fix:     "remove the staging root before re-running, or pass --staging with a fresh path",
		Details: []string{warnings.Detailf("%d existing entries", len(entries))},
	}}
}

func dependencyRefs(recipe *config.Recipe) []plan.DependencyRef {
	refs := make([]plan.DependencyRef, 0, len(recipe.Dependencies))
	for _, dep := range recipe.Dependencies {
		refs = append(refs, plan.DependencyRef{Name: dep.Name, MinVersion: dep.MinVersion})
	}
	return refs
}

func stageErr(name string, err error) error {
	return fmt.Errorf(messages.PipelineStageFailedFmt, name, err)
}
