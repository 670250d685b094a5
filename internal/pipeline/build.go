package pipeline

import (
	"io"
	"os"

	"github.com/conn-castle/wheelstage/internal/config"
	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/wheel"
)

// Build runs only the wheel-building stages and returns the built artifacts.
// It shares the staging pipeline's environment handling but never touches
// the staging root. Like Run, a stage failure returns the partial Result
// with the error so accumulated warnings survive.
func Build(recipe *config.Recipe, rootDir string, opts Options) (*Result, error) {
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

	env, envWarns, err := buildEnv(rootDir)
	if err != nil {
		return nil, err
	}

	result := &Result{Warnings: envWarns}

	total := 1
	if paths.SubprojectDir != "" {
		total = 2
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

	if paths.SubprojectDir != "" {
		advance(messages.PipelineStageBuildSubproject)
		sub, err := builder.Build(paths.SubprojectDir, "subproject")
		if err != nil {
			return result, stageErr(messages.PipelineStageBuildSubproject, err)
		}
		result.Subproject = &sub
	}

	return result, nil
}
