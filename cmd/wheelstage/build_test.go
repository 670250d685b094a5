package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/conn-castle/wheelstage/internal/config"
	"github.com/conn-castle/wheelstage/internal/pipeline"
	"github.com/conn-castle/wheelstage/internal/wheel"
)

func stubBuild(t *testing.T, result *pipeline.Result, err error) {
	t.Helper()
	orig := buildArtifactsFunc
	t.Cleanup(func() { buildArtifactsFunc = orig })
	buildArtifactsFunc = func(recipe *config.Recipe, rootDir string, opts pipeline.Options) (*pipeline.Result, error) {
		if opts.Progress != nil {
			opts.Progress(1, 2, "build primary wheel")
		}
		return result, err
	}
}

func TestBuildCommandPrintsArtifacts(t *testing.T) {
	seedRecipeRoot(t, testRecipe)
	stubBuild(t, &pipeline.Result{
		Primary:    wheel.Artifact{Name: "app", Path: "/dist/primary/app-1.0.0-py3-none-any.whl"},
		Subproject: &wheel.Artifact{Name: "common", Path: "/dist/subproject/common-1.0.0-py3-none-any.whl"},
	}, nil)

	var out bytes.Buffer
	if err := execute([]string{"wheelstage", "build"}, &out, &out); err != nil {
		t.Fatalf("execute: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "[1/2] build primary wheel") {
		t.Fatalf("expected progress line, got %q", got)
	}
	if !strings.Contains(got, "Built /dist/primary/app-1.0.0-py3-none-any.whl") {
		t.Fatalf("expected primary artifact line, got %q", got)
	}
	if !strings.Contains(got, "Built /dist/subproject/common-1.0.0-py3-none-any.whl") {
		t.Fatalf("expected subproject artifact line, got %q", got)
	}
}

func TestBuildCommandNoSubproject(t *testing.T) {
	seedRecipeRoot(t, testRecipe)
	stubBuild(t, &pipeline.Result{
		Primary: wheel.Artifact{Name: "app", Path: "/dist/primary/app-1.0.0-py3-none-any.whl"},
	}, nil)

	var out bytes.Buffer
	if err := execute([]string{"wheelstage", "build"}, &out, &out); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Count(out.String(), "Built ") != 1 {
		t.Fatalf("expected a single artifact line, got %q", out.String())
	}
}

func TestBuildCommandError(t *testing.T) {
	seedRecipeRoot(t, testRecipe)
	stubBuild(t, nil, errors.New("python3 not found"))

	var out bytes.Buffer
	err := execute([]string{"wheelstage", "build"}, &out, &out)
	if err == nil || !strings.Contains(err.Error(), "python3 not found") {
		t.Fatalf("expected build error, got %v", err)
	}
}
