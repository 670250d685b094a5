package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/conn-castle/wheelstage/internal/config"
)

func writeRecipe(t *testing.T, rootDir string, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(rootDir, "wheelstage.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write recipe: %v", err)
	}
}

const doctorRecipe = `
[package]
name = "app"
version = "1.0"
source = "app"

[staging]
root = "staging"

[assets]
desktop = "packaging/app.desktop"
`

func TestCheckToolsFound(t *testing.T) {
	orig := lookPathFunc
	lookPathFunc = func(name string) (string, error) { return "/usr/bin/" + name, nil }
	defer func() { lookPathFunc = orig }()

	results := CheckTools()
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	for _, r := range results {
		if r.Status != StatusOK {
			t.Fatalf("expected OK, got %+v", r)
		}
	}
}

func TestCheckToolsMissing(t *testing.T) {
	orig := lookPathFunc
	lookPathFunc = func(name string) (string, error) { return "", errors.New("not found") }
	defer func() { lookPathFunc = orig }()

	results := CheckTools()
	for _, r := range results {
		if r.Status != StatusFail {
			t.Fatalf("expected Fail, got %+v", r)
		}
		if r.Recommendation == "" {
			t.Fatalf("missing tool needs a recommendation: %+v", r)
		}
	}
}

func TestCheckRecipeValid(t *testing.T) {
	rootDir := t.TempDir()
	writeRecipe(t, rootDir, doctorRecipe)

	results, recipe := CheckRecipe(rootDir)
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("unexpected results: %+v", results)
	}
	if recipe == nil || recipe.Package.Name != "app" {
		t.Fatalf("expected parsed recipe, got %+v", recipe)
	}
}

func TestCheckRecipeValidationFailureStillReturnsRecipe(t *testing.T) {
	rootDir := t.TempDir()
	writeRecipe(t, rootDir, `
[package]
name = "app"
version = ""
source = "app"

[staging]
root = "staging"
`)

	results, recipe := CheckRecipe(rootDir)
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("unexpected results: %+v", results)
	}
	if recipe == nil {
		t.Fatal("lenient recipe expected so later checks can run")
	}
}

func TestCheckRecipeMissingFile(t *testing.T) {
	results, recipe := CheckRecipe(t.TempDir())
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("unexpected results: %+v", results)
	}
	if recipe != nil {
		t.Fatal("no recipe expected for a missing file")
	}
}

func TestCheckSources(t *testing.T) {
	rootDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(rootDir, "app"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	recipe := &config.Recipe{
		Package: config.PackageConfig{Name: "app", Version: "1.0", Source: "app"},
		Staging: config.StagingConfig{Root: "staging"},
	}

	results := CheckSources(rootDir, recipe)
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("expected failure for missing manifest: %+v", results)
	}

	manifest := filepath.Join(rootDir, "app", "pyproject.toml")
	if err := os.WriteFile(manifest, []byte("[project]\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	results = CheckSources(rootDir, recipe)
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected OK after manifest added: %+v", results)
	}
}

func TestCheckSourcesIncludesSubproject(t *testing.T) {
	rootDir := t.TempDir()
	for _, dir := range []string{"app", "vendor/lib"} {
		if err := os.MkdirAll(filepath.Join(rootDir, dir), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(rootDir, "app", "pyproject.toml"), []byte("[project]\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	recipe := &config.Recipe{
		Package: config.PackageConfig{
			Name: "app", Version: "1.0", Source: "app",
			Subproject: &config.SubprojectConfig{Path: "vendor/lib"},
		},
		Staging: config.StagingConfig{Root: "staging"},
	}

	results := CheckSources(rootDir, recipe)
	if len(results) != 2 {
		t.Fatalf("expected a result per source tree: %+v", results)
	}
	if results[0].Status != StatusOK || results[1].Status != StatusFail {
		t.Fatalf("unexpected statuses: %+v", results)
	}
}

func TestCheckAssetsMissingIsWarning(t *testing.T) {
	rootDir := t.TempDir()
	recipe := &config.Recipe{
		Package: config.PackageConfig{Name: "app", Version: "1.0", Source: "."},
		Staging: config.StagingConfig{Root: "staging"},
		Assets:  config.AssetsConfig{Desktop: "packaging/app.desktop"},
	}

	results := CheckAssets(rootDir, recipe)
	if len(results) != 1 || results[0].Status != StatusWarn {
		t.Fatalf("missing asset should warn, not fail: %+v", results)
	}
}

func TestCheckAssetsPresent(t *testing.T) {
	rootDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(rootDir, "packaging"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(rootDir, "packaging", "app.desktop"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}
	recipe := &config.Recipe{
		Package: config.PackageConfig{Name: "app", Version: "1.0", Source: "."},
		Staging: config.StagingConfig{Root: "staging"},
		Assets:  config.AssetsConfig{Desktop: "packaging/app.desktop"},
	}

	results := CheckAssets(rootDir, recipe)
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestCheckAssetsNoneDeclared(t *testing.T) {
	recipe := &config.Recipe{
		Package: config.PackageConfig{Name: "app", Version: "1.0", Source: "."},
		Staging: config.StagingConfig{Root: "staging"},
	}
	if results := CheckAssets(t.TempDir(), recipe); len(results) != 0 {
		t.Fatalf("expected no results when no assets declared: %+v", results)
	}
}
