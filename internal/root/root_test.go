package root

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRecipeRootFound(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, RecipeFileName), []byte("[package]\n"), 0o644); err != nil {
		t.Fatalf("write recipe: %v", err)
	}
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir sub: %v", err)
	}

	got, found, err := FindRecipeRoot(sub)
	if err != nil {
		t.Fatalf("FindRecipeRoot error: %v", err)
	}
	if !found {
		t.Fatalf("expected recipe root to be found")
	}
	if got != dir {
		t.Fatalf("expected root %s, got %s", dir, got)
	}
}

func TestFindRecipeRootMissing(t *testing.T) {
	got, found, err := FindRecipeRoot(t.TempDir())
	if err != nil {
		t.Fatalf("FindRecipeRoot error: %v", err)
	}
	if found {
		t.Fatalf("expected not found, got %s", got)
	}
}

func TestFindRecipeRootDirectoryError(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, RecipeFileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	_, _, err := FindRecipeRoot(dir)
	if err == nil {
		t.Fatalf("expected error when wheelstage.toml is a directory")
	}
}
