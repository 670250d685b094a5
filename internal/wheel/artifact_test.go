package wheel

import "testing"

func TestParseFilename(t *testing.T) {
	artifact, err := ParseFilename("/out/primary/mcp_central-2.4.1-py3-none-any.whl")
	if err != nil {
		t.Fatalf("ParseFilename: %v", err)
	}
	if artifact.Name != "mcp-central" {
		t.Fatalf("unexpected name: %q", artifact.Name)
	}
	if artifact.Version != "2.4.1" {
		t.Fatalf("unexpected version: %q", artifact.Version)
	}
	if artifact.Path != "/out/primary/mcp_central-2.4.1-py3-none-any.whl" {
		t.Fatalf("unexpected path: %q", artifact.Path)
	}
}

func TestParseFilenameRejectsNonWheel(t *testing.T) {
	if _, err := ParseFilename("/out/archive.tar.gz"); err == nil {
		t.Fatal("expected error for non-wheel file")
	}
}

func TestParseFilenameRejectsMissingVersion(t *testing.T) {
	if _, err := ParseFilename("nameonly.whl"); err == nil {
		t.Fatal("expected error for filename without version segment")
	}
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"MCP_Central":  "mcp-central",
		"mcp.central":  "mcp-central",
		"mcp--central": "mcp-central",
		"mcp__central": "mcp-central",
		"Requests":     "requests",
		"platformdirs": "platformdirs",
		"A.b_c-D":      "a-b-c-d",
	}
	for input, want := range cases {
		if got := NormalizeName(input); got != want {
			t.Errorf("NormalizeName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizedNamesCompareEqual(t *testing.T) {
	// Wheel filenames use underscores where project metadata uses dashes.
	if NormalizeName("mcp_central") != NormalizeName("mcp-central") {
		t.Fatal("underscore and dash forms must normalize identically")
	}
}
