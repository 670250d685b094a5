package wheel

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/conn-castle/wheelstage/internal/messages"
)

// Builder invokes the external build tool to produce wheels.
// Each source tree is built into its own subdirectory of OutputDir so a
// failed build can never leave a stale wheel that looks like a success.
type Builder struct {
	// Python is the interpreter used to invoke the build tool ("python3"
	// when empty). Tests point this at a stub on PATH.
	Python string
	// OutputDir receives one subdirectory per built source tree.
	OutputDir string
	// Env is the full subprocess environment; nil inherits the parent's.
	Env []string
	// Out and Err receive the build tool's output verbatim.
	Out io.Writer
	Err io.Writer
}

// Build produces a wheel from srcDir into OutputDir/<label> and returns the
// parsed artifact. It fails fast when srcDir has no pyproject.toml or when
// the build tool exits non-zero.
func (b *Builder) Build(srcDir string, label string) (Artifact, error) {
	manifest := filepath.Join(srcDir, "pyproject.toml")
	if _, err := os.Stat(manifest); err != nil {
		return Artifact{}, fmt.Errorf(messages.WheelMissingManifestFmt, srcDir)
	}

	outDir := filepath.Join(b.OutputDir, label)
	if err := os.RemoveAll(outDir); err != nil {
		return Artifact{}, fmt.Errorf(messages.WheelCreateOutputDirFmt, outDir, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Artifact{}, fmt.Errorf(messages.WheelCreateOutputDirFmt, outDir, err)
	}

	cmd := exec.Command(b.python(), "-m", "build", "--wheel", "--outdir", outDir, srcDir)
	cmd.Stdout = b.Out
	cmd.Stderr = b.Err
	cmd.Env = b.Env
	if err := cmd.Run(); err != nil {
		return Artifact{}, fmt.Errorf(messages.WheelBuildFailedFmt, srcDir, err)
	}

	matches, err := filepath.Glob(filepath.Join(outDir, "*.whl"))
	if err != nil {
		return Artifact{}, fmt.Errorf(messages.WheelBuildFailedFmt, srcDir, err)
	}
	switch len(matches) {
	case 0:
		return Artifact{}, fmt.Errorf(messages.WheelNoArtifactFmt, outDir)
	case 1:
		return ParseFilename(matches[0])
	default:
		return Artifact{}, fmt.Errorf(messages.WheelAmbiguousOutputFmt, outDir, len(matches))
	}
}

func (b *Builder) python() string {
	if b.Python == "" {
		return "python3"
	}
	return b.Python
}
