// Package wheel builds installable wheel artifacts from source trees.
package wheel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/wheelstage/internal/messages"
)

// Artifact is a built, installable distributable unit.
type Artifact struct {
	// Name is the normalized distribution name parsed from the wheel filename.
	Name    string
	Version string
	Path    string
}

// ParseFilename extracts the distribution name and version from a wheel
// filename per the distribution-version-*.whl convention. The returned name
// is normalized for comparison against declared dependency names.
func ParseFilename(path string) (Artifact, error) {
	base := filepath.Base(path)
	stem, ok := strings.CutSuffix(base, ".whl")
	if !ok {
		return Artifact{}, fmt.Errorf(messages.WheelBadFilenameFmt, base)
	}
	parts := strings.Split(stem, "-")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Artifact{}, fmt.Errorf(messages.WheelBadFilenameFmt, base)
	}
	return Artifact{
		Name:    NormalizeName(parts[0]),
		Version: parts[1],
		Path:    path,
	}, nil
}

// NormalizeName canonicalizes a distribution name: lowercase, with runs of
// '-', '_' and '.' collapsed to a single '-'. Wheel filenames use
// underscores where project metadata uses dashes; both must compare equal.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		if r == '-' || r == '_' || r == '.' {
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingSep = false
		b.WriteRune(r)
	}
	return b.String()
}
