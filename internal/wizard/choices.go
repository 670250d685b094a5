package wizard

import (
	"fmt"
	"strings"

	"github.com/conn-castle/wheelstage/internal/messages"
)

// DependencyEntry is one declared runtime dependency collected by the wizard.
type DependencyEntry struct {
	Name       string
	MinVersion string
}

// Choices tracks user selections across wizard steps.
type Choices struct {
	PackageName    string
	PackageVersion string
	SourceDir      string
	SubprojectDir  string
	Prefix         string

	HostPackages []string
	Dependencies []DependencyEntry

	DesktopAsset string
	IconAsset    string
}

// NewChoices returns a Choices struct initialized with defaults.
func NewChoices() *Choices {
	return &Choices{
		PackageVersion: "0.1.0",
		SourceDir:      ".",
		Prefix:         "/usr",
	}
}

// Clone returns a deep copy used for back-navigation snapshots.
func (c *Choices) Clone() *Choices {
	if c == nil {
		return nil
	}
	clone := *c
	clone.HostPackages = append([]string(nil), c.HostPackages...)
	clone.Dependencies = append([]DependencyEntry(nil), c.Dependencies...)
	return &clone
}

// splitCSV splits a comma-separated answer into trimmed non-empty entries.
func splitCSV(answer string) []string {
	var out []string
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseDependencyEntry parses "name" or "name>=version".
func parseDependencyEntry(entry string) (DependencyEntry, error) {
	name, version, found := strings.Cut(entry, ">=")
	name = strings.TrimSpace(name)
	version = strings.TrimSpace(version)
	if name == "" || strings.ContainsAny(name, " <>=!~") || (found && version == "") {
		return DependencyEntry{}, fmt.Errorf(messages.WizardInvalidDependencyEntryFmt, entry)
	}
	return DependencyEntry{Name: name, MinVersion: version}, nil
}
