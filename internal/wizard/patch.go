// Package wizard implements the interactive recipe setup for wheelstage.
//
// # TOML Patching Strategy
//
// Recipe updates use line-based editing instead of the go-toml library's
// tree serialization. Serializing a parsed tree loses the comments and
// blank-line structure of the starter template, and users keep their
// recipes under version control where gratuitous reordering shows up as
// noise. The go-toml library is still used twice per patch: to validate
// the input syntax before editing and to verify the edited output still
// parses into a valid recipe.
package wizard

import (
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml"

	"github.com/conn-castle/wheelstage/internal/config"
	"github.com/conn-castle/wheelstage/internal/messages"
)

type recipeBlock struct {
	name    string
	isArray bool
	lines   []string
}

type recipeDocument struct {
	preamble []string
	blocks   []*recipeBlock
}

// PatchRecipe applies wizard choices to recipe content, preserving comments
// and layout. content must be valid TOML; the patched output is re-validated
// against the recipe schema before being returned.
func PatchRecipe(content string, choices *Choices) (string, error) {
	if _, err := toml.LoadBytes([]byte(content)); err != nil {
		return "", fmt.Errorf(messages.WizardParseRecipeFailedFmt, err)
	}

	doc := parseRecipeDocument(content)

	pkg := doc.section("package")
	pkg.setKey("name", tomlString(choices.PackageName))
	pkg.setKey("version", tomlString(choices.PackageVersion))
	pkg.setKey("source", tomlString(choices.SourceDir))
	pkg.setKey("prefix", tomlString(choices.Prefix))

	if choices.SubprojectDir != "" {
		sub := doc.sectionAfter("package.subproject", "package")
		sub.setKey("path", tomlString(choices.SubprojectDir))
	} else {
		doc.removeSection("package.subproject")
	}

	doc.section("channels").setKey("host", tomlStringArray(choices.HostPackages))

	assets := doc.section("assets")
	if choices.DesktopAsset != "" {
		assets.setKey("desktop", tomlString(choices.DesktopAsset))
	} else {
		assets.removeKey("desktop")
	}
	if choices.IconAsset != "" {
		assets.setKey("icon", tomlString(choices.IconAsset))
	} else {
		assets.removeKey("icon")
	}

	doc.replaceDependencyBlocks(choices.Dependencies)

	output := doc.render()
	if _, err := config.ParseRecipe([]byte(output), "wheelstage.toml"); err != nil {
		return "", fmt.Errorf(messages.WizardPatchedRecipeInvalidFmt, err)
	}
	return output, nil
}

// parseRecipeDocument splits content into a preamble and header-delimited
// blocks. Each block's lines include its header line.
func parseRecipeDocument(content string) *recipeDocument {
	doc := &recipeDocument{}
	var current *recipeBlock
	for _, line := range strings.Split(content, "\n") {
		if name, isArray, ok := parseHeader(line); ok {
			current = &recipeBlock{name: name, isArray: isArray, lines: []string{line}}
			doc.blocks = append(doc.blocks, current)
			continue
		}
		if current == nil {
			doc.preamble = append(doc.preamble, line)
			continue
		}
		current.lines = append(current.lines, line)
	}
	return doc
}

func parseHeader(line string) (name string, isArray bool, ok bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "[[") && strings.HasSuffix(trimmed, "]]") {
		return strings.TrimSpace(trimmed[2 : len(trimmed)-2]), true, true
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return strings.TrimSpace(trimmed[1 : len(trimmed)-1]), false, true
	}
	return "", false, false
}

// section returns the named section, creating an empty one at the end of the
// document when absent.
func (d *recipeDocument) section(name string) *recipeBlock {
	for _, b := range d.blocks {
		if !b.isArray && b.name == name {
			return b
		}
	}
	block := &recipeBlock{name: name, lines: []string{"", "[" + name + "]"}}
	d.blocks = append(d.blocks, block)
	return block
}

// sectionAfter returns the named section, creating it directly after the
// given anchor section when absent.
func (d *recipeDocument) sectionAfter(name string, after string) *recipeBlock {
	for _, b := range d.blocks {
		if !b.isArray && b.name == name {
			return b
		}
	}
	block := &recipeBlock{name: name, lines: []string{"", "[" + name + "]"}}
	for i, b := range d.blocks {
		if !b.isArray && b.name == after {
			d.blocks = append(d.blocks[:i+1], append([]*recipeBlock{block}, d.blocks[i+1:]...)...)
			return block
		}
	}
	d.blocks = append(d.blocks, block)
	return block
}

func (d *recipeDocument) removeSection(name string) {
	kept := d.blocks[:0]
	for _, b := range d.blocks {
		if !b.isArray && b.name == name {
			continue
		}
		kept = append(kept, b)
	}
	d.blocks = kept
}

// replaceDependencyBlocks drops every [[dependency]] block and inserts
// regenerated ones before the [install] section (or at the end when no
// [install] section exists).
func (d *recipeDocument) replaceDependencyBlocks(deps []DependencyEntry) {
	kept := d.blocks[:0]
	for _, b := range d.blocks {
		if b.isArray && b.name == "dependency" {
			continue
		}
		kept = append(kept, b)
	}
	d.blocks = kept

	var fresh []*recipeBlock
	for _, dep := range deps {
		lines := []string{"", "[[dependency]]", "name = " + tomlString(dep.Name)}
		if dep.MinVersion != "" {
			lines = append(lines, "min_version = "+tomlString(dep.MinVersion))
		}
		fresh = append(fresh, &recipeBlock{name: "dependency", isArray: true, lines: lines})
	}
	if len(fresh) == 0 {
		return
	}

	insert := len(d.blocks)
	for i, b := range d.blocks {
		if !b.isArray && b.name == "install" {
			insert = i
			break
		}
	}
	d.blocks = append(d.blocks[:insert], append(fresh, d.blocks[insert:]...)...)
}

func (d *recipeDocument) render() string {
	var lines []string
	lines = append(lines, d.preamble...)
	for _, b := range d.blocks {
		lines = append(lines, b.lines...)
	}
	// Collapse runs of blank lines left behind by removed blocks.
	var out []string
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n") + "\n"
}

// setKey replaces the value of an existing key line or appends the key to
// the end of the block. Full-line comments and blank lines are untouched.
func (b *recipeBlock) setKey(key string, value string) {
	rendered := key + " = " + value
	for i, line := range b.lines {
		if lineKey(line) == key {
			b.lines[i] = rendered
			return
		}
	}
	b.lines = append(b.lines, rendered)
}

func (b *recipeBlock) removeKey(key string) {
	kept := b.lines[:0]
	for _, line := range b.lines {
		if lineKey(line) == key {
			continue
		}
		kept = append(kept, line)
	}
	b.lines = kept
}

// lineKey returns the key of a bare "key = value" line, or "" for headers,
// comments, and blank lines.
func lineKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
		return ""
	}
	key, _, found := strings.Cut(trimmed, "=")
	if !found {
		return ""
	}
	return strings.TrimSpace(key)
}

func tomlString(v string) string {
	return fmt.Sprintf("%q", v)
}

func tomlStringArray(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = tomlString(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
