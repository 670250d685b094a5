// Package assets places static desktop-integration files into the staging root.
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/wheelstage/internal/fsutil"
	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/warnings"
)

// IconReferenceLiteral is the exact default icon path the desktop entry is
// expected to carry; it is replaced with the installed package name.
const IconReferenceLiteral = "Icon=/usr/share/pixmaps/mcp-central.png"

// Placer copies the menu-entry descriptor and icon to their fixed
// destinations under the staging prefix and rewrites the icon reference.
type Placer struct {
	// StagingRoot and Prefix locate the destination tree.
	StagingRoot string
	Prefix      string
	// PackageName names the installed files and the rewritten icon reference.
	PackageName string
	// DesktopSource and IconSource are the asset source paths; either may be
	// empty, which skips that asset.
	DesktopSource string
	IconSource    string
	// DiffWriter, when set, receives a unified diff of the descriptor rewrite.
	DiffWriter io.Writer
}

// Place copies both assets and performs the single icon-reference
// substitution. A missing icon literal degrades gracefully: the descriptor
// is still placed and a warning is returned instead of an error.
func (p *Placer) Place() ([]warnings.Warning, error) {
	var warns []warnings.Warning

	if p.DesktopSource != "" {
		warn, err := p.placeDesktop()
		if err != nil {
			return warns, err
		}
		if warn != nil {
			warns = append(warns, *warn)
		}
	}

	if p.IconSource != "" {
		dest := filepath.Join(p.StagingRoot, p.Prefix, "share", "pixmaps", p.PackageName+".png")
		if err := p.copyAsset(p.IconSource, dest); err != nil {
			return warns, err
		}
	}

	return warns, nil
}

// placeDesktop writes the descriptor with the icon reference rewritten to
// the installed package name, so the menu entry resolves post-install.
func (p *Placer) placeDesktop() (*warnings.Warning, error) {
	data, err := os.ReadFile(p.DesktopSource)
	if err != nil {
		return nil, fmt.Errorf(messages.AssetsReadDesktopFmt, p.DesktopSource, err)
	}

	content := string(data)
	rewritten := content
	var warn *warnings.Warning
	if strings.Contains(content, IconReferenceLiteral) {
		rewritten = strings.Replace(content, IconReferenceLiteral, "Icon="+p.PackageName, 1)
	} else {
		warn = &warnings.Warning{
			Code:    warnings.CodeAssetIconReferenceMissing,
			Subject: p.DesktopSource,
			Message: "desktop entry does not contain the expected icon reference; menu icon may not resolve",
			Fix:     "set the Icon line to " + IconReferenceLiteral + " or fix it manually after install",
			Details: []string{warnings.Detailf("expected literal %q", IconReferenceLiteral)},
		}
	}

	dest := filepath.Join(p.StagingRoot, p.Prefix, "share", "applications", p.PackageName+".desktop")
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, fmt.Errorf(messages.AssetsCreateDirFmt, filepath.Dir(dest), err)
	}
	if err := fsutil.WriteFileAtomic(dest, []byte(rewritten), 0o644); err != nil {
		return nil, fmt.Errorf(messages.AssetsWriteFmt, dest, err)
	}

	if p.DiffWriter != nil && rewritten != content {
		_, _ = fmt.Fprintf(p.DiffWriter, messages.AssetsDiffHeaderFmt, dest)
		_, _ = fmt.Fprint(p.DiffWriter, udiff.Unified(p.DesktopSource, dest, content, rewritten))
	}

	return warn, nil
}

func (p *Placer) copyAsset(src string, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf(messages.AssetsCreateDirFmt, filepath.Dir(dest), err)
	}
	if err := fsutil.CopyFile(src, dest, 0o644); err != nil {
		return fmt.Errorf(messages.AssetsCopyFailedFmt, src, err)
	}
	return nil
}
