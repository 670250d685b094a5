// Package templates embeds starter files written by 'wheelstage init'.
package templates

import (
	"embed"
	"fmt"
)

//go:embed assets
var assets embed.FS

// Read returns the embedded template with the given name.
func Read(name string) ([]byte, error) {
	data, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}
	return data, nil
}
