// Package skeleton ships the built-in skeleton themes and resolves logical
// template names against a selected theme with a default-theme fallback.
package skeleton

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// DefaultTheme is the theme every lookup falls back to.
const DefaultTheme = "default"

//go:embed templates
var embedded embed.FS

// Embedded returns a read-only view of the built-in skeleton themes.
func Embedded() afero.Fs {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// The embed layout is fixed at build time.
		panic(err)
	}
	return afero.FromIOFS{FS: sub}
}

// Mount layers an on-disk skeleton directory over the embedded themes, so
// custom themes can add to or shadow the built-in ones.
func Mount(base afero.Fs, dir string) afero.Fs {
	if dir == "" {
		return Embedded()
	}
	return afero.NewCopyOnWriteFs(Embedded(), afero.NewBasePathFs(base, dir))
}

// Manifest describes a skeleton theme. Themes may ship a theme.yaml; a
// missing manifest yields a manifest holding only the directory name.
type Manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Themes lists the themes available on fsys, sorted by name.
func Themes(fsys afero.Fs) ([]Manifest, error) {
	entries, err := afero.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list skeleton themes: %w", err)
	}
	var themes []Manifest
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest := Manifest{Name: entry.Name()}
		raw, err := afero.ReadFile(fsys, entry.Name()+"/theme.yaml")
		if err == nil {
			if err := yaml.Unmarshal(raw, &manifest); err != nil {
				return nil, fmt.Errorf("invalid manifest for theme %q: %w", entry.Name(), err)
			}
			if manifest.Name == "" {
				manifest.Name = entry.Name()
			}
		}
		themes = append(themes, manifest)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes, nil
}
