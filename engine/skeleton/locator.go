package skeleton

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/atelierhq/atelier/pkg/logger"
	"github.com/spf13/afero"
)

// errThemeUnavailable signals that the selected theme cannot be consulted at
// all (its root directory is absent), so the pair lookup is not resolvable.
var errThemeUnavailable = errors.New("skeleton theme unavailable")

// NotFoundError is returned when a template resolves in neither the
// selected theme nor the default theme.
type NotFoundError struct {
	Logical string
	Themes  []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("skeleton template %q not found in themes %v", e.Logical, e.Themes)
}

// Locator resolves logical template names against a selected theme with a
// fallback to the default theme. A theme overrides only the templates it
// ships; every other template resolves to the default theme's copy.
type Locator struct {
	fs           afero.Fs
	theme        string
	defaultTheme string
}

// NewLocator creates a locator over fsys, whose top-level directories are
// theme roots.
func NewLocator(fsys afero.Fs, theme, defaultTheme string) *Locator {
	if theme == "" {
		theme = defaultTheme
	}
	return &Locator{fs: fsys, theme: theme, defaultTheme: defaultTheme}
}

// FS returns the filesystem the resolved paths are valid on.
func (l *Locator) FS() afero.Fs {
	return l.fs
}

// Locate resolves a logical template name, e.g. "crud/views/list.html.twig.tmpl".
// Resolution is two-phase: the (themed, default) candidate pair is tried
// first; only when the selected theme cannot be consulted does it retry the
// default candidate alone. Failure of both phases is fatal.
func (l *Locator) Locate(ctx context.Context, logical string) (string, error) {
	fallback := path.Join(l.defaultTheme, logical)
	resolved, err := l.resolvePair(path.Join(l.theme, logical), fallback)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, errThemeUnavailable) {
		return "", err
	}
	logger.FromContext(ctx).Debug("skeleton theme unavailable, retrying default theme",
		"theme", l.theme, "template", logical)
	return l.resolveOne(fallback, logical)
}

// resolvePair resolves the themed candidate with a per-template fallback to
// the default candidate. It reports errThemeUnavailable when the selected
// theme's root is missing so the caller can retry the default alone.
func (l *Locator) resolvePair(themed, fallback string) (string, error) {
	if l.theme != l.defaultTheme {
		ok, err := afero.DirExists(l.fs, l.theme)
		if err != nil {
			return "", fmt.Errorf("failed to inspect theme %q: %w", l.theme, err)
		}
		if !ok {
			return "", fmt.Errorf("theme %q: %w", l.theme, errThemeUnavailable)
		}
	}
	for _, candidate := range []string{themed, fallback} {
		ok, err := afero.Exists(l.fs, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to inspect template %q: %w", candidate, err)
		}
		if ok {
			return candidate, nil
		}
	}
	return "", &NotFoundError{Logical: strippedLogical(themed, l.theme), Themes: []string{l.theme, l.defaultTheme}}
}

// resolveOne resolves a single candidate path.
func (l *Locator) resolveOne(candidate, logical string) (string, error) {
	ok, err := afero.Exists(l.fs, candidate)
	if err != nil {
		return "", fmt.Errorf("failed to inspect template %q: %w", candidate, err)
	}
	if !ok {
		return "", &NotFoundError{Logical: logical, Themes: []string{l.theme, l.defaultTheme}}
	}
	return candidate, nil
}

func strippedLogical(candidate, theme string) string {
	if rest, ok := strings.CutPrefix(candidate, theme+"/"); ok {
		return rest
	}
	return candidate
}
