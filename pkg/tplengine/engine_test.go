package tplengine

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestRenderString_Basic(t *testing.T) {
	e := NewEngine(afero.NewMemMapFs())
	got, err := e.RenderString("hello", "Hello [[ .name ]]", map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("RenderString error: %v", err)
	}
	if got != "Hello World" {
		t.Fatalf("RenderString got %q, want %q", got, "Hello World")
	}
}

func TestRenderString_PassesThroughTargetMarkup(t *testing.T) {
	e := NewEngine(afero.NewMemMapFs())
	got, err := e.RenderString("view", "{{ entity.[[ .field ]] }}", map[string]any{"field": "title"})
	if err != nil {
		t.Fatalf("RenderString error: %v", err)
	}
	if got != "{{ entity.title }}" {
		t.Fatalf("RenderString got %q", got)
	}
}

func TestRenderString_MissingKeyErrors(t *testing.T) {
	e := NewEngine(afero.NewMemMapFs())
	_, err := e.RenderString("needs_name", "Hi [[ .name ]]", map[string]any{})
	if err == nil {
		t.Fatal("expected error for missing key, got nil")
	}
	if !strings.Contains(err.Error(), "map has no entry for key") {
		t.Fatalf("expected missingkey error, got %v", err)
	}
}

func TestRenderString_SprigFuncs(t *testing.T) {
	e := NewEngine(afero.NewMemMapFs())
	got, err := e.RenderString("case", "[[ .word | upper ]]", map[string]any{"word": "post"})
	if err != nil {
		t.Fatalf("RenderString error: %v", err)
	}
	if got != "POST" {
		t.Fatalf("RenderString got %q, want POST", got)
	}
}

func TestRenderFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "skeleton/greeting.tmpl", []byte("Hi [[ .name ]]!"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	e := NewEngine(fsys)
	got, err := e.RenderFile("skeleton/greeting.tmpl", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("RenderFile error: %v", err)
	}
	if got != "Hi Ada!" {
		t.Fatalf("RenderFile got %q", got)
	}
}

func TestRenderFile_MissingFile(t *testing.T) {
	e := NewEngine(afero.NewMemMapFs())
	_, err := e.RenderFile("skeleton/nope.tmpl", nil)
	if err == nil {
		t.Fatal("expected error for missing template file")
	}
}

func TestWithDelims(t *testing.T) {
	e := NewEngine(afero.NewMemMapFs()).WithDelims("{{", "}}")
	got, err := e.RenderString("std", "Hello {{ .name }}", map[string]any{"name": "Go"})
	if err != nil {
		t.Fatalf("RenderString error: %v", err)
	}
	if got != "Hello Go" {
		t.Fatalf("RenderString got %q", got)
	}
}
