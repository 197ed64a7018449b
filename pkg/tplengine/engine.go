// Package tplengine renders skeleton template files with text/template and
// the sprig function map. Skeleton output frequently contains `{{ }}` markup
// of the target framework's own template language, so the engine parses with
// `[[ ]]` delimiters by default.
package tplengine

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/afero"
)

const (
	defaultLeftDelim  = "[["
	defaultRightDelim = "]]"
)

// Engine is the template rendering engine
type Engine struct {
	fs         afero.Fs
	funcs      template.FuncMap
	leftDelim  string
	rightDelim string
}

// NewEngine creates an engine that reads template files from fsys
func NewEngine(fsys afero.Fs) *Engine {
	return &Engine{
		fs:         fsys,
		funcs:      sprig.TxtFuncMap(),
		leftDelim:  defaultLeftDelim,
		rightDelim: defaultRightDelim,
	}
}

// WithDelims overrides the template delimiters
func (e *Engine) WithDelims(left, right string) *Engine {
	e.leftDelim = left
	e.rightDelim = right
	return e
}

// AddFunc registers an extra template function
func (e *Engine) AddFunc(name string, fn any) *Engine {
	e.funcs[name] = fn
	return e
}

// RenderString renders a template string with the given context
func (e *Engine) RenderString(name, templateStr string, context map[string]any) (string, error) {
	tmpl, err := template.New(name).
		Delims(e.leftDelim, e.rightDelim).
		Option("missingkey=error").
		Funcs(e.funcs).
		Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, context); err != nil {
		return "", fmt.Errorf("template execution error in %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderFile reads a template file from the engine's filesystem and renders
// it with the given context
func (e *Engine) RenderFile(path string, context map[string]any) (string, error) {
	templateBytes, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return e.RenderString(path, string(templateBytes), context)
}
