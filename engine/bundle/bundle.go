// Package bundle models the owning unit that receives generated files.
package bundle

import (
	"errors"
	"strings"
)

// Bundle is a handle to the target project unit. It is supplied by the
// caller and never mutated by generators.
type Bundle struct {
	// Name is the logical bundle name, e.g. "AcmeBlogBundle"
	Name string
	// Namespace is the bundle's root namespace, e.g. "Acme/BlogBundle"
	Namespace string
	// Path is the bundle's root directory on the target filesystem
	Path string
}

// New builds a bundle handle, deriving the name from the namespace when it
// is not given explicitly.
func New(name, namespace, path string) (*Bundle, error) {
	if path == "" {
		return nil, errors.New("bundle path is required")
	}
	namespace = strings.ReplaceAll(namespace, "\\", "/")
	if name == "" {
		name = strings.ReplaceAll(namespace, "/", "")
	}
	if name == "" {
		return nil, errors.New("bundle name or namespace is required")
	}
	return &Bundle{Name: name, Namespace: namespace, Path: path}, nil
}
