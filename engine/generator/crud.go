// Package generator emits bundle scaffolding from skeleton templates. The
// CRUD generator produces a controller, view templates, a functional-test
// stub and a routing configuration file for one entity.
package generator

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/atelierhq/atelier/engine/skeleton"
	"github.com/atelierhq/atelier/pkg/logger"
	"github.com/atelierhq/atelier/pkg/tplengine"
	"github.com/spf13/afero"
)

// CrudGenerator generates a list/show/create/edit/delete workflow for a
// mapped entity. One invocation runs its emission steps strictly in
// sequence; a failing step aborts the rest and earlier outputs remain on
// disk.
type CrudGenerator struct {
	fs      afero.Fs
	locator *skeleton.Locator
	engine  *tplengine.Engine
}

// NewCrud creates a CRUD generator writing to targetFs and resolving
// skeleton templates through locator.
func NewCrud(targetFs afero.Fs, locator *skeleton.Locator) *CrudGenerator {
	engine := tplengine.NewEngine(locator.FS()).AddFunc("humanize", humanize)
	return &CrudGenerator{fs: targetFs, locator: locator, engine: engine}
}

// Generate runs the full emission sequence for one entity. All
// preconditions are checked before the first write; the controller path
// collision check is the single overwrite guard.
func (g *CrudGenerator) Generate(ctx context.Context, opts *Options) error {
	req, err := newRequest(opts)
	if err != nil {
		return err
	}
	if err := g.generateController(ctx, req); err != nil {
		return err
	}
	if err := g.generateViews(ctx, req); err != nil {
		return err
	}
	if err := g.generateTests(ctx, req); err != nil {
		return err
	}
	return g.generateConfiguration(ctx, req)
}

func (g *CrudGenerator) generateController(ctx context.Context, req *request) error {
	target := filepath.Join(
		req.bundle.Path, "Controller", req.dir,
		filepath.FromSlash(req.entity.Namespace), req.entity.Class+"Controller.php",
	)
	exists, err := afero.Exists(g.fs, target)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", target, err)
	}
	if exists {
		return &AlreadyExistsError{Path: target}
	}
	return g.renderTo(ctx, "crud/controller.php.tmpl", target, req.controllerVars())
}

func (g *CrudGenerator) generateViews(ctx context.Context, req *request) error {
	viewDir := filepath.Join(req.bundle.Path, "Resources", "views", req.dir, filepath.FromSlash(req.entity.Full))
	if err := g.fs.MkdirAll(viewDir, 0o755); err != nil {
		return fmt.Errorf("failed to create view directory %s: %w", viewDir, err)
	}
	if err := g.generateView(ctx, req, viewDir, ActionList); err != nil {
		return err
	}
	for _, action := range []string{ActionFilter, ActionShow, ActionNew, ActionEdit} {
		if !hasAction(req.actions, action) {
			continue
		}
		if err := g.generateView(ctx, req, viewDir, action); err != nil {
			return err
		}
	}
	return nil
}

func (g *CrudGenerator) generateView(ctx context.Context, req *request, viewDir, name string) error {
	target := filepath.Join(viewDir, name+".html.twig")
	return g.renderTo(ctx, "crud/views/"+name+".html.twig.tmpl", target, req.viewVars(name))
}

func (g *CrudGenerator) generateTests(ctx context.Context, req *request) error {
	target := filepath.Join(
		req.bundle.Path, "Tests", "Controller",
		filepath.FromSlash(req.entity.Namespace), req.entity.Class+"ControllerTest.php",
	)
	return g.renderTo(ctx, "crud/tests/controller_test.php.tmpl", target, req.baseVars())
}

func (g *CrudGenerator) generateConfiguration(ctx context.Context, req *request) error {
	if !req.emitRouting {
		logger.FromContext(ctx).Debug("skipping routing configuration",
			"format", string(req.format), "entity", req.entity.Full)
		return nil
	}
	target := filepath.Join(
		req.bundle.Path, "Resources", "config", "routing",
		req.entity.RoutingBasename()+"."+string(req.format),
	)
	return g.renderTo(ctx, "crud/config/routing."+string(req.format)+".tmpl", target, req.routingVars())
}

// renderTo resolves the logical skeleton template, renders it and writes
// the result, creating parent directories as needed.
func (g *CrudGenerator) renderTo(ctx context.Context, logical, target string, vars map[string]any) error {
	tmplPath, err := g.locator.Locate(ctx, logical)
	if err != nil {
		return err
	}
	content, err := g.engine.RenderFile(tmplPath, vars)
	if err != nil {
		return err
	}
	if err := g.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(target), err)
	}
	if err := afero.WriteFile(g.fs, target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	logger.FromContext(ctx).Info("create", "path", target)
	return nil
}

func (r *request) baseVars() map[string]any {
	return map[string]any{
		"actions":           r.actions,
		"route_prefix":      r.routePrefix,
		"route_name_prefix": r.routeNamePrefix,
		"bundle":            r.bundle.Name,
		"namespace":         r.bundle.Namespace,
		"dir":               r.dir,
		"entity":            r.entity.Full,
		"entity_class":      r.entity.Class,
		"entity_namespace":  r.entity.Namespace,
		"entity_singular":   r.entity.Singular(),
		"entity_plural":     r.entity.Plural(),
		"format":            string(r.format),
	}
}

func (r *request) controllerVars() map[string]any {
	vars := r.baseVars()
	vars["view_path"] = path.Join(r.dir, r.entity.Full)
	return vars
}

func (r *request) viewVars(name string) map[string]any {
	vars := r.baseVars()
	switch name {
	case ActionList:
		vars["fields"] = r.meta.Fields
		vars["identifier"] = r.identifier
		vars["record_actions"] = RecordActions(r.actions)
	case ActionShow:
		vars["fields"] = r.meta.Fields
		vars["identifier"] = r.identifier
	}
	return vars
}

func (r *request) routingVars() map[string]any {
	vars := r.baseVars()
	vars["controller"] = path.Join(r.dir, r.entity.Full)
	return vars
}
