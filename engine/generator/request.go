package generator

import (
	"fmt"

	"github.com/atelierhq/atelier/engine/bundle"
	"github.com/atelierhq/atelier/engine/metadata"
	"github.com/go-playground/validator/v10"
)

// Options are the caller-supplied inputs of one Generate invocation.
type Options struct {
	// Bundle is the owning unit that receives the generated files
	Bundle *bundle.Bundle `validate:"required"`
	// Entity is the namespace-qualified entity name, e.g. "Blog/Post"
	Entity string `validate:"required"`
	// Metadata is the entity's field mapping set
	Metadata *metadata.ClassMetadata `validate:"required"`
	// Format selects the routing configuration dialect; unrecognized values
	// normalize to yaml
	Format string
	// RoutePrefix is the slash-separated prefix of generated route paths
	RoutePrefix string
	// WithWrite selects the read-write action set
	WithWrite bool
	// ControllerDir is an optional subdirectory controllers are organized
	// under within the bundle
	ControllerDir string
}

// request is the immutable per-invocation state threaded through the
// emission steps. Building it performs all precondition checks and no side
// effects, so a failed invocation leaves the filesystem untouched.
type request struct {
	bundle          *bundle.Bundle
	entity          EntityName
	meta            *metadata.ClassMetadata
	identifier      string
	format          ConfigFormat
	emitRouting     bool
	routePrefix     string
	routeNamePrefix string
	actions         []string
	dir             string
}

var validate = validator.New()

func newRequest(opts *Options) (*request, error) {
	if opts == nil {
		return nil, fmt.Errorf("generate options cannot be nil")
	}
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid generate options: %w", err)
	}
	entity, err := ParseEntity(opts.Entity)
	if err != nil {
		return nil, err
	}
	identifiers := opts.Metadata.Identifiers()
	if len(identifiers) != 1 {
		return nil, &ConfigurationError{
			Reason: "the CRUD generator expects the entity to have exactly one identifier field",
		}
	}
	if identifiers[0].Name != "id" {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("the CRUD generator expects the identifier field to be named \"id\", got %q", identifiers[0].Name),
		}
	}
	return &request{
		bundle:          opts.Bundle,
		entity:          entity,
		meta:            opts.Metadata,
		identifier:      identifiers[0].Name,
		format:          NormalizeFormat(opts.Format),
		// the routing file is gated on the format as given: an unrecognized
		// value normalizes to yaml everywhere else but still emits no file
		emitRouting:     ConfigFormat(opts.Format).EmitsRoutingFile(),
		routePrefix:     opts.RoutePrefix,
		routeNamePrefix: RouteNamePrefix(opts.RoutePrefix),
		actions:         Actions(opts.WithWrite),
		dir:             opts.ControllerDir,
	}, nil
}
