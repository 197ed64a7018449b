package generator

import (
	"fmt"
	"strings"
)

// EntityName is the decomposed, namespace-qualified name of an entity.
type EntityName struct {
	// Full is the slash-separated qualified name, e.g. "Blog/Post"
	Full string
	// Namespace is the prefix before the last separator, "" when absent
	Namespace string
	// Class is the simple class name, e.g. "Post"
	Class string
}

// ParseEntity decomposes an entity name. Both "/" and "\" are accepted as
// namespace separators.
func ParseEntity(name string) (EntityName, error) {
	full := strings.Trim(strings.ReplaceAll(name, "\\", "/"), "/")
	if full == "" {
		return EntityName{}, fmt.Errorf("entity name is required")
	}
	for _, segment := range strings.Split(full, "/") {
		if segment == "" {
			return EntityName{}, fmt.Errorf("invalid entity name %q", name)
		}
	}
	n := EntityName{Full: full, Class: full}
	if idx := strings.LastIndex(full, "/"); idx >= 0 {
		n.Namespace = full[:idx]
		n.Class = full[idx+1:]
	}
	return n, nil
}

// Singular is the lower-cased simple class name.
func (n EntityName) Singular() string {
	return strings.ToLower(n.Class)
}

// Plural appends "s" to the singular form. The suffix rule is deliberately
// naive: "Box" pluralizes to "boxs".
func (n EntityName) Plural() string {
	return n.Singular() + "s"
}

// RoutingBasename is the lower-cased qualified name with namespace
// separators turned into underscores, e.g. "Blog/Post" -> "blog_post".
func (n EntityName) RoutingBasename() string {
	return strings.ToLower(strings.ReplaceAll(n.Full, "/", "_"))
}

// RouteNamePrefix turns a slash-separated route prefix into the token used
// to namespace generated route identifiers.
func RouteNamePrefix(routePrefix string) string {
	return strings.ReplaceAll(routePrefix, "/", "_")
}

// humanize renders a storage field name as a label: "published_at" becomes
// "Published at".
func humanize(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
