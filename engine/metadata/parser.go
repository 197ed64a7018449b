package metadata

import (
	"fmt"
	"strings"
)

// storageTypes are the field types the skeleton templates know how to
// render form widgets and table cells for.
var storageTypes = map[string]bool{
	"string":   true,
	"text":     true,
	"integer":  true,
	"float":    true,
	"decimal":  true,
	"boolean":  true,
	"date":     true,
	"datetime": true,
}

// ParseFields parses the --fields DSL into a ClassMetadata.
// Format: "title:string,body:text,published_at:datetime?"
// A field named "id" is treated as the identifier.
func ParseFields(fieldsStr string) (*ClassMetadata, error) {
	meta := &ClassMetadata{}
	for _, part := range strings.Split(fieldsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field, err := parseField(part)
		if err != nil {
			return nil, err
		}
		meta.Fields = append(meta.Fields, field)
	}
	return meta, nil
}

// parseField parses a single "name:type" spec, with a trailing "?" marking
// the field nullable.
func parseField(spec string) (Field, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return Field{}, fmt.Errorf("invalid field spec %q: expected 'name:type'", spec)
	}
	name := strings.TrimSpace(parts[0])
	typeSpec := strings.TrimSpace(parts[1])
	if name == "" {
		return Field{}, fmt.Errorf("invalid field spec %q: empty field name", spec)
	}
	nullable := strings.HasSuffix(typeSpec, "?")
	if nullable {
		typeSpec = typeSpec[:len(typeSpec)-1]
	}
	if !storageTypes[typeSpec] {
		return Field{}, fmt.Errorf("invalid field spec %q: unknown type %q", spec, typeSpec)
	}
	return Field{
		Name:       name,
		Type:       typeSpec,
		Nullable:   nullable,
		Identifier: name == "id",
	}, nil
}

// WithIdentifier prepends the conventional "id:integer" identifier when the
// metadata declares none.
func (m *ClassMetadata) WithIdentifier() *ClassMetadata {
	if len(m.Identifiers()) > 0 {
		return m
	}
	out := &ClassMetadata{Fields: make([]Field, 0, len(m.Fields)+1)}
	out.Fields = append(out.Fields, Field{Name: "id", Type: "integer", Identifier: true})
	out.Fields = append(out.Fields, m.Fields...)
	return out
}
