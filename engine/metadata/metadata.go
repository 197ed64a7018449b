// Package metadata describes the persisted fields of an entity, as supplied
// by the caller or parsed from the --fields command-line DSL.
package metadata

// Field is a single mapped field of an entity.
type Field struct {
	// Name is the field name as it appears in storage and templates
	Name string
	// Type is the storage type, e.g. "string", "text", "integer", "datetime"
	Type string
	// Nullable marks optional fields
	Nullable bool
	// Identifier marks the field as part of the identifier set
	Identifier bool
}

// ClassMetadata is the ordered field mapping set of one entity.
type ClassMetadata struct {
	Fields []Field
}

// Identifiers returns the identifier fields in declaration order.
func (m *ClassMetadata) Identifiers() []Field {
	var ids []Field
	for _, f := range m.Fields {
		if f.Identifier {
			ids = append(ids, f)
		}
	}
	return ids
}

// HasField reports whether a field with the given name is mapped.
func (m *ClassMetadata) HasField(name string) bool {
	for _, f := range m.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}
