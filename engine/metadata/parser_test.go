package metadata

import (
	"strings"
	"testing"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Field
		wantErr string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "single field",
			input: "title:string",
			want:  []Field{{Name: "title", Type: "string"}},
		},
		{
			name:  "multiple fields with nullable",
			input: "title:string,body:text,published_at:datetime?",
			want: []Field{
				{Name: "title", Type: "string"},
				{Name: "body", Type: "text"},
				{Name: "published_at", Type: "datetime", Nullable: true},
			},
		},
		{
			name:  "id marked as identifier",
			input: "id:integer,title:string",
			want: []Field{
				{Name: "id", Type: "integer", Identifier: true},
				{Name: "title", Type: "string"},
			},
		},
		{
			name:  "whitespace and empty parts tolerated",
			input: " title:string , ,body:text ",
			want: []Field{
				{Name: "title", Type: "string"},
				{Name: "body", Type: "text"},
			},
		},
		{
			name:    "missing type",
			input:   "title",
			wantErr: "expected 'name:type'",
		},
		{
			name:    "empty name",
			input:   ":string",
			wantErr: "empty field name",
		},
		{
			name:    "unknown type",
			input:   "title:varchar",
			wantErr: "unknown type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := ParseFields(tt.input)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseFields(%q) error = %v, want containing %q", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFields(%q) error: %v", tt.input, err)
			}
			if len(meta.Fields) != len(tt.want) {
				t.Fatalf("ParseFields(%q) got %d fields, want %d", tt.input, len(meta.Fields), len(tt.want))
			}
			for i, f := range meta.Fields {
				if f != tt.want[i] {
					t.Fatalf("field %d = %+v, want %+v", i, f, tt.want[i])
				}
			}
		})
	}
}

func TestWithIdentifier(t *testing.T) {
	t.Run("adds id when absent", func(t *testing.T) {
		meta, err := ParseFields("title:string")
		if err != nil {
			t.Fatal(err)
		}
		meta = meta.WithIdentifier()
		ids := meta.Identifiers()
		if len(ids) != 1 || ids[0].Name != "id" || ids[0].Type != "integer" {
			t.Fatalf("Identifiers() = %+v", ids)
		}
		if meta.Fields[0].Name != "id" {
			t.Fatalf("identifier not first: %+v", meta.Fields)
		}
	})
	t.Run("keeps declared identifier", func(t *testing.T) {
		meta, err := ParseFields("id:integer,title:string")
		if err != nil {
			t.Fatal(err)
		}
		meta = meta.WithIdentifier()
		if len(meta.Fields) != 2 {
			t.Fatalf("unexpected fields: %+v", meta.Fields)
		}
	})
}
