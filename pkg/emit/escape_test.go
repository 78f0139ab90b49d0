package emit

import (
	"testing"

	"github.com/goliatone/go-formcode/pkg/model"
)

func TestEscapeAttr(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"quote", `say "hi"`, `say \"hi\"`},
		{"backslash", `a\b`, `a\\b`},
		{"newline", "a\nb", `a\nb`},
		{"backslash before quote", `\"`, `\\\"`},
		{"markup untouched", "<b>&</b>", "<b>&</b>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := escapeAttr(tc.in); got != tc.want {
				t.Fatalf("escapeAttr(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEscapeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"braces", "{value}", "&#123;value&#125;"},
		{"quotes untouched", `say "hi"`, `say "hi"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := escapeText(tc.in); got != tc.want {
				t.Fatalf("escapeText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDefaultLiteral(t *testing.T) {
	min := 5.0
	cases := []struct {
		name string
		in   model.Field
		want string
		omit bool
	}{
		{name: "string", in: model.Field{Type: model.TypeString}, want: `""`},
		{name: "number", in: model.Field{Type: model.TypeNumber}, want: "0"},
		{name: "bounded number", in: model.Field{Type: model.TypeNumber,
			Constraints: model.Constraints{Min: &min}}, want: "5"},
		{name: "boolean", in: model.Field{Type: model.TypeBoolean}, want: "false"},
		{name: "date omitted", in: model.Field{Type: model.TypeDate}, omit: true},
		{name: "enum picks first", in: model.Field{Type: model.TypeEnum,
			Metadata: model.Metadata{Values: []string{"red", "green"}}}, want: `"red"`},
		{name: "array", in: model.Field{Type: model.TypeArray}, want: "[]"},
		{name: "record", in: model.Field{Type: model.TypeRecord}, want: "{}"},
		{name: "union", in: model.Field{Type: model.TypeUnion}, want: "{}"},
		{name: "external ref", in: model.Field{Type: model.TypeObject, SchemaRef: "addressSchema"}, want: "{}"},
		{
			name: "object recurses",
			in: model.Field{Type: model.TypeObject, Metadata: model.Metadata{Children: []model.Field{
				{Name: "street", Type: model.TypeString},
				{Name: "floor", Type: model.TypeNumber},
			}}},
			want: `{ street: "", floor: 0 }`,
		},
		{
			name: "tuple keeps positions",
			in: model.Field{Type: model.TypeTuple, Metadata: model.Metadata{Items: []model.Field{
				{Name: "0", Type: model.TypeNumber},
				{Name: "1", Type: model.TypeDate},
			}}},
			want: "[0, undefined]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := defaultLiteral(tc.in)
			if tc.omit {
				if ok {
					t.Fatalf("expected field to be omitted, got %q", got)
				}
				return
			}
			if !ok {
				t.Fatalf("field unexpectedly omitted")
			}
			if got != tc.want {
				t.Fatalf("defaultLiteral = %q, want %q", got, tc.want)
			}
		})
	}
}
