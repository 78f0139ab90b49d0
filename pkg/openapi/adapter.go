// Package openapi converts OpenAPI 3 component schemas into schema node
// trees, so OpenAPI documents can drive form generation the same way
// hand-built schema values do.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formcode/internal/ident"
	"github.com/goliatone/go-formcode/pkg/schema"
)

const componentRefPrefix = "#/components/schemas/"

// Converter holds a loaded OpenAPI document and converts its component
// schemas on demand.
type Converter struct {
	spec *openapi3.T
}

// Load parses an OpenAPI document from raw bytes.
func Load(ctx context.Context, data []byte) (*Converter, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return &Converter{spec: spec}, nil
}

// LoadFile parses an OpenAPI document from disk.
func LoadFile(ctx context.Context, path string) (*Converter, error) {
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	spec, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", path, err)
	}
	return &Converter{spec: spec}, nil
}

// Component converts the named component schema into a schema node.
func (c *Converter) Component(name string) (schema.Node, error) {
	ref, err := c.component(name)
	if err != nil {
		return nil, err
	}
	node, err := convert(ref.Value)
	if err != nil {
		return nil, fmt.Errorf("openapi: component %q: %w", name, err)
	}
	return node, nil
}

// Components converts every component schema, keyed by the identifier a
// reference to it resolves to.
func (c *Converter) Components() (map[string]schema.Node, error) {
	if c.spec == nil || c.spec.Components == nil {
		return nil, nil
	}
	result := make(map[string]schema.Node, len(c.spec.Components.Schemas))
	for name, ref := range c.spec.Components.Schemas {
		if ref == nil || ref.Value == nil {
			continue
		}
		node, err := convert(ref.Value)
		if err != nil {
			return nil, fmt.Errorf("openapi: component %q: %w", name, err)
		}
		result[refIdentifier(name)] = node
	}
	return result, nil
}

func (c *Converter) component(name string) (*openapi3.SchemaRef, error) {
	if c.spec == nil || c.spec.Components == nil {
		return nil, errors.New("openapi: document has no component schemas")
	}
	ref, ok := c.spec.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: component schema %q not found", name)
	}
	return ref, nil
}

// SchemaIdentifier derives the identifier a component is declared under in
// Components: "Address" becomes "addressSchema".
func SchemaIdentifier(component string) string {
	return refIdentifier(component)
}

// refIdentifier derives the schema identifier a component reference resolves
// to: "Address" becomes "addressSchema".
func refIdentifier(component string) string {
	return ident.LowerFirst(component) + "Schema"
}

// convertRef handles the reference-or-value split: a component reference
// becomes a name lookup, anything else converts in place.
func convertRef(ref *openapi3.SchemaRef) (schema.Node, error) {
	if ref == nil {
		return nil, errors.New("nil schema reference")
	}
	if strings.HasPrefix(ref.Ref, componentRefPrefix) {
		return schema.Ref(refIdentifier(strings.TrimPrefix(ref.Ref, componentRefPrefix))), nil
	}
	if ref.Value == nil {
		return nil, fmt.Errorf("unresolved schema reference %q", ref.Ref)
	}
	return convert(ref.Value)
}

func convert(src *openapi3.Schema) (schema.Node, error) {
	if src == nil {
		return nil, errors.New("nil schema")
	}

	base, err := convertBase(src)
	if err != nil {
		return nil, err
	}
	if src.Nullable {
		return schema.Nullable(base), nil
	}
	return base, nil
}

func convertBase(src *openapi3.Schema) (schema.Node, error) {
	if len(src.AllOf) > 0 {
		return convertAllOf(src)
	}
	if len(src.OneOf) > 0 {
		return convertUnion(src, src.OneOf)
	}
	if len(src.AnyOf) > 0 {
		return convertUnion(src, src.AnyOf)
	}

	switch firstType(src.Type) {
	case "string":
		return convertString(src), nil
	case "integer":
		return convertNumber(src, true), nil
	case "number":
		return convertNumber(src, false), nil
	case "boolean":
		return schema.Boolean().Describe(src.Description), nil
	case "array":
		return convertArray(src)
	case "object", "":
		return convertObject(src)
	default:
		// Unrecognized types degrade downstream; represent them permissively.
		return schema.String().Describe(src.Description), nil
	}
}

func convertString(src *openapi3.Schema) schema.Node {
	if len(src.Enum) > 0 {
		values := make([]string, 0, len(src.Enum))
		for _, v := range src.Enum {
			values = append(values, fmt.Sprintf("%v", v))
		}
		return schema.Enum(values...).Describe(src.Description)
	}
	if src.Format == "date" || src.Format == "date-time" {
		return schema.Date().Describe(src.Description)
	}

	n := schema.String()
	if format := stringFormat(src.Format); format != "" {
		n.Format(format)
	}
	if src.MinLength != 0 {
		n.Min(int(src.MinLength))
	}
	if src.MaxLength != nil {
		n.Max(int(*src.MaxLength))
	}
	if src.Pattern != "" {
		n.Regex(src.Pattern)
	}
	return n.Describe(src.Description)
}

// stringFormat maps OpenAPI string formats onto the recognized format names.
func stringFormat(format string) string {
	switch format {
	case "email":
		return schema.FormatEmail
	case "uri", "url":
		return schema.FormatURL
	case "uuid":
		return schema.FormatUUID
	case "ipv4", "ipv6", "ip":
		return schema.FormatIP
	default:
		return ""
	}
}

func convertNumber(src *openapi3.Schema, integer bool) schema.Node {
	n := schema.Number()
	if integer {
		n.Int()
	}
	if src.Min != nil {
		n.Min(*src.Min)
	}
	if src.Max != nil {
		n.Max(*src.Max)
	}
	if src.MultipleOf != nil {
		n.MultipleOf(*src.MultipleOf)
	}
	return n.Describe(src.Description)
}

func convertArray(src *openapi3.Schema) (schema.Node, error) {
	if src.Items == nil {
		return nil, errors.New("array schema has no items")
	}
	element, err := convertRef(src.Items)
	if err != nil {
		return nil, err
	}
	n := schema.Array(element)
	if src.MinItems != 0 {
		n.Min(int(src.MinItems))
	}
	if src.MaxItems != nil {
		n.Max(int(*src.MaxItems))
	}
	return n.Describe(src.Description), nil
}

func convertObject(src *openapi3.Schema) (schema.Node, error) {
	if len(src.Properties) == 0 {
		if src.AdditionalProperties.Schema != nil {
			value, err := convertRef(src.AdditionalProperties.Schema)
			if err != nil {
				return nil, err
			}
			return schema.Record(value).Describe(src.Description), nil
		}
		return schema.Object().Describe(src.Description), nil
	}

	required := make(map[string]struct{}, len(src.Required))
	for _, name := range src.Required {
		required[name] = struct{}{}
	}

	// Property maps carry no declaration order; sort for stable output.
	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	obj := schema.Object()
	for _, name := range names {
		node, err := convertRef(src.Properties[name])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		if _, ok := required[name]; !ok {
			node = schema.Optional(node)
		}
		obj.Field(name, node)
	}
	return obj.Describe(src.Description), nil
}

func convertAllOf(src *openapi3.Schema) (schema.Node, error) {
	var merged schema.Node
	for i, ref := range src.AllOf {
		node, err := convertRef(ref)
		if err != nil {
			return nil, fmt.Errorf("allOf member %d: %w", i, err)
		}
		if merged == nil {
			merged = node
			continue
		}
		merged = schema.Intersection(merged, node)
	}
	if merged == nil {
		return nil, errors.New("allOf has no members")
	}
	return merged, nil
}

func convertUnion(src *openapi3.Schema, refs openapi3.SchemaRefs) (schema.Node, error) {
	options := make([]schema.Node, 0, len(refs))
	for i, ref := range refs {
		node, err := convertRef(ref)
		if err != nil {
			return nil, fmt.Errorf("union member %d: %w", i, err)
		}
		options = append(options, node)
	}
	var union *schema.UnionNode
	if src.Discriminator != nil && src.Discriminator.PropertyName != "" {
		union = schema.DiscriminatedUnion(src.Discriminator.PropertyName, options...)
	} else {
		union = schema.Union(options...)
	}
	return union.Describe(src.Description), nil
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
