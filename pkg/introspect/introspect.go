package introspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formcode/internal/ident"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/schema"
)

// Options carries the naming metadata attached to the produced descriptor.
type Options struct {
	// FormName names the generated form component, e.g. "Profile".
	FormName string
	// SchemaImportPath is the module path the emitted form imports the schema
	// from, e.g. "./schema".
	SchemaImportPath string
	// SchemaExportName is the identifier the schema is exported under. When
	// empty it is derived from FormName ("Profile" -> "profileSchema").
	SchemaExportName string
}

// Introspect converts an object-rooted schema value into a FormDescriptor.
// A root that is neither object-shaped nor an intersection of object-shaped
// nodes fails with a StructuralError. Below the root, fields of unsupported
// kinds degrade to permissive string descriptors with a warning instead of
// aborting the walk.
func Introspect(node schema.Node, opts Options) (model.FormDescriptor, error) {
	entries, err := rootEntries(node)
	if err != nil {
		return model.FormDescriptor{}, err
	}

	form := model.FormDescriptor{
		Name:             opts.FormName,
		SchemaImportPath: opts.SchemaImportPath,
		SchemaExportName: opts.SchemaExportName,
	}
	if form.Name == "" {
		form.Name = "Form"
	}
	if form.SchemaExportName == "" {
		form.SchemaExportName = ident.LowerFirst(form.Name) + "Schema"
	}

	for _, entry := range entries {
		field, err := buildField(entry.Name, entry.Name, entry.Node, &form.Warnings)
		if err != nil {
			return model.FormDescriptor{}, err
		}
		form.Fields = append(form.Fields, field)
	}
	return form, nil
}

// rootEntries unwraps the root and flattens intersections of object-shaped
// nodes into a single ordered shape, right operand winning on key collision.
func rootEntries(node schema.Node) ([]schema.ObjectEntry, error) {
	unwrapped, err := Unwrap(node)
	if err != nil {
		return nil, err
	}

	switch n := unwrapped.Node.(type) {
	case *schema.ObjectNode:
		return n.Entries(), nil
	case *schema.IntersectionNode:
		left, err := rootEntries(n.Left())
		if err != nil {
			return nil, err
		}
		right, err := rootEntries(n.Right())
		if err != nil {
			return nil, err
		}
		return mergeEntries(left, right), nil
	default:
		return nil, &StructuralError{Reason: "only object-rooted schemas are supported"}
	}
}

func mergeEntries(left, right []schema.ObjectEntry) []schema.ObjectEntry {
	merged := append([]schema.ObjectEntry(nil), left...)
	for _, entry := range right {
		replaced := false
		for i := range merged {
			if merged[i].Name == entry.Name {
				merged[i].Node = entry.Node
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, entry)
		}
	}
	return merged
}

func buildField(name, path string, node schema.Node, warnings *[]string) (model.Field, error) {
	unwrapped, err := Unwrap(node)
	if err != nil {
		return model.Field{}, err
	}

	field := model.Field{
		Name:        name,
		Label:       model.Label(name),
		Description: unwrapped.Description,
		Optional:    unwrapped.Optional,
		Nullable:    unwrapped.Nullable,
	}

	// Named references short-circuit: the field is represented by the
	// external identifier, nothing else is derived from the node.
	if ref, ok := unwrapped.Node.(*schema.RefNode); ok {
		field.Type = model.TypeObject
		field.SchemaRef = ref.Name()
		return field, nil
	}

	effective, fieldType, supported := resolveEffective(unwrapped.Node)
	if !supported {
		*warnings = append(*warnings, fmt.Sprintf("field %q: unsupported schema kind %q, falling back to a plain text field", path, unwrapped.Node.Kind()))
		field.Type = model.TypeString
		return field, nil
	}
	field.Type = fieldType

	var unknown []string
	field.Constraints = Constraints(effective, &unknown)
	for _, check := range unknown {
		*warnings = append(*warnings, fmt.Sprintf("field %q: ignoring unrecognized check %q", path, check))
	}

	switch n := effective.(type) {
	case *schema.EnumNode:
		field.Metadata.Values = append([]string(nil), n.Values()...)
	case *schema.ObjectNode:
		for _, entry := range n.Entries() {
			child, err := buildField(entry.Name, path+"."+entry.Name, entry.Node, warnings)
			if err != nil {
				return model.Field{}, err
			}
			field.Metadata.Children = append(field.Metadata.Children, child)
		}
	case *schema.ArrayNode:
		element, err := buildField(name+"Item", path+"[]", n.Element(), warnings)
		if err != nil {
			return model.Field{}, err
		}
		field.Metadata.Element = &element
	case *schema.TupleNode:
		for i, item := range n.Items() {
			position := strconv.Itoa(i)
			child, err := buildField(position, path+"."+position, item, warnings)
			if err != nil {
				return model.Field{}, err
			}
			field.Metadata.Items = append(field.Metadata.Items, child)
		}
	case *schema.RecordNode:
		value, err := buildField("value", path+".*", n.Value(), warnings)
		if err != nil {
			return model.Field{}, err
		}
		field.Metadata.Value = &value
	case *schema.UnionNode:
		if err := buildUnion(&field, path, n, warnings); err != nil {
			return model.Field{}, err
		}
	}

	return field, nil
}

// resolveEffective finds the node that decides the field's type: pipes
// collapse to their input side and literals map to the type of their value.
// The boolean result is false for kinds outside the supported set.
func resolveEffective(node schema.Node) (schema.Node, model.FieldType, bool) {
	for {
		switch n := node.(type) {
		case *schema.PipeNode:
			node = n.In()
			continue
		case *schema.OptionalNode:
			node = n.Unwrap()
			continue
		case *schema.NullableNode:
			node = n.Unwrap()
			continue
		}
		break
	}

	switch n := node.(type) {
	case *schema.StringNode:
		return n, model.TypeString, true
	case *schema.NumberNode:
		return n, model.TypeNumber, true
	case *schema.BooleanNode:
		return n, model.TypeBoolean, true
	case *schema.DateNode:
		return n, model.TypeDate, true
	case *schema.EnumNode:
		if len(n.Values()) == 0 {
			return n, "", false
		}
		return n, model.TypeEnum, true
	case *schema.LiteralNode:
		switch n.Value().(type) {
		case string:
			return n, model.TypeString, true
		case bool:
			return n, model.TypeBoolean, true
		case int, int32, int64, float32, float64:
			return n, model.TypeNumber, true
		default:
			return n, "", false
		}
	case *schema.ObjectNode:
		return n, model.TypeObject, true
	case *schema.ArrayNode:
		return n, model.TypeArray, true
	case *schema.TupleNode:
		return n, model.TypeTuple, true
	case *schema.RecordNode:
		return n, model.TypeRecord, true
	case *schema.UnionNode:
		return n, model.TypeUnion, true
	default:
		return node, "", false
	}
}

// syntheticVariantField is the name given to the single field the
// introspector wraps around non-object union members. The schema writer
// detects the wrapping through UnionVariant.Synthetic and unwraps it back to
// a bare expression.
const syntheticVariantField = "value"

func buildUnion(field *model.Field, path string, node *schema.UnionNode, warnings *[]string) error {
	discriminator := node.Discriminator()
	field.Metadata.Discriminator = discriminator

	for i, option := range node.Options() {
		unwrapped, err := Unwrap(option)
		if err != nil {
			return err
		}

		if discriminator != "" {
			if obj, ok := unwrapped.Node.(*schema.ObjectNode); ok {
				variant, ok, err := discriminatedVariant(obj, discriminator, path, warnings)
				if err != nil {
					return err
				}
				if ok {
					field.Metadata.Variants = append(field.Metadata.Variants, variant)
					continue
				}
			}
		}

		member, err := buildField(syntheticVariantField, fmt.Sprintf("%s|%d", path, i), option, warnings)
		if err != nil {
			return err
		}
		field.Metadata.Variants = append(field.Metadata.Variants, model.UnionVariant{
			Tag:       fmt.Sprintf("option-%d", i),
			Fields:    []model.Field{member},
			Synthetic: true,
		})
	}
	return nil
}

func discriminatedVariant(obj *schema.ObjectNode, discriminator, path string, warnings *[]string) (model.UnionVariant, bool, error) {
	tagNode, ok := obj.Get(discriminator)
	if !ok {
		return model.UnionVariant{}, false, nil
	}
	unwrapped, err := Unwrap(tagNode)
	if err != nil {
		return model.UnionVariant{}, false, err
	}
	literal, ok := unwrapped.Node.(*schema.LiteralNode)
	if !ok {
		return model.UnionVariant{}, false, nil
	}

	variant := model.UnionVariant{Tag: strings.TrimSpace(fmt.Sprintf("%v", literal.Value()))}
	for _, entry := range obj.Entries() {
		if entry.Name == discriminator {
			continue
		}
		member, err := buildField(entry.Name, path+"."+variant.Tag+"."+entry.Name, entry.Node, warnings)
		if err != nil {
			return model.UnionVariant{}, false, err
		}
		variant.Fields = append(variant.Fields, member)
	}
	return variant, true, nil
}
