// Package schemawrite emits validation-schema source from form descriptors:
// the inverse of introspection. Named sub-schemas are declared before their
// first use, then the primary schema and its inferred type alias.
package schemawrite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formcode/internal/ident"
	"github.com/goliatone/go-formcode/pkg/model"
)

const defaultName = "formSchema"

// Request describes one schema-writing run. Embedded holds the named
// sub-schemas that fields reference through SchemaRef; each becomes its own
// exported declaration.
type Request struct {
	Form     model.FormDescriptor
	Embedded []model.EmbeddedSchema
}

// Result is the rendered schema module source plus warnings for fields that
// could only be written permissively.
type Result struct {
	Code     string
	Warnings []string
}

// Write renders the complete schema module source for the request.
func Write(req Request) (Result, error) {
	order, err := sortEmbedded(req.Embedded)
	if err != nil {
		return Result{}, err
	}

	name := req.Form.SchemaExportName
	if name == "" {
		name = defaultName
	}

	w := &writer{}
	var b strings.Builder
	b.WriteString("import { z } from \"zod\";\n")
	for _, sub := range order {
		writeDeclaration(&b, sub.Name, w.objectExpr(sub.Form.Fields, ""))
	}
	writeDeclaration(&b, name, w.objectExpr(req.Form.Fields, ""))

	return Result{Code: b.String(), Warnings: w.warnings}, nil
}

func writeDeclaration(b *strings.Builder, name, expr string) {
	fmt.Fprintf(b, "\nexport const %s = %s;\nexport type %s = z.infer<typeof %s>;\n",
		name, expr, ident.TypeAlias(name), name)
}

// writer accumulates warnings while rendering expressions. Writing never
// fails below the declaration level; descriptors the writer cannot express
// degrade to a permissive expression with a warning.
type writer struct {
	warnings []string
}

func (w *writer) warnf(format string, args ...any) {
	w.warnings = append(w.warnings, fmt.Sprintf(format, args...))
}

// fieldExpr renders one descriptor as a schema expression. A SchemaRef is
// emitted verbatim with no wrapping at all; otherwise the base expression
// gets a fixed suffix order: nullable, then optional, then describe.
func (w *writer) fieldExpr(field model.Field, indent string) string {
	if field.SchemaRef != "" {
		return field.SchemaRef
	}

	expr := w.baseExpr(field, indent)
	if field.Nullable {
		expr += ".nullable()"
	}
	if field.Optional {
		expr += ".optional()"
	}
	if field.Description != "" {
		expr += ".describe(" + quote(field.Description) + ")"
	}
	return expr
}

func (w *writer) baseExpr(field model.Field, indent string) string {
	switch field.Type {
	case model.TypeString:
		return stringExpr(field.Constraints)
	case model.TypeNumber:
		return numberExpr(field.Constraints)
	case model.TypeBoolean:
		return "z.boolean()"
	case model.TypeDate:
		return "z.date()"
	case model.TypeEnum:
		values := make([]string, len(field.Metadata.Values))
		for i, v := range field.Metadata.Values {
			values[i] = quote(v)
		}
		return "z.enum([" + strings.Join(values, ", ") + "])"
	case model.TypeObject:
		return w.objectExpr(field.Metadata.Children, indent)
	case model.TypeArray:
		return w.arrayExpr(field, indent)
	case model.TypeTuple:
		items := make([]string, len(field.Metadata.Items))
		for i, item := range field.Metadata.Items {
			items[i] = w.fieldExpr(item, indent)
		}
		return "z.tuple([" + strings.Join(items, ", ") + "])"
	case model.TypeRecord:
		if field.Metadata.Value == nil {
			w.warnf("field %q: record has no value descriptor, writing a permissive value", field.Name)
			return "z.record(z.string(), z.string())"
		}
		return "z.record(z.string(), " + w.fieldExpr(*field.Metadata.Value, indent) + ")"
	case model.TypeUnion:
		return w.unionExpr(field, indent)
	default:
		w.warnf("field %q: no writer for type %q, writing a permissive string", field.Name, field.Type)
		return "z.string()"
	}
}

func (w *writer) objectExpr(fields []model.Field, indent string) string {
	if len(fields) == 0 {
		return "z.object({})"
	}
	inner := indent + "  "
	var b strings.Builder
	b.WriteString("z.object({\n")
	for _, field := range fields {
		fmt.Fprintf(&b, "%s%s: %s,\n", inner, ident.QuoteKey(field.Name), w.fieldExpr(field, inner))
	}
	b.WriteString(indent + "})")
	return b.String()
}

func (w *writer) arrayExpr(field model.Field, indent string) string {
	element := "z.string()"
	if field.Metadata.Element != nil {
		element = w.fieldExpr(*field.Metadata.Element, indent)
	} else {
		w.warnf("field %q: array has no element descriptor, writing a permissive element", field.Name)
	}
	expr := "z.array(" + element + ")"
	if field.Constraints.MinItems != nil {
		expr += fmt.Sprintf(".min(%d)", *field.Constraints.MinItems)
	}
	if field.Constraints.MaxItems != nil {
		expr += fmt.Sprintf(".max(%d)", *field.Constraints.MaxItems)
	}
	return expr
}

// unionExpr reconstructs union source. Tagged variants become objects with
// the discriminator re-inserted as a fixed-value member; synthetic variants,
// the single-field wrapping the introspection walk adds around non-object
// members, unwrap back to a bare expression.
func (w *writer) unionExpr(field model.Field, indent string) string {
	inner := indent + "  "
	options := make([]string, 0, len(field.Metadata.Variants))
	for _, variant := range field.Metadata.Variants {
		if variant.Synthetic && len(variant.Fields) == 1 {
			options = append(options, w.fieldExpr(variant.Fields[0], inner))
			continue
		}
		options = append(options, w.variantExpr(field.Metadata.Discriminator, variant, inner))
	}

	joined := "\n" + inner + strings.Join(options, ",\n"+inner) + ",\n" + indent
	if field.Metadata.Discriminator != "" {
		return "z.discriminatedUnion(" + quote(field.Metadata.Discriminator) + ", [" + joined + "])"
	}
	return "z.union([" + joined + "])"
}

func (w *writer) variantExpr(discriminator string, variant model.UnionVariant, indent string) string {
	inner := indent + "  "
	var b strings.Builder
	b.WriteString("z.object({\n")
	if discriminator != "" {
		fmt.Fprintf(&b, "%s%s: z.literal(%s),\n", inner, ident.QuoteKey(discriminator), quote(variant.Tag))
	}
	for _, member := range variant.Fields {
		fmt.Fprintf(&b, "%s%s: %s,\n", inner, ident.QuoteKey(member.Name), w.fieldExpr(member, inner))
	}
	b.WriteString(indent + "})")
	return b.String()
}

// stringExpr renders the base chain in a fixed order: format method first,
// then min, max, regex.
func stringExpr(c model.Constraints) string {
	var b strings.Builder
	b.WriteString("z.string()")
	if c.Format != "" {
		fmt.Fprintf(&b, ".%s()", c.Format)
	}
	if c.MinLength != nil {
		fmt.Fprintf(&b, ".min(%d)", *c.MinLength)
	}
	if c.MaxLength != nil {
		fmt.Fprintf(&b, ".max(%d)", *c.MaxLength)
	}
	if c.Pattern != "" {
		fmt.Fprintf(&b, ".regex(%s)", regexLiteral(c.Pattern))
	}
	return b.String()
}

// numberExpr renders the base chain in a fixed order: int, min, max,
// multipleOf.
func numberExpr(c model.Constraints) string {
	var b strings.Builder
	b.WriteString("z.number()")
	if c.IsInt {
		b.WriteString(".int()")
	}
	if c.Min != nil {
		fmt.Fprintf(&b, ".min(%s)", formatNumber(*c.Min))
	}
	if c.Max != nil {
		fmt.Fprintf(&b, ".max(%s)", formatNumber(*c.Max))
	}
	if c.Step != nil {
		fmt.Fprintf(&b, ".multipleOf(%s)", formatNumber(*c.Step))
	}
	return b.String()
}

func quote(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	return `"` + escaped + `"`
}

func regexLiteral(pattern string) string {
	return "/" + strings.ReplaceAll(pattern, "/", `\/`) + "/"
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
