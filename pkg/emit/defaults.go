package emit

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formcode/internal/ident"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/resolve"
)

// defaultsObject builds the initial-values literal for the form: one entry per
// emitted top-level field. Date fields carry no sensible zero value and are
// left out of the object entirely.
func defaultsObject(configs []resolve.Config) string {
	var b strings.Builder
	b.WriteString("{\n")
	entries := 0
	for _, cfg := range configs {
		literal, ok := defaultLiteral(cfg.Field)
		if !ok {
			continue
		}
		b.WriteString("  ")
		b.WriteString(ident.QuoteKey(cfg.Field.Name))
		b.WriteString(": ")
		b.WriteString(literal)
		b.WriteString(",\n")
		entries++
	}
	if entries == 0 {
		return "{}"
	}
	b.WriteString("}")
	return b.String()
}

// defaultLiteral returns the source literal for a field's initial value. The
// second return is false when the field should be omitted from the object.
func defaultLiteral(field model.Field) (string, bool) {
	if field.SchemaRef != "" {
		return "{}", true
	}
	switch field.Type {
	case model.TypeString:
		return `""`, true
	case model.TypeNumber:
		if field.Constraints.Min != nil {
			return formatNumber(*field.Constraints.Min), true
		}
		return "0", true
	case model.TypeBoolean:
		return "false", true
	case model.TypeDate:
		return "", false
	case model.TypeEnum:
		if len(field.Metadata.Values) == 0 {
			return `""`, true
		}
		return `"` + escapeAttr(field.Metadata.Values[0]) + `"`, true
	case model.TypeObject:
		return objectLiteral(field.Metadata.Children), true
	case model.TypeArray:
		return "[]", true
	case model.TypeTuple:
		return tupleLiteral(field.Metadata.Items), true
	case model.TypeRecord, model.TypeUnion:
		return "{}", true
	default:
		return "{}", true
	}
}

func objectLiteral(children []model.Field) string {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		literal, ok := defaultLiteral(child)
		if !ok {
			continue
		}
		parts = append(parts, ident.QuoteKey(child.Name)+": "+literal)
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// tupleLiteral keeps every position: elements without a zero value become
// undefined so the remaining positions stay aligned.
func tupleLiteral(items []model.Field) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		literal, ok := defaultLiteral(item)
		if !ok {
			literal = "undefined"
		}
		parts = append(parts, literal)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
