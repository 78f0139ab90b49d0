package introspect

import (
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/schema"
)

// Constraints reads an already-unwrapped node's attached checks into a flat
// constraints record. Unrecognized check names are appended to the unknown
// sink when one is supplied; extraction itself never fails.
func Constraints(node schema.Node, unknown *[]string) model.Constraints {
	var out model.Constraints
	if node == nil {
		return out
	}

	// Format shorthand constructors carry their format as a top-level tag
	// rather than a check.
	if s, ok := node.(*schema.StringNode); ok {
		if format := s.FormatHint(); format != "" && schema.IsKnownFormat(format) {
			out.Format = format
		}
	}

	collection := node.Kind() == schema.KindArray

	for _, check := range node.Checks() {
		switch check.Name {
		case schema.CheckMinLength:
			value := int(check.Number)
			if collection {
				out.MinItems = &value
			} else {
				out.MinLength = &value
			}
		case schema.CheckMaxLength:
			value := int(check.Number)
			if collection {
				out.MaxItems = &value
			} else {
				out.MaxLength = &value
			}
		case schema.CheckRegex:
			out.Pattern = check.Text
		case schema.CheckFormat:
			if schema.IsKnownFormat(check.Text) {
				out.Format = check.Text
			} else if unknown != nil {
				*unknown = append(*unknown, "format:"+check.Text)
			}
		case schema.CheckGreaterThan:
			value := check.Number
			out.Min = &value
		case schema.CheckLessThan:
			value := check.Number
			out.Max = &value
		case schema.CheckInt:
			out.IsInt = true
		case schema.CheckMultipleOf:
			value := check.Number
			out.Step = &value
		default:
			if unknown != nil {
				*unknown = append(*unknown, check.Name)
			}
		}
	}

	return out
}
