package resolve

import "github.com/goliatone/go-formcode/pkg/model"

// Thresholds the default scalar rules pivot on.
const (
	// enumChoiceLimit is the largest value count rendered as an exclusive
	// choice group; anything larger becomes a dropdown.
	enumChoiceLimit = 4
	// sliderRangeLimit is the widest min/max span rendered as a slider.
	sliderRangeLimit = 100
	// textareaLengthThreshold is the smallest maxLength rendered as a
	// multi-line input.
	textareaLengthThreshold = 100
)

// Rule maps matching field descriptors to a component tag. Rules are
// evaluated in order, first match wins.
type Rule struct {
	Name      string
	Component string
	Match     func(model.Field) bool
	Props     func(model.Field) Props
}

// DefaultRules returns the built-in rule table: composite rules first, each
// unconditional on its kind, then the scalar rules top to bottom.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:      "object-fieldset",
			Component: ComponentFieldset,
			Match:     func(f model.Field) bool { return f.Type == model.TypeObject },
		},
		{
			Name:      "array-field-array",
			Component: ComponentFieldArray,
			Match:     func(f model.Field) bool { return f.Type == model.TypeArray },
			Props: func(f model.Field) Props {
				props := Props{}
				if f.Constraints.MinItems != nil {
					props["minItems"] = *f.Constraints.MinItems
				}
				if f.Constraints.MaxItems != nil {
					props["maxItems"] = *f.Constraints.MaxItems
				}
				return props
			},
		},
		{
			Name:      "union-switch",
			Component: ComponentUnionSwitch,
			Match:     func(f model.Field) bool { return f.Type == model.TypeUnion },
		},
		{
			Name:      "tuple-fieldset",
			Component: ComponentFieldset,
			Match:     func(f model.Field) bool { return f.Type == model.TypeTuple },
		},
		{
			Name:      "record-field-array",
			Component: ComponentFieldArray,
			Match:     func(f model.Field) bool { return f.Type == model.TypeRecord },
			Props:     func(model.Field) Props { return Props{"keyed": true} },
		},
		{
			Name:      "boolean-switch",
			Component: ComponentSwitch,
			Match:     func(f model.Field) bool { return f.Type == model.TypeBoolean },
		},
		{
			Name:      "enum-choice-group",
			Component: ComponentRadioGroup,
			Match: func(f model.Field) bool {
				return f.Type == model.TypeEnum && len(f.Metadata.Values) <= enumChoiceLimit
			},
			Props: enumProps,
		},
		{
			Name:      "enum-dropdown",
			Component: ComponentSelect,
			Match:     func(f model.Field) bool { return f.Type == model.TypeEnum },
			Props:     enumProps,
		},
		{
			Name:      "date-picker",
			Component: ComponentDatePicker,
			Match:     func(f model.Field) bool { return f.Type == model.TypeDate },
		},
		{
			Name:      "number-slider",
			Component: ComponentSlider,
			Match: func(f model.Field) bool {
				c := f.Constraints
				return f.Type == model.TypeNumber && c.Min != nil && c.Max != nil &&
					*c.Max-*c.Min <= sliderRangeLimit
			},
			Props: numberProps,
		},
		{
			Name:      "number-input",
			Component: ComponentNumberInput,
			Match:     func(f model.Field) bool { return f.Type == model.TypeNumber },
			Props:     numberProps,
		},
		{
			Name:      "string-typed-input",
			Component: ComponentInput,
			Match: func(f model.Field) bool {
				if f.Type != model.TypeString {
					return false
				}
				format := f.Constraints.Format
				return format == "email" || format == "url"
			},
			Props: func(f model.Field) Props {
				props := stringProps(f)
				props["type"] = f.Constraints.Format
				return props
			},
		},
		{
			Name:      "string-textarea",
			Component: ComponentTextarea,
			Match: func(f model.Field) bool {
				return f.Type == model.TypeString && f.Constraints.MaxLength != nil &&
					*f.Constraints.MaxLength > textareaLengthThreshold
			},
			Props: stringProps,
		},
		{
			Name:      "string-input",
			Component: ComponentInput,
			Match:     func(f model.Field) bool { return f.Type == model.TypeString },
			Props:     stringProps,
		},
	}
}

func enumProps(f model.Field) Props {
	options := make([]string, len(f.Metadata.Values))
	copy(options, f.Metadata.Values)
	return Props{"options": options}
}

func numberProps(f model.Field) Props {
	props := Props{}
	c := f.Constraints
	if c.Min != nil {
		props["min"] = *c.Min
	}
	if c.Max != nil {
		props["max"] = *c.Max
	}
	if c.Step != nil {
		props["step"] = *c.Step
	} else if c.IsInt {
		props["step"] = float64(1)
	}
	return props
}

func stringProps(f model.Field) Props {
	props := Props{}
	c := f.Constraints
	if c.MinLength != nil {
		props["minLength"] = *c.MinLength
	}
	if c.MaxLength != nil {
		props["maxLength"] = *c.MaxLength
	}
	if c.Pattern != "" {
		props["pattern"] = c.Pattern
	}
	return props
}
