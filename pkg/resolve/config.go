package resolve

import "github.com/goliatone/go-formcode/pkg/model"

// Component tags the default rule table resolves to. The emitter knows how to
// render each of these; custom rules may introduce new tags as long as a
// matching emitter handles them.
const (
	ComponentInput       = "Input"
	ComponentTextarea    = "Textarea"
	ComponentNumberInput = "NumberInput"
	ComponentSlider      = "Slider"
	ComponentSwitch      = "Switch"
	ComponentRadioGroup  = "RadioGroup"
	ComponentSelect      = "Select"
	ComponentDatePicker  = "DatePicker"
	ComponentFieldset    = "Fieldset"
	ComponentFieldArray  = "FieldArray"
	ComponentUnionSwitch = "UnionSwitch"
)

// Props is the free-form property bag attached to a resolved component.
type Props map[string]any

// Child pairs a nested component configuration with the descriptor it was
// resolved from; the emitter needs both for nested emission.
type Child struct {
	Field  model.Field
	Config Config
}

// Variant is one resolved member of a union component.
type Variant struct {
	Tag       string
	Synthetic bool
	Children  []Child
}

// Config is the resolved mapping from a field descriptor to a concrete UI
// component: its tag, its props, and, for composites, the resolved
// configurations of every child, element, or variant.
type Config struct {
	Component   string
	Props       Props
	Label       string
	Description string
	Required    bool
	Field       model.Field

	// Composite payloads. Children is set for object/tuple components,
	// Element for array/record components, Variants plus Discriminator for
	// union components.
	Children      []Child
	Element       *Child
	Variants      []Variant
	Discriminator string
}
