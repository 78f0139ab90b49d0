package emit

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/resolve"
)

// emitConfig renders one resolved configuration at the given binding path.
// Composite components dispatch to their own emitters; everything else is a
// scalar control wrapped in field chrome.
func (e *Emitter) emitConfig(cfg resolve.Config, path, indent string) (string, error) {
	if cfg.Field.SchemaRef != "" {
		return fmt.Sprintf("%s{/* %s is provided by the external schema %s */}\n",
			indent, path, cfg.Field.SchemaRef), nil
	}
	switch cfg.Component {
	case resolve.ComponentFieldset:
		return e.emitFieldset(cfg, path, indent)
	case resolve.ComponentFieldArray:
		return e.emitFieldArray(cfg, path, indent)
	case resolve.ComponentUnionSwitch:
		return e.emitUnionSwitch(cfg, path, indent)
	default:
		return e.emitScalar(cfg, path, indent)
	}
}

func (e *Emitter) emitScalar(cfg resolve.Config, path, indent string) (string, error) {
	control, err := e.emitControl(cfg, path, indent+"  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	required := ""
	if cfg.Required {
		required = " required"
	}
	fmt.Fprintf(&b, "%s<FormField name=%s%s>\n", indent, nameAttr(path), required)
	fmt.Fprintf(&b, "%s  <Label>%s</Label>\n", indent, escapeText(cfg.Label))
	b.WriteString(control)
	if cfg.Description != "" {
		fmt.Fprintf(&b, "%s  <Description>%s</Description>\n", indent, escapeText(e.plainText(cfg.Description)))
	}
	fmt.Fprintf(&b, "%s</FormField>\n", indent)
	return b.String(), nil
}

// emitControl renders the bare control element, without field chrome. Used
// both inside FormField blocks and inline in collection rows.
func (e *Emitter) emitControl(cfg resolve.Config, path, indent string) (string, error) {
	name := nameAttr(path)
	switch cfg.Component {
	case resolve.ComponentInput:
		attrs := name
		if typ, ok := propString(cfg.Props, "type"); ok {
			attrs += fmt.Sprintf(" type=%q", escapeAttr(typ))
		}
		attrs += lengthAttrs(cfg.Props)
		if pattern, ok := propString(cfg.Props, "pattern"); ok {
			attrs += fmt.Sprintf(" pattern=%q", escapeAttr(pattern))
		}
		return fmt.Sprintf("%s<Input name=%s />\n", indent, attrs), nil
	case resolve.ComponentTextarea:
		return fmt.Sprintf("%s<Textarea name=%s />\n", indent, name+lengthAttrs(cfg.Props)), nil
	case resolve.ComponentNumberInput:
		return fmt.Sprintf("%s<NumberInput name=%s />\n", indent, name+rangeAttrs(cfg.Props)), nil
	case resolve.ComponentSlider:
		return fmt.Sprintf("%s<Slider name=%s />\n", indent, name+rangeAttrs(cfg.Props)), nil
	case resolve.ComponentSwitch:
		return fmt.Sprintf("%s<Switch name=%s />\n", indent, name), nil
	case resolve.ComponentDatePicker:
		return fmt.Sprintf("%s<DatePicker name=%s />\n", indent, name), nil
	case resolve.ComponentRadioGroup:
		return e.emitChoices(cfg, path, indent, "RadioGroup", "RadioGroupItem")
	case resolve.ComponentSelect:
		return e.emitChoices(cfg, path, indent, "Select", "SelectItem")
	default:
		return "", &EmissionError{
			FieldName: cfg.Field.Name,
			Reason:    fmt.Sprintf("no emitter for component %q", cfg.Component),
		}
	}
}

// emitChoices renders an option-bearing control. A choice control with zero
// options would render a dead end, so it is rejected outright.
func (e *Emitter) emitChoices(cfg resolve.Config, path, indent, container, item string) (string, error) {
	options, _ := cfg.Props["options"].([]string)
	if len(options) == 0 {
		return "", &EmissionError{FieldName: cfg.Field.Name, Reason: "choice control has no options"}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s<%s name=%s>\n", indent, container, nameAttr(path))
	for _, option := range options {
		fmt.Fprintf(&b, "%s  <%s value=\"%s\">%s</%s>\n",
			indent, item, escapeAttr(option), escapeText(option), item)
	}
	fmt.Fprintf(&b, "%s</%s>\n", indent, container)
	return b.String(), nil
}

func (e *Emitter) emitFieldset(cfg resolve.Config, path, indent string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s<Fieldset>\n", indent)
	fmt.Fprintf(&b, "%s  <Legend>%s</Legend>\n", indent, escapeText(cfg.Label))
	if cfg.Description != "" {
		fmt.Fprintf(&b, "%s  <Description>%s</Description>\n", indent, escapeText(e.plainText(cfg.Description)))
	}
	for _, child := range cfg.Children {
		block, err := e.emitConfig(child.Config, path+"."+child.Field.Name, indent+"  ")
		if err != nil {
			return "", err
		}
		b.WriteString(block)
	}
	fmt.Fprintf(&b, "%s</Fieldset>\n", indent)
	return b.String(), nil
}

// emitFieldArray renders a repeating collection. Array rows bind through a
// live index placeholder and carry add/remove affordances; record rows bind
// through the entry key and only iterate existing entries.
func (e *Emitter) emitFieldArray(cfg resolve.Config, path, indent string) (string, error) {
	if cfg.Element == nil {
		return "", &EmissionError{FieldName: cfg.Field.Name, Reason: "collection has no element configuration"}
	}
	keyed := cfg.Field.Type == model.TypeRecord
	placeholder := "${index}"
	if keyed {
		placeholder = "${key}"
	}
	rowPath := path + "." + placeholder

	var b strings.Builder
	open := nameAttr(path)
	if keyed {
		open += " keyed"
	}
	fmt.Fprintf(&b, "%s<FieldArray name=%s>\n", indent, open)
	fmt.Fprintf(&b, "%s  <Legend>%s</Legend>\n", indent, escapeText(cfg.Label))
	if cfg.Description != "" {
		fmt.Fprintf(&b, "%s  <Description>%s</Description>\n", indent, escapeText(e.plainText(cfg.Description)))
	}
	fmt.Fprintf(&b, "%s  <FieldArrayRow>\n", indent)

	element := cfg.Element.Config
	var row string
	var err error
	switch element.Component {
	case resolve.ComponentFieldset, resolve.ComponentFieldArray, resolve.ComponentUnionSwitch:
		row, err = e.emitConfig(element, rowPath, indent+"    ")
	default:
		// Scalar rows hold the bare control; the collection provides chrome.
		row, err = e.emitControl(element, rowPath, indent+"    ")
	}
	if err != nil {
		return "", err
	}
	b.WriteString(row)

	if !keyed {
		fmt.Fprintf(&b, "%s    <Button action=\"remove\">Remove</Button>\n", indent)
	}
	fmt.Fprintf(&b, "%s  </FieldArrayRow>\n", indent)
	if !keyed {
		fmt.Fprintf(&b, "%s  <Button action=\"add\">Add</Button>\n", indent)
	}
	fmt.Fprintf(&b, "%s</FieldArray>\n", indent)
	return b.String(), nil
}

// syntheticDiscriminator names the selection state for unions without a
// discriminator field of their own.
const syntheticDiscriminator = "$variant"

func (e *Emitter) emitUnionSwitch(cfg resolve.Config, path, indent string) (string, error) {
	if len(cfg.Variants) == 0 {
		return "", &EmissionError{FieldName: cfg.Field.Name, Reason: "union has no variants"}
	}
	disc := cfg.Discriminator
	if disc == "" {
		disc = syntheticDiscriminator
	}
	discPath := path + "." + disc

	var b strings.Builder
	fmt.Fprintf(&b, "%s<UnionSwitch name=%s>\n", indent, nameAttr(path))
	fmt.Fprintf(&b, "%s  <Legend>%s</Legend>\n", indent, escapeText(cfg.Label))
	if cfg.Description != "" {
		fmt.Fprintf(&b, "%s  <Description>%s</Description>\n", indent, escapeText(e.plainText(cfg.Description)))
	}
	fmt.Fprintf(&b, "%s  <Select name=%s>\n", indent, nameAttr(discPath))
	for _, variant := range cfg.Variants {
		fmt.Fprintf(&b, "%s    <SelectItem value=\"%s\">%s</SelectItem>\n",
			indent, escapeAttr(variant.Tag), escapeText(variant.Tag))
	}
	fmt.Fprintf(&b, "%s  </Select>\n", indent)
	for _, variant := range cfg.Variants {
		fmt.Fprintf(&b, "%s  <Show when=%s equals=\"%s\">\n", indent, nameAttr(discPath), escapeAttr(variant.Tag))
		for _, child := range variant.Children {
			block, err := e.emitConfig(child.Config, path+"."+child.Field.Name, indent+"    ")
			if err != nil {
				return "", err
			}
			b.WriteString(block)
		}
		fmt.Fprintf(&b, "%s  </Show>\n", indent)
	}
	fmt.Fprintf(&b, "%s</UnionSwitch>\n", indent)
	return b.String(), nil
}

// nameAttr renders a binding-path attribute value. Paths threaded through a
// collection contain a live placeholder and must use a template literal.
func nameAttr(path string) string {
	if strings.Contains(path, "${") {
		return "{`" + path + "`}"
	}
	return `"` + escapeAttr(path) + `"`
}

func lengthAttrs(props resolve.Props) string {
	var b strings.Builder
	if v, ok := propInt(props, "minLength"); ok {
		fmt.Fprintf(&b, " minLength={%d}", v)
	}
	if v, ok := propInt(props, "maxLength"); ok {
		fmt.Fprintf(&b, " maxLength={%d}", v)
	}
	return b.String()
}

func rangeAttrs(props resolve.Props) string {
	var b strings.Builder
	if v, ok := propFloat(props, "min"); ok {
		fmt.Fprintf(&b, " min={%s}", formatNumber(v))
	}
	if v, ok := propFloat(props, "max"); ok {
		fmt.Fprintf(&b, " max={%s}", formatNumber(v))
	}
	if v, ok := propFloat(props, "step"); ok {
		fmt.Fprintf(&b, " step={%s}", formatNumber(v))
	}
	return b.String()
}

func propInt(props resolve.Props, key string) (int, bool) {
	v, ok := props[key].(int)
	return v, ok
}

func propFloat(props resolve.Props, key string) (float64, bool) {
	switch v := props[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func propString(props resolve.Props, key string) (string, bool) {
	v, ok := props[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
