// Package resolve matches field descriptors against an ordered rule table to
// decide which UI component renders each field, recursing into composite
// descriptors so the emitter receives a fully resolved configuration tree.
package resolve

import (
	"fmt"

	"github.com/goliatone/go-formcode/pkg/model"
)

// UnmappedFieldError reports a descriptor no rule matched. This is fatal at
// the resolver level; the generation pipeline recovers per field.
type UnmappedFieldError struct {
	FieldName string
	FieldType model.FieldType
}

func (e *UnmappedFieldError) Error() string {
	return fmt.Sprintf("resolve: no component rule matched field %q of type %q", e.FieldName, e.FieldType)
}

// Field resolves a descriptor to its component configuration. A nil or empty
// rule slice selects the default table. Composite fields are resolved
// recursively; a failure anywhere in the subtree fails the whole field.
func Field(field model.Field, rules []Rule) (Config, error) {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	for _, rule := range rules {
		if rule.Match == nil || !rule.Match(field) {
			continue
		}
		config := Config{
			Component:   rule.Component,
			Label:       field.Label,
			Description: field.Description,
			Required:    !field.Optional,
			Field:       field,
		}
		if rule.Props != nil {
			config.Props = rule.Props(field)
		}
		if err := resolveComposite(&config, field, rules); err != nil {
			return Config{}, err
		}
		return config, nil
	}

	return Config{}, &UnmappedFieldError{FieldName: field.Name, FieldType: field.Type}
}

func resolveComposite(config *Config, field model.Field, rules []Rule) error {
	switch field.Type {
	case model.TypeObject:
		children, err := resolveChildren(field.Metadata.Children, rules)
		if err != nil {
			return err
		}
		config.Children = children
	case model.TypeTuple:
		children, err := resolveChildren(field.Metadata.Items, rules)
		if err != nil {
			return err
		}
		config.Children = children
	case model.TypeArray:
		if field.Metadata.Element == nil {
			return fmt.Errorf("resolve: array field %q has no element descriptor", field.Name)
		}
		element, err := resolveChild(*field.Metadata.Element, rules)
		if err != nil {
			return err
		}
		config.Element = &element
	case model.TypeRecord:
		if field.Metadata.Value == nil {
			return fmt.Errorf("resolve: record field %q has no value descriptor", field.Name)
		}
		value, err := resolveChild(*field.Metadata.Value, rules)
		if err != nil {
			return err
		}
		config.Element = &value
	case model.TypeUnion:
		config.Discriminator = field.Metadata.Discriminator
		for _, variant := range field.Metadata.Variants {
			children, err := resolveChildren(variant.Fields, rules)
			if err != nil {
				return err
			}
			config.Variants = append(config.Variants, Variant{
				Tag:       variant.Tag,
				Synthetic: variant.Synthetic,
				Children:  children,
			})
		}
	}
	return nil
}

func resolveChildren(fields []model.Field, rules []Rule) ([]Child, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	children := make([]Child, 0, len(fields))
	for _, field := range fields {
		child, err := resolveChild(field, rules)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func resolveChild(field model.Field, rules []Rule) (Child, error) {
	config, err := Field(field, rules)
	if err != nil {
		return Child{}, err
	}
	return Child{Field: field, Config: config}, nil
}
