package emit

import (
	"sort"

	"github.com/goliatone/go-formcode/pkg/resolve"
)

// baseComponents appear in every emitted form regardless of its fields: the
// form shell, per-field chrome, and the submit button.
var baseComponents = []string{"Form", "FormField", "Label", "Description", "Button"}

// componentPrerequisites maps a component tag to the primitives its markup
// pulls in. Expansion runs to a fixpoint so UnionSwitch reaching Select also
// reaches SelectItem.
var componentPrerequisites = map[string][]string{
	resolve.ComponentRadioGroup:  {"RadioGroupItem"},
	resolve.ComponentSelect:      {"SelectItem"},
	resolve.ComponentFieldset:    {"Legend"},
	resolve.ComponentFieldArray:  {"FieldArrayRow", "Button", "Legend"},
	resolve.ComponentUnionSwitch: {"Legend", resolve.ComponentSelect, "Show"},
}

// CollectComponents walks the resolved configuration tree and returns the
// sorted, deduplicated set of component names the emitted form imports,
// including structural prerequisites and the base chrome.
func CollectComponents(configs []resolve.Config) []string {
	used := make(map[string]struct{})
	for _, name := range baseComponents {
		used[name] = struct{}{}
	}
	for _, cfg := range configs {
		collectConfig(cfg, used)
	}

	// Expand prerequisites until nothing new appears.
	pending := make([]string, 0, len(used))
	for name := range used {
		pending = append(pending, name)
	}
	for len(pending) > 0 {
		name := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, prereq := range componentPrerequisites[name] {
			if _, ok := used[prereq]; ok {
				continue
			}
			used[prereq] = struct{}{}
			pending = append(pending, prereq)
		}
	}

	names := make([]string, 0, len(used))
	for name := range used {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectConfig(cfg resolve.Config, used map[string]struct{}) {
	if cfg.Field.SchemaRef != "" {
		// External references render as a placeholder comment, not a component.
		return
	}
	if cfg.Component != "" {
		used[cfg.Component] = struct{}{}
	}
	for _, child := range cfg.Children {
		collectConfig(child.Config, used)
	}
	if cfg.Element != nil {
		collectConfig(cfg.Element.Config, used)
	}
	for _, variant := range cfg.Variants {
		for _, child := range variant.Children {
			collectConfig(child.Config, used)
		}
	}
}
