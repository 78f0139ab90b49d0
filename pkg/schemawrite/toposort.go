package schemawrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formcode/pkg/model"
)

// CircularRefError reports a reference cycle among named schemas. The writer
// emits nothing when a cycle exists: references must form a DAG.
type CircularRefError struct {
	Names []string
}

func (e *CircularRefError) Error() string {
	return fmt.Sprintf("schemawrite: circular reference among named schemas: %s",
		strings.Join(e.Names, ", "))
}

// sortEmbedded orders named schemas so every declaration precedes its first
// use. A depends on B when any field of A, searched through every composite
// level, references B by name. Ties break lexicographically to keep output
// stable.
func sortEmbedded(embedded []model.EmbeddedSchema) ([]model.EmbeddedSchema, error) {
	byName := make(map[string]model.EmbeddedSchema, len(embedded))
	names := make([]string, 0, len(embedded))
	for _, sub := range embedded {
		byName[sub.Name] = sub
		names = append(names, sub.Name)
	}
	sort.Strings(names)

	dependents := make(map[string][]string, len(embedded))
	indegree := make(map[string]int, len(embedded))
	for _, name := range names {
		refs := make(map[string]struct{})
		for _, field := range byName[name].Form.Fields {
			collectRefs(field, byName, refs)
		}
		delete(refs, name)
		indegree[name] = len(refs)
		for ref := range refs {
			dependents[ref] = append(dependents[ref], name)
		}
	}

	ready := make([]string, 0, len(names))
	for _, name := range names {
		if indegree[name] == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]model.EmbeddedSchema, 0, len(names))
	for len(ready) > 0 {
		sort.Strings(ready)
		name := ready[0]
		ready = ready[1:]
		order = append(order, byName[name])
		for _, dependent := range dependents[name] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	if len(order) != len(names) {
		emitted := make(map[string]struct{}, len(order))
		for _, sub := range order {
			emitted[sub.Name] = struct{}{}
		}
		var remaining []string
		for _, name := range names {
			if _, ok := emitted[name]; !ok {
				remaining = append(remaining, name)
			}
		}
		return nil, &CircularRefError{Names: remaining}
	}
	return order, nil
}

// collectRefs gathers the named schemas a field refers to, directly or
// through any composite nesting. References to names outside the embedded set
// are external and ignored.
func collectRefs(field model.Field, named map[string]model.EmbeddedSchema, out map[string]struct{}) {
	if field.SchemaRef != "" {
		if _, ok := named[field.SchemaRef]; ok {
			out[field.SchemaRef] = struct{}{}
		}
		return
	}
	for _, child := range field.Metadata.Children {
		collectRefs(child, named, out)
	}
	if field.Metadata.Element != nil {
		collectRefs(*field.Metadata.Element, named, out)
	}
	for _, item := range field.Metadata.Items {
		collectRefs(item, named, out)
	}
	if field.Metadata.Value != nil {
		collectRefs(*field.Metadata.Value, named, out)
	}
	for _, variant := range field.Metadata.Variants {
		for _, member := range variant.Fields {
			collectRefs(member, named, out)
		}
	}
}
