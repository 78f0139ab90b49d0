package introspect

import (
	"fmt"

	"github.com/goliatone/go-formcode/pkg/schema"
)

// Unwrapped is the result of peeling optional/nullable wrapper layers off a
// schema node. Description carries the outermost description encountered
// while unwrapping, falling back to the inner node's own.
type Unwrapped struct {
	Node        schema.Node
	Optional    bool
	Nullable    bool
	Description string
}

// Unwrap peels optional and nullable wrappers, in any order and depth, and
// reports which flags were seen. It fails with a StructuralError when the
// input is not a schema node or a wrapper cannot expose its inner node.
func Unwrap(node schema.Node) (Unwrapped, error) {
	if node == nil {
		return Unwrapped{}, &StructuralError{Reason: "not a recognized schema value"}
	}

	out := Unwrapped{Node: node}
	for {
		kind := out.Node.Kind()
		if kind != schema.KindOptional && kind != schema.KindNullable {
			break
		}
		if out.Description == "" {
			out.Description = out.Node.Description()
		}
		wrapper, ok := out.Node.(schema.Wrapper)
		if !ok {
			return Unwrapped{}, &StructuralError{Reason: fmt.Sprintf("%s wrapper lacks an unwrap capability", kind)}
		}
		inner := wrapper.Unwrap()
		if inner == nil {
			return Unwrapped{}, &StructuralError{Reason: fmt.Sprintf("%s wrapper has no inner node", kind)}
		}
		if kind == schema.KindOptional {
			out.Optional = true
		} else {
			out.Nullable = true
		}
		out.Node = inner
	}

	if out.Description == "" {
		out.Description = out.Node.Description()
	}
	return out, nil
}
