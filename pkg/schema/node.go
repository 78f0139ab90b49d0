package schema

// Kind identifies the concrete variant of a schema node. The set is closed:
// every consumer switches over these values and handles each one.
type Kind string

const (
	KindString       Kind = "string"
	KindNumber       Kind = "number"
	KindBoolean      Kind = "boolean"
	KindDate         Kind = "date"
	KindEnum         Kind = "enum"
	KindLiteral      Kind = "literal"
	KindObject       Kind = "object"
	KindArray        Kind = "array"
	KindTuple        Kind = "tuple"
	KindRecord       Kind = "record"
	KindUnion        Kind = "union"
	KindOptional     Kind = "optional"
	KindNullable     Kind = "nullable"
	KindIntersection Kind = "intersection"
	KindPipe         Kind = "pipe"
	KindRef          Kind = "ref"
)

// Node is the capability surface every schema value exposes: a type tag, an
// ordered check list, and an optional description. Kind-specific structure
// (object shapes, array elements, union options) lives on the concrete types.
type Node interface {
	Kind() Kind
	Checks() []Check
	Description() string
}

// Wrapper is implemented by nodes that decorate exactly one inner node
// (optional and nullable).
type Wrapper interface {
	Node
	Unwrap() Node
}

// StringNode describes a string value, optionally created through a format
// shorthand constructor such as Email or URL.
type StringNode struct {
	checks []Check
	format string
	desc   string
}

func (n *StringNode) Kind() Kind          { return KindString }
func (n *StringNode) Checks() []Check     { return n.checks }
func (n *StringNode) Description() string { return n.desc }

// FormatHint reports the shorthand format the node was constructed with, or
// the empty string for a plain String().
func (n *StringNode) FormatHint() string { return n.format }

func (n *StringNode) Min(length int) *StringNode {
	n.checks = append(n.checks, Check{Name: CheckMinLength, Number: float64(length)})
	return n
}

func (n *StringNode) Max(length int) *StringNode {
	n.checks = append(n.checks, Check{Name: CheckMaxLength, Number: float64(length)})
	return n
}

func (n *StringNode) Regex(pattern string) *StringNode {
	n.checks = append(n.checks, Check{Name: CheckRegex, Text: pattern})
	return n
}

func (n *StringNode) Format(name string) *StringNode {
	n.checks = append(n.checks, Check{Name: CheckFormat, Text: name})
	return n
}

func (n *StringNode) Describe(text string) *StringNode { n.desc = text; return n }
func (n *StringNode) Optional() *OptionalNode          { return &OptionalNode{inner: n} }
func (n *StringNode) Nullable() *NullableNode          { return &NullableNode{inner: n} }

// NumberNode describes a numeric value. Integer semantics are expressed with
// the Int check rather than a separate kind.
type NumberNode struct {
	checks []Check
	desc   string
}

func (n *NumberNode) Kind() Kind          { return KindNumber }
func (n *NumberNode) Checks() []Check     { return n.checks }
func (n *NumberNode) Description() string { return n.desc }

func (n *NumberNode) Min(value float64) *NumberNode {
	n.checks = append(n.checks, Check{Name: CheckGreaterThan, Number: value})
	return n
}

func (n *NumberNode) Max(value float64) *NumberNode {
	n.checks = append(n.checks, Check{Name: CheckLessThan, Number: value})
	return n
}

func (n *NumberNode) Int() *NumberNode {
	n.checks = append(n.checks, Check{Name: CheckInt})
	return n
}

func (n *NumberNode) MultipleOf(value float64) *NumberNode {
	n.checks = append(n.checks, Check{Name: CheckMultipleOf, Number: value})
	return n
}

func (n *NumberNode) Describe(text string) *NumberNode { n.desc = text; return n }
func (n *NumberNode) Optional() *OptionalNode          { return &OptionalNode{inner: n} }
func (n *NumberNode) Nullable() *NullableNode          { return &NullableNode{inner: n} }

// BooleanNode describes a boolean value.
type BooleanNode struct {
	desc string
}

func (n *BooleanNode) Kind() Kind                       { return KindBoolean }
func (n *BooleanNode) Checks() []Check                  { return nil }
func (n *BooleanNode) Description() string              { return n.desc }
func (n *BooleanNode) Describe(text string) *BooleanNode { n.desc = text; return n }
func (n *BooleanNode) Optional() *OptionalNode          { return &OptionalNode{inner: n} }
func (n *BooleanNode) Nullable() *NullableNode          { return &NullableNode{inner: n} }

// DateNode describes a calendar date/time value.
type DateNode struct {
	desc string
}

func (n *DateNode) Kind() Kind                    { return KindDate }
func (n *DateNode) Checks() []Check               { return nil }
func (n *DateNode) Description() string           { return n.desc }
func (n *DateNode) Describe(text string) *DateNode { n.desc = text; return n }
func (n *DateNode) Optional() *OptionalNode       { return &OptionalNode{inner: n} }
func (n *DateNode) Nullable() *NullableNode       { return &NullableNode{inner: n} }

// EnumNode describes a closed set of string values, in declaration order.
type EnumNode struct {
	values []string
	desc   string
}

func (n *EnumNode) Kind() Kind                    { return KindEnum }
func (n *EnumNode) Checks() []Check               { return nil }
func (n *EnumNode) Description() string           { return n.desc }
func (n *EnumNode) Values() []string              { return n.values }
func (n *EnumNode) Describe(text string) *EnumNode { n.desc = text; return n }
func (n *EnumNode) Optional() *OptionalNode       { return &OptionalNode{inner: n} }
func (n *EnumNode) Nullable() *NullableNode       { return &NullableNode{inner: n} }

// LiteralNode pins a field to a single constant value. The literal's dynamic
// type decides the effective field type during introspection.
type LiteralNode struct {
	value any
	desc  string
}

func (n *LiteralNode) Kind() Kind                       { return KindLiteral }
func (n *LiteralNode) Checks() []Check                  { return nil }
func (n *LiteralNode) Description() string              { return n.desc }
func (n *LiteralNode) Value() any                       { return n.value }
func (n *LiteralNode) Describe(text string) *LiteralNode { n.desc = text; return n }
func (n *LiteralNode) Optional() *OptionalNode          { return &OptionalNode{inner: n} }
func (n *LiteralNode) Nullable() *NullableNode          { return &NullableNode{inner: n} }

// ObjectEntry is one named property of an object node. Entries preserve
// declaration order.
type ObjectEntry struct {
	Name string
	Node Node
}

// ObjectNode describes a record with a fixed, ordered shape.
type ObjectNode struct {
	entries []ObjectEntry
	desc    string
}

func (n *ObjectNode) Kind() Kind          { return KindObject }
func (n *ObjectNode) Checks() []Check     { return nil }
func (n *ObjectNode) Description() string { return n.desc }

// Entries returns the object's properties in declaration order.
func (n *ObjectNode) Entries() []ObjectEntry { return n.entries }

// Get looks up a property by name.
func (n *ObjectNode) Get(name string) (Node, bool) {
	for _, entry := range n.entries {
		if entry.Name == name {
			return entry.Node, true
		}
	}
	return nil, false
}

// Field appends a property. Re-declaring an existing name replaces the node in
// place, keeping the original position.
func (n *ObjectNode) Field(name string, node Node) *ObjectNode {
	for i, entry := range n.entries {
		if entry.Name == name {
			n.entries[i].Node = node
			return n
		}
	}
	n.entries = append(n.entries, ObjectEntry{Name: name, Node: node})
	return n
}

func (n *ObjectNode) Describe(text string) *ObjectNode { n.desc = text; return n }
func (n *ObjectNode) Optional() *OptionalNode          { return &OptionalNode{inner: n} }
func (n *ObjectNode) Nullable() *NullableNode          { return &NullableNode{inner: n} }

// ArrayNode describes a homogeneous list.
type ArrayNode struct {
	element Node
	checks  []Check
	desc    string
}

func (n *ArrayNode) Kind() Kind          { return KindArray }
func (n *ArrayNode) Checks() []Check     { return n.checks }
func (n *ArrayNode) Description() string { return n.desc }
func (n *ArrayNode) Element() Node       { return n.element }

func (n *ArrayNode) Min(length int) *ArrayNode {
	n.checks = append(n.checks, Check{Name: CheckMinLength, Number: float64(length)})
	return n
}

func (n *ArrayNode) Max(length int) *ArrayNode {
	n.checks = append(n.checks, Check{Name: CheckMaxLength, Number: float64(length)})
	return n
}

func (n *ArrayNode) Describe(text string) *ArrayNode { n.desc = text; return n }
func (n *ArrayNode) Optional() *OptionalNode         { return &OptionalNode{inner: n} }
func (n *ArrayNode) Nullable() *NullableNode         { return &NullableNode{inner: n} }

// TupleNode describes a fixed-length positional list.
type TupleNode struct {
	items []Node
	desc  string
}

func (n *TupleNode) Kind() Kind                     { return KindTuple }
func (n *TupleNode) Checks() []Check                { return nil }
func (n *TupleNode) Description() string            { return n.desc }
func (n *TupleNode) Items() []Node                  { return n.items }
func (n *TupleNode) Describe(text string) *TupleNode { n.desc = text; return n }
func (n *TupleNode) Optional() *OptionalNode        { return &OptionalNode{inner: n} }
func (n *TupleNode) Nullable() *NullableNode        { return &NullableNode{inner: n} }

// RecordNode describes a string-keyed map with a uniform value type.
type RecordNode struct {
	value Node
	desc  string
}

func (n *RecordNode) Kind() Kind                      { return KindRecord }
func (n *RecordNode) Checks() []Check                 { return nil }
func (n *RecordNode) Description() string             { return n.desc }
func (n *RecordNode) Value() Node                     { return n.value }
func (n *RecordNode) Describe(text string) *RecordNode { n.desc = text; return n }
func (n *RecordNode) Optional() *OptionalNode         { return &OptionalNode{inner: n} }
func (n *RecordNode) Nullable() *NullableNode         { return &NullableNode{inner: n} }

// UnionNode describes a choice between member schemas. A non-empty
// discriminator marks the union as tagged: object members carry a literal
// property of that name identifying the active variant.
type UnionNode struct {
	discriminator string
	options       []Node
	desc          string
}

func (n *UnionNode) Kind() Kind                     { return KindUnion }
func (n *UnionNode) Checks() []Check                { return nil }
func (n *UnionNode) Description() string            { return n.desc }
func (n *UnionNode) Discriminator() string          { return n.discriminator }
func (n *UnionNode) Options() []Node                { return n.options }
func (n *UnionNode) Describe(text string) *UnionNode { n.desc = text; return n }
func (n *UnionNode) Optional() *OptionalNode        { return &OptionalNode{inner: n} }
func (n *UnionNode) Nullable() *NullableNode        { return &NullableNode{inner: n} }

// OptionalNode marks its inner node as omittable.
type OptionalNode struct {
	inner Node
	desc  string
}

func (n *OptionalNode) Kind() Kind          { return KindOptional }
func (n *OptionalNode) Checks() []Check     { return nil }
func (n *OptionalNode) Description() string { return n.desc }
func (n *OptionalNode) Unwrap() Node        { return n.inner }

func (n *OptionalNode) Describe(text string) *OptionalNode { n.desc = text; return n }
func (n *OptionalNode) Nullable() *NullableNode            { return &NullableNode{inner: n} }

// NullableNode marks its inner node as accepting null.
type NullableNode struct {
	inner Node
	desc  string
}

func (n *NullableNode) Kind() Kind          { return KindNullable }
func (n *NullableNode) Checks() []Check     { return nil }
func (n *NullableNode) Description() string { return n.desc }
func (n *NullableNode) Unwrap() Node        { return n.inner }

func (n *NullableNode) Describe(text string) *NullableNode { n.desc = text; return n }
func (n *NullableNode) Optional() *OptionalNode            { return &OptionalNode{inner: n} }

// IntersectionNode merges two object-shaped schemas. The right operand wins
// when both sides declare the same key.
type IntersectionNode struct {
	left  Node
	right Node
	desc  string
}

func (n *IntersectionNode) Kind() Kind          { return KindIntersection }
func (n *IntersectionNode) Checks() []Check     { return nil }
func (n *IntersectionNode) Description() string { return n.desc }
func (n *IntersectionNode) Left() Node          { return n.left }
func (n *IntersectionNode) Right() Node         { return n.right }

func (n *IntersectionNode) Describe(text string) *IntersectionNode { n.desc = text; return n }

// PipeNode chains a wire schema into a transformed output schema. Form
// generation only ever cares about the input side.
type PipeNode struct {
	in   Node
	out  Node
	desc string
}

func (n *PipeNode) Kind() Kind          { return KindPipe }
func (n *PipeNode) Checks() []Check     { return nil }
func (n *PipeNode) Description() string { return n.desc }
func (n *PipeNode) In() Node            { return n.in }
func (n *PipeNode) Out() Node           { return n.out }

func (n *PipeNode) Describe(text string) *PipeNode { n.desc = text; return n }
func (n *PipeNode) Optional() *OptionalNode        { return &OptionalNode{inner: n} }
func (n *PipeNode) Nullable() *NullableNode        { return &NullableNode{inner: n} }

// RefNode references an externally declared named schema. References are
// plain name lookups, never embedded pointers, so descriptor trees stay
// acyclic and cycles can only form between named declarations.
type RefNode struct {
	name string
	desc string
}

func (n *RefNode) Kind() Kind                   { return KindRef }
func (n *RefNode) Checks() []Check              { return nil }
func (n *RefNode) Description() string          { return n.desc }
func (n *RefNode) Name() string                 { return n.name }
func (n *RefNode) Describe(text string) *RefNode { n.desc = text; return n }
func (n *RefNode) Optional() *OptionalNode      { return &OptionalNode{inner: n} }
func (n *RefNode) Nullable() *NullableNode      { return &NullableNode{inner: n} }
