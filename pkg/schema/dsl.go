package schema

// Constructors for every node kind. They are deliberately small: nodes are
// assembled once, handed to the pipeline, and never mutated afterwards.

// String returns a plain string schema.
func String() *StringNode { return &StringNode{} }

// Email returns a string schema created through the email format shorthand.
func Email() *StringNode { return &StringNode{format: FormatEmail} }

// URL returns a string schema created through the url format shorthand.
func URL() *StringNode { return &StringNode{format: FormatURL} }

// UUID returns a string schema created through the uuid format shorthand.
func UUID() *StringNode { return &StringNode{format: FormatUUID} }

// Number returns a numeric schema.
func Number() *NumberNode { return &NumberNode{} }

// Int returns a numeric schema restricted to integers.
func Int() *NumberNode { return (&NumberNode{}).Int() }

// Boolean returns a boolean schema.
func Boolean() *BooleanNode { return &BooleanNode{} }

// Date returns a date schema.
func Date() *DateNode { return &DateNode{} }

// Enum returns a closed string-set schema. The value list order is preserved.
func Enum(values ...string) *EnumNode {
	return &EnumNode{values: append([]string(nil), values...)}
}

// Literal returns a constant-value schema.
func Literal(value any) *LiteralNode { return &LiteralNode{value: value} }

// Object returns an empty object schema; add properties with Field.
func Object() *ObjectNode { return &ObjectNode{} }

// Array returns a list schema over the given element.
func Array(element Node) *ArrayNode { return &ArrayNode{element: element} }

// Tuple returns a fixed-length positional schema.
func Tuple(items ...Node) *TupleNode {
	return &TupleNode{items: append([]Node(nil), items...)}
}

// Record returns a string-keyed map schema with a uniform value type.
func Record(value Node) *RecordNode { return &RecordNode{value: value} }

// Union returns an untagged union over the given options.
func Union(options ...Node) *UnionNode {
	return &UnionNode{options: append([]Node(nil), options...)}
}

// DiscriminatedUnion returns a tagged union. Each object option is expected
// to carry a literal property named discriminator.
func DiscriminatedUnion(discriminator string, options ...Node) *UnionNode {
	return &UnionNode{discriminator: discriminator, options: append([]Node(nil), options...)}
}

// Optional wraps a node as omittable.
func Optional(inner Node) *OptionalNode { return &OptionalNode{inner: inner} }

// Nullable wraps a node as accepting null.
func Nullable(inner Node) *NullableNode { return &NullableNode{inner: inner} }

// Intersection merges two object-shaped schemas, right side winning on
// duplicate keys.
func Intersection(left, right Node) *IntersectionNode {
	return &IntersectionNode{left: left, right: right}
}

// Pipe chains a wire schema into a transformed output schema.
func Pipe(in, out Node) *PipeNode { return &PipeNode{in: in, out: out} }

// Ref references a named schema declared elsewhere.
func Ref(name string) *RefNode { return &RefNode{name: name} }
