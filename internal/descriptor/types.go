package descriptor

// FieldType is the canonical enum of supported field kinds: five scalar kinds
// and five composite kinds. Anything else degrades to TypeString during
// introspection.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeDate    FieldType = "date"
	TypeEnum    FieldType = "enum"
	TypeObject  FieldType = "object"
	TypeArray   FieldType = "array"
	TypeTuple   FieldType = "tuple"
	TypeRecord  FieldType = "record"
	TypeUnion   FieldType = "union"
)

// Scalar reports whether t is one of the five scalar kinds.
func (t FieldType) Scalar() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeDate, TypeEnum:
		return true
	default:
		return false
	}
}

// Composite reports whether t is one of the five composite kinds.
func (t FieldType) Composite() bool {
	switch t {
	case TypeObject, TypeArray, TypeTuple, TypeRecord, TypeUnion:
		return true
	default:
		return false
	}
}

// Constraints is the flat record of validation bounds read off a schema
// node's check list. Nil pointers mean unconstrained.
type Constraints struct {
	MinLength *int
	MaxLength *int
	Pattern   string
	Format    string
	Min       *float64
	Max       *float64
	Step      *float64
	IsInt     bool
	MinItems  *int
	MaxItems  *int
}

// Empty reports whether no constraint is set.
func (c Constraints) Empty() bool {
	return c.MinLength == nil && c.MaxLength == nil && c.Pattern == "" &&
		c.Format == "" && c.Min == nil && c.Max == nil && c.Step == nil &&
		!c.IsInt && c.MinItems == nil && c.MaxItems == nil
}

// UnionVariant is one member of a union field. Synthetic marks variants the
// introspector wrapped around a non-object member; the schema writer unwraps
// those back to a bare expression.
type UnionVariant struct {
	Tag       string
	Fields    []Field
	Synthetic bool
}

// Metadata carries the kind-specific structure of a field. Exactly one group
// of fields is populated, matching the field's type tag: Values for enums,
// Children for objects, Element for arrays, Items for tuples, Value for
// records, Discriminator/Variants for unions.
type Metadata struct {
	Values        []string
	Children      []Field
	Element       *Field
	Items         []Field
	Value         *Field
	Discriminator string
	Variants      []UnionVariant
}

// Field is the canonical intermediate descriptor for one form field.
// Descriptors form trees, never graphs: cross-schema relationships exist only
// as SchemaRef name lookups.
type Field struct {
	Name        string
	Label       string
	Description string
	Type        FieldType
	Optional    bool
	Nullable    bool
	Constraints Constraints
	Metadata    Metadata

	// SchemaRef names an externally declared schema. When set it
	// short-circuits all emission and wrapping for this field.
	SchemaRef string
}

// FormDescriptor is the introspection output consumed by the resolver and the
// writers: the ordered root fields plus naming metadata and accumulated
// warnings.
type FormDescriptor struct {
	Name             string
	SchemaImportPath string
	SchemaExportName string
	Fields           []Field
	Warnings         []string
}

// EmbeddedSchema is a named form descriptor emitted as its own declaration by
// the schema writer. Fields reference it through SchemaRef by name.
type EmbeddedSchema struct {
	Name string
	Form FormDescriptor
}
