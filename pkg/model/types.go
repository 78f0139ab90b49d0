package model

import "github.com/goliatone/go-formcode/internal/descriptor"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = descriptor.FieldType

const (
	TypeString  = descriptor.TypeString
	TypeNumber  = descriptor.TypeNumber
	TypeBoolean = descriptor.TypeBoolean
	TypeDate    = descriptor.TypeDate
	TypeEnum    = descriptor.TypeEnum
	TypeObject  = descriptor.TypeObject
	TypeArray   = descriptor.TypeArray
	TypeTuple   = descriptor.TypeTuple
	TypeRecord  = descriptor.TypeRecord
	TypeUnion   = descriptor.TypeUnion
)

type Constraints = descriptor.Constraints
type Metadata = descriptor.Metadata
type UnionVariant = descriptor.UnionVariant
type Field = descriptor.Field
type FormDescriptor = descriptor.FormDescriptor
type EmbeddedSchema = descriptor.EmbeddedSchema

// Label derives a human-friendly label from a field name.
func Label(name string) string { return descriptor.Label(name) }
