package loader_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formcode/pkg/introspect"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/schema"
	"github.com/goliatone/go-formcode/pkg/schema/loader"
)

const profileDocument = `
schemas:
  addressSchema:
    type: object
    fields:
      street:
        type: string
        minLength: 1
      zip:
        type: string
root:
  type: object
  fields:
    email:
      type: string
      format: email
      description: Contact address
    nickname:
      type: string
      optional: true
      nullable: true
    age:
      type: integer
      min: 18
      max: 120
    color:
      type: enum
      values: [red, green, blue]
    tags:
      type: array
      of:
        type: string
      minItems: 1
      maxItems: 5
    home:
      type: ref
      ref: addressSchema
    payment:
      type: union
      discriminator: kind
      options:
        - type: object
          fields:
            kind:
              type: literal
              value: card
            number:
              type: string
        - type: object
          fields:
            kind:
              type: literal
              value: iban
            account:
              type: string
`

func TestParse_Document(t *testing.T) {
	doc, err := loader.Parse([]byte(profileDocument))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if _, ok := doc.Named["addressSchema"]; !ok {
		t.Fatalf("named schema not parsed: %v", doc.Named)
	}

	form, err := introspect.Introspect(doc.Root, introspect.Options{FormName: "Profile"})
	if err != nil {
		t.Fatalf("introspect parsed root: %v", err)
	}

	var names []string
	for _, field := range form.Fields {
		names = append(names, field.Name)
	}
	if got := strings.Join(names, ","); got != "email,nickname,age,color,tags,home,payment" {
		t.Fatalf("field order not preserved: %s", got)
	}

	email := form.Fields[0]
	if email.Constraints.Format != schema.FormatEmail || email.Description != "Contact address" {
		t.Fatalf("string field mismatch: %+v", email)
	}

	nickname := form.Fields[1]
	if !nickname.Optional || !nickname.Nullable {
		t.Fatalf("wrapper declarations not applied: %+v", nickname)
	}

	age := form.Fields[2]
	if !age.Constraints.IsInt || *age.Constraints.Min != 18 {
		t.Fatalf("integer shorthand mismatch: %+v", age.Constraints)
	}

	tags := form.Fields[4]
	if tags.Type != model.TypeArray || *tags.Constraints.MinItems != 1 || *tags.Constraints.MaxItems != 5 {
		t.Fatalf("array bounds mismatch: %+v", tags)
	}

	if home := form.Fields[5]; home.SchemaRef != "addressSchema" {
		t.Fatalf("ref not resolved to name: %+v", home)
	}

	payment := form.Fields[6]
	if payment.Metadata.Discriminator != "kind" || len(payment.Metadata.Variants) != 2 {
		t.Fatalf("union mismatch: %+v", payment.Metadata)
	}
	if payment.Metadata.Variants[0].Tag != "card" {
		t.Fatalf("literal tag mismatch: %+v", payment.Metadata.Variants[0])
	}
}

func TestParse_JSONDocument(t *testing.T) {
	doc, err := loader.Parse([]byte(`{"root": {"type": "object", "fields": {"name": {"type": "string"}}}}`))
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if doc.Root.Kind() != schema.KindObject {
		t.Fatalf("root kind mismatch: %s", doc.Root.Kind())
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"no root", `schemas: {}`},
		{"unknown type", `root: {type: wobble}`},
		{"enum without values", `root: {type: object, fields: {c: {type: enum}}}`},
		{"array without element", `root: {type: object, fields: {t: {type: array}}}`},
		{"ref without target", `root: {type: object, fields: {r: {type: ref}}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loader.Parse([]byte(tc.doc)); err == nil {
				t.Fatalf("expected parse error")
			}
		})
	}
}
