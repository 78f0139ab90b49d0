package main

import (
	"testing"

	"github.com/goliatone/go-formcode/pkg/openapi"
	"github.com/goliatone/go-formcode/pkg/schema"
)

func TestEmbeddedSchemas_ExcludesPrimaryIdentifiers(t *testing.T) {
	named := map[string]schema.Node{
		"profileSchema": schema.Object().Field("name", schema.String()),
		"addressSchema": schema.Object().Field("street", schema.String()),
		"accountSchema": schema.Object().Field("billing", schema.Ref("addressSchema")),
	}

	// Generating component Profile under the default form name declares the
	// primary as formSchema; the component identifier must be filtered too or
	// the same shape is declared twice.
	exclude := map[string]bool{
		"formSchema":                       true,
		openapi.SchemaIdentifier("Profile"): true,
	}

	embedded, err := embeddedSchemas(named, exclude)
	if err != nil {
		t.Fatalf("embedded schemas: %v", err)
	}

	if len(embedded) != 2 {
		t.Fatalf("expected 2 embedded schemas, got %d", len(embedded))
	}
	if embedded[0].Name != "accountSchema" || embedded[1].Name != "addressSchema" {
		t.Fatalf("unexpected names: %q, %q", embedded[0].Name, embedded[1].Name)
	}
	for _, sub := range embedded {
		if sub.Name == "profileSchema" {
			t.Fatalf("primary component leaked into the embedded set")
		}
		if sub.Form.SchemaExportName != sub.Name {
			t.Fatalf("embedded form %q exported as %q", sub.Name, sub.Form.SchemaExportName)
		}
	}
}

func TestEmbeddedSchemas_FailsOnNonObjectNamed(t *testing.T) {
	named := map[string]schema.Node{
		"tagSchema": schema.String(),
	}
	if _, err := embeddedSchemas(named, nil); err == nil {
		t.Fatal("expected an error for a non-object named schema")
	}
}
