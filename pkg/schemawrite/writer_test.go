package schemawrite_test

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/goliatone/go-formcode/pkg/introspect"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/schema"
	"github.com/goliatone/go-formcode/pkg/schemawrite"
)

func mustIntrospect(t *testing.T, node schema.Node, name string) model.FormDescriptor {
	t.Helper()
	form, err := introspect.Introspect(node, introspect.Options{FormName: name})
	if err != nil {
		t.Fatalf("introspect %s: %v", name, err)
	}
	return form
}

func TestWrite_ScalarChains(t *testing.T) {
	form := mustIntrospect(t, schema.Object().
		Field("email", schema.Email().Min(5).Max(120)).
		Field("slug", schema.String().Regex("^[a-z/]+$")).
		Field("age", schema.Int().Min(18).Max(120)).
		Field("price", schema.Number().MultipleOf(0.5)).
		Field("amount", schema.Number().Min(0.0000001).MultipleOf(0.12345678)).
		Field("active", schema.Boolean()).
		Field("birthday", schema.Date()).
		Field("color", schema.Enum("red", "green")), "Profile")

	result, err := schemawrite.Write(schemawrite.Request{Form: form})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, want := range []string{
		`import { z } from "zod";`,
		"export const profileSchema = z.object({",
		"email: z.string().email().min(5).max(120),",
		`slug: z.string().regex(/^[a-z\/]+$/),`,
		"age: z.number().int().min(18).max(120),",
		"price: z.number().multipleOf(0.5),",
		"amount: z.number().min(0.0000001).multipleOf(0.12345678),",
		"active: z.boolean(),",
		"birthday: z.date(),",
		`color: z.enum(["red", "green"]),`,
		"export type Profile = z.infer<typeof profileSchema>;",
	} {
		if !strings.Contains(result.Code, want) {
			t.Fatalf("schema source missing %q:\n%s", want, result.Code)
		}
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestWrite_WrapperOrder(t *testing.T) {
	// However the wrappers were nested, emission collapses to one fixed order.
	form := mustIntrospect(t, schema.Object().
		Field("nickname", schema.Optional(schema.Nullable(schema.String().Describe("Pet name")))).
		Field("bio", schema.Nullable(schema.Optional(schema.String()))), "Profile")

	result, err := schemawrite.Write(schemawrite.Request{Form: form})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, want := range []string{
		`nickname: z.string().nullable().optional().describe("Pet name"),`,
		"bio: z.string().nullable().optional(),",
	} {
		if !strings.Contains(result.Code, want) {
			t.Fatalf("schema source missing %q:\n%s", want, result.Code)
		}
	}
}

func TestWrite_Composites(t *testing.T) {
	form := mustIntrospect(t, schema.Object().
		Field("tags", schema.Array(schema.String()).Min(1).Max(5)).
		Field("point", schema.Tuple(schema.Number(), schema.Number())).
		Field("env", schema.Record(schema.String())).
		Field("legal name", schema.String()), "Profile")

	result, err := schemawrite.Write(schemawrite.Request{Form: form})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, want := range []string{
		"tags: z.array(z.string()).min(1).max(5),",
		"point: z.tuple([z.number(), z.number()]),",
		"env: z.record(z.string(), z.string()),",
		`"legal name": z.string(),`,
	} {
		if !strings.Contains(result.Code, want) {
			t.Fatalf("schema source missing %q:\n%s", want, result.Code)
		}
	}
}

func TestWrite_DiscriminatedUnion(t *testing.T) {
	form := mustIntrospect(t, schema.Object().
		Field("payment", schema.DiscriminatedUnion("kind",
			schema.Object().
				Field("kind", schema.Literal("card")).
				Field("number", schema.String()),
			schema.Object().
				Field("kind", schema.Literal("iban")).
				Field("account", schema.String()),
		)), "Checkout")

	result, err := schemawrite.Write(schemawrite.Request{Form: form})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, want := range []string{
		`payment: z.discriminatedUnion("kind", [`,
		`kind: z.literal("card"),`,
		"number: z.string(),",
		`kind: z.literal("iban"),`,
	} {
		if !strings.Contains(result.Code, want) {
			t.Fatalf("schema source missing %q:\n%s", want, result.Code)
		}
	}
}

func TestWrite_SyntheticUnionUnwraps(t *testing.T) {
	form := mustIntrospect(t, schema.Object().
		Field("value", schema.Union(schema.String(), schema.Number())), "Mixed")

	result, err := schemawrite.Write(schemawrite.Request{Form: form})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	if !strings.Contains(result.Code, "z.union([") {
		t.Fatalf("plain union missing:\n%s", result.Code)
	}
	// The single-field wrapping around scalar members must not surface as a
	// one-key object in the written source.
	if strings.Contains(result.Code, "value: z.object(") || strings.Contains(result.Code, "value: z.string(),\n    }") {
		t.Fatalf("synthetic wrapping leaked into union source:\n%s", result.Code)
	}
	for _, want := range []string{"z.string(),", "z.number(),"} {
		if !strings.Contains(result.Code, want) {
			t.Fatalf("union member missing %q:\n%s", want, result.Code)
		}
	}
}

func TestWrite_RefVerbatimIgnoresWrapping(t *testing.T) {
	form := mustIntrospect(t, schema.Object().
		Field("shipping", schema.Optional(schema.Ref("addressSchema"))), "Order")

	result, err := schemawrite.Write(schemawrite.Request{Form: form})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(result.Code, "shipping: addressSchema,") {
		t.Fatalf("ref should emit the bare identifier with no wrapping:\n%s", result.Code)
	}
	if strings.Contains(result.Code, "addressSchema.optional()") {
		t.Fatalf("wrapping must not re-apply on top of a reference:\n%s", result.Code)
	}
}

func TestWrite_EmbeddedTopologicallySorted(t *testing.T) {
	address := mustIntrospect(t, schema.Object().
		Field("street", schema.String()), "Address")
	account := mustIntrospect(t, schema.Object().
		Field("billing", schema.Ref("addressSchema")).
		Field("shipping", schema.Ref("addressSchema")), "Account")
	root := mustIntrospect(t, schema.Object().
		Field("account", schema.Ref("accountSchema")), "Profile")

	// Supplied dependents-first on purpose.
	result, err := schemawrite.Write(schemawrite.Request{
		Form: root,
		Embedded: []model.EmbeddedSchema{
			{Name: "accountSchema", Form: account},
			{Name: "addressSchema", Form: address},
		},
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	addressAt := strings.Index(result.Code, "export const addressSchema")
	accountAt := strings.Index(result.Code, "export const accountSchema")
	profileAt := strings.Index(result.Code, "export const profileSchema")
	if addressAt < 0 || accountAt < 0 || profileAt < 0 {
		t.Fatalf("missing declarations:\n%s", result.Code)
	}
	if !(addressAt < accountAt && accountAt < profileAt) {
		t.Fatalf("declarations out of dependency order:\n%s", result.Code)
	}
	if !strings.Contains(result.Code, "export type Address = z.infer<typeof addressSchema>;") {
		t.Fatalf("embedded type alias missing:\n%s", result.Code)
	}
}

func TestWrite_CircularReferenceFails(t *testing.T) {
	a := mustIntrospect(t, schema.Object().Field("b", schema.Ref("bSchema")), "A")
	b := mustIntrospect(t, schema.Object().Field("a", schema.Ref("aSchema")), "B")

	_, err := schemawrite.Write(schemawrite.Request{
		Form: mustIntrospect(t, schema.Object().Field("a", schema.Ref("aSchema")), "Root"),
		Embedded: []model.EmbeddedSchema{
			{Name: "aSchema", Form: a},
			{Name: "bSchema", Form: b},
		},
	})
	var circular *schemawrite.CircularRefError
	if !errors.As(err, &circular) {
		t.Fatalf("expected CircularRefError, got %v", err)
	}
	sort.Strings(circular.Names)
	if len(circular.Names) != 2 || circular.Names[0] != "aSchema" || circular.Names[1] != "bSchema" {
		t.Fatalf("cycle members mismatch: %v", circular.Names)
	}
}

func TestWrite_DefaultExportName(t *testing.T) {
	result, err := schemawrite.Write(schemawrite.Request{
		Form: model.FormDescriptor{Fields: []model.Field{{Name: "name", Type: model.TypeString}}},
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(result.Code, "export const formSchema = ") {
		t.Fatalf("default export name missing:\n%s", result.Code)
	}
	if !strings.Contains(result.Code, "export type Form = z.infer<typeof formSchema>;") {
		t.Fatalf("derived alias missing:\n%s", result.Code)
	}
}
