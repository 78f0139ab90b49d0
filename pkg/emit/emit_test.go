package emit_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcode/pkg/emit"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/resolve"
)

func mustResolve(t *testing.T, fields ...model.Field) []resolve.Config {
	t.Helper()
	configs := make([]resolve.Config, 0, len(fields))
	for _, field := range fields {
		config, err := resolve.Field(field, nil)
		if err != nil {
			t.Fatalf("resolve %s: %v", field.Name, err)
		}
		configs = append(configs, config)
	}
	return configs
}

func profileForm() model.FormDescriptor {
	return model.FormDescriptor{
		Name:             "Profile",
		SchemaExportName: "profileSchema",
	}
}

func TestForm_Scaffold(t *testing.T) {
	emitter, err := emit.New()
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}
	configs := mustResolve(t,
		model.Field{Name: "firstName", Label: "First Name", Type: model.TypeString},
	)

	output, err := emitter.Form(profileForm(), configs)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	for _, want := range []string{
		`from "@/components/ui";`,
		`import { profileSchema } from "./schema";`,
		`import type { Profile } from "./schema";`,
		"export const defaultValues: Profile = {",
		"export function ProfileForm() {",
		"<Form schema={ profileSchema } defaultValues={defaultValues}>",
		`<FormField name="firstName" required>`,
		"<Label>First Name</Label>",
		`<Input name="firstName" />`,
		`<Button type="submit">Submit</Button>`,
	} {
		if !strings.Contains(output.Code, want) {
			t.Fatalf("emitted code missing %q:\n%s", want, output.Code)
		}
	}
}

func TestForm_ImportExpansion(t *testing.T) {
	emitter, err := emit.New()
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}
	configs := mustResolve(t, model.Field{
		Name: "color", Label: "Color", Type: model.TypeEnum,
		Metadata: model.Metadata{Values: []string{"red", "green"}},
	})

	output, err := emitter.Form(profileForm(), configs)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	want := []string{
		"Button", "Description", "Form", "FormField", "Label",
		"RadioGroup", "RadioGroupItem",
	}
	if diff := cmp.Diff(want, output.Primitives); diff != "" {
		t.Fatalf("primitives mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_ConstraintAttributes(t *testing.T) {
	emitter, err := emit.New()
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}
	minLen, maxLen := 2, 50
	min, max := 0.0, 10.0
	configs := mustResolve(t,
		model.Field{Name: "name", Label: "Name", Type: model.TypeString,
			Constraints: model.Constraints{MinLength: &minLen, MaxLength: &maxLen}},
		model.Field{Name: "rating", Label: "Rating", Type: model.TypeNumber,
			Constraints: model.Constraints{Min: &min, Max: &max, IsInt: true}},
		model.Field{Name: "email", Label: "Email", Type: model.TypeString,
			Constraints: model.Constraints{Format: "email"}},
	)

	output, err := emitter.Form(profileForm(), configs)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	for _, want := range []string{
		`<Input name="name" minLength={2} maxLength={50} />`,
		`<Slider name="rating" min={0} max={10} step={1} />`,
		`<Input name="email" type="email" />`,
	} {
		if !strings.Contains(output.Code, want) {
			t.Fatalf("emitted code missing %q:\n%s", want, output.Code)
		}
	}
}

func TestForm_ArrayRowsUseIndexPlaceholder(t *testing.T) {
	emitter, err := emit.New()
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}
	element := model.Field{Name: "tagsItem", Label: "Tags Item", Type: model.TypeString}
	configs := mustResolve(t, model.Field{
		Name: "tags", Label: "Tags", Type: model.TypeArray,
		Metadata: model.Metadata{Element: &element},
	})

	output, err := emitter.Form(profileForm(), configs)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	for _, want := range []string{
		`<FieldArray name="tags">`,
		"<Input name={`tags.${index}`} />",
		`<Button action="remove">Remove</Button>`,
		`<Button action="add">Add</Button>`,
	} {
		if !strings.Contains(output.Code, want) {
			t.Fatalf("emitted code missing %q:\n%s", want, output.Code)
		}
	}
}

func TestForm_RecordRowsAreKeyed(t *testing.T) {
	emitter, err := emit.New()
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}
	value := model.Field{Name: "value", Label: "Value", Type: model.TypeString}
	configs := mustResolve(t, model.Field{
		Name: "env", Label: "Env", Type: model.TypeRecord,
		Metadata: model.Metadata{Value: &value},
	})

	output, err := emitter.Form(profileForm(), configs)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	if !strings.Contains(output.Code, `<FieldArray name="env" keyed>`) {
		t.Fatalf("record should render keyed:\n%s", output.Code)
	}
	if !strings.Contains(output.Code, "<Input name={`env.${key}`} />") {
		t.Fatalf("record rows should bind through the key placeholder:\n%s", output.Code)
	}
	if strings.Contains(output.Code, `action="add"`) || strings.Contains(output.Code, `action="remove"`) {
		t.Fatalf("record rows must not carry add/remove affordances:\n%s", output.Code)
	}
}

func TestForm_UnionSwitch(t *testing.T) {
	emitter, err := emit.New()
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}
	configs := mustResolve(t, model.Field{
		Name: "payment", Label: "Payment", Type: model.TypeUnion,
		Metadata: model.Metadata{
			Discriminator: "kind",
			Variants: []model.UnionVariant{
				{Tag: "card", Fields: []model.Field{{Name: "number", Label: "Number", Type: model.TypeString}}},
				{Tag: "iban", Fields: []model.Field{{Name: "account", Label: "Account", Type: model.TypeString}}},
			},
		},
	})

	output, err := emitter.Form(profileForm(), configs)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	for _, want := range []string{
		`<UnionSwitch name="payment">`,
		`<Select name="payment.kind">`,
		`<SelectItem value="card">card</SelectItem>`,
		`<Show when="payment.kind" equals="card">`,
		`<Input name="payment.number" />`,
		`<Show when="payment.kind" equals="iban">`,
	} {
		if !strings.Contains(output.Code, want) {
			t.Fatalf("emitted code missing %q:\n%s", want, output.Code)
		}
	}
}

func TestForm_DescriptionSanitized(t *testing.T) {
	emitter, err := emit.New()
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}
	configs := mustResolve(t, model.Field{
		Name: "bio", Label: "Bio", Type: model.TypeString,
		Description: "Supports <b>bold</b> & plain text",
	})

	output, err := emitter.Form(profileForm(), configs)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	if !strings.Contains(output.Code, "<Description>Supports bold &amp; plain text</Description>") {
		t.Fatalf("description not sanitized and escaped:\n%s", output.Code)
	}
}

func TestForm_EmptyChoiceFails(t *testing.T) {
	emitter, err := emit.New()
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}
	config := resolve.Config{
		Component: resolve.ComponentSelect,
		Label:     "Broken",
		Field:     model.Field{Name: "broken", Type: model.TypeEnum},
		Props:     resolve.Props{"options": []string{}},
	}

	_, err = emitter.Form(profileForm(), []resolve.Config{config})
	var emission *emit.EmissionError
	if !errors.As(err, &emission) {
		t.Fatalf("expected EmissionError, got %v", err)
	}
	if emission.FieldName != "broken" {
		t.Fatalf("error should name the field: %+v", emission)
	}
}

func TestForm_ExternalRefPlaceholder(t *testing.T) {
	emitter, err := emit.New()
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}
	configs := mustResolve(t, model.Field{
		Name: "shipping", Label: "Shipping", Type: model.TypeObject, SchemaRef: "addressSchema",
	})

	output, err := emitter.Form(profileForm(), configs)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if !strings.Contains(output.Code, "{/* shipping is provided by the external schema addressSchema */}") {
		t.Fatalf("external ref should render a placeholder:\n%s", output.Code)
	}
}
