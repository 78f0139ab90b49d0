// Package formcode generates UI form source from declarative validation
// schemas and, in the inverse direction, validation-schema source from schema
// values. The pipeline is introspection, rule resolution, emission; each stage
// is importable on its own from pkg/.
package formcode

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formcode/pkg/emit"
	"github.com/goliatone/go-formcode/pkg/introspect"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/resolve"
	"github.com/goliatone/go-formcode/pkg/schema"
	"github.com/goliatone/go-formcode/pkg/schemawrite"
)

// Request describes one form-generation run.
type Request struct {
	// Schema is the object-rooted schema value to generate a form for.
	Schema schema.Node
	// FormName names the generated component, e.g. "Profile" -> ProfileForm.
	FormName string
	// SchemaImportPath is where the emitted form imports the schema from.
	// Defaults to "./schema".
	SchemaImportPath string
	// SchemaExportName is the schema identifier in the emitted imports. When
	// empty it is derived from FormName.
	SchemaExportName string
	// UIImportPath overrides the component library import path.
	UIImportPath string
	// SubmitLabel overrides the submit button caption.
	SubmitLabel string
	// Rules replaces the default component rule table when non-empty.
	Rules []resolve.Rule
}

// Result is the outcome of a generation run. Fields lists the descriptors
// that made it into the emitted form; Warnings collects introspection
// degradations and per-field resolution failures.
type Result struct {
	Code       string
	Form       model.FormDescriptor
	Fields     []model.Field
	Primitives []string
	Warnings   []string
}

// Generate runs the full pipeline. A structurally unusable root aborts the
// run. A field no rule can map is reported as a warning and left out of the
// form; emission preconditions, such as a choice control without options,
// remain fatal.
func Generate(req Request) (Result, error) {
	if req.Schema == nil {
		return Result{}, errors.New("formcode: request schema is nil")
	}

	form, err := introspect.Introspect(req.Schema, introspect.Options{
		FormName:         req.FormName,
		SchemaImportPath: req.SchemaImportPath,
		SchemaExportName: req.SchemaExportName,
	})
	if err != nil {
		return Result{}, err
	}

	warnings := append([]string(nil), form.Warnings...)
	configs := make([]resolve.Config, 0, len(form.Fields))
	fields := make([]model.Field, 0, len(form.Fields))
	for _, field := range form.Fields {
		config, err := resolve.Field(field, req.Rules)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("field %q: %v; excluded from the generated form", field.Name, err))
			continue
		}
		configs = append(configs, config)
		fields = append(fields, field)
	}

	var emitOpts []emit.Option
	if req.UIImportPath != "" {
		emitOpts = append(emitOpts, emit.WithUIImportPath(req.UIImportPath))
	}
	if req.SubmitLabel != "" {
		emitOpts = append(emitOpts, emit.WithSubmitLabel(req.SubmitLabel))
	}
	emitter, err := emit.New(emitOpts...)
	if err != nil {
		return Result{}, err
	}

	output, err := emitter.Form(form, configs)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Code:       output.Code,
		Form:       form,
		Fields:     fields,
		Primitives: output.Primitives,
		Warnings:   warnings,
	}, nil
}

// WriteSchema renders validation-schema source for a form descriptor,
// including topologically ordered declarations for any named sub-schemas its
// fields reference.
func WriteSchema(req schemawrite.Request) (schemawrite.Result, error) {
	return schemawrite.Write(req)
}
