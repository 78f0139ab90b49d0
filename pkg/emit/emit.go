// Package emit turns resolved component configurations into form component
// source text. The file scaffold comes from an embedded template; the field
// markup is built recursively with binding paths threaded through nesting.
package emit

import (
	"embed"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formcode/internal/ident"
	"github.com/goliatone/go-formcode/internal/template"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/resolve"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	defaultUIImportPath = "@/components/ui"
	defaultSubmitLabel  = "Submit"
)

// EmissionError reports a resolved configuration the emitter refuses to
// render, such as a choice control with no options.
type EmissionError struct {
	FieldName string
	Reason    string
}

func (e *EmissionError) Error() string {
	return fmt.Sprintf("emit: field %q: %s", e.FieldName, e.Reason)
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithUIImportPath overrides the module path component imports come from.
func WithUIImportPath(path string) Option {
	return func(e *Emitter) {
		if path != "" {
			e.uiImportPath = path
		}
	}
}

// WithSubmitLabel overrides the submit button caption.
func WithSubmitLabel(label string) Option {
	return func(e *Emitter) {
		if label != "" {
			e.submitLabel = label
		}
	}
}

// Emitter renders form source from resolved configurations.
type Emitter struct {
	uiImportPath string
	submitLabel  string
	engine       *template.Engine
	sanitizer    *bluemonday.Policy
}

// New constructs an Emitter with the embedded template bundle.
func New(options ...Option) (*Emitter, error) {
	engine, err := template.New(template.WithFS(templateFS))
	if err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}
	e := &Emitter{
		uiImportPath: defaultUIImportPath,
		submitLabel:  defaultSubmitLabel,
		engine:       engine,
		sanitizer:    bluemonday.StrictPolicy(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e, nil
}

// Output is the rendered form source plus the component names it imports.
type Output struct {
	Code       string
	Primitives []string
}

// Form renders the complete form component for the descriptor. The configs
// slice holds one resolved configuration per emitted top-level field, in
// declaration order.
func (e *Emitter) Form(form model.FormDescriptor, configs []resolve.Config) (Output, error) {
	var fields strings.Builder
	for _, cfg := range configs {
		block, err := e.emitConfig(cfg, cfg.Field.Name, "      ")
		if err != nil {
			return Output{}, err
		}
		fields.WriteString(block)
	}

	primitives := CollectComponents(configs)
	typeName := ident.TypeAlias(form.SchemaExportName)
	componentName := ident.UpperFirst(form.Name) + "Form"

	code, err := e.engine.Render("templates/form.tsx", map[string]any{
		"imports":        e.importBlock(form, primitives, typeName),
		"defaults":       defaultsObject(configs),
		"type_name":      typeName,
		"component_name": componentName,
		"schema_name":    form.SchemaExportName,
		"submit_label":   escapeText(e.submitLabel),
		"fields":         fields.String(),
	})
	if err != nil {
		return Output{}, err
	}
	return Output{Code: code, Primitives: primitives}, nil
}

func (e *Emitter) importBlock(form model.FormDescriptor, primitives []string, typeName string) string {
	schemaPath := form.SchemaImportPath
	if schemaPath == "" {
		schemaPath = "./schema"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "import { %s } from %q;\n", strings.Join(primitives, ", "), e.uiImportPath)
	fmt.Fprintf(&b, "import { %s } from %q;\n", form.SchemaExportName, schemaPath)
	fmt.Fprintf(&b, "import type { %s } from %q;", typeName, schemaPath)
	return b.String()
}

// plainText strips markup from a description before it is re-escaped for the
// position it lands in. The sanitizer entity-encodes its output, so decode
// once to avoid double escaping.
func (e *Emitter) plainText(s string) string {
	return html.UnescapeString(e.sanitizer.Sanitize(s))
}
