package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/AlecAivazis/survey/v2"

	formcode "github.com/goliatone/go-formcode"
	"github.com/goliatone/go-formcode/pkg/introspect"
	"github.com/goliatone/go-formcode/pkg/model"
	"github.com/goliatone/go-formcode/pkg/openapi"
	"github.com/goliatone/go-formcode/pkg/schema"
	"github.com/goliatone/go-formcode/pkg/schema/loader"
	"github.com/goliatone/go-formcode/pkg/schemawrite"
)

func main() {
	source := flag.String("schema", "", "schema document path (YAML or JSON)")
	openapiSource := flag.String("openapi", "", "OpenAPI document path, used instead of -schema")
	component := flag.String("component", "", "OpenAPI component schema to generate for")
	name := flag.String("name", "Form", "form name, e.g. Profile")
	formOut := flag.String("form", "", "output file for the form source (stdout if empty)")
	schemaOut := flag.String("emit-schema", "", "output file for the schema source (skipped if empty)")
	uiImport := flag.String("ui-import", "", "component library import path override")
	schemaImport := flag.String("schema-import", "", "schema import path in the emitted form")
	submit := flag.String("submit", "", "submit button label override")
	yes := flag.Bool("yes", false, "overwrite existing output files without asking")
	flag.Parse()

	root, named, err := loadSource(*source, *openapiSource, *component)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	result, err := formcode.Generate(formcode.Request{
		Schema:           root,
		FormName:         *name,
		SchemaImportPath: *schemaImport,
		UIImportPath:     *uiImport,
		SubmitLabel:      *submit,
	})
	if err != nil {
		log.Fatalf("Failed to generate form: %v", err)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	if err := writeOutput(*formOut, result.Code, *yes); err != nil {
		log.Fatalf("Failed to write form: %v", err)
	}

	if *schemaOut != "" {
		exclude := map[string]bool{result.Form.SchemaExportName: true}
		if *component != "" {
			// The primary component also appears in the named set under its
			// own identifier; declaring it again would duplicate the shape.
			exclude[openapi.SchemaIdentifier(*component)] = true
		}
		embedded, err := embeddedSchemas(named, exclude)
		if err != nil {
			log.Fatalf("Failed to introspect named schemas: %v", err)
		}
		written, err := formcode.WriteSchema(schemawrite.Request{
			Form:     result.Form,
			Embedded: embedded,
		})
		if err != nil {
			log.Fatalf("Failed to write schema source: %v", err)
		}
		for _, warning := range written.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
		}
		if err := writeOutput(*schemaOut, written.Code, *yes); err != nil {
			log.Fatalf("Failed to write schema source: %v", err)
		}
	}
}

// embeddedSchemas introspects every named schema not in the exclusion set, in
// name order, so the writer can declare them ahead of their first use. The
// exclusion set carries the primary schema under every identifier it is known
// by.
func embeddedSchemas(named map[string]schema.Node, exclude map[string]bool) ([]model.EmbeddedSchema, error) {
	names := make([]string, 0, len(named))
	for name := range named {
		if exclude[name] {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	embedded := make([]model.EmbeddedSchema, 0, len(names))
	for _, name := range names {
		form, err := introspect.Introspect(named[name], introspect.Options{
			SchemaExportName: name,
		})
		if err != nil {
			return nil, fmt.Errorf("named schema %q: %w", name, err)
		}
		embedded = append(embedded, model.EmbeddedSchema{Name: name, Form: form})
	}
	return embedded, nil
}

func loadSource(source, openapiSource, component string) (schema.Node, map[string]schema.Node, error) {
	switch {
	case source != "" && openapiSource != "":
		return nil, nil, fmt.Errorf("use either -schema or -openapi, not both")
	case source != "":
		doc, err := loader.Load(source)
		if err != nil {
			return nil, nil, err
		}
		return doc.Root, doc.Named, nil
	case openapiSource != "":
		if component == "" {
			return nil, nil, fmt.Errorf("-openapi requires -component")
		}
		converter, err := openapi.LoadFile(context.Background(), openapiSource)
		if err != nil {
			return nil, nil, err
		}
		root, err := converter.Component(component)
		if err != nil {
			return nil, nil, err
		}
		named, err := converter.Components()
		if err != nil {
			return nil, nil, err
		}
		return root, named, nil
	default:
		return nil, nil, fmt.Errorf("a -schema or -openapi source is required")
	}
}

func writeOutput(path, content string, overwrite bool) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		confirmed := false
		prompt := &survey.Confirm{Message: fmt.Sprintf("%s exists, overwrite?", path)}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("refusing to overwrite %s", path)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	return nil
}
