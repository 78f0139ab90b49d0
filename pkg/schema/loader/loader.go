// Package loader parses declarative schema documents, YAML or JSON, into
// schema node trees. A document holds an object-rooted primary schema plus
// optional named sub-schemas that fields reference by name.
package loader

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcode/pkg/schema"
)

// Document is a parsed schema document.
type Document struct {
	Root  schema.Node
	Named map[string]schema.Node
}

type fileSpec struct {
	Schemas yaml.Node `yaml:"schemas"`
	Root    *nodeSpec `yaml:"root"`
}

// nodeSpec mirrors one node declaration. Field order inside object shapes
// matters, so mappings are kept as raw yaml nodes and walked in order.
type nodeSpec struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Optional    bool   `yaml:"optional"`
	Nullable    bool   `yaml:"nullable"`

	// String constraints.
	Format    string `yaml:"format"`
	Pattern   string `yaml:"pattern"`
	MinLength *int   `yaml:"minLength"`
	MaxLength *int   `yaml:"maxLength"`

	// Number constraints.
	Min        *float64 `yaml:"min"`
	Max        *float64 `yaml:"max"`
	MultipleOf *float64 `yaml:"multipleOf"`
	Int        bool     `yaml:"int"`

	// Collection constraints.
	MinItems *int `yaml:"minItems"`
	MaxItems *int `yaml:"maxItems"`

	// Kind-specific payloads.
	Values        []string   `yaml:"values"`
	Value         any        `yaml:"value"`
	Fields        yaml.Node  `yaml:"fields"`
	Of            *nodeSpec  `yaml:"of"`
	Items         []nodeSpec `yaml:"items"`
	Options       []nodeSpec `yaml:"options"`
	Discriminator string     `yaml:"discriminator"`
	Left          *nodeSpec  `yaml:"left"`
	Right         *nodeSpec  `yaml:"right"`
	In            *nodeSpec  `yaml:"in"`
	Out           *nodeSpec  `yaml:"out"`
	Ref           string     `yaml:"ref"`
}

// Parse decodes a schema document from YAML or JSON bytes.
func Parse(data []byte) (*Document, error) {
	var file fileSpec
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("loader: decode document: %w", err)
	}
	if file.Root == nil {
		return nil, errors.New("loader: document has no root schema")
	}

	doc := &Document{Named: make(map[string]schema.Node)}
	if file.Schemas.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(file.Schemas.Content); i += 2 {
			name := file.Schemas.Content[i].Value
			var spec nodeSpec
			if err := file.Schemas.Content[i+1].Decode(&spec); err != nil {
				return nil, fmt.Errorf("loader: schema %q: %w", name, err)
			}
			node, err := buildNode(&spec)
			if err != nil {
				return nil, fmt.Errorf("loader: schema %q: %w", name, err)
			}
			doc.Named[name] = node
		}
	}

	root, err := buildNode(file.Root)
	if err != nil {
		return nil, fmt.Errorf("loader: root: %w", err)
	}
	doc.Root = root
	return doc, nil
}

// Load reads and parses a schema document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return Parse(data)
}

func buildNode(spec *nodeSpec) (schema.Node, error) {
	if spec == nil {
		return nil, errors.New("missing node declaration")
	}

	base, err := buildBase(spec)
	if err != nil {
		return nil, err
	}

	node := base
	if spec.Nullable {
		node = schema.Nullable(node)
	}
	if spec.Optional {
		node = schema.Optional(node)
	}
	return node, nil
}

func buildBase(spec *nodeSpec) (schema.Node, error) {
	switch spec.Type {
	case "string":
		n := schema.String()
		if spec.Format != "" {
			n.Format(spec.Format)
		}
		if spec.MinLength != nil {
			n.Min(*spec.MinLength)
		}
		if spec.MaxLength != nil {
			n.Max(*spec.MaxLength)
		}
		if spec.Pattern != "" {
			n.Regex(spec.Pattern)
		}
		n.Describe(spec.Description)
		return n, nil
	case "number", "integer":
		n := schema.Number()
		if spec.Type == "integer" || spec.Int {
			n.Int()
		}
		if spec.Min != nil {
			n.Min(*spec.Min)
		}
		if spec.Max != nil {
			n.Max(*spec.Max)
		}
		if spec.MultipleOf != nil {
			n.MultipleOf(*spec.MultipleOf)
		}
		n.Describe(spec.Description)
		return n, nil
	case "boolean":
		return schema.Boolean().Describe(spec.Description), nil
	case "date":
		return schema.Date().Describe(spec.Description), nil
	case "enum":
		if len(spec.Values) == 0 {
			return nil, errors.New("enum declares no values")
		}
		return schema.Enum(spec.Values...).Describe(spec.Description), nil
	case "literal":
		if spec.Value == nil {
			return nil, errors.New("literal declares no value")
		}
		return schema.Literal(spec.Value).Describe(spec.Description), nil
	case "object":
		return buildObject(spec)
	case "array":
		if spec.Of == nil {
			return nil, errors.New("array declares no element")
		}
		element, err := buildNode(spec.Of)
		if err != nil {
			return nil, err
		}
		n := schema.Array(element)
		if spec.MinItems != nil {
			n.Min(*spec.MinItems)
		}
		if spec.MaxItems != nil {
			n.Max(*spec.MaxItems)
		}
		n.Describe(spec.Description)
		return n, nil
	case "tuple":
		if len(spec.Items) == 0 {
			return nil, errors.New("tuple declares no items")
		}
		items := make([]schema.Node, len(spec.Items))
		for i := range spec.Items {
			item, err := buildNode(&spec.Items[i])
			if err != nil {
				return nil, fmt.Errorf("tuple item %d: %w", i, err)
			}
			items[i] = item
		}
		return schema.Tuple(items...).Describe(spec.Description), nil
	case "record":
		if spec.Of == nil {
			return nil, errors.New("record declares no value type")
		}
		value, err := buildNode(spec.Of)
		if err != nil {
			return nil, err
		}
		return schema.Record(value).Describe(spec.Description), nil
	case "union":
		if len(spec.Options) == 0 {
			return nil, errors.New("union declares no options")
		}
		options := make([]schema.Node, len(spec.Options))
		for i := range spec.Options {
			option, err := buildNode(&spec.Options[i])
			if err != nil {
				return nil, fmt.Errorf("union option %d: %w", i, err)
			}
			options[i] = option
		}
		if spec.Discriminator != "" {
			return schema.DiscriminatedUnion(spec.Discriminator, options...).Describe(spec.Description), nil
		}
		return schema.Union(options...).Describe(spec.Description), nil
	case "intersection":
		if spec.Left == nil || spec.Right == nil {
			return nil, errors.New("intersection needs both operands")
		}
		left, err := buildNode(spec.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildNode(spec.Right)
		if err != nil {
			return nil, err
		}
		return schema.Intersection(left, right).Describe(spec.Description), nil
	case "pipe":
		if spec.In == nil || spec.Out == nil {
			return nil, errors.New("pipe needs in and out schemas")
		}
		in, err := buildNode(spec.In)
		if err != nil {
			return nil, err
		}
		out, err := buildNode(spec.Out)
		if err != nil {
			return nil, err
		}
		return schema.Pipe(in, out).Describe(spec.Description), nil
	case "ref":
		if spec.Ref == "" {
			return nil, errors.New("ref declares no target name")
		}
		return schema.Ref(spec.Ref).Describe(spec.Description), nil
	case "":
		return nil, errors.New("node declares no type")
	default:
		return nil, fmt.Errorf("unknown node type %q", spec.Type)
	}
}

func buildObject(spec *nodeSpec) (schema.Node, error) {
	obj := schema.Object()
	if spec.Fields.Kind != 0 && spec.Fields.Kind != yaml.MappingNode {
		return nil, errors.New("object fields must be a mapping")
	}
	for i := 0; i+1 < len(spec.Fields.Content); i += 2 {
		name := spec.Fields.Content[i].Value
		var child nodeSpec
		if err := spec.Fields.Content[i+1].Decode(&child); err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		node, err := buildNode(&child)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		obj.Field(name, node)
	}
	obj.Describe(spec.Description)
	return obj, nil
}
