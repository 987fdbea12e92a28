// Package outline reads outline documents written in YAML and turns them
// into org node trees.
//
// A document is a single node:
//
//	heading: Project
//	todo: TODO
//	tags: [work, planning]
//	scheduled: 2024-01-02 10:30
//	properties:
//	  OWNER: me
//	body: |
//	  free text
//	children:
//	  - heading: First step
package outline

import (
	"fmt"
	"os"
	"time"

	"github.com/gerunddev/orgwriter/org"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Options controls properties added to every node while loading.
type Options struct {
	// AssignIDs adds an :ID: property to nodes that do not have one
	AssignIDs bool
	// Created, when set, stamps nodes without a CREATED property
	Created org.Clock
	// NewID overrides GenerateID, mostly for tests
	NewID func() string
}

type document struct {
	Heading    string     `yaml:"heading"`
	Todo       string     `yaml:"todo"`
	Tags       []string   `yaml:"tags"`
	Scheduled  string     `yaml:"scheduled"`
	Properties properties `yaml:"properties"`
	Body       *string    `yaml:"body"`
	Children   []document `yaml:"children"`
}

// properties keeps the order in which the drawer was written
type properties []org.Property

func (p *properties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: properties must be a mapping", value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: property %q must have a scalar value", val.Line, key.Value)
		}
		*p = append(*p, org.Property{Name: key.Value, Value: val.Value})
	}

	return nil
}

// GenerateID generates a new org-mode ID (UUID v4)
func GenerateID() string {
	return uuid.New().String()
}

// Load reads and parses the outline document at path.
func Load(path string, opts Options) (*org.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read outline: %w", err)
	}

	node, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// Parse decodes a YAML outline document.
func Parse(data []byte, opts Options) (*org.Node, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse outline: %w", err)
	}

	if opts.NewID == nil {
		opts.NewID = GenerateID
	}

	return doc.toNode(opts)
}

func (d document) toNode(opts Options) (*org.Node, error) {
	node := &org.Node{
		Heading:    org.HeadingText(d.Heading),
		Todo:       d.Todo,
		Tags:       d.Tags,
		Properties: []org.Property(d.Properties),
		Body:       d.Body,
	}

	if d.Scheduled != "" {
		ts, err := ParseTimestamp(d.Scheduled)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", d.Heading, err)
		}
		node.Scheduled = ts
	}

	node.Properties = Decorate(node.Properties, opts)

	for _, child := range d.Children {
		c, err := child.toNode(opts)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, c)
	}

	return node, nil
}

// Decorate adds the ID and CREATED properties requested by opts unless
// props already has them. ID goes first, CREATED last.
func Decorate(props []org.Property, opts Options) []org.Property {
	if opts.AssignIDs && !hasProperty(props, "ID") {
		newID := opts.NewID
		if newID == nil {
			newID = GenerateID
		}
		props = append([]org.Property{{Name: "ID", Value: newID()}}, props...)
	}
	if opts.Created != nil && !hasProperty(props, "CREATED") {
		props = append(props, org.CreatedProperty(opts.Created))
	}
	return props
}

func hasProperty(props []org.Property, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Accepted scheduled layouts. Layouts with a time of day produce
// date-time timestamps.
var timestampLayouts = []struct {
	layout  string
	hasTime bool
}{
	{"2006-01-02", false},
	{"2006-01-02 Mon", false},
	{"2006-01-02 15:04", true},
	{"2006-01-02 Mon 15:04", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02T15:04:05", true},
	{time.RFC3339, true},
}

// ParseTimestamp reads a date or date-time such as 2024-01-02 or
// 2024-01-02 10:30.
func ParseTimestamp(s string) (*org.Timestamp, error) {
	for _, l := range timestampLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		if l.hasTime {
			return org.DateTime(t), nil
		}
		return org.Date(t), nil
	}
	return nil, fmt.Errorf("invalid timestamp '%s': expected YYYY-MM-DD or YYYY-MM-DD HH:MM", s)
}
