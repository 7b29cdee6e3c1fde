package obsidian

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Note represents a complete markdown document with YAML frontmatter and body content.
type Note struct {
	Frontmatter *Frontmatter
	Body        string
}

// Frontmatter provides typed access to YAML frontmatter with sorted keys for deterministic output.
type Frontmatter struct {
	fields map[string]any
	keys   []string // Sorted key order for deterministic serialization
}

// NewFrontmatter creates a new empty Frontmatter.
func NewFrontmatter() *Frontmatter {
	return &Frontmatter{
		fields: make(map[string]any),
		keys:   []string{},
	}
}

// ParseMarkdown parses a markdown document with YAML frontmatter.
// Missing frontmatter is valid and yields an empty Frontmatter.
func ParseMarkdown(content []byte) (*Note, error) {
	contentStr := strings.ReplaceAll(string(content), "\r\n", "\n")

	if !strings.HasPrefix(contentStr, "---\n") {
		return &Note{Frontmatter: NewFrontmatter(), Body: contentStr}, nil
	}

	afterFirst := contentStr[len("---\n"):]
	endIdx := strings.Index(afterFirst, "\n---\n")
	if endIdx == -1 {
		// No closing delimiter, treat as no frontmatter
		return &Note{Frontmatter: NewFrontmatter(), Body: contentStr}, nil
	}

	frontmatterStr := afterFirst[:endIdx]
	body := strings.TrimPrefix(afterFirst[endIdx+len("\n---\n"):], "\n")

	var data map[string]any
	if err := yaml.Unmarshal([]byte(frontmatterStr), &data); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	fm := NewFrontmatter()
	for key, value := range data {
		fm.Set(key, value)
	}

	return &Note{Frontmatter: fm, Body: body}, nil
}

// Build serializes the Note back to markdown with YAML frontmatter.
// Tags are always written in flow-style format: [a, b, c]
func (n *Note) Build() ([]byte, error) {
	var buf bytes.Buffer

	if len(n.Frontmatter.keys) > 0 {
		buf.WriteString("---\n")

		frontmatterBytes, err := yaml.Marshal(n.Frontmatter)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
		}

		buf.Write(frontmatterBytes)
		buf.WriteString("---\n")
	}

	buf.WriteString(n.Body)

	return buf.Bytes(), nil
}

// Set sets a value in frontmatter, maintaining sorted key order.
func (f *Frontmatter) Set(key string, value any) {
	_, exists := f.fields[key]
	f.fields[key] = value

	if !exists {
		f.keys = append(f.keys, key)
		sort.Strings(f.keys)
	}
}

// GetString retrieves a string value, returning empty string if not found or wrong type.
func (f *Frontmatter) GetString(key string) string {
	if str, ok := f.fields[key].(string); ok {
		return str
	}
	return ""
}

// GetInt retrieves an int value, returning 0 if not found or wrong type.
func (f *Frontmatter) GetInt(key string) int {
	if i, ok := f.fields[key].(int); ok {
		return i
	}
	return 0
}

// MarshalYAML implements custom YAML marshaling with sorted keys and flow-style tags.
func (f *Frontmatter) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: make([]*yaml.Node, 0, len(f.keys)*2),
	}

	for _, key := range f.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}

		var valueNode *yaml.Node
		if key == "tags" {
			valueNode = &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, tag := range tagsFromAny(f.fields[key]) {
				valueNode.Content = append(valueNode.Content, &yaml.Node{
					Kind:  yaml.ScalarNode,
					Value: tag,
				})
			}
		} else {
			valueNode = &yaml.Node{}
			if err := valueNode.Encode(f.fields[key]); err != nil {
				return nil, err
			}
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	return node, nil
}
