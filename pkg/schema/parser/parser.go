package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"marbl-hq/marlin/pkg/schema/ast"
)

// Parser decodes settings and diagnostics files into value trees.
// It accepts YAML input; since JSON is a subset of YAML, the JSON
// settings files produced by the MARBL tool-chain parse the same way.
type Parser struct {
	maxFileSize int64 // Maximum file size in bytes (default: 10MB)
}

// NewParser creates a new parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxFileSize: 10 * 1024 * 1024, // 10MB
	}
}

// WithMaxFileSize sets the maximum file size limit.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// Parse reads the file at path and decodes it into a value tree.
// It returns an error if the file cannot be read, exceeds the size limit,
// or contains invalid YAML.
func (p *Parser) Parse(path string) (*ast.Value, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}

	if info.Size() > p.maxFileSize {
		return nil, fmt.Errorf("file %q size %d exceeds maximum %d bytes",
			path, info.Size(), p.maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	return p.ParseBytes(data, path)
}

// ParseBytes decodes YAML bytes into a value tree. The sourcePath is used
// only for location reporting.
func (p *Parser) ParseBytes(data []byte, sourcePath string) (*ast.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("YAML parsing failed for %q: %w", sourcePath, err)
	}

	// An empty document has no content nodes.
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, fmt.Errorf("file %q contains no document", sourcePath)
	}

	return buildValue(root.Content[0], sourcePath, make(map[*yaml.Node]bool))
}

// buildValue converts a yaml.Node into an ast.Value, preserving key order
// and source positions. active holds the nodes currently being expanded,
// so an alias that resolves back into its own ancestry is reported as an
// error instead of recursing forever.
func buildValue(node *yaml.Node, sourcePath string, active map[*yaml.Node]bool) (*ast.Value, error) {
	loc := ast.Location{
		File:   sourcePath,
		Line:   node.Line,
		Column: node.Column,
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return &ast.Value{
			Kind:     ast.KindScalar,
			Text:     node.Value,
			Location: loc,
		}, nil

	case yaml.SequenceNode:
		active[node] = true
		defer delete(active, node)

		items := make([]*ast.Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := buildValue(child, sourcePath, active)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return &ast.Value{
			Kind:     ast.KindSequence,
			Items:    items,
			Location: loc,
		}, nil

	case yaml.MappingNode:
		active[node] = true
		defer delete(active, node)

		// Content holds alternating key and value nodes.
		entries := make([]ast.Entry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%s:%d: mapping key must be a scalar",
					sourcePath, keyNode.Line)
			}
			value, err := buildValue(node.Content[i+1], sourcePath, active)
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.Entry{Key: keyNode.Value, Value: value})
		}
		return &ast.Value{
			Kind:     ast.KindMapping,
			Entries:  entries,
			Location: loc,
		}, nil

	case yaml.AliasNode:
		if active[node.Alias] {
			return nil, fmt.Errorf("%s:%d: cyclic alias *%s", sourcePath, node.Line, node.Value)
		}
		return buildValue(node.Alias, sourcePath, active)

	default:
		return nil, fmt.Errorf("%s:%d: unsupported YAML node kind", sourcePath, node.Line)
	}
}
