package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	qgerrors "github.com/quickgraph/quickgraph/pkg/errors"
)

// Description file formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Description is a graph written down as builder calls: a name, node names
// in creation order, and edges between names.
//
//	name = "My Graph"
//	nodes = ["a", "b", "c"]
//
//	[[edges]]
//	source = "a"
//	target = "b"
//	label = "Edge 1"
type Description struct {
	Name  string            `json:"name,omitempty" toml:"name"`
	Nodes []string          `json:"nodes" toml:"nodes"`
	Edges []DescriptionEdge `json:"edges" toml:"edges"`
}

// DescriptionEdge is a name-addressed edge in a [Description].
type DescriptionEdge struct {
	Source string `json:"source" toml:"source"`
	Target string `json:"target" toml:"target"`
	Label  string `json:"label,omitempty" toml:"label"`
}

// FormatFromPath returns the description format implied by the file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", qgerrors.New(qgerrors.ErrCodeInvalidFormat, "unsupported description format %q (want .toml or .json)", ext)
	}
}

// ReadDescriptionFile reads and validates a description file.
// The format is chosen by extension, see [FormatFromPath].
func ReadDescriptionFile(path string) (*Description, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, qgerrors.Wrap(qgerrors.ErrCodeFileNotFound, err, "description %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := ReadDescription(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ReadDescription decodes and validates a description in the given format.
func ReadDescription(r io.Reader, format string) (*Description, error) {
	var d Description
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
			return nil, qgerrors.Wrap(qgerrors.ErrCodeInvalidFormat, err, "decode toml")
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&d); err != nil {
			return nil, qgerrors.Wrap(qgerrors.ErrCodeInvalidFormat, err, "decode json")
		}
	default:
		return nil, qgerrors.New(qgerrors.ErrCodeInvalidFormat, "unsupported description format %q", format)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks node names. Edge endpoints are not checked: an edge naming
// an unknown node is legal and expands to nothing.
func (d *Description) Validate() error {
	for i, name := range d.Nodes {
		if err := qgerrors.ValidateNodeName(name); err != nil {
			return qgerrors.Wrap(qgerrors.ErrCodeInvalidInput, err, "node %d", i)
		}
	}
	return nil
}

// Builder replays the description into a new builder: the name (if set),
// then every node, then every edge.
func (d *Description) Builder() *Builder {
	b := NewBuilder()
	if d.Name != "" {
		b.SetName(d.Name)
	}
	for _, name := range d.Nodes {
		b.AddNode(name)
	}
	for _, e := range d.Edges {
		b.AddEdge(e.Source, e.Target, e.Label)
	}
	return b
}
