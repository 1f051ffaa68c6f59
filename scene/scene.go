package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a scene file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Document is a decoded scene file.
type Document struct {
	// Width and Height are the default canvas size in pixels.
	Width  int `toml:"width,omitempty" yaml:"width,omitempty" json:"width,omitempty"`
	Height int `toml:"height,omitempty" yaml:"height,omitempty" json:"height,omitempty"`
	// Background is the default canvas color.
	Background string `toml:"background,omitempty" yaml:"background,omitempty" json:"background,omitempty"`
	// Guides declares the custom horizontal alignments nodes may refer to.
	Guides []Guide `toml:"guides,omitempty" yaml:"guides,omitempty" json:"guides,omitempty"`
	Root   *Node   `toml:"root" yaml:"root" json:"root"`
}

// Guide declares a named custom horizontal alignment.
type Guide struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	// Default is the anchor used by views that define no value for the
	// guide: "leading" (the default), "center" or "trailing".
	Default string `toml:"default,omitempty" yaml:"default,omitempty" json:"default,omitempty"`
}

// Node describes one view. Which fields apply depends on Kind.
type Node struct {
	Kind string `toml:"kind" yaml:"kind" json:"kind"`

	Color     string  `toml:"color,omitempty" yaml:"color,omitempty" json:"color,omitempty"`
	Text      string  `toml:"text,omitempty" yaml:"text,omitempty" json:"text,omitempty"`
	FontSize  float64 `toml:"font_size,omitempty" yaml:"font_size,omitempty" json:"font_size,omitempty"`
	LineWidth float64 `toml:"line_width,omitempty" yaml:"line_width,omitempty" json:"line_width,omitempty"`

	Width       *float64 `toml:"width,omitempty" yaml:"width,omitempty" json:"width,omitempty"`
	Height      *float64 `toml:"height,omitempty" yaml:"height,omitempty" json:"height,omitempty"`
	MinWidth    *float64 `toml:"min_width,omitempty" yaml:"min_width,omitempty" json:"min_width,omitempty"`
	IdealWidth  *float64 `toml:"ideal_width,omitempty" yaml:"ideal_width,omitempty" json:"ideal_width,omitempty"`
	MaxWidth    *float64 `toml:"max_width,omitempty" yaml:"max_width,omitempty" json:"max_width,omitempty"`
	MinHeight   *float64 `toml:"min_height,omitempty" yaml:"min_height,omitempty" json:"min_height,omitempty"`
	IdealHeight *float64 `toml:"ideal_height,omitempty" yaml:"ideal_height,omitempty" json:"ideal_height,omitempty"`
	MaxHeight   *float64 `toml:"max_height,omitempty" yaml:"max_height,omitempty" json:"max_height,omitempty"`

	Horizontal bool `toml:"horizontal,omitempty" yaml:"horizontal,omitempty" json:"horizontal,omitempty"`
	Vertical   bool `toml:"vertical,omitempty" yaml:"vertical,omitempty" json:"vertical,omitempty"`

	// Alignment is a named alignment such as "center" or "top_leading".
	// Stacks accept only "top", "center" and "bottom".
	Alignment string `toml:"alignment,omitempty" yaml:"alignment,omitempty" json:"alignment,omitempty"`
	// AlignGuide replaces the horizontal part of Alignment with a declared
	// guide.
	AlignGuide string `toml:"align_guide,omitempty" yaml:"align_guide,omitempty" json:"align_guide,omitempty"`

	Spacing  float64   `toml:"spacing,omitempty" yaml:"spacing,omitempty" json:"spacing,omitempty"`
	Columns  []float64 `toml:"columns,omitempty" yaml:"columns,omitempty" json:"columns,omitempty"`
	Priority float64   `toml:"priority,omitempty" yaml:"priority,omitempty" json:"priority,omitempty"`

	// Guide, Value and Fraction configure a "guide" node: the guide is placed
	// Value points from the leading edge, or at Fraction of the width.
	Guide    string   `toml:"guide,omitempty" yaml:"guide,omitempty" json:"guide,omitempty"`
	Value    *float64 `toml:"value,omitempty" yaml:"value,omitempty" json:"value,omitempty"`
	Fraction *float64 `toml:"fraction,omitempty" yaml:"fraction,omitempty" json:"fraction,omitempty"`

	Children []Node `toml:"children,omitempty" yaml:"children,omitempty" json:"children,omitempty"`
}

// Decode reads a document in format f. Unknown fields are rejected.
func Decode(r io.Reader, f Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scene: read: %w", err)
	}

	var doc Document
	switch f {
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("scene: toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, undecoded[0])
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scene: yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scene: json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	if doc.Root == nil {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

// Load reads the document at path, choosing the format from its extension.
func Load(path string) (*Document, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer file.Close()
	return Decode(file, f)
}
