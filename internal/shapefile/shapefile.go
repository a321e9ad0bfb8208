// Package shapefile reads YAML shape documents into geometry shapes.
//
// Document layout:
//
//	shapes:
//	  - type: circle
//	    radius: 5
//	  - type: triangle
//	    base: 3
//	    height: 4
//
// Every entry goes through the strict geometry constructors, so a document
// can never produce an invalid shape.
package shapefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/shapecalc/geometry"
	"gopkg.in/yaml.v3"
)

// ErrUnexpectedField marks a dimension that does not belong to the entry's type,
// e.g. "side" on a circle.
var ErrUnexpectedField = errors.New("shapefile: unexpected field")

// DecodeError locates a failing entry in the document.
type DecodeError struct {
	Index int    // position in the shapes list
	Type  string // raw type value, may be empty
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("shapefile: shapes[%d]: %v", e.Index, e.Err)
	}

	return fmt.Sprintf("shapefile: shapes[%d] (%s): %v", e.Index, e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type document struct {
	Shapes []shapeDTO `yaml:"shapes"`
}

type shapeDTO struct {
	Type   string   `yaml:"type"`
	Radius *float64 `yaml:"radius,omitempty"`
	Side   *float64 `yaml:"side,omitempty"`
	Base   *float64 `yaml:"base,omitempty"`
	Height *float64 `yaml:"height,omitempty"`
}

// field returns the pointer backing a geometry field name.
func (d shapeDTO) field(name string) *float64 {
	switch name {
	case geometry.FieldRadius:
		return d.Radius
	case geometry.FieldSide:
		return d.Side
	case geometry.FieldBase:
		return d.Base
	case geometry.FieldHeight:
		return d.Height
	default:
		return nil
	}
}

// allFields lists every dimension a DTO can carry.
var allFields = []string{geometry.FieldRadius, geometry.FieldSide, geometry.FieldBase, geometry.FieldHeight}

// Load opens path and decodes it.
func Load(path string) ([]geometry.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shapefile: %w", err)
	}
	defer f.Close()

	shapes, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return shapes, nil
}

// Decode reads one YAML document from r. Unknown keys are rejected.
// An empty document yields an empty, non-nil slice.
func Decode(r io.Reader) ([]geometry.Shape, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("shapefile: parse: %w", err)
	}

	out := make([]geometry.Shape, 0, len(doc.Shapes))
	for i, dto := range doc.Shapes {
		s, err := toShape(dto)
		if err != nil {
			return nil, &DecodeError{Index: i, Type: dto.Type, Err: err}
		}
		out = append(out, s)
	}

	return out, nil
}

// toShape maps a DTO through geometry.New. Missing dimensions are passed
// as 0 and therefore fail validation.
func toShape(d shapeDTO) (geometry.Shape, error) {
	kind, err := geometry.ParseKind(d.Type)
	if err != nil {
		return nil, err
	}

	want := kind.Dimensions()
	for _, name := range allFields {
		if d.field(name) != nil && !contains(want, name) {
			return nil, fmt.Errorf("%s on %s: %w", name, kind, ErrUnexpectedField)
		}
	}

	dims := make([]float64, len(want))
	for i, name := range want {
		if p := d.field(name); p != nil {
			dims[i] = *p
		}
	}

	return geometry.New(kind, dims...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
