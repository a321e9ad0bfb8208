package shapefile_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/shapecalc/geometry"
	"github.com/katalvlaran/shapecalc/internal/shapefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedDoc = `
shapes:
  - type: circle
    radius: 5
  - type: square
    side: 4
  - type: Triangle
    base: 3
    height: 4
  - type: cube
    side: 2
`

func TestDecode_Mixed(t *testing.T) {
	shapes, err := shapefile.Decode(strings.NewReader(mixedDoc))
	require.NoError(t, err)

	want := []geometry.Shape{
		geometry.MustCircle(5),
		geometry.MustSquare(4),
		geometry.MustTriangle(3, 4),
		geometry.MustCube(2),
	}
	assert.Equal(t, want, shapes)
	assert.InDelta(t, 124.5398, geometry.TotalArea(shapes), 5e-5)
}

func TestDecode_Empty(t *testing.T) {
	for _, body := range []string{"", "shapes: []\n"} {
		shapes, err := shapefile.Decode(strings.NewReader(body))
		require.NoError(t, err)
		assert.NotNil(t, shapes)
		assert.Empty(t, shapes)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		index   int
		wantErr error
	}{
		{"negative radius", "shapes:\n  - type: circle\n    radius: -5\n", 0, geometry.ErrValidation},
		{"missing height", "shapes:\n  - type: cube\n    side: 1\n  - type: triangle\n    base: 3\n", 1, geometry.ErrValidation},
		{"unknown type", "shapes:\n  - type: hexagon\n    side: 1\n", 0, geometry.ErrUnknownKind},
		{"missing type", "shapes:\n  - side: 1\n", 0, geometry.ErrUnknownKind},
		{"foreign field", "shapes:\n  - type: circle\n    radius: 1\n    side: 2\n", 0, shapefile.ErrUnexpectedField},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			shapes, err := shapefile.Decode(strings.NewReader(tc.body))
			require.Error(t, err)
			assert.Nil(t, shapes)
			assert.ErrorIs(t, err, tc.wantErr)

			var de *shapefile.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.index, de.Index)
		})
	}
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := shapefile.Decode(strings.NewReader("shapes:\n  - type: cube\n    side: 1\n    colour: red\n"))
	require.Error(t, err)

	var de *shapefile.DecodeError
	assert.False(t, errors.As(err, &de), "schema errors are parse errors, not entry errors")
}

func TestDecodeError_Message(t *testing.T) {
	_, err := shapefile.Decode(strings.NewReader("shapes:\n  - type: square\n    side: -4\n"))
	assert.EqualError(t, err, "shapefile: shapes[0] (square): geometry: square: side must be greater than zero (got -4)")
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "shapes.yaml")
	require.NoError(t, os.WriteFile(p, []byte(mixedDoc), 0o600))

	shapes, err := shapefile.Load(p)
	require.NoError(t, err)
	assert.Len(t, shapes, 4)

	_, err = shapefile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
