package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/shapecalc/geometry"
)

// measure describes one of the single-shape commands.
type measure struct {
	name    string
	short   string
	strict  func(geometry.Shape) float64
	lenient func(geometry.Shape, ...geometry.Option) float64
}

var (
	measureArea = measure{
		name:    "area",
		short:   "Print the area of one shape",
		strict:  geometry.Shape.Area,
		lenient: geometry.CalculateArea,
	}
	measureVolume = measure{
		name:    "volume",
		short:   "Print the volume of one shape",
		strict:  geometry.Shape.Volume,
		lenient: geometry.CalculateVolume,
	}
)

// newMeasureCmd builds "area" or "volume":
//
//	shapecalc area circle 5
//	shapecalc volume triangle 3 4
//	shapecalc area --lenient square -- -4   # prints 0, logs a warning
//
// Negative numbers must follow "--" or they are parsed as flags.
func newMeasureCmd(a *app, m measure) *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   m.name + " <kind> <dimension>...",
		Short: m.short,
		Long: fmt.Sprintf(`%s

Kinds and their dimensions:
  circle    radius
  square    side
  triangle  base height
  cube      side

Invalid dimensions fail the command unless --lenient is set, in which case
the result is 0 and a warning is logged. Put negative numbers after "--".`, m.short),
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			names := make([]string, 0, len(geometry.Kinds()))
			for _, k := range geometry.Kinds() {
				names = append(names, k.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, dims, err := parseShapeArgs(args)
			if err != nil {
				return err
			}

			var (
				value float64
				label string
			)
			if lenient {
				u := unchecked{kind: kind, dims: dims}
				value = m.lenient(u, geometry.WithLogger(a.log))
				label = u.String()
			} else {
				s, err := geometry.New(kind, dims...)
				if err != nil {
					return err
				}
				value = m.strict(s)
				label = fmt.Sprint(s)
			}
			a.log.Debug("measured", zap.String("op", m.name), zap.String("shape", label), zap.Float64("value", value))

			return renderMeasure(cmd.OutOrStdout(), a.cfg, m.name, kind, label, value)
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "print 0 and log a warning instead of failing on invalid dimensions")

	return cmd
}

// parseShapeArgs splits "<kind> <dims...>" and checks the arity for kind.
func parseShapeArgs(args []string) (geometry.Kind, []float64, error) {
	kind, err := geometry.ParseKind(args[0])
	if err != nil {
		return geometry.KindUnknown, nil, err
	}

	want := kind.Dimensions()
	if len(args)-1 != len(want) {
		return kind, nil, fmt.Errorf("%s takes %d dimension(s) (%s), got %d: %w",
			kind, len(want), strings.Join(want, ", "), len(args)-1, geometry.ErrDimensionCount)
	}

	dims := make([]float64, len(want))
	for i, raw := range args[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return kind, nil, fmt.Errorf("%s %s: %w", kind, want[i], err)
		}
		dims[i] = v
	}

	return kind, dims, nil
}

// unchecked carries raw command-line dimensions. It validates lazily so the
// lenient path can hand it to the fallback calculators as-is.
type unchecked struct {
	kind geometry.Kind
	dims []float64
}

func (u unchecked) build() (geometry.Shape, error) {
	return geometry.New(u.kind, u.dims...)
}

// Validate reports the constructor error for the raw dimensions.
func (u unchecked) Validate() error {
	_, err := u.build()
	return err
}

// Area is 0 for invalid dimensions; the fallback calculators never get here.
func (u unchecked) Area() float64 {
	s, err := u.build()
	if err != nil {
		return 0
	}
	return s.Area()
}

// Volume is 0 for invalid dimensions.
func (u unchecked) Volume() float64 {
	s, err := u.build()
	if err != nil {
		return 0
	}
	return s.Volume()
}

func (u unchecked) String() string {
	names := u.kind.Dimensions()
	parts := make([]string, len(u.dims))
	for i, d := range u.dims {
		parts[i] = fmt.Sprintf("%s=%g", names[i], d)
	}

	return fmt.Sprintf("%s(%s)", u.kind, strings.Join(parts, ", "))
}
