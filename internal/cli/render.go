package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/shapecalc/geometry"
	"github.com/katalvlaran/shapecalc/internal/config"
)

// measureResult is the JSON shape of a single area/volume answer.
type measureResult struct {
	Op    string  `json:"op"`
	Kind  string  `json:"kind"`
	Shape string  `json:"shape"`
	Value float64 `json:"value"`
}

// shapeRow is one entry of a total report.
type shapeRow struct {
	Shape  string  `json:"shape"`
	Kind   string  `json:"kind,omitempty"`
	Area   float64 `json:"area"`
	Volume float64 `json:"volume"`
}

// kindRow aggregates one variant in a total report.
type kindRow struct {
	Count  int     `json:"count"`
	Area   float64 `json:"area"`
	Volume float64 `json:"volume"`
}

// totalReport is the JSON shape of "shapecalc total".
type totalReport struct {
	Shapes      []shapeRow         `json:"shapes"`
	Count       int                `json:"count"`
	TotalArea   float64            `json:"total_area"`
	TotalVolume float64            `json:"total_volume"`
	ByKind      map[string]kindRow `json:"by_kind"`
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// renderMeasure writes a single value. JSON carries full float64 precision;
// text formats honor cfg.Precision.
func renderMeasure(w io.Writer, cfg *config.Config, op string, kind geometry.Kind, label string, value float64) error {
	switch cfg.Output {
	case config.OutputJSON:
		return writeJSON(w, measureResult{Op: op, Kind: kind.String(), Shape: label, Value: value})
	case config.OutputPlain:
		_, err := fmt.Fprintln(w, formatFloat(value, cfg.Precision))
		return err
	default:
		t := newTable(w)
		t.AppendHeader(table.Row{"Shape", op})
		t.AppendRow(table.Row{label, formatFloat(value, cfg.Precision)})
		t.Render()
		return nil
	}
}

// buildReport turns shapes into per-shape rows plus geometry.Summarize totals.
func buildReport(shapes []geometry.Shape) totalReport {
	sum := geometry.Summarize(shapes)
	rep := totalReport{
		Shapes:      make([]shapeRow, 0, len(shapes)),
		Count:       sum.Count,
		TotalArea:   sum.TotalArea,
		TotalVolume: sum.TotalVolume,
		ByKind:      make(map[string]kindRow, len(sum.ByKind)),
	}
	for _, s := range shapes {
		row := shapeRow{Shape: fmt.Sprint(s), Area: s.Area(), Volume: s.Volume()}
		if k, ok := s.(geometry.Kinded); ok {
			row.Kind = k.Kind().String()
		}
		rep.Shapes = append(rep.Shapes, row)
	}
	for k, kt := range sum.ByKind {
		rep.ByKind[k.String()] = kindRow{Count: kt.Count, Area: kt.Area, Volume: kt.Volume}
	}

	return rep
}

// renderTotal writes a total report. Plain output is two lines:
// total area, then total volume.
func renderTotal(w io.Writer, cfg *config.Config, rep totalReport) error {
	switch cfg.Output {
	case config.OutputJSON:
		return writeJSON(w, rep)
	case config.OutputPlain:
		_, err := fmt.Fprintf(w, "%s\n%s\n",
			formatFloat(rep.TotalArea, cfg.Precision), formatFloat(rep.TotalVolume, cfg.Precision))
		return err
	default:
		t := newTable(w)
		t.AppendHeader(table.Row{"#", "Shape", "Area", "Volume"})
		for i, r := range rep.Shapes {
			t.AppendRow(table.Row{i + 1, r.Shape, formatFloat(r.Area, cfg.Precision), formatFloat(r.Volume, cfg.Precision)})
		}
		t.AppendFooter(table.Row{"", fmt.Sprintf("Total (%d)", rep.Count),
			formatFloat(rep.TotalArea, cfg.Precision), formatFloat(rep.TotalVolume, cfg.Precision)})
		t.Render()
		return nil
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	return t
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
