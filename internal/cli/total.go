package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/shapecalc/internal/shapefile"
)

// newTotalCmd builds "total -f shapes.yaml".
func newTotalCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Sum areas and volumes of the shapes in a YAML document",
		Long: `Load a shape document and print each shape with the total area and volume.

Document format:

  shapes:
    - type: circle
      radius: 5
    - type: triangle
      base: 3
      height: 4

Any invalid entry fails the whole command with its position in the list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shapes, err := shapefile.Load(path)
			if err != nil {
				return err
			}
			rep := buildReport(shapes)
			a.log.Debug("totals computed",
				zap.String("file", path),
				zap.Int("count", rep.Count),
				zap.Float64("total_area", rep.TotalArea),
			)

			return renderTotal(cmd.OutOrStdout(), a.cfg, rep)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "shape document (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
