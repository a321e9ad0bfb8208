// Package cli provides the shapecalc command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/shapecalc/internal/config"
	"github.com/katalvlaran/shapecalc/internal/logger"
)

// Version is set at build time.
var Version = "0.1.0"

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	// fixedLog, when set, replaces the logger built from config.
	fixedLog *zap.Logger
}

// NewRootCmd creates the command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(l *zap.Logger) *cobra.Command {
	a := &app{log: logger.Nop(), fixedLog: l}

	root := &cobra.Command{
		Use:   "shapecalc",
		Short: "shapecalc - area and volume of validated shapes",
		Long: `shapecalc computes areas and volumes of circles, squares, triangles and cubes.

Every dimension must be strictly positive. Shapes can be given on the command
line or listed in a YAML document for totals.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(a.cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			lg := a.fixedLog
			if lg == nil {
				if lg, err = logger.New(cfg.Log.Mode, cfg.Log.Level); err != nil {
					return err
				}
			}
			a.cfg, a.log = cfg, lg
			if cfg.File != "" {
				a.log.Debug("config loaded", zap.String("file", cfg.File))
			}

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./shapecalc.yaml)")
	pf.StringP("output", "o", config.DefaultOutput, "output format (table|json|plain)")
	pf.Int("precision", config.DefaultPrecision, "decimal places for text output")
	pf.String("log-mode", config.DefaultLogMode, "logger flavor (dev|prod)")
	pf.String("log-level", config.DefaultLogLevel, "minimum log level (debug|info|warn|error)")

	_ = root.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputJSON, config.OutputPlain}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(newMeasureCmd(a, measureArea))
	root.AddCommand(newMeasureCmd(a, measureVolume))
	root.AddCommand(newTotalCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and reports the error on stderr.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
