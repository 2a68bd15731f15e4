// extrusion-planner computes feed-rate adjustments for 3D-printer toolpaths
// so volumetric flow stays within a hotend's capacity and pressure buildup in
// soft filaments is compensated ahead of time.
//
// Usage:
//
//	extrusion-planner plan model.gcode --hotend standard --material tpu_shore_30
//	extrusion-planner analyze model.gcode --hotend induction
//	extrusion-planner profiles
//
// Input is either G-code or a CSV segment list (length,feed_rate,extrusion).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/planner"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/pressure"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/profiles"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/report"
)

var log *zap.SugaredLogger

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "extrusion-planner",
		Short:         "Feed-rate planning for hotend flow limits and pressure lag",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var logger *zap.Logger
			var err error
			if debug {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			log = logger.Sugar()
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.AddCommand(planCmd(), analyzeCmd(), profilesCmd())
	return root
}

type planFlags struct {
	hotend           string
	material         string
	catalog          string
	strategy         string
	window           int
	filamentDiameter float64
	output           string
	csvOutput        string
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.hotend, "hotend", string(profiles.HotendStandard), "Hotend profile name")
	cmd.Flags().StringVar(&f.material, "material", string(profiles.MaterialPLA), "Material profile name")
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "YAML profile catalog file extending the built-ins")
	cmd.Flags().Float64Var(&f.filamentDiameter, "filament-diameter", 1.75, "Filament diameter in mm for G-code E words")
}

func (f *planFlags) loadCatalog() (*profiles.Catalog, error) {
	if f.catalog == "" {
		return profiles.Builtin(), nil
	}
	return profiles.Load(f.catalog)
}

func planCmd() *cobra.Command {
	flags := &planFlags{}
	cmd := &cobra.Command{
		Use:   "plan <input>",
		Short: "Adjust feed rates of a toolpath and report the changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := flags.loadCatalog()
			if err != nil {
				return err
			}
			hotend, err := catalog.Hotend(flags.hotend)
			if err != nil {
				return err
			}
			material, err := catalog.Material(flags.material)
			if err != nil {
				return err
			}
			strategy, err := pressure.ParseStrategy(flags.strategy)
			if err != nil {
				return err
			}

			segments, err := loadSegments(args[0], flags.filamentDiameter)
			if err != nil {
				return err
			}
			log.Infow("planning toolpath",
				"segments", len(segments),
				"hotend", flags.hotend,
				"material", flags.material,
				"strategy", strategy.String(),
				"window", flags.window,
			)

			p, err := planner.New(flags.window, strategy)
			if err != nil {
				return err
			}
			adjusted, err := p.Process(segments, hotend, material)
			if err != nil {
				return err
			}

			analysis, err := report.Analyze(segments, adjusted, hotend)
			if err != nil {
				return err
			}
			if flags.output != "" {
				if err := writeSegmentsCSV(flags.output, adjusted); err != nil {
					return err
				}
				log.Infow("wrote adjusted segments", "path", flags.output)
			}
			if flags.csvOutput != "" {
				if err := writeAnalysisCSV(flags.csvOutput, analysis); err != nil {
					return err
				}
				log.Infow("wrote analysis", "path", flags.csvOutput)
			}
			return analysis.WriteTable(cmd.OutOrStdout())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.strategy, "strategy", pressure.DefaultStrategy.String(),
		"Compensation strategy: material_factor, pressure_level or combined")
	cmd.Flags().IntVar(&flags.window, "window", 5, "Lookahead window in segments (0 disables preemption)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write adjusted segments to a CSV file")
	cmd.Flags().StringVar(&flags.csvOutput, "report-csv", "", "Write the per-segment analysis to a CSV file")
	return cmd
}

func analyzeCmd() *cobra.Command {
	flags := &planFlags{}
	cmd := &cobra.Command{
		Use:   "analyze <input>",
		Short: "Report volumetric flow of a toolpath against a hotend limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := flags.loadCatalog()
			if err != nil {
				return err
			}
			hotend, err := catalog.Hotend(flags.hotend)
			if err != nil {
				return err
			}
			segments, err := loadSegments(args[0], flags.filamentDiameter)
			if err != nil {
				return err
			}
			log.Infow("analyzing toolpath", "segments", len(segments), "hotend", flags.hotend)

			// Compare the toolpath against itself: the table shows flow
			// versus the limit without planning anything.
			analysis, err := report.Analyze(segments, segments, hotend)
			if err != nil {
				return err
			}
			return analysis.WriteTable(cmd.OutOrStdout())
		},
	}
	flags.register(cmd)
	return cmd
}

func profilesCmd() *cobra.Command {
	var catalogPath string
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List available hotend and material profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := profiles.Builtin()
			if catalogPath != "" {
				var err error
				catalog, err = profiles.Load(catalogPath)
				if err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Hotends:")
			for _, name := range catalog.HotendNames() {
				h, _ := catalog.Hotend(name)
				fmt.Fprintf(out, "  %-16s max flow %.1f mm³/s, response %.0f ms\n",
					name, h.MaxVolumetricFlow, h.ResponseTime*1000)
			}
			fmt.Fprintln(out, "Materials:")
			for _, name := range catalog.MaterialNames() {
				m, _ := catalog.Material(name)
				fmt.Fprintf(out, "  %-16s %s (Shore %.0f)\n", name, m.Name, m.ShoreHardness)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML profile catalog file extending the built-ins")
	return cmd
}
