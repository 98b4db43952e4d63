package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/projection-calculator/internal/calculation"
	"github.com/rpgo/projection-calculator/internal/config"
	"github.com/rpgo/projection-calculator/internal/domain"
	"github.com/rpgo/projection-calculator/internal/output"
	"github.com/rpgo/projection-calculator/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type cliOptions struct {
	configFile   string
	fromSnapshot string
	saveSnapshot string
	format       string
	outputFile   string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "projection-calculator",
		Short:         "Project portfolio growth toward a target net worth",
		Long:          "projection-calculator simulates month-by-month portfolio growth under a contribution policy and an inflation model, and solves for the contribution or return rate needed to reach a target within a horizon.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "parameter file (YAML)")
	root.PersistentFlags().StringVar(&opts.fromSnapshot, "from-snapshot", "", "load parameters from a key-value snapshot file")
	root.PersistentFlags().StringVar(&opts.saveSnapshot, "save-snapshot", "", "save the parameters as a key-value snapshot after the run")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newProjectCmd(opts))
	root.AddCommand(newPlanCmd(opts))
	root.AddCommand(newSensitivityCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newInitCmd())
	return root
}

func newProjectCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run the monthly projection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, params, err := setup(opts)
			if err != nil {
				return err
			}
			report := &domain.ProjectionReport{
				Parameters: *params,
				Result:     engine.Project(*params),
			}
			return emit(cmd, opts, report)
		},
	}
	addFormatFlags(cmd, opts)
	return cmd
}

func newPlanCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Solve for the contribution and return rate needed to reach the target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, params, err := setup(opts)
			if err != nil {
				return err
			}
			report := &domain.ProjectionReport{
				Parameters: *params,
				Result:     engine.Project(*params),
				Plan:       engine.Plan(*params),
			}
			return emit(cmd, opts, report)
		},
	}
	addFormatFlags(cmd, opts)
	return cmd
}

func newSensitivityCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Re-run the projection across rate and contribution perturbations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, params, err := setup(opts)
			if err != nil {
				return err
			}
			grid := engine.SensitivityGrid(*params, domain.DefaultSensitivityRequest())
			printGrid(cmd, grid)
			return saveSnapshotIfAsked(opts, *params)
		},
	}
	return cmd
}

func newServeCmd(opts *cliOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, err := newZapLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(zapAdapter{logger.Sugar()})
			return server.New(engine, logger).ListenAndServe(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func newInitCmd() *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example parameter file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.NewInputParser().WriteExampleConfig(outputFile); err != nil {
				return err
			}
			cmd.Printf("Wrote example parameters to %s\n", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "parameters.yaml", "destination file")
	return cmd
}

func addFormatFlags(cmd *cobra.Command, opts *cliOptions) {
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", "output format: console, csv, json")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "write output to a file instead of stdout")
}

// setup builds the engine and loads parameters from the snapshot or config
// file, whichever was given.
func setup(opts *cliOptions) (*calculation.CalculationEngine, *domain.SimulationParameters, error) {
	logger, err := newZapLogger(opts.verbose)
	if err != nil {
		return nil, nil, err
	}
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(zapAdapter{logger.Sugar()})

	var params *domain.SimulationParameters
	switch {
	case opts.fromSnapshot != "":
		params, err = config.LoadSnapshot(opts.fromSnapshot)
	case opts.configFile != "":
		params, err = config.NewInputParser().LoadFromFile(opts.configFile)
	default:
		err = fmt.Errorf("either --config or --from-snapshot is required")
	}
	if err != nil {
		return nil, nil, err
	}
	return engine, params, nil
}

func emit(cmd *cobra.Command, opts *cliOptions, report *domain.ProjectionReport) error {
	formatter := output.GetFormatterByName(opts.format)
	if formatter == nil {
		return fmt.Errorf("unknown output format %q", opts.format)
	}
	if opts.outputFile != "" {
		name, err := output.WriteFormatted(formatter, report, opts.outputFile)
		if err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", name)
	} else {
		data, err := formatter.Format(report)
		if err != nil {
			return err
		}
		cmd.Print(string(data))
	}
	return saveSnapshotIfAsked(opts, report.Parameters)
}

func printGrid(cmd *cobra.Command, grid *domain.SensitivityGrid) {
	cmd.Println("SENSITIVITY (final balance; * = target reached)")
	for _, row := range grid.Cells {
		for _, cell := range row {
			marker := " "
			if cell.TargetReachedMonth != nil {
				marker = "*"
			}
			cmd.Printf("  rate %s / contribution %s: %s%s\n",
				output.FormatPercent(cell.AnnualReturnRate),
				output.FormatCurrency(cell.BaseContribution),
				output.FormatCurrency(cell.FinalBalance),
				marker)
		}
	}
}

func saveSnapshotIfAsked(opts *cliOptions, params domain.SimulationParameters) error {
	if opts.saveSnapshot == "" {
		return nil
	}
	return config.SaveSnapshot(opts.saveSnapshot, params)
}

func newZapLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// zapAdapter bridges zap's sugared logger to the engine's Logger interface.
type zapAdapter struct {
	s *zap.SugaredLogger
}

func (z zapAdapter) Debugf(format string, args ...any) { z.s.Debugf(format, args...) }
func (z zapAdapter) Infof(format string, args ...any)  { z.s.Infof(format, args...) }
func (z zapAdapter) Warnf(format string, args ...any)  { z.s.Warnf(format, args...) }
func (z zapAdapter) Errorf(format string, args ...any) { z.s.Errorf(format, args...) }
