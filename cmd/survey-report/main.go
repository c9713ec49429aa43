// Command survey-report charts the answers of the street animals survey, one tab per
// question, and can export the same charts or a frequency summary headlessly.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"survey-report/internal/app"
	"survey-report/internal/chart"
	"survey-report/internal/config"
	"survey-report/internal/dataset"
	"survey-report/internal/logger"
	"survey-report/internal/report"
	"survey-report/internal/survey"
	"survey-report/internal/timing"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	envFile  string
	dataPath string
	logLevel string
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "survey-report",
		Short:         "Pie charts of the street animals survey answers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "Optional .env file with SURVEY_* settings")
	cmd.PersistentFlags().StringVarP(&opts.dataPath, "file", "f", "", "Spreadsheet to read (default PesquisaForms.xlsx)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(exportCmd(opts))
	cmd.AddCommand(summaryCmd(opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "survey-report version %s\n", app.AppVersion)
		},
	})

	return cmd
}

func exportCmd(opts *options) *cobra.Command {
	var (
		outDir string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every chart as a PNG file without opening a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepare(cmd.Context(), opts)
			if err != nil {
				return err
			}
			paths, err := s.report.Export(outDir, chart.NewRenderer(width, height))
			if err != nil {
				return err
			}
			s.logger.Info("Export", "charts exported", map[string]interface{}{
				"dir":   outDir,
				"files": len(paths),
			})
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "charts", "Output directory")
	cmd.Flags().IntVar(&width, "width", chart.DefaultWidth, "Chart width in pixels")
	cmd.Flags().IntVar(&height, "height", chart.DefaultHeight, "Chart height in pixels")
	return cmd
}

func summaryCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print answer frequencies and respondent totals per question",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepare(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return s.report.WriteSummary(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml, json)")
	return cmd
}

func runGUI(ctx context.Context, opts *options) error {
	s, err := prepare(ctx, opts)
	if err != nil {
		return err
	}

	application, err := app.NewApplication(s.config, s.report, s.tracker, s.logger)
	if err != nil {
		return fmt.Errorf("application initialization failed: %w", err)
	}
	return application.Run()
}

// session carries what every command needs once the data has been loaded.
type session struct {
	config  config.Config
	logger  logger.Logger
	tracker *timing.Tracker
	report  *report.Report
}

// prepare resolves configuration, loads the dataset once and aggregates every question.
// A missing or unreadable spreadsheet is returned as an error.
func prepare(ctx context.Context, opts *options) (*session, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}
	if opts.dataPath != "" {
		cfg.DataPath = opts.dataPath
	}
	if opts.logLevel != "" {
		cfg.LogLevel = logger.ParseLevel(opts.logLevel)
	}

	log := logger.New(cfg.LogLevel, cfg.JSONLogs)
	tracker := timing.NewTracker(log)

	log.Info("Application", "starting", map[string]interface{}{
		"version":   app.AppVersion,
		"data_path": cfg.DataPath,
		"log_level": cfg.LogLevel.String(),
	})

	ds, err := dataset.NewLoader(log, tracker).Load(ctx, cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load survey data: %w", err)
	}

	rep, err := report.NewBuilder(survey.DefaultQuestions(), cfg.Delimiter, log, tracker).Build(ctx, ds)
	if err != nil {
		return nil, err
	}
	return &session{config: cfg, logger: log, tracker: tracker, report: rep}, nil
}
