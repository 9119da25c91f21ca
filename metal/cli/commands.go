package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/folio/handler/payload"
	"github.com/folio/metal/cli/listing"
	"github.com/folio/metal/cli/staticgen"
	"github.com/folio/metal/cli/watcher"
	"github.com/folio/metal/env"
	"github.com/folio/metal/kernel"
	"github.com/folio/metal/router"
	"github.com/folio/pkg/cli"
	"github.com/folio/pkg/portal"
	"github.com/folio/pkg/scheduler"
)

const exportTimeout = time.Minute

type options struct {
	envPath  string
	outDir   string
	cron     string
	debounce time.Duration
}

func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "folio",
		Short: "Work experience timeline toolkit",
		Long: `folio renders the work experience timeline from the fixture files.

Examples:
  folio export                      # write experience.json and experience/timeline.html
  folio export --out ./public       # export into another directory
  folio list                        # print the fixture records
  folio watch                       # re-export whenever a fixture changes
  folio schedule --cron "@hourly"   # re-export on a schedule`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cli.Output = cmd.OutOrStdout()
		},
	}

	root.PersistentFlags().StringVar(&opts.envPath, "env", "./.env", "path to the .env file")

	root.AddCommand(
		newExportCommand(opts),
		newListCommand(opts),
		newWatchCommand(opts),
		newScheduleCommand(opts),
	)

	return root
}

func newExportCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every static route into files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}

			_, err = export(e, opts.exportDir(e))

			return err
		},
	}

	cmd.Flags().StringVar(&opts.outDir, "out", "", "output directory (defaults to ENV_EXPORT_DIR)")

	return cmd
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the experience records as a table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}

			file := router.NewFixture(e.Static.FixturesDir).GetExperience()

			data, err := portal.ParseFixtureFile[payload.ExperienceResponse](file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}

			cli.Blueln(fmt.Sprintf("%s (version %s, %d records)", file, data.Version, len(data.Data)))

			return listing.Render(cmd.OutOrStdout(), data.Data)
		},
	}
}

func newWatchCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-export whenever a fixture file changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}

			outDir := opts.exportDir(e)

			if _, err := export(e, outDir); err != nil {
				return err
			}

			w, err := watcher.New(e.Static.FixturesDir, opts.debounce, func(_ context.Context, path string) error {
				cli.Grayln("changed: " + path)

				_, err := export(e, outDir)

				return err
			})

			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cli.Cyanln("watching " + e.Static.FixturesDir)

			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&opts.outDir, "out", "", "output directory (defaults to ENV_EXPORT_DIR)")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", watcher.DefaultDebounce, "quiet period before re-exporting")

	return cmd
}

func newScheduleCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Re-export on the ENV_EXPORT_CRON schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}

			expression := opts.cron
			if expression == "" {
				expression = e.Static.ExportCron
			}

			if expression == "" {
				return fmt.Errorf("no schedule: set ENV_EXPORT_CRON or pass --cron")
			}

			outDir := opts.exportDir(e)

			s, err := scheduler.New(
				expression,
				func(context.Context) error {
					_, err := export(e, outDir)

					return err
				},
				scheduler.WithImmediateRun(),
				scheduler.WithTimeout(exportTimeout),
			)

			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := s.Start(ctx); err != nil {
				return err
			}

			cli.Cyanln(fmt.Sprintf("scheduled %q, next run at %s", expression, s.Next().Format(time.RFC3339)))

			<-ctx.Done()
			s.Stop()

			runs, skips := s.Stats()
			cli.Grayln(fmt.Sprintf("stopped after %d runs (%d skipped)", runs, skips))

			if skips > 0 {
				cli.Warningln("some runs were skipped because an export was still in progress")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.outDir, "out", "", "output directory (defaults to ENV_EXPORT_DIR)")
	cmd.Flags().StringVar(&opts.cron, "cron", "", "cron expression overriding ENV_EXPORT_CRON")

	return cmd
}

func loadEnv(opts *options) (*env.Environment, error) {
	return kernel.Ignite(opts.envPath, portal.GetDefaultValidator())
}

func (o *options) exportDir(e *env.Environment) string {
	if o.outDir != "" {
		return o.outDir
	}

	return e.Static.ExportDir
}

// export builds a fresh router per run so edited fixtures are never served
// from the page cache.
func export(e *env.Environment, outDir string) ([]string, error) {
	r, err := kernel.MakeRouter(e)
	if err != nil {
		return nil, err
	}

	kernel.Register(r)

	files, err := staticgen.NewGenerator(outDir).Generate(r.WebsiteRoutes.Routes())
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	for _, file := range files {
		cli.Successln("wrote " + file)
	}

	return files, nil
}
