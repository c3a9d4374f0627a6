package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"wellbeing-tracker/internal/app"
	"wellbeing-tracker/internal/config"
	"wellbeing-tracker/internal/logger"
	"wellbeing-tracker/internal/report"
	"wellbeing-tracker/internal/services"
	"wellbeing-tracker/internal/utils"
	"wellbeing-tracker/internal/wellbeing"
)

func runBot(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := app.NewLogger(cfg)

	application, err := app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}

	if err := application.Start(); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	waitForShutdown()
	log.Infof("👋 Shutting down")
	return application.Stop()
}

// openAnalytics opens the configured store for the offline commands.
func openAnalytics(c *cli.Context) (*services.AnalyticsService, *app.Store, logger.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	log := app.NewLogger(cfg)
	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := app.OpenStore(cfg, loc, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return services.NewAnalyticsService(store), store, log, nil
}

func runReport(c *cli.Context) error {
	analytics, store, _, err := openAnalytics(c)
	if err != nil {
		return err
	}
	defer store.Close()

	daily, err := analytics.Daily(c.Context)
	if err != nil {
		return err
	}
	scores := wellbeing.Scores(daily)

	fmt.Fprintln(c.App.Writer, report.Stats(daily))
	fmt.Fprintln(c.App.Writer, report.ShortTrend(wellbeing.DetectShortTrend(scores)))
	fmt.Fprintln(c.App.Writer, report.Regression(wellbeing.DetectRegressionTrend(scores)))
	return nil
}

func runPlot(c *cli.Context) error {
	analytics, store, log, err := openAnalytics(c)
	if err != nil {
		return err
	}
	defer store.Close()

	png, err := analytics.Chart(c.Context)
	if err != nil {
		return err
	}

	out := c.String("out")
	if err := os.WriteFile(out, png, 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	log.Infof("✅ Chart written to %s", out)
	return nil
}

func runExport(c *cli.Context) error {
	analytics, store, _, err := openAnalytics(c)
	if err != nil {
		return err
	}
	defer store.Close()

	return exportTo(c.Context, analytics, c.String("out"), c.App.Writer)
}

func exportTo(ctx context.Context, analytics *services.AnalyticsService, out string, stdout io.Writer) error {
	if out == "" {
		return analytics.Export(ctx, stdout)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := analytics.Export(ctx, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
