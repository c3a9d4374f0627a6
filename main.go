package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "wellbeing"
	app.Usage = "Daily stress, energy and productivity tracker"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a YAML config file",
			EnvVars: []string{"CONFIG_PATH"},
		},
	}
	app.Action = runBot
	app.Commands = []*cli.Command{
		{
			Action:      runBot,
			Name:        "bot",
			Usage:       "Run the Telegram bot",
			Category:    "Bot",
			Description: `Long-polls Telegram, runs the daily survey and sends scheduled reminders and digests.`,
		},
		{
			Action:      runReport,
			Name:        "report",
			Usage:       "Print stats and trend verdicts",
			Category:    "Analytics",
			Description: `Reads the entry log and prints the last 7 daily averages and both trend verdicts.`,
		},
		{
			Action:   runPlot,
			Name:     "plot",
			Usage:    "Render the composite score chart",
			Category: "Analytics",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "chart.png", Usage: "output PNG path"},
			},
		},
		{
			Action:   runExport,
			Name:     "export",
			Usage:    "Export the entry log as CSV",
			Category: "Analytics",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (stdout when omitted)"},
			},
		},
	}
	return app
}

func waitForShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
}
