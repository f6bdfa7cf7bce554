package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/hesusruiz/minihtml/site"
)

// newLogger sets up the logging system
func newLogger(debug bool) *zap.SugaredLogger {
	var z *zap.Logger
	var err error

	if debug {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}

	return z.Sugar()
}

// buildConfig assembles the configuration from the defaults, the config file and
// the command line, in increasing order of precedence.
func buildConfig(c *cli.Context) (site.Config, error) {
	cfg := site.DefaultConfig()

	// The source directory can be given as a flag or as the first argument
	cfg.SourceDir = c.String("directory")
	if len(cfg.SourceDir) == 0 && c.Args().Present() {
		cfg.SourceDir = c.Args().First()
	}
	cfg.OutputDir = c.String("output")

	configFile := c.String("config")
	if len(configFile) == 0 && len(cfg.SourceDir) > 0 {
		configFile = cfg.FindConfigFile()
	}
	if len(configFile) > 0 {
		if err := cfg.LoadConfig(configFile); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("template") {
		cfg.TemplateFile = c.String("template")
	}
	if c.IsSet("interval") {
		cfg.Interval = c.Duration("interval")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	cfg.DryRun = c.Bool("dryrun")

	return cfg, cfg.Validate()
}

// process is the main entry point of the program
func process(c *cli.Context) error {

	sugar := newLogger(c.Bool("debug"))
	defer sugar.Sync()

	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	sugar.Infow("directory specified", "source", cfg.SourceDir, "output", cfg.OutputDir)
	if cfg.DryRun {
		fmt.Printf("dry run: processing %v without writing output\n", cfg.SourceDir)
	}

	// In watch mode a missing source directory is created with a starter document
	if c.Bool("watch") {
		if err := site.EnsureSourceDir(cfg.SourceDir); err != nil {
			return err
		}
	}

	b, err := site.NewBuilder(cfg, sugar)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// If the user specified to watch, loop until interrupted rebuilding when files are modified
	if c.Bool("watch") {
		return site.NewWatcher(b, sugar).Run(ctx)
	}

	report, err := b.Build(ctx)
	if err != nil {
		return err
	}

	if c.Bool("debug") {
		for _, page := range report.Pages {
			sugar.Debugw("page", "source", page.Source, "output", page.Output, "diagnostics", page.Diagnostics.Strings())
		}
	}

	return nil
}

func main() {

	app := &cli.App{
		Name:     "minihtml",
		Version:  "v0.1.0",
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{
				Name:  "Jesus Ruiz",
				Email: "hesus.ruiz@gmail.com",
			},
		},
		Usage:     "compile a directory of minihtml documents into HTML",
		UsageText: "minihtml [options] -o OUTPUT_DIR [SOURCE_DIR]",
		Action:    process,
		ArgsUsage: "SOURCE_DIR",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "directory",
				Aliases: []string{"d"},
				Usage:   "read .minihtml and .mhtml files from `DIR`",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write .html files to `DIR`",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load tables and options from `FILE` (default is minihtml.yaml in the source directory)",
			},
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "place the compiled HTML into the page template `FILE`",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "watch the source directory and rebuild on changes",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Value: site.DefaultInterval,
				Usage: "polling interval in watch mode",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 1,
				Usage: "number of files compiled at the same time",
			},
			&cli.BoolFlag{
				Name:    "dryrun",
				Aliases: []string{"n"},
				Usage:   "do not generate output files, just process input files",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "run in debug mode",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
