// Package cli is the command-line front end: it wires the scanner,
// the trash storage and the undo stack, and maps flags onto the three
// core operations.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/jessevdk/go-flags"
	"github.com/karasuno/snapsweep/internal/app"
	"github.com/karasuno/snapsweep/internal/config"
	"github.com/karasuno/snapsweep/internal/env"
	"github.com/karasuno/snapsweep/internal/log"
	"github.com/karasuno/snapsweep/internal/screenshot"
	"github.com/karasuno/snapsweep/internal/trash/xdg"
	"github.com/karasuno/snapsweep/internal/undo"
	"github.com/rs/xid"
)

type Option struct {
	Delete      bool   `short:"d" long:"delete" description:"Move the given screenshot files to trash"`
	Interactive bool   `short:"i" long:"interactive" description:"Start an interactive session (list, delete, undo)"`
	SortBy      string `long:"sort" description:"Sort key for listing" choice:"name" choice:"createdAt" choice:"modifiedAt" choice:"size"`
	Descending  bool   `long:"desc" description:"Sort newest/largest first"`
	Ascending   bool   `long:"asc" description:"Sort oldest/smallest first"`
	Config      string `long:"config" description:"Path to config file" default:""`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	runID   string
	app     *app.App
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[-d files... | -i]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	logOutput := log.UseOutput(io.Discard)
	if cfg.Logging.Enabled {
		logOutput = log.UseOutputPath(env.SNAPSWEEP_LOG_PATH, cfg.Logging.MaxSize)
	}
	logger := log.New(
		log.UseLevel(log.ParseLevel(cfg.Logging.Level)),
		logOutput,
		log.UseReportCaller(true),
	)
	slog.SetDefault(logger.With("run_id", runID()))

	defer slog.Debug("main function finished\n\n\n")
	slog.Debug("main function started",
		"version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	filter := &screenshot.Filter{
		Within:          cfg.Filter.Within,
		ExcludeFiles:    cfg.Filter.Exclude.Files,
		ExcludeGlobs:    cfg.Filter.Exclude.Globs,
		ExcludePatterns: cfg.Filter.Exclude.Patterns,
		SizeMin:         cfg.Filter.Exclude.Size.Min,
		SizeMax:         cfg.Filter.Exclude.Size.Max,
		VerifyContent:   cfg.Filter.VerifyContent,
	}
	scanner := screenshot.NewScanner(cfg.Core.ScreenshotsDir, filter)

	storage, err := xdg.NewStorage(xdg.Config{
		HomeTrashDir: cfg.Core.TrashDir,
		HomeFallback: cfg.Core.HomeFallback,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize trash storage: %w", err)
	}

	cli := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		runID:   runID(),
		app:     app.New(scanner, storage, undo.NewStack(cfg.Core.Undo.MaxBatches)),
	}

	if err := cli.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

func (c *CLI) Run(args []string) error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(os.Stdout, c.version.Print())
		return nil

	case c.option.Meta.Debug != "":
		return log.Follow(os.Stdout, c.option.Meta.Debug == "live")

	case c.option.Delete:
		return c.Delete(args)

	case c.option.Interactive:
		return c.Session()

	default:
		_, err := c.List()
		return err
	}
}

// sortOptions resolves the listing order from config and flags; flags
// win.
func (c *CLI) sortOptions() app.ListOptions {
	opts := app.ListOptions{
		SortBy:     screenshot.SortKey(c.config.List.SortBy),
		Descending: c.config.List.Descending,
	}
	if c.option.SortBy != "" {
		opts.SortBy = screenshot.SortKey(c.option.SortBy)
	}
	if c.option.Descending {
		opts.Descending = true
	}
	if c.option.Ascending {
		opts.Descending = false
	}
	return opts
}
