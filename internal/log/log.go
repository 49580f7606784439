// Package log wires log/slog onto a charmbracelet/log handler with
// styled levels and a size-bounded log file.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/karasuno/snapsweep/internal/env"
	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
)

// Options represents logger configuration options
type Options struct {
	charmlog.Options
	Writer io.Writer
	Styles *charmlog.Styles
}

// DefaultOptions returns the default logger options
func DefaultOptions() *Options {
	return &Options{
		Options: charmlog.Options{
			Level:           charmlog.DebugLevel,
			ReportCaller:    true,
			ReportTimestamp: true,
		},
		Writer: os.Stderr,
		Styles: DefaultStyles(),
	}
}

// Apply applies the given options
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

type Option func(*Options)

func UseLevel(l charmlog.Level) Option {
	return func(o *Options) {
		o.Level = l
	}
}

func UseOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Writer = w
	}
}

// UseOutputPath appends to the given file, rotating it first when it
// has outgrown the configured limit. Falls back to stderr.
func UseOutputPath(path, maxSize string) Option {
	return func(o *Options) {
		if path == "" {
			return
		}
		rotate(path, maxSize)
		if file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			o.Writer = file
		}
	}
}

func UseReportCaller(report bool) Option {
	return func(o *Options) {
		o.ReportCaller = report
	}
}

// New creates a new slog logger with the given options and installs it
// as the process default.
func New(opts ...Option) *slog.Logger {
	o := DefaultOptions()
	o.Apply(opts...)

	handler := charmlog.NewWithOptions(o.Writer, o.Options)
	handler.SetStyles(o.Styles)

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a config level string to a charm log level.
// Unknown strings fall back to info.
func ParseLevel(s string) charmlog.Level {
	level, err := charmlog.ParseLevel(s)
	if err != nil {
		return charmlog.InfoLevel
	}
	return level
}

// Follow streams the log file to w, following new lines when attached
// to a terminal.
func Follow(w io.Writer, live bool) error {
	if _, err := os.Stat(env.SNAPSWEEP_LOG_PATH); os.IsNotExist(err) {
		return fmt.Errorf("no log file exists yet: try running some commands first")
	}

	shouldFollow := live && isatty.IsTerminal(os.Stdout.Fd())
	t, err := tail.TailFile(env.SNAPSWEEP_LOG_PATH, tail.Config{
		Follow: shouldFollow,
		ReOpen: shouldFollow,
		Logger: tail.DiscardingLogger,
	})
	if err != nil {
		return err
	}
	for line := range t.Lines {
		fmt.Fprintln(w, line.Text)
	}
	return nil
}
