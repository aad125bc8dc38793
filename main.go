package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"dotwipe/erase"

	"github.com/alecthomas/kong"
)

type CLI struct {
	LogLevel  string `help:"Minimum level of diagnostics written to stderr" enum:"debug,info,warn,error" default:"warn"`
	LogFormat string `help:"Diagnostics format" enum:"text,json" default:"text"`

	Erase  erase.CLICmd    `cmd:"" help:"Make the dot region of an image transparent and save it as PNG"`
	Locate erase.LocateCmd `cmd:"" help:"Print the dot region that erase would clear"`
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("dotwipe"),
		kong.Description("Erase the dot from a hand logo image."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(os.Stderr, cli.LogLevel, cli.LogFormat)
	kctx.FatalIfErrorf(err)
	slog.SetDefault(logger)

	kctx.FatalIfErrorf(kctx.Run())
}
