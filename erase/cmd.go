package erase

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Input   string `arg:"" help:"Source image"`
	Output  string `arg:"" help:"Destination PNG file, overwritten if it exists"`
	Workers int    `help:"Goroutines scanning the image, 0 for one per CPU" default:"1"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Input == "" {
		return fmt.Errorf("no source image given")
	}
	if c.Output == "" {
		return fmt.Errorf("no destination file given")
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	return nil
}

func (c *CLICmd) Run(kctx *kong.Context) error {
	if ext := strings.ToLower(filepath.Ext(c.Output)); ext != ".png" {
		slog.Warn("destination is always written as PNG", "to", c.Output, "ext", ext)
	}

	e := Eraser{Workers: c.Workers, Stdout: kctx.Stdout}
	return e.Erase(c.Input, c.Output)
}

type LocateCmd struct {
	Input string `arg:"" help:"Source image"`
}

func (c *LocateCmd) Run(kctx *kong.Context) error {
	dot, imgConf, err := Locate(c.Input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(kctx.Stdout, "%s: %dx%d %s\n", c.Input, imgConf.Width, imgConf.Height, dot)
	return err
}
