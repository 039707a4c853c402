package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nyxui/nyx/internal/config"
	"github.com/nyxui/nyx/paint"
)

type paintOptions struct {
	scriptPath string
	outDir     string
	window     bool
}

func newPaintCmd(flags *rootFlags) *cobra.Command {
	opts := &paintOptions{}

	cmd := &cobra.Command{
		Use:   "paint",
		Short: "Replay a paint script and save the canvas as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaint(cmd, flags, *opts)
		},
	}

	cmd.Flags().StringVarP(&opts.scriptPath, "script", "s", "", "YAML file with a paint section")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "Output directory")
	cmd.Flags().BoolVar(&opts.window, "window", false, "Also save the framed window preview")

	return cmd
}

func runPaint(cmd *cobra.Command, flags *rootFlags, opts paintOptions) error {
	if strings.TrimSpace(opts.scriptPath) == "" {
		return fmt.Errorf("script file is required")
	}
	f, err := config.Load(opts.scriptPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", opts.outDir, err)
	}

	var (
		saved   string
		saveErr error
	)
	dir := paint.DirDownloader{Dir: opts.outDir}
	exporter := func(name string, data []byte) error {
		saved = name
		saveErr = dir.Download(name, data)
		return saveErr
	}

	c := paint.NewCanvas(append(f.Paint.CanvasOptions(), paint.WithExporter(exporter))...)
	defer c.Close()

	f.Paint.Replay(c)
	c.Save()
	if saveErr != nil {
		return saveErr
	}

	log := flags.log.WithFields(map[string]any{"strokes": len(c.Strokes())})
	log.Info(c.Status())
	fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(opts.outDir, saved))

	if opts.window {
		name := filepath.Join(opts.outDir, paint.DocumentName(c.Title())+"_window.png")
		if err := writePNG(name, c.Window()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
