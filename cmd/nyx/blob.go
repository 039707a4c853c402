package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nyxui/nyx/anim"
	"github.com/nyxui/nyx/blob"
	"github.com/nyxui/nyx/internal/config"
	"github.com/nyxui/nyx/internal/tui/watch"
	"github.com/nyxui/nyx/render"
	"github.com/nyxui/nyx/theme"
)

// seekStep is the tick length used when fast-forwarding an animation.
const seekStep = time.Second / 60

type blobOptions struct {
	configPath string
	seed       uint64
	theme      string
	size       string
}

func newBlobCmd(flags *rootFlags) *cobra.Command {
	opts := &blobOptions{}

	cmd := &cobra.Command{
		Use:   "blob",
		Short: "Render the morphing blob",
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with a blob section")
	cmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "Random seed; 0 picks one")
	cmd.PersistentFlags().StringVar(&opts.theme, "theme", "", "Theme preset, overrides the config file")
	cmd.PersistentFlags().StringVar(&opts.size, "size", "", "Size (sm, md, lg, xl), overrides the config file")

	cmd.AddCommand(newBlobSVGCmd(flags, opts))
	cmd.AddCommand(newBlobPNGCmd(flags, opts))
	cmd.AddCommand(newBlobFramesCmd(flags, opts))
	cmd.AddCommand(newBlobWatchCmd(flags, opts))

	return cmd
}

// load reads the config file, if any, and applies flag overrides.
func (o *blobOptions) load(cmd *cobra.Command) (config.Blob, error) {
	var f config.File
	if strings.TrimSpace(o.configPath) != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Blob{}, err
		}
		f = *loaded
	}

	if cmd.Flags().Changed("seed") {
		f.Blob.Seed = o.seed
	}
	if cmd.Flags().Changed("theme") {
		f.Blob.Theme = o.theme
	}
	if cmd.Flags().Changed("size") {
		f.Blob.Size = o.size
	}

	if err := config.Validate(&f); err != nil {
		return config.Blob{}, err
	}
	return f.Blob, nil
}

// scene is an animator and renderer sharing one manual clock.
type scene struct {
	animator *blob.Animator
	renderer *render.Renderer
	ticker   *anim.ManualTicker
	style    render.Style
}

func newScene(b config.Blob) (*scene, error) {
	style, err := b.Style()
	if err != nil {
		return nil, err
	}

	s := &scene{
		animator: blob.NewAnimator(b.AnimatorConfig(), b.AnimatorOptions()...),
		renderer: render.New(style),
		ticker:   anim.NewManualTicker(),
		style:    style,
	}
	s.animator.Start(s.ticker)
	s.renderer.Attach(s.ticker)
	return s, nil
}

// seek advances the clock by d in steps no longer than seekStep.
func (s *scene) seek(d time.Duration) {
	if d <= 0 {
		return
	}
	n := int((d + seekStep - 1) / seekStep)
	s.ticker.Step(d, n)
}

func (s *scene) close() {
	s.animator.Stop()
}

func newBlobSVGCmd(flags *rootFlags, opts *blobOptions) *cobra.Command {
	var (
		at  time.Duration
		out string
	)

	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Print the blob as a standalone SVG document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.load(cmd)
			if err != nil {
				return err
			}
			s, err := newScene(b)
			if err != nil {
				return err
			}
			defer s.close()
			s.seek(at)

			doc := render.SVG(s.animator.Frame(), s.style)
			if out == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), doc+"\n")
				return err
			}
			if err := os.WriteFile(out, []byte(doc+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			flags.log.WithFields(map[string]any{"file": out}).Info("svg written")
			return nil
		},
	}

	cmd.Flags().DurationVar(&at, "at", 0, "Animation time to capture, e.g. 1500ms")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}

func newBlobPNGCmd(flags *rootFlags, opts *blobOptions) *cobra.Command {
	var (
		at  time.Duration
		out string
	)

	cmd := &cobra.Command{
		Use:   "png",
		Short: "Render one blob frame to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(out) == "" {
				return fmt.Errorf("output file is required")
			}
			b, err := opts.load(cmd)
			if err != nil {
				return err
			}
			s, err := newScene(b)
			if err != nil {
				return err
			}
			defer s.close()
			s.seek(at)

			if err := writePNG(out, s.renderer.Draw(s.animator.Frame())); err != nil {
				return err
			}
			flags.log.WithFields(map[string]any{"file": out}).Info("png written")
			return nil
		},
	}

	cmd.Flags().DurationVar(&at, "at", 0, "Animation time to capture, e.g. 1500ms")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output PNG file")

	return cmd
}

func newBlobFramesCmd(flags *rootFlags, opts *blobOptions) *cobra.Command {
	var (
		out    string
		frames int
		fps    int
	)

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Write consecutive animation frames as PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(out) == "" {
				return fmt.Errorf("output directory is required")
			}
			if frames <= 0 {
				return fmt.Errorf("frames must be positive, got %d", frames)
			}
			if fps <= 0 {
				return fmt.Errorf("fps must be positive, got %d", fps)
			}

			b, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			s, err := newScene(b)
			if err != nil {
				return err
			}
			defer s.close()

			interval := time.Second / time.Duration(fps)
			for i := range frames {
				if i > 0 {
					s.ticker.Advance(interval)
				}
				name := filepath.Join(out, fmt.Sprintf("frame_%04d.png", i))
				if err := writePNG(name, s.renderer.Draw(s.animator.Frame())); err != nil {
					return err
				}
			}

			flags.log.WithFields(map[string]any{"dir": out, "frames": frames, "fps": fps}).Info("frames written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory")
	cmd.Flags().IntVar(&frames, "frames", 60, "Number of frames")
	cmd.Flags().IntVar(&fps, "fps", 30, "Frames per second")

	return cmd
}

func newBlobWatchCmd(flags *rootFlags, opts *blobOptions) *cobra.Command {
	var (
		fps   int
		cells int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Preview the animation in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.load(cmd)
			if err != nil {
				return err
			}
			style, err := b.Style()
			if err != nil {
				return err
			}

			modes := theme.NewContext(style.Mode)
			a := blob.NewAnimator(b.AnimatorConfig(), b.AnimatorOptions()...)
			defer a.Stop()
			r := render.New(style, render.WithContext(modes))

			model := watch.NewModel(a, r, modes, watch.Options{FPS: fps, Cells: cells})
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				flags.log.Error(err, "watch failed")
				return fmt.Errorf("run preview: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 30, "Preview frames per second")
	cmd.Flags().IntVar(&cells, "cells", watch.DefaultCells, "Blob width in terminal columns")

	return cmd
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return render.EncodePNG(f, img)
}
