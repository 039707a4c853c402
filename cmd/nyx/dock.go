package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nyxui/nyx/anim"
	"github.com/nyxui/nyx/dock"
)

type dockOptions struct {
	icons   int
	pointer float64
	settle  time.Duration
}

var dockHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

func newDockCmd(flags *rootFlags) *cobra.Command {
	opts := &dockOptions{}

	cmd := &cobra.Command{
		Use:   "dock",
		Short: "Simulate the magnifying dock and print its layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.icons <= 0 {
				return fmt.Errorf("icons must be positive, got %d", opts.icons)
			}
			if opts.settle < 0 {
				return fmt.Errorf("settle must not be negative, got %s", opts.settle)
			}

			d := dock.New(opts.icons)
			if cmd.Flags().Changed("pointer") {
				d.SetPointer(opts.pointer)
			}

			t := anim.NewManualTicker()
			cancel := d.Attach(t)
			defer cancel()
			if opts.settle > 0 {
				t.Step(opts.settle, int(opts.settle/(time.Second/dock.FPS))+1)
			}

			fmt.Fprintln(cmd.OutOrStdout(), dockTable(d))
			flags.log.WithFields(map[string]any{"icons": opts.icons, "width": d.Width()}).Debug("dock simulated")
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.icons, "icons", 5, "Number of icons")
	cmd.Flags().Float64Var(&opts.pointer, "pointer", 0, "Pointer x in pixels; unset means no pointer")
	cmd.Flags().DurationVar(&opts.settle, "settle", time.Second, "Simulated time before printing")

	return cmd
}

func dockTable(d *dock.Dock) string {
	targets := d.Targets()
	scales := d.Scales()
	slots := d.Layout()

	rows := make([][]string, len(slots))
	for i, s := range slots {
		rows[i] = []string{
			strconv.Itoa(i),
			strconv.FormatFloat(targets[i], 'f', 3, 64),
			strconv.FormatFloat(scales[i], 'f', 3, 64),
			strconv.FormatFloat(s.X, 'f', 1, 64),
			strconv.FormatFloat(s.Size, 'f', 1, 64),
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("icon", "target", "scale", "x", "size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return dockHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}
