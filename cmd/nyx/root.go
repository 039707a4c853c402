package main

import (
	"github.com/spf13/cobra"

	"github.com/nyxui/nyx"
	"github.com/nyxui/nyx/internal/logger"
)

type rootFlags struct {
	verbose  bool
	logLevel string
	human    bool

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "nyx",
		Short:         "Nyx renders morphing blobs and replays paint scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setupLogger(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.human, "human", false, "Human readable log output")

	cmd.AddCommand(newBlobCmd(flags))
	cmd.AddCommand(newPaintCmd(flags))
	cmd.AddCommand(newDockCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupLogger builds the command logger and routes library logs into it.
func (f *rootFlags) setupLogger(cmd *cobra.Command) error {
	level := f.logLevel
	if f.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: f.human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	f.log = log.WithFields(map[string]any{"command": cmd.CommandPath()})
	nyx.SetLogger(f.log.Slog())
	return nil
}
