package main

import (
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/tmui"
)

// NewRootCommand builds the root CLI command. Without a subcommand it runs
// the widget demo.
func NewRootCommand(loader *tmui.Loader) *cobra.Command {
	var sf sessionFlags
	var demo demoOptions

	cmd := &cobra.Command{
		Use:           "tmui",
		Short:         "Minimalist text-mode dialogs for scripts and installers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return sf.bind(cmd.Root(), loader)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeSession, err := sf.openSession(cmd, loader)
			if err != nil {
				return err
			}
			err = endOfScript(s, runDemo(cmd.Context(), s, demo))
			if cerr := closeSession(); err == nil {
				err = cerr
			}
			return err
		},
	}
	sf.register(cmd)

	flags := cmd.Flags()
	flags.StringVar(&demo.command, "command", "uname -a; ls -l /", "shell command for the command box step")
	flags.StringVar(&demo.file, "file", "", "text file for the viewer step (built-in text when empty)")
	flags.DurationVar(&demo.step, "step", 100*time.Millisecond, "delay between progress updates")

	cmd.AddCommand(NewViewCommand(loader, &sf))
	cmd.AddCommand(NewRunCommand(loader, &sf))
	cmd.AddCommand(NewMenuCommand(loader, &sf))
	cmd.AddCommand(NewYesNoCommand(loader, &sf))
	cmd.AddCommand(NewOKCommand(loader, &sf))
	cmd.AddCommand(NewDumpCommand())
	cmd.AddCommand(NewBootstrapCommand())

	return cmd
}
