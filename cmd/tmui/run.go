package main

import (
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/tmui"
)

// NewRunCommand builds the command output box command.
func NewRunCommand(loader *tmui.Loader, sf *sessionFlags) *cobra.Command {
	var title string
	var done string
	cmd := &cobra.Command{
		Use:   "run <command>...",
		Short: "Run a shell command and show its output while it runs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")
			s, closeSession, err := sf.openSession(cmd, loader)
			if err != nil {
				return err
			}
			boxTitle := title
			if boxTitle == "" {
				boxTitle = command
			}
			code, err := s.CommandBox(cmd.Context(), boxTitle, command)
			if err == nil && done != "" {
				err = endOfScript(s, s.OK(boxTitle, false, done))
			}
			if cerr := closeSession(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			pslog.Ctx(cmd.Context()).Info("command finished", "command", command, "exit_code", code)
			if code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&title, "box-title", "", "box title (the command when empty)")
	flags.StringVar(&done, "done", "", "message to confirm once the command finished")
	return cmd
}
