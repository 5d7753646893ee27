package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/tmui"
)

// NewMenuCommand builds the menu command. The chosen index and item are
// printed to stdout once the console is closed.
func NewMenuCommand(loader *tmui.Loader, sf *sessionFlags) *cobra.Command {
	var title string
	var prompt string
	var cancelable bool
	cmd := &cobra.Command{
		Use:   "menu <item>...",
		Short: "Let the user pick one item from a list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeSession, err := sf.openSession(cmd, loader)
			if err != nil {
				return err
			}
			choice, err := s.ExecuteDirectly(title, cancelable, args, prompt)
			if cerr := closeSession(); err == nil {
				err = cerr
			}
			if err != nil {
				return dialogError(s, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", choice, args[choice])
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&title, "box-title", "Select", "menu title")
	flags.StringVar(&prompt, "prompt", "", "text above the items")
	flags.BoolVar(&cancelable, "cancelable", true, "allow ESC to cancel")
	return cmd
}

// NewYesNoCommand builds the yes/no command. It exits 0 for yes and 1 for no.
func NewYesNoCommand(loader *tmui.Loader, sf *sessionFlags) *cobra.Command {
	var title string
	var cancelable bool
	cmd := &cobra.Command{
		Use:   "yesno <prompt>",
		Short: "Ask a yes/no question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeSession, err := sf.openSession(cmd, loader)
			if err != nil {
				return err
			}
			answer, err := s.YesNo(title, cancelable, args[0])
			if cerr := closeSession(); err == nil {
				err = cerr
			}
			if err != nil {
				return dialogError(s, err)
			}
			if answer != tmui.Yes {
				return &exitError{code: 1}
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&title, "box-title", "Question", "dialog title")
	flags.BoolVar(&cancelable, "cancelable", false, "allow ESC to cancel")
	return cmd
}

// NewOKCommand builds the message box command.
func NewOKCommand(loader *tmui.Loader, sf *sessionFlags) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "ok <message>",
		Short: "Show a message until the user presses Enter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeSession, err := sf.openSession(cmd, loader)
			if err != nil {
				return err
			}
			err = endOfScript(s, s.OK(title, false, args[0]))
			if cerr := closeSession(); err == nil {
				err = cerr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&title, "box-title", "Message", "dialog title")
	return cmd
}

// dialogError maps Esc to exit status 1 and drops the end of a key script.
func dialogError(s *tmui.Session, err error) error {
	if errors.Is(err, tmui.ErrCanceled) {
		return &exitError{code: 1}
	}
	return endOfScript(s, err)
}
