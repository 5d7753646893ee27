package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"pkt.systems/tmui"
)

// NewViewCommand builds the text file viewer command.
func NewViewCommand(loader *tmui.Loader, sf *sessionFlags) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Show a text file in a scrollable box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeSession, err := sf.openSession(cmd, loader)
			if err != nil {
				return err
			}
			boxTitle := title
			if boxTitle == "" {
				boxTitle = filepath.Base(args[0])
			}
			err = endOfScript(s, s.TextFileBox(boxTitle, args[0]))
			if cerr := closeSession(); err == nil {
				err = cerr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&title, "box-title", "", "box title (file name when empty)")
	return cmd
}
