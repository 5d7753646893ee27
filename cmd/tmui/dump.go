package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/prettyx"
	"pkt.systems/tmui"
)

// NewDumpCommand builds the screen dump viewer.
func NewDumpCommand() *cobra.Command {
	var asJSON bool
	var plain bool
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Show a screen dump written on save",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := tmui.DefaultDumpPath()
			if len(args) == 1 {
				path = args[0]
			}
			snap, err := tmui.ReadDump(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				data, err := tmui.MarshalDump(snap)
				if err != nil {
					return err
				}
				return prettyx.PrettyTo(out, data, prettyx.DefaultOptions)
			case plain:
				printScreen(out, snap)
				return nil
			default:
				return tmui.RenderDump(out, snap)
			}
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&asJSON, "json", false, "print the dump as JSON")
	flags.BoolVar(&plain, "plain", false, "print the text only, without colors")
	cmd.MarkFlagsMutuallyExclusive("json", "plain")
	return cmd
}
