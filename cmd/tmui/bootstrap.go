package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/tmui"
)

// NewBootstrapCommand builds the bootstrap command.
func NewBootstrapCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Write the default tmui config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := pslog.Ctx(cmd.Context()).With("component", "bootstrap")
			path, err := tmui.Bootstrap(tmui.DefaultConfig(), output, logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "config file to write (default "+tmui.DefaultConfigPath()+")")
	return cmd
}
