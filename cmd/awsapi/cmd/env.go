package cmd

import (
	"github.com/spf13/cobra"
)

func newEnvCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the environment variables that configure awsapi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.cfg.PrintUsage(cmd.OutOrStdout())
			return nil
		},
	}
}
