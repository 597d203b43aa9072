// Package cmd implements the awsapi command line, which invokes
// the operations of the service clients and prints their results.
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/config"
	"github.com/mevansam/awsapi/logger"
	"github.com/mevansam/awsapi/term"
)

type globalOptions struct {
	region   string
	endpoint string
	logLevel string

	cfg *config.Config
}

// NewRootCommand returns the awsapi command with all of its
// service subcommands.
func NewRootCommand() *cobra.Command {

	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "awsapi",
		Short:         "Invoke Elastic Load Balancing and API Gateway V2 operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.ErrOrStderr(), "\n"+cmd.UsageString())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.region, "region", "r", "", "region to send requests to")
	flags.StringVarP(&opts.endpoint, "endpoint", "e", "", "url overriding the service endpoint")
	flags.StringVarP(&opts.logLevel, "log-level", "l", "", "one of trace, debug, info, warn or error")

	cmd.AddCommand(
		newEnvCommand(opts),
		newELBCommand(opts),
		newAPIGatewayV2Command(opts),
	)
	return cmd
}

// Execute runs the root command with the process arguments.
func Execute() error {

	logger.Initialize()

	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// load reads the configuration and applies the command line
// overrides to it.
func (o *globalOptions) load() error {

	var err error

	if o.cfg, err = config.Load(); err != nil {
		return err
	}
	if len(o.region) > 0 {
		o.cfg.Region = o.region
	}
	if len(o.endpoint) > 0 {
		o.cfg.Endpoint = o.endpoint
	}
	if len(o.logLevel) > 0 {
		o.cfg.LogLevel = o.logLevel
	}
	logger.SetLevel(o.cfg.LogLevel)
	return o.cfg.Validate()
}

func printError(out io.Writer, err error) {

	var prefix string
	switch awserr.KindOf(err) {
	case awserr.KindInvalidArgument:
		prefix = "Invalid argument"
	case awserr.KindService:
		prefix = "Service error"
	case awserr.KindTransport:
		prefix = "Request failed"
	default:
		prefix = "Error"
	}
	fmt.Fprintln(out, term.Format(prefix+":", term.BOLD, term.RED),
		wrapText(err.Error(), len(prefix)+2, 80))
}

// requireArgs validates the number of positional arguments,
// naming the missing ones in its error.
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return awserr.InvalidArgument(cmd.CommandPath(), "missing argument %s", joinNames(names[len(args):]))
		}
		return nil
	}
}
