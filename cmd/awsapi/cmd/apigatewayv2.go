package cmd

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/mevansam/awsapi/apigatewayv2"
)

func newAPIGatewayV2Command(opts *globalOptions) *cobra.Command {

	cmd := &cobra.Command{
		Use:   "apigatewayv2",
		Short: "API Gateway V2 operations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Usage()
		},
	}
	cmd.AddCommand(
		newGetApisCommand(opts),
		newGetRoutesCommand(opts),
		newGetStagesCommand(opts),
		newDeleteApiCommand(opts),
	)
	return cmd
}

func newAPIGatewayV2Client(cmd *cobra.Command, opts *globalOptions) (*apigatewayv2.Client, error) {
	return apigatewayv2.NewFromConfig(cmd.Context(), opts.cfg)
}

func newGetApisCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-apis",
		Short: "List all apis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			c, err := newAPIGatewayV2Client(cmd, opts)
			if err != nil {
				return err
			}
			apis, err := c.GetAllApis(cmd.Context(), &apigatewayv2.GetApisInput{})
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), apis)
			return nil
		},
	}
}

func newGetRoutesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-routes API_ID",
		Short: "List the routes of an api",
		Args:  requireArgs("API_ID"),
		RunE: func(cmd *cobra.Command, args []string) error {

			c, err := newAPIGatewayV2Client(cmd, opts)
			if err != nil {
				return err
			}
			in := &apigatewayv2.GetRoutesInput{ApiId: aws.String(args[0])}

			var routes []*apigatewayv2.Route
			for {
				out, err := c.GetRoutes(cmd.Context(), in)
				if err != nil {
					return err
				}
				routes = append(routes, out.Items...)
				if len(aws.ToString(out.NextToken)) == 0 {
					break
				}
				in.NextToken = out.NextToken
			}
			printResult(cmd.OutOrStdout(), routes)
			return nil
		},
	}
}

func newGetStagesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-stages API_ID",
		Short: "List the stages of an api",
		Args:  requireArgs("API_ID"),
		RunE: func(cmd *cobra.Command, args []string) error {

			c, err := newAPIGatewayV2Client(cmd, opts)
			if err != nil {
				return err
			}
			out, err := c.GetStages(cmd.Context(), &apigatewayv2.GetStagesInput{ApiId: aws.String(args[0])})
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), out.Items)
			return nil
		},
	}
}

func newDeleteApiCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-api API_ID",
		Short: "Delete an api",
		Args:  requireArgs("API_ID"),
		RunE: func(cmd *cobra.Command, args []string) error {

			c, err := newAPIGatewayV2Client(cmd, opts)
			if err != nil {
				return err
			}
			if _, err = c.DeleteApi(cmd.Context(), &apigatewayv2.DeleteApiInput{ApiId: aws.String(args[0])}); err != nil {
				return err
			}
			cmd.Printf("Deleted api %s.\n", args[0])
			return nil
		},
	}
}
