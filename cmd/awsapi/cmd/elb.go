package cmd

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/mevansam/awsapi/elb"
)

func newELBCommand(opts *globalOptions) *cobra.Command {

	cmd := &cobra.Command{
		Use:   "elb",
		Short: "Elastic Load Balancing operations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Usage()
		},
	}
	cmd.AddCommand(
		newDescribeLoadBalancersCommand(opts),
		newDescribeTagsCommand(opts),
		newDescribeInstanceHealthCommand(opts),
	)
	return cmd
}

func newELBClient(cmd *cobra.Command, opts *globalOptions) (*elb.Client, error) {
	return elb.NewFromConfig(cmd.Context(), opts.cfg)
}

func newDescribeLoadBalancersCommand(opts *globalOptions) *cobra.Command {

	var pageSize int32

	cmd := &cobra.Command{
		Use:   "describe-load-balancers [NAME...]",
		Short: "Describe all or the named load balancers",
		RunE: func(cmd *cobra.Command, args []string) error {

			c, err := newELBClient(cmd, opts)
			if err != nil {
				return err
			}
			in := &elb.DescribeLoadBalancersInput{}
			if len(args) > 0 {
				in.LoadBalancerNames = aws.StringSlice(args)
			}
			if pageSize > 0 {
				in.PageSize = aws.Int32(pageSize)
			}
			loadBalancers, err := c.DescribeAllLoadBalancers(cmd.Context(), in)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), loadBalancers)
			return nil
		},
	}
	cmd.Flags().Int32VarP(&pageSize, "page-size", "p", 0, "number of load balancers to request per page")
	return cmd
}

func newDescribeTagsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe-tags NAME [NAME...]",
		Short: "Describe the tags of load balancers",
		Args:  requireArgs("NAME"),
		RunE: func(cmd *cobra.Command, args []string) error {

			c, err := newELBClient(cmd, opts)
			if err != nil {
				return err
			}
			out, err := c.DescribeTags(cmd.Context(), &elb.DescribeTagsInput{
				LoadBalancerNames: aws.StringSlice(args),
			})
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), out.TagDescriptions)
			return nil
		},
	}
}

func newDescribeInstanceHealthCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe-instance-health NAME",
		Short: "Describe the state of the instances registered with a load balancer",
		Args:  requireArgs("NAME"),
		RunE: func(cmd *cobra.Command, args []string) error {

			c, err := newELBClient(cmd, opts)
			if err != nil {
				return err
			}
			out, err := c.DescribeInstanceHealth(cmd.Context(), &elb.DescribeInstanceHealthInput{
				LoadBalancerName: aws.String(args[0]),
			})
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), out.InstanceStates)
			return nil
		},
	}
}
