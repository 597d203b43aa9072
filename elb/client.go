// Package elb is the client of the Elastic Load Balancing query api
// (version 2012-06-01).
package elb

import (
	"context"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/client"
	"github.com/mevansam/awsapi/config"
)

var ServiceInfo = client.ServiceInfo{
	Name:           "ElasticLoadBalancing",
	SigningName:    "elasticloadbalancing",
	EndpointPrefix: "elasticloadbalancing",
	Version:        "2012-06-01",
}

type Client struct {
	client *client.Client
	errors *awserr.Registry
}

func New(options ...client.Option) *Client {
	return &Client{
		client: client.New(ServiceInfo, options...),
		errors: newErrorRegistry(),
	}
}

func NewFromConfig(ctx context.Context, cfg *config.Config, options ...client.Option) (*Client, error) {

	c, err := client.NewFromConfig(ctx, ServiceInfo, cfg, options...)
	if err != nil {
		return nil, err
	}
	return &Client{
		client: c,
		errors: newErrorRegistry(),
	}, nil
}

// RegisterError adds an unmarshaller for error codes that are
// not mapped to a typed error. It is matched after the
// unmarshallers of the service's own errors.
func (c *Client) RegisterError(u awserr.ErrorUnmarshaller) {
	c.errors.Register(u)
}

// DescribeAllLoadBalancers pages through DescribeLoadBalancers
// following the returned markers and returns the descriptions
// of all pages.
func (c *Client) DescribeAllLoadBalancers(ctx context.Context, in *DescribeLoadBalancersInput) ([]*LoadBalancerDescription, error) {

	var descriptions []*LoadBalancerDescription

	page := *in
	for {
		out, err := c.DescribeLoadBalancers(ctx, &page)
		if err != nil {
			return nil, err
		}
		descriptions = append(descriptions, out.LoadBalancerDescriptions...)
		if out.NextMarker == nil || len(*out.NextMarker) == 0 {
			return descriptions, nil
		}
		page.Marker = out.NextMarker
	}
}
