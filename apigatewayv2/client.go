// Package apigatewayv2 is the client of the API Gateway V2 REST-JSON
// api (version 2018-11-29) managing HTTP and WebSocket apis.
package apigatewayv2

import (
	"context"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/client"
	"github.com/mevansam/awsapi/config"
)

var ServiceInfo = client.ServiceInfo{
	Name:           "ApiGatewayV2",
	SigningName:    "apigateway",
	EndpointPrefix: "apigateway",
	Version:        "2018-11-29",
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
// not mapped to a typed error.
func (c *Client) RegisterError(u awserr.ErrorUnmarshaller) {
	c.errors.Register(u)
}

// GetAllApis pages through GetApis and returns the apis of
// all pages.
func (c *Client) GetAllApis(ctx context.Context, in *GetApisInput) ([]*Api, error) {

	var apis []*Api

	page := *in
	for {
		out, err := c.GetApis(ctx, &page)
		if err != nil {
			return nil, err
		}
		apis = append(apis, out.Items...)
		if out.NextToken == nil || len(*out.NextToken) == 0 {
			return apis, nil
		}
		page.NextToken = out.NextToken
	}
}
