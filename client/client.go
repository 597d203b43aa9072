// Package client dispatches service operations: it marshals the
// request object, sends it through the transport and unmarshals
// either the result or a typed service error.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/mevansam/awsapi/config"
	"github.com/mevansam/awsapi/rest"
)

// ServiceInfo identifies a service and the version of its api.
type ServiceInfo struct {
	// service name used in logs and messages
	Name string
	// the name requests are signed with
	SigningName string
	// host prefix of the default endpoint
	EndpointPrefix string
	// api version sent with query protocol requests
	Version string
}

// Client sends the operations of one service. A client holds no
// per request state and can be shared by concurrent callers.
type Client struct {
	info ServiceInfo

	region      string
	endpoint    string
	httpClient  *http.Client
	credentials aws.CredentialsProvider
}

type Option func(c *Client)

// WithEndpoint sends requests to the given url instead of
// the default endpoint of the service in the region.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCredentials signs requests with credentials from the
// given provider. Requests are not signed if no provider is
// configured.
func WithCredentials(provider aws.CredentialsProvider) Option {
	return func(c *Client) {
		c.credentials = provider
	}
}

func WithRegion(region string) Option {
	return func(c *Client) {
		c.region = region
	}
}

// WithConfig applies the region, endpoint, timeout and static
// credentials of the given configuration.
func WithConfig(cfg *config.Config) Option {
	return func(c *Client) {
		if len(cfg.Region) > 0 {
			c.region = cfg.Region
		}
		if len(cfg.Endpoint) > 0 {
			c.endpoint = cfg.Endpoint
		}
		if cfg.Timeout > 0 {
			c.httpClient = &http.Client{Timeout: cfg.Timeout}
		}
		if len(cfg.AccessKeyID) > 0 {
			c.credentials = aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
			)
		}
	}
}

func New(info ServiceInfo, options ...Option) *Client {

	c := &Client{
		info:   info,
		region: config.DefaultRegion,
		httpClient: &http.Client{
			Timeout: config.DefaultTimeout,
		},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// NewFromConfig creates a client configured from cfg that
// signs requests with the credentials resolved by the
// configuration.
func NewFromConfig(ctx context.Context, info ServiceInfo, cfg *config.Config, options ...Option) (*Client, error) {

	provider, err := cfg.CredentialsProvider(ctx)
	if err != nil {
		return nil, err
	}
	options = append([]Option{WithConfig(cfg), WithCredentials(provider)}, options...)
	return New(info, options...), nil
}

func (c *Client) Info() ServiceInfo {
	return c.info
}

func (c *Client) Region() string {
	return c.region
}

// Endpoint returns the url requests are sent to.
func (c *Client) Endpoint() string {
	if len(c.endpoint) > 0 {
		return c.endpoint
	}
	return fmt.Sprintf("https://%s.%s.amazonaws.com", c.info.EndpointPrefix, c.region)
}

func (c *Client) transport(ctx context.Context) *rest.RestApiClient {

	restApiClient := rest.NewRestApiClient(ctx, c.Endpoint()).
		WithHttpClient(c.httpClient)

	if c.credentials != nil {
		restApiClient.WithSigner(c.credentials, c.info.SigningName, c.region)
	}
	return restApiClient
}

func elapsed(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
