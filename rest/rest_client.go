package rest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/logger"
)

const (
	InvocationIDHeader = "Amz-Sdk-Invocation-Id"
	UserAgent          = "awsapi/1.0"
)

type RestApiClient struct {
	ctx context.Context

	url        string
	httpClient *http.Client

	// request signing
	signer      *v4.Signer
	credentials aws.CredentialsProvider
	signingName string
	region      string
}

type Request struct {
	Method    string
	Path      string
	Headers   NV
	QueryArgs url.Values

	Body        []byte
	ContentType string

	client *RestApiClient
}

type Response struct {
	StatusCode int
	Headers    NV

	// the response body which can only
	// be read within a response handler
	Body io.Reader
}

// ResponseHandler consumes a response. Handlers are called
// while the response body is still open.
type ResponseHandler func(response *Response) error

type NV map[string]string

func NewRestApiClient(ctx context.Context, url string) *RestApiClient {

	return &RestApiClient{
		ctx: ctx,
		url: url,
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
	}
}

func (c *RestApiClient) WithHttpClient(httpClient *http.Client) *RestApiClient {
	c.httpClient = httpClient
	return c
}

// WithSigner signs all requests sent by the client with AWS
// signature version 4 using the given credentials.
func (c *RestApiClient) WithSigner(
	credentials aws.CredentialsProvider,
	signingName, region string,
) *RestApiClient {

	c.signer = v4.NewSigner()
	c.credentials = credentials
	c.signingName = signingName
	c.region = region
	return c
}

func (c *RestApiClient) URL() string {
	return c.url
}

func (c *RestApiClient) NewRequest(request *Request) *Request {
	request.client = c
	return request
}

// Invoke sends the request and passes a 2xx response to
// onSuccess and any other response to onError. The error
// returned by the handler is returned to the caller. Failures
// to reach the service are returned as transport errors. The
// request is never retried.
func (r *Request) Invoke(onSuccess, onError ResponseHandler) (err error) {

	var (
		body []byte

		httpRequest  *http.Request
		httpResponse *http.Response
	)

	c := r.client
	method := r.Method
	if len(method) == 0 {
		method = http.MethodGet
	}

	if httpRequest, err = http.NewRequestWithContext(
		c.ctx, method, joinURL(c.url, r.Path), bytes.NewReader(r.Body),
	); err != nil {
		return awserr.Transport("", err)
	}
	httpRequest.ContentLength = int64(len(r.Body))
	if len(r.Body) == 0 {
		httpRequest.Body = http.NoBody
	}

	// add headers
	if len(r.ContentType) > 0 {
		httpRequest.Header.Set("Content-Type", r.ContentType)
	}
	httpRequest.Header.Set("User-Agent", UserAgent)
	httpRequest.Header.Set(InvocationIDHeader, uuid.New().String())
	for n, v := range r.Headers {
		httpRequest.Header.Set(n, v)
	}

	// add query params
	if len(r.QueryArgs) > 0 {
		query := httpRequest.URL.Query()
		for n, vv := range r.QueryArgs {
			for _, v := range vv {
				query.Add(n, v)
			}
		}
		httpRequest.URL.RawQuery = strings.ReplaceAll(query.Encode(), "+", "%20")
	}

	if c.signer != nil {
		if err = c.sign(httpRequest, r.Body); err != nil {
			return err
		}
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logger.TraceMessage(
			"RestApiClient.Request.Invoke(%s): sending request:\n  url=%s,\n  headers=%# v,\n  body=%s",
			method,
			httpRequest.URL.String(),
			httpRequest.Header,
			string(r.Body),
		)
	}
	if httpResponse, err = c.httpClient.Do(httpRequest); err != nil {
		return awserr.Transport("", err)
	}
	defer httpResponse.Body.Close()

	response := &Response{
		StatusCode: httpResponse.StatusCode,
		Headers:    make(map[string]string),
		Body:       httpResponse.Body,
	}
	for n, v := range httpResponse.Header {
		if len(v) > 0 {
			response.Headers[n] = v[0]
		} else {
			response.Headers[n] = ""
		}
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		// retrieve response body to output to trace log
		// before handing it to the response handler
		if body, err = ioutil.ReadAll(httpResponse.Body); err != nil {
			return awserr.Transport("", err)
		}
		response.Body = bytes.NewReader(body)

		logger.TraceMessage(
			"RestApiClient.Request.Invoke(%s): received response:\n  url=%s,\n  status code=%d,\n  status=%s\n  headers=%# v,\n  body=%s",
			method,
			httpRequest.URL.String(),
			httpResponse.StatusCode,
			httpResponse.Status,
			httpResponse.Header,
			string(body),
		)
	}

	if httpResponse.StatusCode < http.StatusOK || httpResponse.StatusCode >= http.StatusMultipleChoices {
		if onError != nil {
			return onError(response)
		}
		return nil
	}
	if onSuccess != nil {
		err = onSuccess(response)
	}
	// drain so the connection can be reused
	_, _ = io.Copy(ioutil.Discard, response.Body)
	return err
}

func (c *RestApiClient) sign(httpRequest *http.Request, body []byte) error {

	credentials, err := c.credentials.Retrieve(c.ctx)
	if err != nil {
		return awserr.Transport("", err)
	}

	hash := sha256.Sum256(body)
	if err = c.signer.SignHTTP(
		c.ctx, credentials, httpRequest,
		hex.EncodeToString(hash[:]),
		c.signingName, c.region,
		time.Now().UTC(),
	); err != nil {
		return awserr.Transport("", err)
	}
	return nil
}

// concatonate client url with request
// path to create the complete url
func joinURL(base, path string) string {

	var url strings.Builder

	url.WriteString(base)
	if strings.HasSuffix(base, "/") {
		if strings.HasPrefix(path, "/") {
			url.WriteString(path[1:])
		} else {
			url.WriteString(path)
		}
	} else {
		if strings.HasPrefix(path, "/") {
			url.WriteString(path)
		} else if len(path) > 0 {
			url.Write([]byte{'/'})
			url.WriteString(path)
		}
	}
	return url.String()
}
