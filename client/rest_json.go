package client

import (
	"bytes"
	"context"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/restjson"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/codec"
	"github.com/mevansam/awsapi/logger"
	"github.com/mevansam/awsapi/rest"
)

const errorTypeHeader = "X-Amzn-Errortype"

// InvokeREST sends the REST-JSON operation op with the request
// object in to the path template and unmarshals the JSON result
// into out, which may be nil for operations without a result.
func (c *Client) InvokeREST(
	ctx context.Context,
	op, method, pathTemplate string,
	in, out interface{},
	registry *awserr.Registry,
) error {

	start := time.Now()
	logger.DebugMessage("Client.InvokeREST(%s): invoking %s", c.info.Name, op)

	request, err := codec.MarshalREST(c.info.Name, op, method, pathTemplate, in)
	if err != nil {
		return err
	}

	headers := rest.NV{}
	contentType := ""
	for n, v := range request.Headers {
		if n == "Content-Type" {
			contentType = v
		} else {
			headers[n] = v
		}
	}

	err = c.transport(ctx).NewRequest(
		&rest.Request{
			Method:      request.Method,
			Path:        request.Path,
			Headers:     headers,
			QueryArgs:   request.Query,
			Body:        request.Body,
			ContentType: contentType,
		},
	).Invoke(
		func(response *rest.Response) error {
			if out == nil {
				return nil
			}
			return codec.UnmarshalJSON(response.Body, out)
		},
		func(response *rest.Response) error {
			return restJSONError(response, registry)
		},
	)

	if err != nil {
		logger.DebugMessage("Client.InvokeREST(%s): %s failed after %s: %s", c.info.Name, op, elapsed(start), err.Error())
		return awserr.WithOp(op, err)
	}
	logger.DebugMessage("Client.InvokeREST(%s): %s completed in %s", c.info.Name, op, elapsed(start))
	return nil
}

// restJSONError reads a REST-JSON error response. The error code
// is taken from the error type header or from the "__type" or
// "code" member of the body, else it is the status text.
func restJSONError(response *rest.Response, registry *awserr.Registry) error {

	payload, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return awserr.Transport("", err)
	}

	se := awserr.ServiceError{
		Code:       response.Headers[errorTypeHeader],
		StatusCode: response.StatusCode,
		Fault:      awserr.FaultFromStatus(response.StatusCode),
		RequestID:  response.Headers["X-Amzn-Requestid"],
		Payload:    payload,
	}

	if len(bytes.TrimSpace(payload)) > 0 {
		body, err := codec.UnmarshalJSONMap(bytes.NewReader(payload))
		if err != nil {
			// a proxy in front of the service may answer with html
			logger.DebugMessage("restJSONError(): error response is not json: %s", err.Error())
			body = codec.NewMap()
		}
		if len(se.Code) == 0 {
			if se.Code = body.String("__type"); len(se.Code) == 0 {
				se.Code = body.String("code")
			}
		}
		if se.Message = body.String("message"); len(se.Message) == 0 {
			se.Message = body.String("Message")
		}
	}

	if len(se.Code) == 0 {
		se.Code = http.StatusText(response.StatusCode)
	} else {
		se.Code = restjson.SanitizeErrorCode(se.Code)
	}
	return awserr.Service("", registry.Unmarshal(se))
}
