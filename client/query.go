package client

import (
	"bytes"
	"context"
	"io/ioutil"
	"net/http"
	"time"

	awsxml "github.com/aws/aws-sdk-go-v2/aws/protocol/xml"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/codec"
	"github.com/mevansam/awsapi/logger"
	"github.com/mevansam/awsapi/rest"
)

const formContentType = "application/x-www-form-urlencoded; charset=utf-8"

// InvokeQuery sends the query protocol operation action with
// the request object in and unmarshals the XML result into out.
// Error responses are returned as the typed error registered
// for their code.
func (c *Client) InvokeQuery(
	ctx context.Context,
	action string,
	in, out interface{},
	registry *awserr.Registry,
) error {

	start := time.Now()
	logger.DebugMessage("Client.InvokeQuery(%s): invoking %s", c.info.Name, action)

	request, err := codec.MarshalQuery(c.info.Name, action, c.info.Version, in)
	if err != nil {
		return err
	}

	err = c.transport(ctx).NewRequest(
		&rest.Request{
			Method:      http.MethodPost,
			Path:        request.Path,
			Body:        []byte(request.Params.Encode()),
			ContentType: formContentType,
		},
	).Invoke(
		func(response *rest.Response) error {
			return codec.UnmarshalXMLDocument(response.Body, out)
		},
		func(response *rest.Response) error {
			return queryError(response, registry)
		},
	)

	if err != nil {
		logger.DebugMessage("Client.InvokeQuery(%s): %s failed after %s: %s", c.info.Name, action, elapsed(start), err.Error())
		return awserr.WithOp(action, err)
	}
	logger.DebugMessage("Client.InvokeQuery(%s): %s completed in %s", c.info.Name, action, elapsed(start))
	return nil
}

// queryError reads a query protocol error response
//
//	<ErrorResponse>
//	  <Error><Type>Sender</Type><Code>...</Code><Message>...</Message></Error>
//	  <RequestId>...</RequestId>
//	</ErrorResponse>
func queryError(response *rest.Response, registry *awserr.Registry) error {

	payload, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return awserr.Transport("", err)
	}

	se := awserr.ServiceError{
		StatusCode: response.StatusCode,
		Fault:      awserr.FaultFromStatus(response.StatusCode),
		RequestID:  response.Headers["X-Amzn-Requestid"],
		Payload:    payload,
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		se.Code = http.StatusText(response.StatusCode)
		se.Message = "error response without a body"
		return awserr.Service("", registry.Unmarshal(se))
	}

	components, err := awsxml.GetErrorResponseComponents(bytes.NewReader(payload), false)
	if err != nil {
		return awserr.Deserialization("", err)
	}
	se.Code = components.Code
	se.Message = components.Message
	if len(components.RequestID) > 0 {
		se.RequestID = components.RequestID
	}
	return awserr.Service("", registry.Unmarshal(se))
}
