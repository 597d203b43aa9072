package awserr

import (
	"fmt"

	"github.com/aws/smithy-go"
)

// ServiceError holds the fields common to every error
// response returned by a service. Typed service errors
// embed it.
type ServiceError struct {
	Code       string
	Message    string
	RequestID  string
	StatusCode int
	Fault      smithy.ErrorFault

	// the undecoded error response body
	Payload []byte
}

func (e *ServiceError) Error() string {
	if len(e.RequestID) > 0 {
		return fmt.Sprintf("%s: %s (status code: %d, request id: %s)",
			e.Code, e.Message, e.StatusCode, e.RequestID)
	}
	return fmt.Sprintf("%s: %s (status code: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *ServiceError) ErrorCode() string {
	return e.Code
}

func (e *ServiceError) ErrorMessage() string {
	return e.Message
}

func (e *ServiceError) ErrorFault() smithy.ErrorFault {
	return e.Fault
}

// GenericServiceError is returned for error responses whose
// code is not registered for the service.
type GenericServiceError struct {
	ServiceError
}

// FaultFromStatus returns the party at fault for an error
// response with the given http status code.
func FaultFromStatus(statusCode int) smithy.ErrorFault {
	switch {
	case statusCode >= 500:
		return smithy.FaultServer
	case statusCode >= 400:
		return smithy.FaultClient
	default:
		return smithy.FaultUnknown
	}
}

var _ smithy.APIError = (*ServiceError)(nil)
