package apigatewayv2

import (
	"bytes"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/codec"
)

// NotFoundException is returned when the resource does not exist.
type NotFoundException struct {
	awserr.ServiceError
	ResourceType string
}

// ConflictException is returned when the resource already
// exists or is being modified.
type ConflictException struct {
	awserr.ServiceError
}

// TooManyRequestsException is returned when a request rate or
// quota limit was exceeded.
type TooManyRequestsException struct {
	awserr.ServiceError
	LimitType string
}

// BadRequestException is returned for a request with invalid
// parameters.
type BadRequestException struct {
	awserr.ServiceError
}

type AccessDeniedException struct {
	awserr.ServiceError
}

// errorMember returns a string member of the error response body.
func errorMember(se awserr.ServiceError, name string) string {
	if body, err := codec.UnmarshalJSONMap(bytes.NewReader(se.Payload)); err == nil {
		return body.String(name)
	}
	return ""
}

func newErrorRegistry() *awserr.Registry {
	return awserr.NewRegistry(
		awserr.ForCode("NotFoundException", func(se awserr.ServiceError) error {
			return &NotFoundException{ServiceError: se, ResourceType: errorMember(se, "resourceType")}
		}),
		awserr.ForCode("ConflictException", func(se awserr.ServiceError) error {
			return &ConflictException{ServiceError: se}
		}),
		awserr.ForCode("TooManyRequestsException", func(se awserr.ServiceError) error {
			return &TooManyRequestsException{ServiceError: se, LimitType: errorMember(se, "limitType")}
		}),
		awserr.ForCode("BadRequestException", func(se awserr.ServiceError) error {
			return &BadRequestException{ServiceError: se}
		}),
		awserr.ForCode("AccessDeniedException", func(se awserr.ServiceError) error {
			return &AccessDeniedException{ServiceError: se}
		}),
	)
}
