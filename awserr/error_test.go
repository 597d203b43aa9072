package awserr_test

import (
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/pkg/errors"

	"github.com/mevansam/awsapi/awserr"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type notFoundError struct {
	awserr.ServiceError
}

type conflictError struct {
	awserr.ServiceError
}

var _ = Describe("error classification", func() {

	It("reports the kind of a classified error through wrapping", func() {

		err := awserr.InvalidArgument("DescribeTags", "request object is nil")
		Expect(awserr.IsInvalidArgument(err)).To(BeTrue())
		Expect(err.Error()).To(Equal("DescribeTags: invalid argument error: request object is nil"))

		wrapped := fmt.Errorf("calling service: %w", err)
		Expect(awserr.KindOf(wrapped)).To(Equal(awserr.KindInvalidArgument))

		err = awserr.Transport("GetApi", errors.New("connection refused"))
		Expect(awserr.IsTransport(err)).To(BeTrue())
		Expect(awserr.IsService(err)).To(BeFalse())

		Expect(awserr.KindOf(errors.New("plain"))).To(Equal(awserr.KindUnknown))
	})

	It("sets the operation of a classified error only once", func() {

		err := awserr.WithOp("AddTags", awserr.Deserialization("", errors.New("unexpected EOF")))
		Expect(err.Error()).To(Equal("AddTags: deserialization error: unexpected EOF"))

		err = awserr.WithOp("RemoveTags", err)
		Expect(err.Error()).To(HavePrefix("AddTags:"))
	})

	Context("error registry", func() {

		registry := awserr.NewRegistry(
			awserr.ForCode("ResourceNotFoundException", func(se awserr.ServiceError) error {
				return &notFoundError{se}
			}),
			awserr.ForCode("ConflictException", func(se awserr.ServiceError) error {
				return &conflictError{se}
			}),
		)

		It("returns the typed error registered for a code", func() {

			err := registry.Unmarshal(awserr.ServiceError{
				Code:       "ResourceNotFoundException",
				Message:    "no such api",
				StatusCode: 404,
				Fault:      awserr.FaultFromStatus(404),
			})

			var nf *notFoundError
			Expect(errors.As(err, &nf)).To(BeTrue())
			Expect(nf.ErrorMessage()).To(Equal("no such api"))
			Expect(nf.ErrorFault()).To(Equal(smithy.FaultClient))

			var apiErr smithy.APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.ErrorCode()).To(Equal("ResourceNotFoundException"))
		})

		It("falls back to a generic error carrying the payload", func() {

			err := registry.Unmarshal(awserr.ServiceError{
				Code:       "Throttling",
				Message:    "slow down",
				StatusCode: 503,
				Fault:      awserr.FaultFromStatus(503),
				Payload:    []byte("<ErrorResponse/>"),
			})

			var ge *awserr.GenericServiceError
			Expect(errors.As(err, &ge)).To(BeTrue())
			Expect(string(ge.Payload)).To(Equal("<ErrorResponse/>"))
			Expect(ge.ErrorFault()).To(Equal(smithy.FaultServer))
			Expect(ge.Error()).To(Equal("Throttling: slow down (status code: 503)"))
		})

		It("returns a generic error from a nil registry", func() {
			var r *awserr.Registry
			err := r.Unmarshal(awserr.ServiceError{Code: "Any"})
			Expect(err).To(BeAssignableToTypeOf(&awserr.GenericServiceError{}))
		})
	})
})
