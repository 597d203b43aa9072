// Package awserr classifies the failures surfaced by the codec and the
// service clients so that callers can tell an invalid request that never
// left the process from a request the service rejected.
package awserr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the category of a failure.
type Kind int

const (
	KindUnknown Kind = iota

	// a caller defect detected before any I/O, never retried
	KindInvalidArgument

	// the request never reached the service or the
	// connection failed while waiting for a response
	KindTransport

	// the service returned a well formed error response
	KindService

	// the response could not be parsed
	KindDeserialization
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindTransport:
		return "transport"
	case KindService:
		return "service"
	case KindDeserialization:
		return "deserialization"
	default:
		return "unknown"
	}
}

// Error is a classified failure of the operation Op.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if len(e.Op) > 0 {
		return fmt.Sprintf("%s: %s error: %s", e.Op, e.Kind, e.Err.Error())
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Cause supports github.com/pkg/errors.Cause
func (e *Error) Cause() error {
	return e.Err
}

func InvalidArgument(op, format string, args ...interface{}) error {
	return &Error{
		Kind: KindInvalidArgument,
		Op:   op,
		Err:  errors.Errorf(format, args...),
	}
}

func Transport(op string, err error) error {
	return &Error{
		Kind: KindTransport,
		Op:   op,
		Err:  errors.WithStack(err),
	}
}

func Deserialization(op string, err error) error {
	return &Error{
		Kind: KindDeserialization,
		Op:   op,
		Err:  err,
	}
}

func Service(op string, err error) error {
	return &Error{
		Kind: KindService,
		Op:   op,
		Err:  err,
	}
}

// KindOf returns the kind of the outermost classified
// error in err's chain or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsInvalidArgument(err error) bool {
	return KindOf(err) == KindInvalidArgument
}

func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}

func IsService(err error) bool {
	return KindOf(err) == KindService
}

func IsDeserialization(err error) bool {
	return KindOf(err) == KindDeserialization
}

// WithOp sets the operation of a classified error that
// does not have one yet. Unclassified errors are returned
// as is.
func WithOp(op string, err error) error {
	var e *Error
	if errors.As(err, &e) && len(e.Op) == 0 {
		e.Op = op
	}
	return err
}
