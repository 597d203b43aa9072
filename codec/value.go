package codec

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	smithytime "github.com/aws/smithy-go/time"
)

// TimestampFormat is the layout of timestamps written to the
// wire. Timestamps are always written in UTC with millisecond
// precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// ParseTimestamp parses the ISO-8601 date-time forms returned by
// services. Epoch seconds are accepted for compatibility with
// services that return them for some members.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := smithytime.ParseDateTime(s); err == nil {
		return t, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return smithytime.ParseEpochSeconds(secs), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp '%s'", s)
}

// formatScalar returns the wire text of the scalar value v,
// which must not be a nil pointer.
func formatScalar(m *Member, v reflect.Value) string {

	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	switch m.Kind {
	case KindString:
		return v.String()
	case KindInt32, KindInt64:
		return strconv.FormatInt(v.Int(), 10)
	case KindBool:
		return strconv.FormatBool(v.Bool())
	case KindFloat64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case KindTimestamp:
		return FormatTimestamp(v.Interface().(time.Time))
	default:
		panic(fmt.Sprintf("member of kind %s is not a scalar", m.Kind))
	}
}

// parseScalar converts wire text to a value assignable to a
// member of type m.Type. A nil value with no error is returned
// for empty text of a non string member.
func parseScalar(m *Member, text string) (reflect.Value, error) {

	var (
		err error
		v   interface{}
	)

	if m.Kind != KindString {
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			return reflect.Value{}, nil
		}
	}

	switch m.Kind {
	case KindString:
		v = text
	case KindInt32:
		var i int64
		if i, err = strconv.ParseInt(text, 10, 32); err == nil {
			v = int32(i)
		}
	case KindInt64:
		v, err = strconv.ParseInt(text, 10, 64)
	case KindBool:
		v, err = strconv.ParseBool(text)
	case KindFloat64:
		v, err = strconv.ParseFloat(text, 64)
	case KindTimestamp:
		v, err = ParseTimestamp(text)
	default:
		return reflect.Value{}, fmt.Errorf("member of kind %s is not a scalar", m.Kind)
	}
	if err != nil {
		return reflect.Value{}, fmt.Errorf("invalid %s value '%s': %s", m.Kind, text, err.Error())
	}
	return toMemberValue(m, reflect.ValueOf(v)), nil
}

// toMemberValue converts a scalar to the member's Go type,
// allocating a pointer when the member is one.
func toMemberValue(m *Member, v reflect.Value) reflect.Value {

	t := m.Type
	if m.Pointer {
		t = t.Elem()
	}
	v = v.Convert(t)
	if m.Pointer {
		p := reflect.New(t)
		p.Elem().Set(v)
		return p
	}
	return v
}
