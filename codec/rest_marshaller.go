package codec

import (
	"encoding/json"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/logger"
)

// MarshalREST builds a REST-JSON request from the request object
// in. Members tagged "uri" replace the "{Name}" (or greedy
// "{Name+}") labels of the path template and are required,
// "querystring" members are added to the query, "header" members
// become headers and all remaining non-nil members are written to
// the JSON body.
func MarshalREST(serviceName, operation, method, pathTemplate string, in interface{}) (*Request, error) {

	v, ok := shapeValue(in)
	if !ok {
		return nil, awserr.InvalidArgument(operation, "invalid argument passed to marshall(...)")
	}
	schema, err := SchemaOf(v.Type())
	if err != nil {
		return nil, awserr.InvalidArgument(operation, "%s", err.Error())
	}

	request := &Request{
		ServiceName: serviceName,
		Operation:   operation,
		Method:      method,
		Path:        pathTemplate,
		Query:       url.Values{},
		Headers:     Params{},
		Original:    in,
	}

	var (
		body    map[string]interface{}
		hasBody bool
	)
	for _, f := range schema.Fields {
		fv := v.Field(f.Index)

		switch f.Location {
		case LocationURI:
			if isNil(fv) {
				return nil, awserr.InvalidArgument(operation, "parameter %s is required", f.Name)
			}
			s := formatScalar(&f.Member, fv)
			request.Path = strings.Replace(request.Path, "{"+f.Name+"}", url.PathEscape(s), 1)
			request.Path = strings.Replace(request.Path, "{"+f.Name+"+}", escapeGreedyPath(s), 1)

		case LocationQueryString:
			marshalQueryString(request.Query, f, fv)

		case LocationHeader:
			if !isNil(fv) && f.Kind != KindList && f.Kind != KindMap && f.Kind != KindStruct {
				request.Headers[f.Name] = formatScalar(&f.Member, fv)
			}

		default:
			hasBody = true
			if jv, ok := jsonValue(&f.Member, fv); ok {
				if body == nil {
					body = make(map[string]interface{})
				}
				body[f.Name] = jv
			}
		}
	}

	if hasBody {
		if body == nil {
			request.Body = []byte("{}")
		} else if request.Body, err = json.Marshal(body); err != nil {
			return nil, awserr.InvalidArgument(operation, "%s", err.Error())
		}
		request.Headers["Content-Type"] = "application/json"
	}

	logger.TraceMessage("codec.MarshalREST(%s): %s %s body=%s", operation, method, request.Path, string(request.Body))
	return request, nil
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func escapeGreedyPath(s string) string {
	segments := strings.Split(s, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

func marshalQueryString(query url.Values, f *Field, fv reflect.Value) {

	if isNil(fv) {
		return
	}
	switch f.Kind {
	case KindList:
		for i := 0; i < fv.Len(); i++ {
			ev := fv.Index(i)
			if f.Elem.Pointer && ev.IsNil() {
				continue
			}
			query.Add(f.Name, formatScalar(f.Elem, ev))
		}
	case KindMap:
		for _, k := range fv.MapKeys() {
			ev := fv.MapIndex(k)
			if f.Elem.Pointer && ev.IsNil() {
				continue
			}
			query.Add(k.String(), formatScalar(f.Elem, ev))
		}
	case KindStruct:
		// structures cannot be sent in the query
	default:
		query.Set(f.Name, formatScalar(&f.Member, fv))
	}
}

// jsonValue returns the value to encode for a body member or
// false if the member is unset.
func jsonValue(m *Member, v reflect.Value) (interface{}, bool) {

	if isNil(v) {
		return nil, false
	}

	switch m.Kind {
	case KindStruct:
		obj := make(map[string]interface{})
		sv := v.Elem()
		for _, f := range m.Schema.Fields {
			if jv, ok := jsonValue(&f.Member, sv.Field(f.Index)); ok {
				obj[f.Name] = jv
			}
		}
		return obj, true

	case KindList:
		list := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if jv, ok := jsonValue(m.Elem, v.Index(i)); ok {
				list = append(list, jv)
			}
		}
		return list, true

	case KindMap:
		obj := make(map[string]interface{}, v.Len())
		for _, k := range v.MapKeys() {
			if jv, ok := jsonValue(m.Elem, v.MapIndex(k)); ok {
				obj[k.String()] = jv
			}
		}
		return obj, true
	}

	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	switch m.Kind {
	case KindString:
		return v.String(), true
	case KindInt32, KindInt64:
		return v.Int(), true
	case KindBool:
		return v.Bool(), true
	case KindFloat64:
		return v.Float(), true
	case KindTimestamp:
		return FormatTimestamp(v.Interface().(time.Time)), true
	}
	return nil, false
}
