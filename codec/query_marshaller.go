package codec

import (
	"reflect"
	"sort"
	"strconv"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/logger"
)

// shapeValue returns the struct value referenced by the request
// object in or false if in is nil or a nil pointer.
func shapeValue(in interface{}) (reflect.Value, bool) {
	if in == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(in)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, true
}

// MarshalQuery flattens the request object in into the form
// parameters of a query protocol request. The Action and
// Version parameters are always set.
//
// Nested shapes are written with the prefix "<Field>.", list
// elements with the prefix "<Field>.member.<i>." where i is the
// 1 based position of the element. Nil fields are not written.
// Nil list elements are not written either but still take up
// their position.
func MarshalQuery(serviceName, action, version string, in interface{}) (*Request, error) {

	v, ok := shapeValue(in)
	if !ok {
		return nil, awserr.InvalidArgument(action, "invalid argument passed to marshall(...)")
	}
	schema, err := SchemaOf(v.Type())
	if err != nil {
		return nil, awserr.InvalidArgument(action, "%s", err.Error())
	}

	params := Params{
		"Action":  action,
		"Version": version,
	}
	marshalQueryShape(params, "", schema, v)

	logger.TraceMessage("codec.MarshalQuery(%s): marshalled parameters: %# v", action, params)

	return &Request{
		ServiceName: serviceName,
		Operation:   action,
		Method:      "POST",
		Path:        "/",
		Params:      params,
		Original:    in,
	}, nil
}

func marshalQueryShape(params Params, prefix string, schema *Schema, v reflect.Value) {
	for _, f := range schema.Fields {
		marshalQueryMember(params, prefix+f.Name, &f.Member, v.Field(f.Index))
	}
}

func marshalQueryMember(params Params, key string, m *Member, fv reflect.Value) {

	switch m.Kind {
	case KindList:
		if fv.IsNil() {
			return
		}
		for i := 0; i < fv.Len(); i++ {
			ev := fv.Index(i)
			if m.Elem.Pointer && ev.IsNil() {
				continue
			}
			marshalQueryMember(params, key+".member."+strconv.Itoa(i+1), m.Elem, ev)
		}

	case KindMap:
		if fv.IsNil() {
			return
		}
		keys := make([]string, 0, fv.Len())
		for _, k := range fv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for i, k := range keys {
			ev := fv.MapIndex(reflect.ValueOf(k).Convert(fv.Type().Key()))
			if m.Elem.Pointer && ev.IsNil() {
				continue
			}
			entry := key + ".entry." + strconv.Itoa(i+1)
			params[entry+".key"] = k
			params[entry+".value"] = formatScalar(m.Elem, ev)
		}

	case KindStruct:
		if fv.IsNil() {
			return
		}
		marshalQueryShape(params, key+".", m.Schema, fv.Elem())

	default:
		if m.Pointer && fv.IsNil() {
			return
		}
		params[key] = formatScalar(m, fv)
	}
}
