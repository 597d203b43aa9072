package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/mevansam/awsapi/awserr"
)

// UnmarshalJSON parses a JSON response body into the shape
// referenced by out. Members that are not part of the shape are
// skipped at every level and null values leave the member unset.
func UnmarshalJSON(r io.Reader, out interface{}) error {

	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return awserr.InvalidArgument("", "unmarshal target must be a non-nil pointer to a shape")
	}
	schema, err := SchemaOf(v.Type())
	if err != nil {
		return awserr.InvalidArgument("", "%s", err.Error())
	}

	parser := NewJSONStreamParser(&shapeUnmarshaller{schema: schema, v: v.Elem()})
	if _, err = parser.Parse(r); err != nil {
		return awserr.Deserialization("", err)
	}
	return nil
}

// UnmarshalJSONMap parses a JSON object without a schema.
func UnmarshalJSONMap(r io.Reader) (Map, error) {

	m := NewMap()
	parser := NewJSONStreamParser(m)
	if _, err := parser.Parse(r); err != nil {
		return nil, awserr.Deserialization("", err)
	}
	return m, nil
}

// populates the fields of a shape
type shapeUnmarshaller struct {
	schema *Schema
	v      reflect.Value
}

func (s *shapeUnmarshaller) Unmarshal(
	path []string,
	key string,
	elemType ElementType,
	value interface{},
) (Unmarshaller, Unmarshaller, error) {

	f, ok := s.schema.FieldByName(key)
	if !ok {
		// members added to the service after
		// the shape was written are skipped
		if elemType == EtObject || elemType == EtArray {
			return discard{}, s, nil
		}
		return s, s, nil
	}
	fv := s.v.Field(f.Index)

	switch elemType {
	case EtObject:
		switch f.Kind {
		case KindStruct:
			nv := reflect.New(f.Schema.Type)
			fv.Set(nv)
			return &shapeUnmarshaller{schema: f.Schema, v: nv.Elem()}, s, nil

		case KindMap:
			if fv.IsNil() {
				fv.Set(reflect.MakeMap(f.Type))
			}
			return &mapUnmarshaller{elem: f.Elem, v: fv}, s, nil
		}

	case EtArray:
		if f.Kind == KindList {
			fv.Set(reflect.MakeSlice(f.Type, 0, 0))
			return &listUnmarshaller{elem: f.Elem, v: fv}, s, nil
		}

	case EtValue:
		if value == nil {
			return s, s, nil
		}
		if f.Kind != KindStruct && f.Kind != KindList && f.Kind != KindMap {
			ev, err := jsonScalar(&f.Member, value)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %s", jsonPath(path, key), err.Error())
			}
			if ev.IsValid() {
				fv.Set(ev)
			}
			return s, s, nil
		}
	}
	return nil, nil, fmt.Errorf("%s: unexpected json element for member of kind %s", jsonPath(path, key), f.Kind)
}

func (s *shapeUnmarshaller) Finalize(path []string, key string, node Unmarshaller) error {
	return nil
}

// appends the elements of a list member
type listUnmarshaller struct {
	elem *Member
	v    reflect.Value
}

func (l *listUnmarshaller) Unmarshal(
	path []string,
	key string,
	elemType ElementType,
	value interface{},
) (Unmarshaller, Unmarshaller, error) {

	switch elemType {
	case EtObject:
		if l.elem.Kind == KindStruct {
			nv := reflect.New(l.elem.Schema.Type)
			l.v.Set(reflect.Append(l.v, nv))
			return &shapeUnmarshaller{schema: l.elem.Schema, v: nv.Elem()}, l, nil
		}

	case EtArrayValue:
		ev := reflect.Zero(l.elem.Type)
		if value != nil {
			if l.elem.Kind == KindStruct {
				break
			}
			sv, err := jsonScalar(l.elem, value)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %s", jsonPath(path, key), err.Error())
			}
			if sv.IsValid() {
				ev = sv
			}
		}
		l.v.Set(reflect.Append(l.v, ev))
		return l, l, nil
	}
	return nil, nil, fmt.Errorf("%s: unexpected json element in list of %s", jsonPath(path, key), l.elem.Kind)
}

func (l *listUnmarshaller) Finalize(path []string, key string, node Unmarshaller) error {
	return nil
}

// fills a string map member
type mapUnmarshaller struct {
	elem *Member
	v    reflect.Value
}

func (m *mapUnmarshaller) Unmarshal(
	path []string,
	key string,
	elemType ElementType,
	value interface{},
) (Unmarshaller, Unmarshaller, error) {

	if elemType != EtValue {
		return nil, nil, fmt.Errorf("%s: map values must be strings", jsonPath(path, key))
	}
	if value == nil {
		return m, m, nil
	}
	ev, err := jsonScalar(m.elem, value)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %s", jsonPath(path, key), err.Error())
	}
	m.v.SetMapIndex(reflect.ValueOf(key).Convert(m.v.Type().Key()), ev)
	return m, m, nil
}

func (m *mapUnmarshaller) Finalize(path []string, key string, node Unmarshaller) error {
	return nil
}

// skips an unknown object or array
type discard struct{}

func (d discard) Unmarshal(
	path []string,
	key string,
	elemType ElementType,
	value interface{},
) (Unmarshaller, Unmarshaller, error) {
	return d, d, nil
}

func (d discard) Finalize(path []string, key string, node Unmarshaller) error {
	return nil
}

// jsonScalar converts a json token value to a value of the
// member's type
func jsonScalar(m *Member, value interface{}) (reflect.Value, error) {

	switch v := value.(type) {
	case string:
		if m.Kind == KindString || m.Kind == KindTimestamp {
			return parseScalar(m, v)
		}
	case json.Number:
		switch m.Kind {
		case KindInt32, KindInt64, KindFloat64:
			return parseScalar(m, v.String())
		case KindTimestamp:
			secs, err := v.Float64()
			if err != nil {
				return reflect.Value{}, err
			}
			return parseScalar(m, fmt.Sprintf("%f", secs))
		}
	case bool:
		if m.Kind == KindBool {
			return toMemberValue(m, reflect.ValueOf(v)), nil
		}
	}
	return reflect.Value{}, fmt.Errorf("json value %#v cannot be assigned to a member of kind %s", value, m.Kind)
}

func jsonPath(path []string, key string) string {
	if len(path) == 0 {
		return key
	}
	return strings.Join(path, ".") + "." + key
}
