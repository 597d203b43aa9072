package codec

import (
	"fmt"
	"strconv"
)

// Map collects a JSON object without a schema.
type Map map[string]interface{}

func NewMap() Map {
	return make(map[string]interface{})
}

func (m Map) Unmarshal(
	path []string,
	key string,
	elemType ElementType,
	value interface{},
) (
	Unmarshaller,
	Unmarshaller,
	error,
) {

	switch elemType {
	case EtObject:
		mm := NewMap()
		m[key] = mm
		return mm, m, nil

	case EtArray:
		aa := NewArray()
		m[key] = aa
		return aa, m, nil

	case EtValue:
		m[key] = value

	default:
		return nil, nil, fmt.Errorf("invalid type for Map container: %#v", elemType)
	}

	return m, m, nil
}

func (m Map) Finalize(
	path []string,
	key string,
	node Unmarshaller,
) error {

	switch node.(type) {
	case Array:
		// arrays grow by value so the completed
		// array replaces the one that was added
		if _, ok := m[key]; !ok {
			return fmt.Errorf("attempt to finalize a non-existent key '%s' in object", key)
		}
		m[key] = node
	}
	return nil
}

// String returns the string value of key or "" if the key does
// not exist or its value is not a string.
func (m Map) String(key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// Array collects a JSON array without a schema.
type Array []interface{}

func NewArray() Array {
	return []interface{}{}
}

func (a Array) Unmarshal(
	path []string,
	key string,
	elemType ElementType,
	value interface{},
) (
	Unmarshaller,
	Unmarshaller,
	error,
) {

	switch elemType {
	case EtObject:
		mm := NewMap()
		return mm, append(a, mm), nil

	case EtArray:
		aa := NewArray()
		return aa, append(a, aa), nil

	case EtValue, EtArrayValue:
		return a, append(a, value), nil

	default:
		return nil, nil, fmt.Errorf("invalid type for Array container: %#v", elemType)
	}
}

func (a Array) Finalize(
	path []string,
	key string,
	node Unmarshaller,
) error {

	var (
		err        error
		arrayIndex int
	)

	switch node.(type) {
	case Array:
		if arrayIndex, err = strconv.Atoi(key[1:]); err != nil {

			return fmt.Errorf("expected array element to be finalized but index '%s' was invalid: %s",
				key, err.Error())
		}
		a[arrayIndex] = node
	}
	return nil
}
