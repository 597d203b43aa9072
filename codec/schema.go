// Package codec serializes request shapes into wire parameters and parses
// service responses back into result shapes.
//
// A shape is a struct whose exported fields are tagged with
//
//	aws:"WireName[,location]"
//
// where location is one of "uri", "querystring" or "header" for REST
// protocols and is omitted for body members. The order of the fields in
// the struct is the order in which they are written to the wire. Optional
// scalars are pointers so that an unset field can be told apart from a
// zero value.
package codec

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// Kind is the wire kind of a shape member.
type Kind int

const (
	KindString Kind = iota
	KindInt32
	KindInt64
	KindBool
	KindFloat64
	KindTimestamp
	KindStruct
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt32:
		return "integer"
	case KindInt64:
		return "long"
	case KindBool:
		return "boolean"
	case KindFloat64:
		return "double"
	case KindTimestamp:
		return "timestamp"
	case KindStruct:
		return "structure"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Location is where a member of a REST request is sent.
type Location int

const (
	LocationBody Location = iota
	LocationURI
	LocationQueryString
	LocationHeader
)

const tagName = "aws"

var timeType = reflect.TypeOf(time.Time{})

// Member describes the value type of a field or of the
// elements of a list or map field.
type Member struct {
	Kind Kind
	Type reflect.Type

	// true if the Go value is a pointer to the value
	Pointer bool

	// the shape schema of a KindStruct member
	Schema *Schema
	// the element member of a KindList or KindMap member
	Elem *Member
}

// Field is a tagged shape field.
type Field struct {
	Member

	Name     string
	Location Location
	Index    int
}

// Schema is the ordered field table of a shape.
type Schema struct {
	Type   reflect.Type
	Fields []*Field

	byName map[string]*Field
}

// FieldByName returns the field with the given wire name.
func (s *Schema) FieldByName(name string) (*Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

var registry = xsync.NewMapOf[reflect.Type, *Schema]()

// SchemaOf returns the schema of the shape t, which may be a
// struct type or a pointer to one. Schemas are built once per
// type and shared by all callers.
func SchemaOf(t reflect.Type) (*Schema, error) {

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if s, ok := registry.Load(t); ok {
		return s, nil
	}

	building := make(map[reflect.Type]*Schema)
	s, err := buildSchema(t, building)
	if err != nil {
		return nil, err
	}
	// only publish completed schemas
	for bt, bs := range building {
		registry.LoadOrStore(bt, bs)
	}
	s, _ = registry.Load(t)
	return s, nil
}

func buildSchema(t reflect.Type, building map[reflect.Type]*Schema) (*Schema, error) {

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("shape type %s is not a struct", t)
	}
	if s, ok := registry.Load(t); ok {
		return s, nil
	}
	if s, ok := building[t]; ok {
		// recursive reference to a shape under construction
		return s, nil
	}

	s := &Schema{
		Type:   t,
		byName: make(map[string]*Field),
	}
	building[t] = s

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup(tagName)
		if !ok || tag == "-" || len(sf.PkgPath) > 0 {
			continue
		}

		name, location, err := parseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %s", t.Name(), sf.Name, err.Error())
		}
		if len(name) == 0 {
			name = sf.Name
		}

		member, err := buildMember(sf.Type, building)
		if err == nil && !member.Pointer && member.Kind != KindList && member.Kind != KindMap {
			// an unset scalar held by value cannot be
			// told apart from its zero value
			err = fmt.Errorf("scalar field of type %s must be a pointer", sf.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %s", t.Name(), sf.Name, err.Error())
		}
		f := &Field{
			Member:   *member,
			Name:     name,
			Location: location,
			Index:    i,
		}
		s.Fields = append(s.Fields, f)
		s.byName[name] = f
	}
	return s, nil
}

func parseTag(tag string) (string, Location, error) {

	parts := strings.Split(tag, ",")
	name := parts[0]
	location := LocationBody

	for _, opt := range parts[1:] {
		switch opt {
		case "uri":
			location = LocationURI
		case "querystring":
			location = LocationQueryString
		case "header":
			location = LocationHeader
		case "":
		default:
			return "", location, fmt.Errorf("unknown tag option '%s'", opt)
		}
	}
	return name, location, nil
}

func buildMember(t reflect.Type, building map[reflect.Type]*Schema) (*Member, error) {

	var err error

	m := &Member{Type: t}
	if t.Kind() == reflect.Ptr {
		m.Pointer = true
		t = t.Elem()
	}

	switch {
	case t == timeType:
		m.Kind = KindTimestamp
	case t.Kind() == reflect.String:
		m.Kind = KindString
	case t.Kind() == reflect.Int32:
		m.Kind = KindInt32
	case t.Kind() == reflect.Int64:
		m.Kind = KindInt64
	case t.Kind() == reflect.Bool:
		m.Kind = KindBool
	case t.Kind() == reflect.Float64:
		m.Kind = KindFloat64

	case t.Kind() == reflect.Struct:
		m.Kind = KindStruct
		if !m.Pointer {
			return nil, fmt.Errorf("nested shape %s must be referenced by pointer", t)
		}
		if m.Schema, err = buildSchema(t, building); err != nil {
			return nil, err
		}

	case t.Kind() == reflect.Slice && !m.Pointer:
		m.Kind = KindList
		if m.Elem, err = buildMember(t.Elem(), building); err != nil {
			return nil, err
		}
		if m.Elem.Kind == KindList || m.Elem.Kind == KindMap {
			return nil, fmt.Errorf("nested collection %s is not supported", t)
		}

	case t.Kind() == reflect.Map && !m.Pointer:
		m.Kind = KindMap
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key of %s must be a string", t)
		}
		if m.Elem, err = buildMember(t.Elem(), building); err != nil {
			return nil, err
		}
		if m.Elem.Kind != KindString {
			return nil, fmt.Errorf("map value of %s must be a string", t)
		}

	default:
		return nil, fmt.Errorf("unsupported field type %s", m.Type)
	}

	return m, nil
}
