package codec

import (
	"fmt"
	"io"
	"reflect"

	"github.com/mevansam/awsapi/awserr"
)

// UnmarshalXMLDocument parses a complete query protocol response
// document into the result shape referenced by out. The response
// and result wrapper elements of the document are skipped.
func UnmarshalXMLDocument(r io.Reader, out interface{}) error {
	return UnmarshalXML(NewXMLCursor(r), out)
}

// UnmarshalXML populates the shape referenced by out from the
// element the cursor is positioned in. On return the cursor is
// positioned just past the element's end tag, so sibling
// elements can be read with further calls. If the cursor is at
// the start of a document the outer two wrapper elements are
// skipped.
//
// Elements that are not members of the shape are ignored.
func UnmarshalXML(c *XMLCursor, out interface{}) error {

	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return awserr.InvalidArgument("", "unmarshal target must be a non-nil pointer to a shape")
	}
	schema, err := SchemaOf(v.Type())
	if err != nil {
		return awserr.InvalidArgument("", "%s", err.Error())
	}
	if err = unmarshalXMLShape(c, schema, v.Elem()); err != nil {
		return awserr.Deserialization("", err)
	}
	return nil
}

func unmarshalXMLShape(c *XMLCursor, schema *Schema, v reflect.Value) error {

	var (
		err     error
		event   EventType
		matched bool
	)

	originalDepth := c.Depth()
	targetDepth := originalDepth + 1
	if c.IsStartOfDocument() {
		targetDepth += 2
	}

	for {
		if event, err = c.Next(); err != nil {
			return err
		}

		switch event {
		case EventEndDocument:
			return nil

		case EventStartElement:
			for _, f := range schema.Fields {
				if matched, err = unmarshalXMLField(c, f, v.Field(f.Index), targetDepth); err != nil {
					return err
				}
				if matched {
					break
				}
			}

		case EventEndElement:
			if c.Depth() < originalDepth {
				return nil
			}
		}
	}
}

// unmarshalXMLField reads the field f from the current element
// if the element is the field's element or one of its list or
// map entries.
func unmarshalXMLField(c *XMLCursor, f *Field, fv reflect.Value, depth int) (bool, error) {

	switch f.Kind {
	case KindList:
		if c.TestExpression(f.Name, depth) {
			if fv.IsNil() {
				fv.Set(reflect.MakeSlice(f.Type, 0, 0))
			}
			return true, nil
		}
		if c.TestExpression(f.Name+"/member", depth) {
			ev, err := unmarshalXMLValue(c, f.Elem)
			if err != nil {
				return true, err
			}
			if !ev.IsValid() {
				ev = reflect.Zero(f.Elem.Type)
			}
			fv.Set(reflect.Append(fv, ev))
			return true, nil
		}

	case KindMap:
		if c.TestExpression(f.Name, depth) {
			if fv.IsNil() {
				fv.Set(reflect.MakeMap(f.Type))
			}
			return true, nil
		}
		if c.TestExpression(f.Name+"/entry", depth) {
			key, value, err := unmarshalXMLMapEntry(c)
			if err != nil {
				return true, err
			}
			if fv.IsNil() {
				fv.Set(reflect.MakeMap(f.Type))
			}
			ev, err := parseScalar(f.Elem, value)
			if err != nil {
				return true, err
			}
			fv.SetMapIndex(reflect.ValueOf(key).Convert(f.Type.Key()), ev)
			return true, nil
		}

	default:
		if c.TestExpression(f.Name, depth) {
			ev, err := unmarshalXMLValue(c, &f.Member)
			if err != nil {
				return true, err
			}
			if ev.IsValid() {
				fv.Set(ev)
			}
			return true, nil
		}
	}
	return false, nil
}

// unmarshalXMLValue reads a nested shape or scalar from the
// current element.
func unmarshalXMLValue(c *XMLCursor, m *Member) (reflect.Value, error) {

	if m.Kind == KindStruct {
		nv := reflect.New(m.Schema.Type)
		if err := unmarshalXMLShape(c, m.Schema, nv.Elem()); err != nil {
			return reflect.Value{}, err
		}
		return nv, nil
	}

	text, err := c.ReadText()
	if err != nil {
		return reflect.Value{}, err
	}
	return parseScalar(m, text)
}

// unmarshalXMLMapEntry reads the key and value children of a
// map entry element.
func unmarshalXMLMapEntry(c *XMLCursor) (string, string, error) {

	var (
		err   error
		event EventType

		key, value string
	)

	originalDepth := c.Depth()
	targetDepth := originalDepth + 1

	for {
		if event, err = c.Next(); err != nil {
			return "", "", err
		}

		switch event {
		case EventEndDocument:
			return "", "", fmt.Errorf("unexpected end of document in map entry")

		case EventStartElement:
			if c.TestExpression("key", targetDepth) {
				if key, err = c.ReadText(); err != nil {
					return "", "", err
				}
			} else if c.TestExpression("value", targetDepth) {
				if value, err = c.ReadText(); err != nil {
					return "", "", err
				}
			}

		case EventEndElement:
			if c.Depth() < originalDepth {
				return key, value, nil
			}
		}
	}
}
