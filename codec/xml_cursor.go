package codec

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// EventType is the type of a structural event read by an
// XMLCursor.
type EventType int

const (
	EventEndDocument EventType = iota
	EventStartElement
	EventEndElement
)

// XMLCursor walks the elements of an XML document keeping track
// of the path and depth of the current element. A cursor must
// only be used by a single unmarshal call.
type XMLCursor struct {
	decoder *xml.Decoder

	// names of the open elements
	stack []string

	// one token lookahead
	peeked xml.Token

	started bool
}

func NewXMLCursor(r io.Reader) *XMLCursor {
	return &XMLCursor{
		decoder: xml.NewDecoder(r),
	}
}

// Depth is the number of open elements.
func (c *XMLCursor) Depth() int {
	return len(c.stack)
}

// IsStartOfDocument is true until the first event is read.
func (c *XMLCursor) IsStartOfDocument() bool {
	return !c.started
}

// Path returns the names of the open elements joined by '/'.
func (c *XMLCursor) Path() string {
	return strings.Join(c.stack, "/")
}

func (c *XMLCursor) token() (xml.Token, error) {
	if c.peeked != nil {
		t := c.peeked
		c.peeked = nil
		return t, nil
	}
	t, err := c.decoder.Token()
	if err != nil {
		return nil, err
	}
	// the decoder reuses its buffers between calls
	return xml.CopyToken(t), nil
}

func (c *XMLCursor) peek() (xml.Token, error) {
	if c.peeked == nil {
		t, err := c.token()
		if err != nil {
			return nil, err
		}
		c.peeked = t
	}
	return c.peeked, nil
}

// Next advances the cursor to the next start or end element.
// Character data, comments and processing instructions are
// skipped. EventEndDocument is returned once the input is
// exhausted with all elements closed.
func (c *XMLCursor) Next() (EventType, error) {

	c.started = true
	for {
		t, err := c.token()
		if err == io.EOF {
			if len(c.stack) > 0 {
				return EventEndDocument, fmt.Errorf(
					"unexpected end of document inside element '%s'", c.Path())
			}
			return EventEndDocument, nil
		}
		if err != nil {
			return EventEndDocument, err
		}

		switch e := t.(type) {
		case xml.StartElement:
			c.stack = append(c.stack, e.Name.Local)
			return EventStartElement, nil
		case xml.EndElement:
			c.stack = c.stack[:len(c.stack)-1]
			return EventEndElement, nil
		}
	}
}

// TestExpression tests if the current element path ends with
// the '/' separated element names in expression and the first
// of those names is at the given depth.
func (c *XMLCursor) TestExpression(expression string, depth int) bool {

	if expression == "." {
		return true
	}
	names := strings.Split(expression, "/")
	depth += len(names) - 1
	if depth != len(c.stack) {
		return false
	}
	for i, name := range names {
		if c.stack[depth-len(names)+i] != name {
			return false
		}
	}
	return true
}

// ReadText returns the character data of the current element.
// The cursor is left positioned before the element's end tag so
// that the caller's walk sees the element close.
func (c *XMLCursor) ReadText() (string, error) {

	var text strings.Builder
	for {
		t, err := c.peek()
		if err == io.EOF {
			return "", fmt.Errorf("unexpected end of document inside element '%s'", c.Path())
		}
		if err != nil {
			return "", err
		}

		switch e := t.(type) {
		case xml.CharData:
			text.Write(e)
		case xml.EndElement:
			return text.String(), nil
		case xml.StartElement:
			return "", fmt.Errorf("unexpected element '%s' in text of element '%s'", e.Name.Local, c.Path())
		}
		// consume the peeked token
		c.peeked = nil
	}
}
