package codec

import (
	"net/url"
	"sort"
	"strings"
)

// Params is a flat mapping of wire keys to values.
type Params map[string]string

// Keys returns the parameter keys in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for k, v := range p {
		values.Set(k, v)
	}
	return values
}

// Encode returns the parameters form encoded with keys in
// sorted order.
func (p Params) Encode() string {
	var out strings.Builder
	for i, k := range p.Keys() {
		if i > 0 {
			out.WriteByte('&')
		}
		out.WriteString(url.QueryEscape(k))
		out.WriteByte('=')
		out.WriteString(url.QueryEscape(p[k]))
	}
	return out.String()
}

// Request is a marshalled operation request ready to be
// handed to a transport.
type Request struct {
	ServiceName string
	Operation   string

	// REST protocols
	Method  string
	Path    string
	Query   url.Values
	Headers Params
	Body    []byte

	// query protocol form parameters
	Params Params

	// the request object the request was marshalled from
	Original interface{}
}
