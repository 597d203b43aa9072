package cmd

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/kr/pretty"
	"github.com/kr/text"
)

// printResult writes a result shape with kr/pretty. Unset members
// are left out and timestamps are shown as text.
func printResult(out io.Writer, result interface{}) {
	fmt.Fprintf(out, "%# v\n", pretty.Formatter(printable(reflect.ValueOf(result))))
}

var timeType = reflect.TypeOf(time.Time{})

// printable converts a shape to nested maps and lists of its
// set members.
func printable(v reflect.Value) interface{} {

	switch v.Kind() {
	case reflect.Invalid:
		return nil

	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return printable(v.Elem())

	case reflect.Struct:
		if v.Type() == timeType {
			return v.Interface().(time.Time).UTC().Format(time.RFC3339)
		}
		members := make(map[string]interface{})
		for i := 0; i < v.NumField(); i++ {
			if f := v.Type().Field(i); f.IsExported() {
				if pv := printable(v.Field(i)); pv != nil {
					members[f.Name] = pv
				}
			}
		}
		return members

	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		list := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			list = append(list, printable(v.Index(i)))
		}
		return list

	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		entries := make(map[string]interface{}, v.Len())
		for _, k := range v.MapKeys() {
			entries[fmt.Sprint(k.Interface())] = printable(v.MapIndex(k))
		}
		return entries
	}
	return v.Interface()
}

// joinNames returns "a", "a and b" or "a, b and c".
func joinNames(names []string) string {

	var s strings.Builder

	last := len(names) - 1
	for i, n := range names {
		switch {
		case i == 0:
		case i == last:
			s.WriteString(" and ")
		default:
			s.WriteString(", ")
		}
		s.WriteString(n)
	}
	return s.String()
}

// wrapText wraps message into lines of at most width-indent
// characters and indents the lines after the first, which continue
// the message following a prefix of indent characters.
func wrapText(message string, indent, width int) string {
	return strings.Replace(
		text.Wrap(strings.TrimSpace(message), width-indent),
		"\n", "\n"+strings.Repeat(" ", indent), -1,
	)
}
