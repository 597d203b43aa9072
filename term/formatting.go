// Package term decorates command line output with terminal
// font attributes.
package term

import (
	"os"
)

const (

	// Terminal font colors
	WHITE      = "\033[1;37m"
	LIGHT_GRAY = "\033[0;37m"
	DARK_GRAY  = "\033[1;30m"

	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"

	// Terminal font attributes
	BOLD = "\033[1m"
	DIM  = "\033[2m"

	// Reset formatting
	NC = "\033[0m"
)

// Enabled reports whether font attributes are written. It is
// false when NO_COLOR is set or standard output is not a
// terminal.
var Enabled = enabled()

func enabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fi, err := os.Stdout.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// Format wraps s with the given attributes and a reset.
func Format(s string, attributes ...string) string {
	if !Enabled || len(attributes) == 0 {
		return s
	}
	out := ""
	for _, a := range attributes {
		out += a
	}
	return out + s + NC
}
