package mocks

import "os"

var debug bool

// Init enables dumping of mismatched requests to stdout
// when the trace log level is configured.
func Init() {
	if os.Getenv("AWSAPI_LOGLEVEL") == "trace" {
		debug = true
	} else {
		debug = false
	}
}
