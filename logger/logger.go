package logger

import (
	"bufio"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/kr/pretty"
	log "github.com/sirupsen/logrus"
)

// environment variable read by Initialize
const LogLevelEnv = "AWSAPI_LOGLEVEL"

func Initialize() {
	SetLevel(os.Getenv(LogLevelEnv))
}

// SetLevel sets the console log level from one of
// "trace", "debug", "info" or "warn". Any other
// value results in only errors being logged.
func SetLevel(logLevel string) {

	switch strings.ToLower(logLevel) {
	case "trace":
		SetConsoleLogger(log.TraceLevel)
	case "debug":
		SetConsoleLogger(log.DebugLevel)
	case "info":
		SetConsoleLogger(log.InfoLevel)
	case "warn":
		SetConsoleLogger(log.WarnLevel)
	default:
		SetConsoleLogger(log.ErrorLevel)
	}
}

func SetConsoleLogger(level log.Level) {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(level)
}

func IsTraceEnabled() bool {
	return log.IsLevelEnabled(log.TraceLevel)
}

func TraceMessage(format string, v ...interface{}) {
	if log.IsLevelEnabled(log.TraceLevel) {
		logMultiLine(fmt.Sprintf(format, preFormatArgs(v)...), log.TraceLevel)
	}
}

func DebugMessage(format string, v ...interface{}) {
	if log.IsLevelEnabled(log.DebugLevel) {
		logMultiLine(fmt.Sprintf(format, preFormatArgs(v)...), log.DebugLevel)
	}
}

func InfoMessage(format string, v ...interface{}) {
	if log.IsLevelEnabled(log.InfoLevel) {
		logMultiLine(fmt.Sprintf(format, preFormatArgs(v)...), log.InfoLevel)
	}
}

func WarnMessage(format string, v ...interface{}) {
	if log.IsLevelEnabled(log.WarnLevel) {
		logMultiLine(fmt.Sprintf(format, preFormatArgs(v)...), log.WarnLevel)
	}
}

func ErrorMessage(format string, v ...interface{}) {
	if log.IsLevelEnabled(log.ErrorLevel) {
		logMultiLine(fmt.Sprintf(format, preFormatArgs(v)...), log.ErrorLevel)
	}
}

// wraps composite values so they are rendered with
// kr/pretty when used with the %v family of verbs
func preFormatArgs(v []interface{}) []interface{} {
	vv := []interface{}{}
	for _, o := range v {
		k := reflect.ValueOf(o).Kind()
		if k == reflect.Struct ||
			k == reflect.Interface ||
			k == reflect.Ptr ||
			k == reflect.Slice ||
			k == reflect.Array ||
			k == reflect.Map {
			vv = append(vv, pretty.Formatter(o))
		} else {
			vv = append(vv, o)
		}
	}
	return vv
}

func logMultiLine(message string, level log.Level) {

	// all lines of a multi-line message share a timestamp
	entry := log.WithTime(time.Now())
	s := bufio.NewScanner(strings.NewReader(message))
	for s.Scan() {
		entry.Log(level, s.Text())
	}
}
