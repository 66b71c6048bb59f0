// Package log is the pluggable logging sink for whirl. The library
// logs rarely (registry overwrites, entropy fallback); embedders can
// redirect or silence it with SetLogger.
package log

import (
	"fmt"
	std_log "log"
	"runtime"
	"strconv"
)

type Level string

const (
	INFO    Level = "INFO"
	WARNING Level = "WARNING"
	ERROR   Level = "ERROR"
)

type Logger func(level Level, message string)

var _logger Logger = func(level Level, message string) {
	std_log.Println("whirl:", level, message)
}

func GetLogger() Logger {
	return _logger
}

// SetLogger replaces the sink; nil discards all messages.
func SetLogger(logger Logger) {
	_logger = logger
}

func Info(format string, args ...interface{}) {
	log(INFO, format, args...)
}

func Warning(format string, args ...interface{}) {
	log(WARNING, format, args...)
}

func Error(format string, args ...interface{}) {
	log(ERROR, format, args...)
}

func log(level Level, format string, args ...interface{}) {
	if _logger == nil {
		return
	}
	buffer := []byte(fmt.Sprintf(format, args...))
	if _, file, line, ok := runtime.Caller(2); ok {
		buffer = append(buffer, " @"...)
		buffer = append(buffer, file...)
		buffer = append(buffer, ':')
		buffer = append(buffer, strconv.Itoa(line)...)
	}
	_logger(level, string(buffer))
}
