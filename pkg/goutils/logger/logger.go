/*
 * Copyright (c) 2020-present unTill Pro, Ltd. and Contributors
 * @author Maxim Geraskin
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// TLogLevel is the logging verbosity
type TLogLevel int32

// Log Levels enum
const (
	LogLevelNone = TLogLevel(iota)
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelVerbose // aka Debug
	LogLevelTrace
)

// Sets the current level and returns the previous one
func SetLogLevel(logLevel TLogLevel) (old TLogLevel) {
	return TLogLevel(atomic.SwapInt32((*int32)(&globalLogPrinter.logLevel), int32(logLevel)))
}

// Sets the level and returns the func which restores the previous one.
// Useful in tests:
//
//	defer logger.SetLogLevelWithRestore(logger.LogLevelVerbose)()
func SetLogLevelWithRestore(logLevel TLogLevel) (restore func()) {
	old := SetLogLevel(logLevel)
	return func() {
		SetLogLevel(old)
	}
}

func Error(args ...interface{}) {
	printIfLevel(0, LogLevelError, args...)
}

func Warning(args ...interface{}) {
	printIfLevel(0, LogLevelWarning, args...)
}

func Info(args ...interface{}) {
	printIfLevel(0, LogLevelInfo, args...)
}

func Verbose(args ...interface{}) {
	printIfLevel(0, LogLevelVerbose, args...)
}

func Trace(args ...interface{}) {
	printIfLevel(0, LogLevelTrace, args...)
}

// Log prints args at the level. skipStackFrames is added to the frames skipped
// when the caller name is resolved
func Log(skipStackFrames int, level TLogLevel, args ...interface{}) {
	printIfLevel(skipStackFrames, level, args...)
}

func IsError() bool {
	return isEnabled(LogLevelError)
}

func IsWarning() bool {
	return isEnabled(LogLevelWarning)
}

func IsInfo() bool {
	return isEnabled(LogLevelInfo)
}

func IsVerbose() bool {
	return isEnabled(LogLevelVerbose)
}

func IsTrace() bool {
	return isEnabled(LogLevelTrace)
}

// ParseLevel converts level name (error, warning, info, verbose, trace, none)
// to TLogLevel
func ParseLevel(name string) (TLogLevel, error) {
	for l := LogLevelNone; l <= LogLevelTrace; l++ {
		if levelNames[l] == name {
			return l, nil
		}
	}
	return LogLevelNone, fmt.Errorf("unknown log level «%s»", name)
}

func (l TLogLevel) String() string {
	if l >= LogLevelNone && l <= LogLevelTrace {
		return levelNames[l]
	}
	return fmt.Sprintf("TLogLevel(%d)", int32(l))
}

// PrintLine is the sink of all formatted lines, can be replaced in tests
var PrintLine func(level TLogLevel, line string) = DefaultPrintLine

func DefaultPrintLine(level TLogLevel, line string) {
	var w io.Writer = os.Stdout
	if level == LogLevelError {
		w = os.Stderr
	}
	fmt.Fprintln(w, line)
}
