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
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

const (
	errorPrefix   = "*****"
	warningPrefix = "!!!"
	infoPrefix    = "==="
	verbosePrefix = "---"
	tracePrefix   = "..."

	// getFuncName -> print -> printIfLevel -> Error/Info/...
	defaultSkipFrames = 4
	timeFormat        = "01/02 15:04:05.000"
)

var levelNames = map[TLogLevel]string{
	LogLevelNone:    "none",
	LogLevelError:   "error",
	LogLevelWarning: "warning",
	LogLevelInfo:    "info",
	LogLevelVerbose: "verbose",
	LogLevelTrace:   "trace",
}

type logPrinter struct {
	logLevel TLogLevel
}

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

func isEnabled(logLevel TLogLevel) bool {
	return TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel))) >= logLevel
}

func getLevelPrefix(level TLogLevel) string {
	switch level {
	case LogLevelError:
		return errorPrefix
	case LogLevelWarning:
		return warningPrefix
	case LogLevelInfo:
		return infoPrefix
	case LogLevelVerbose:
		return verbosePrefix
	case LogLevelTrace:
		return tracePrefix
	}
	return ""
}

// Returns short function name (package.func) and line of the caller
func getFuncName(skipFrames int) (funcName string, line int) {
	pc, _, line, ok := runtime.Caller(skipFrames)
	if !ok {
		return "", 0
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "", line
	}
	funcName = fn.Name()
	if i := strings.LastIndex(funcName, "/"); i >= 0 {
		funcName = funcName[i+1:]
	}
	return funcName, line
}

func (p *logPrinter) getFuncName(skipFrames int) (funcName string, line int) {
	return getFuncName(skipFrames + 1)
}

func (p *logPrinter) getFormattedMsg(msgType string, funcName string, line int, args ...interface{}) string {
	var b strings.Builder
	b.WriteString(time.Now().Format(timeFormat))
	b.WriteString(": ")
	b.WriteString(msgType)
	fmt.Fprintf(&b, ": [%s:%d]:", funcName, line)
	for _, arg := range args {
		b.WriteByte(' ')
		fmt.Fprint(&b, arg)
	}
	return b.String()
}

func (p *logPrinter) print(skipFrames int, level TLogLevel, args ...interface{}) {
	funcName, line := getFuncName(skipFrames + defaultSkipFrames)
	PrintLine(level, p.getFormattedMsg(getLevelPrefix(level), funcName, line, args...))
}

func printIfLevel(skipFrames int, level TLogLevel, args ...interface{}) {
	if isEnabled(level) {
		globalLogPrinter.print(skipFrames, level, args...)
	}
}
