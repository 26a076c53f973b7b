/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Attribute names stored in context by WithContextAttrs
const (
	LogAttr_File   = "file"
	LogAttr_Schema = "schema"
	LogAttr_Store  = "store"
	LogAttr_Cmd    = "cmd"
)

// logCtx -> InfoCtx/... -> caller
const logCtxSkipFrames = 3

type ctxKey struct{}

type ctxAttrs []slog.Attr

var (
	ctxHandlerOpts = &slog.HandlerOptions{
		Level: slog.LevelDebug - 4,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				switch a.Value.Any().(slog.Level) {
				case slog.LevelDebug:
					a.Value = slog.StringValue("VERBOSE")
				case slog.LevelDebug - 4:
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	slogOut = slog.New(slog.NewTextHandler(os.Stdout, ctxHandlerOpts))
	slogErr = slog.New(slog.NewTextHandler(os.Stderr, ctxHandlerOpts))
)

// SetCtxWriters replaces the writers of all *Ctx functions. Tests only.
func SetCtxWriters(out, err io.Writer) {
	slogOut = slog.New(slog.NewTextHandler(out, ctxHandlerOpts))
	slogErr = slog.New(slog.NewTextHandler(err, ctxHandlerOpts))
}

// WithContextAttrs returns a context which carries the attribute in addition
// to the ones already stored. Later value of the same name wins.
func WithContextAttrs(ctx context.Context, name string, value any) context.Context {
	prev, _ := ctx.Value(ctxKey{}).(ctxAttrs)
	attrs := make(ctxAttrs, 0, len(prev)+1)
	for _, a := range prev {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	attrs = append(attrs, slog.Any(name, value))
	return context.WithValue(ctx, ctxKey{}, attrs)
}

func ErrorCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelError, slog.LevelError, args...)
}

func WarningCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelWarning, slog.LevelWarn, args...)
}

func InfoCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelInfo, slog.LevelInfo, args...)
}

func VerboseCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelVerbose, slog.LevelDebug, args...)
}

func TraceCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelTrace, slog.LevelDebug-4, args...)
}

func logCtx(ctx context.Context, level TLogLevel, slogLevel slog.Level, args ...interface{}) {
	if !isEnabled(level) {
		return
	}
	log := slogOut
	if level == LogLevelError {
		log = slogErr
	}
	stored, _ := ctx.Value(ctxKey{}).(ctxAttrs)
	attrs := make([]any, 0, len(stored)+1)
	fn, line := getFuncName(logCtxSkipFrames)
	attrs = append(attrs, slog.String("src", fmt.Sprintf("%s:%d", fn, line)))
	for _, a := range stored {
		attrs = append(attrs, a)
	}
	log.Log(ctx, slogLevel, fmt.Sprint(args...), attrs...)
}
