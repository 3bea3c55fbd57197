package utils

import (
	"context"
	"log"
	"runtime/debug"

	"golang-news-impact/pkg/logger"
)

// GoSafe runs fn in a new goroutine and recovers from any panic it raises.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("recovered from panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

// ShouldContinue reports whether work bound to ctx may proceed.
func ShouldContinue(ctx context.Context, l *logger.Logger) bool {
	select {
	case <-ctx.Done():
		if l != nil {
			l.Warn("Context done, stopping", logger.ErrorField(ctx.Err()))
		}
		return false
	default:
		return true
	}
}
