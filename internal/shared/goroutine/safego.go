// Package goroutine wraps goroutine launches with panic containment.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"aircast/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic inside fn is logged with
// its stack trace instead of taking down the process; the goroutine
// simply ends. The name identifies the goroutine in logs.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer logPanic(log, name)
		fn()
	}()
}

func logPanic(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("recovered panic in goroutine",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
