// Package goroutine launches goroutines that log panics instead of crashing the process.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"bulletin/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine. A panic is logged with its stack trace
// and handed to onPanic when it is non-nil.
func SafeGo(log logger.Interface, name string, fn func(), onPanic ...func(recovered any)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				for _, h := range onPanic {
					h(r)
				}
			}
		}()
		fn()
	}()
}
