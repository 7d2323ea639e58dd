package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var notifyContext = signal.NotifyContext

// SignalContext returns a context cancelled by the first interrupt or
// SIGTERM. After that signal the default handling is restored, so a second
// one terminates the process even while rollback is still running.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := notifyContext(parent, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx, stop
}
