package common

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

// Version is set at build time with -ldflags "-X .../cmd/common.Version=...".
var Version = "dev"

// HandleQuitSignal allows us to respond to sigquit, dumping our goroutines like normal, but *not* exit,
// mimicking how java does it.
func HandleQuitSignal() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGQUIT)
	buf := make([]byte, 1<<20)
	for {
		<-sigs
		stacklen := runtime.Stack(buf, true)
		log.Printf("=== received SIGQUIT ===\n*** goroutine dump...\n%s\n*** end\n", buf[:stacklen])
	}
}

// CancelOnSignal cancels on SIGTERM or SIGINT, and exits the process if it has not
// terminated within grace afterwards.
func CancelOnSignal(ctx context.Context, cancel context.CancelFunc, grace time.Duration) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-c:
		log.WithField("signal", sig.String()).Info("Terminating with signal")
	case <-ctx.Done():
		return
	}
	cancel()
	<-time.After(grace)
	log.Fatal("System did not gracefully terminate")
}
