//go:build !windows && !plan9

package sys

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func notifySignals() chan os.Signal {
	sigCh := make(chan os.Signal, sigsChanBufferSize)
	// SIGHUP is delivered when the controlling terminal goes away; treat it
	// like an interrupt so the cursor state can be restored first.
	signal.Notify(sigCh, unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
	return sigCh
}
