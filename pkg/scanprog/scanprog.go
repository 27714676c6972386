// Package scanprog is the entry point for the slow-scan output program. It
// opens the requested sources, chains them into one stream and feeds them to
// a delay-aware writer against stdout.
package scanprog

import (
	"bufio"
	"fmt"
	"os"

	"src.slowscan.dev/pkg/input"
	"src.slowscan.dev/pkg/logutil"
	"src.slowscan.dev/pkg/prog"
	"src.slowscan.dev/pkg/scan"
	"src.slowscan.dev/pkg/sys"
)

var logger = logutil.GetLogger("[scan] ")

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// Program is the slow-scan subprogram. It runs for every invocation not
// claimed by another subprogram.
type Program struct{}

func (Program) ShouldRun(*prog.Flags) bool { return true }

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	cfg, opts, err := resolveConfig(f, fds[2])
	if err != nil {
		return prog.BadUsage(err.Error())
	}

	uris := args
	if len(uris) == 0 {
		uris = []string{"-"}
	}

	// A source that fails to open is reported and replaced with an empty
	// placeholder, so one bad file does not abort the rest and source
	// indices stay aligned with the URI list.
	sources := make([]input.Source, len(uris))
	for i, uri := range uris {
		src, err := input.Open(uri, fds[0])
		if err != nil {
			fmt.Fprintln(fds[2], err)
			src = input.Empty()
		}
		sources[i] = src
	}

	chain := input.Concat(sources,
		input.HandlerFunc(func(err error, i int) input.Verdict {
			fmt.Fprintf(fds[2], "read %s: %v\n", uris[i], err)
			return input.Continue
		}))
	defer chain.Close()

	restoreCursor := func() {}
	if opts.hideCursor && sys.IsATTY(fds[1]) {
		fds[1].WriteString(hideCursor)
		restoreCursor = func() { fds[1].WriteString(showCursor) }
	}

	w := scan.NewWriter(scan.SinkOf(fds[1]))
	reader := bufio.NewReader(chain)

	// Run the writer on its own goroutine so that an interrupt can be
	// observed while the writer sleeps. The writer has no cancellation hook
	// mid-sequence; on interrupt the process terminates after the cursor
	// state is restored.
	done := make(chan error, 1)
	go func() {
		if opts.lineMode {
			done <- w.WriteChunks(scan.Lines(reader), cfg)
		} else {
			done <- w.WriteRunes(scan.Runes(reader), cfg)
		}
	}()

	sigCh := sys.NotifySignals()
	select {
	case err := <-done:
		restoreCursor()
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	case sig := <-sigCh:
		logger.Println("interrupted by signal", sig)
		restoreCursor()
		return prog.Exit(1)
	}
}
