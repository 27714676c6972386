//go:build !windows

package scan

import (
	"io"
	"testing"

	"github.com/creack/pty"
)

// Writes through a real pty, the device the writer usually targets.
func TestWriteRunes_Terminal(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	w := NewWriter(SinkOf(tty))
	if err := w.WriteRunes(StringRunes("hi"), Config{}); err != nil {
		t.Fatalf("WriteRunes -> error %v", err)
	}

	buf := make([]byte, 2)
	if _, err := io.ReadFull(ptmx, buf); err != nil {
		t.Fatalf("read from pty -> error %v", err)
	}
	if got := string(buf); got != "hi" {
		t.Errorf("terminal received %q, want %q", got, "hi")
	}
}
