// Package scan implements slow-scan output: writing a sequence of units
// (byte chunks or runes) with a configurable pause between units, producing a
// typewriter effect.
//
// Each unit is written and flushed before its pause starts, so that it is
// visible on the destination for the whole pause. Pauses are drift-corrected:
// the writer tracks a running deadline advanced by the configured delay and
// sleeps until the deadline, so the time spent writing and flushing does not
// accumulate into the period.
package scan

import (
	"io"
	"unicode/utf8"
)

// Sink is the destination of a slow-scan write. Flush must make all bytes
// written so far visible on the underlying device.
type Sink interface {
	io.Writer
	Flush() error
}

// SinkOf adapts an io.Writer into a Sink. If w has a Flush method it is used;
// otherwise Flush is a no-op, which is appropriate for unbuffered writers
// like *os.File.
func SinkOf(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return nopFlushSink{w}
}

type nopFlushSink struct{ io.Writer }

func (nopFlushSink) Flush() error { return nil }

// Writer writes unit sequences to a sink with pauses between units. It is
// not safe for concurrent use; output order is exactly input order and every
// pause fully blocks before the next write.
type Writer struct {
	sink  Sink
	clock Clock
}

// NewWriter returns a Writer writing to the given sink.
func NewWriter(sink Sink) *Writer {
	return &Writer{sink, realClock{}}
}

// WriteChunks writes each chunk of seq to the sink, flushing after each one
// and pausing cfg.BaseDelay between chunks. When cfg.TailDelay is set the
// pause is also inserted after the last chunk.
//
// Any error from writing or flushing aborts the whole operation immediately.
// An empty sequence writes nothing and sleeps for nothing.
func (w *Writer) WriteChunks(seq ChunkSeq, cfg Config) error {
	current, err := seq.Next()
	if err != nil {
		return endOfSeq(err)
	}
	deadline := w.clock.Now()
	for {
		next, nextErr := seq.Next()
		if nextErr != nil && nextErr != io.EOF {
			return nextErr
		}

		if err := w.writeUnit(current); err != nil {
			return err
		}

		last := nextErr == io.EOF
		if !last || cfg.TailDelay {
			deadline = deadline.Add(cfg.BaseDelay)
			w.clock.Sleep(deadline.Sub(w.clock.Now()))
		}
		if last {
			return nil
		}
		current = next
	}
}

// WriteRunes writes each rune of seq to the sink, flushing after each one and
// pausing between runes with the delay matching each rune's class: BaseDelay
// for plain runes, FullWidthDelay for wide runes and ControlDelay for control
// runes. When cfg.TailDelay is set the pause is also inserted after the last
// rune.
//
// Any error from writing or flushing aborts the whole operation immediately.
func (w *Writer) WriteRunes(seq RuneSeq, cfg Config) error {
	var buf [utf8.UTFMax]byte
	current, err := seq.Next()
	if err != nil {
		return endOfSeq(err)
	}
	deadline := w.clock.Now()
	for {
		next, nextErr := seq.Next()
		if nextErr != nil && nextErr != io.EOF {
			return nextErr
		}

		n := utf8.EncodeRune(buf[:], current)
		if err := w.writeUnit(buf[:n]); err != nil {
			return err
		}

		last := nextErr == io.EOF
		if !last || cfg.TailDelay {
			deadline = deadline.Add(cfg.delayFor(current))
			w.clock.Sleep(deadline.Sub(w.clock.Now()))
		}
		if last {
			return nil
		}
		current = next
	}
}

// writeUnit writes one unit fully and flushes, so that the unit becomes
// visible before the following pause starts.
func (w *Writer) writeUnit(p []byte) error {
	if _, err := w.sink.Write(p); err != nil {
		return err
	}
	return w.sink.Flush()
}

func endOfSeq(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}
