package input

import (
	"io"

	"src.slowscan.dev/pkg/errutil"
)

// Verdict is a Handler's decision about a source read error.
type Verdict int

const (
	// Continue treats the failing source as exhausted; the chain proceeds
	// with the next source.
	Continue Verdict = iota
	// Abort propagates the error to the reader of the chain.
	Abort
)

// Handler decides what to do about a read error from a chained source. It is
// invoked exactly once per error, with the index of the failing source in the
// chain.
type Handler interface {
	OnReadError(err error, index int) Verdict
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(err error, index int) Verdict

// OnReadError calls f(err, index).
func (f HandlerFunc) OnReadError(err error, index int) Verdict {
	return f(err, index)
}

// Chain presents an ordered collection of sources as one continuous byte
// stream. It owns its sources exclusively.
type Chain struct {
	sources []Source
	cursor  int
	handler Handler
}

// Concat returns a Chain over the given sources with the given error
// handler. A nil handler aborts on every error.
func Concat(sources []Source, h Handler) *Chain {
	if h == nil {
		h = HandlerFunc(func(error, int) Verdict { return Abort })
	}
	return &Chain{sources: sources, handler: h}
}

// Read reads from the source at the cursor, advancing to the next source on
// exhaustion. The cursor is monotonically non-decreasing; once it passes the
// last source, every call returns io.EOF.
//
// A read error is given to the handler. On Continue the failing source is
// treated as exhausted and reading proceeds with the next source; on Abort
// the error is returned unchanged with the cursor left at the failing source,
// so a retry re-attempts it.
//
// No read-ahead is performed: a source is only read when the cursor is on it,
// and no buffering crosses source boundaries.
func (c *Chain) Read(p []byte) (int, error) {
	if len(p) == 0 {
		// Don't let a zero-length read consume a source.
		return 0, nil
	}
	for c.cursor < len(c.sources) {
		n, err := c.sources[c.cursor].Read(p)
		if err != nil && err != io.EOF {
			if c.handler.OnReadError(err, c.cursor) == Abort {
				return n, err
			}
			c.cursor++
			continue
		}
		if n > 0 {
			return n, nil
		}
		// Zero bytes with no error, or io.EOF: the source is exhausted.
		c.cursor++
	}
	return 0, io.EOF
}

// Close closes every source in the chain, combining any close errors.
func (c *Chain) Close() error {
	errs := make([]error, len(c.sources))
	for i, s := range c.sources {
		errs[i] = s.Close()
	}
	return errutil.Multi(errs...)
}
