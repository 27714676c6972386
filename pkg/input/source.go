// Package input presents heterogeneous byte origins - standard input, files
// and empty placeholders - as read-only sources, and chains ordered
// collections of them into one continuous byte stream.
package input

import (
	"fmt"
	"io"
	"os"
)

// Source is a read-only, forward-only origin of bytes. A source is consumed
// by reading it until exhaustion and is never reused. Closing a file-backed
// source releases its OS handle; closing other sources is a no-op.
type Source interface {
	io.ReadCloser
}

// Open opens the source identified by uri:
//
//   - "" is invalid and fails with an *Error of kind EmptyURI.
//   - "-" yields a source reading from stdin. The caller supplies the stdin
//     stream explicitly; this package reads no ambient process state.
//   - Anything else is treated as a filesystem path. A failure to open it
//     yields an *Error of kind CannotOpen wrapping the OS error.
func Open(uri string, stdin io.Reader) (Source, error) {
	if uri == "" {
		return nil, &Error{Kind: EmptyURI, URI: uri}
	}
	if uri == "-" {
		return stdinSource{stdin}, nil
	}
	file, err := os.Open(uri)
	if err != nil {
		return nil, &Error{Kind: CannotOpen, URI: uri, cause: err}
	}
	return file, nil
}

// Empty returns a source that is permanently exhausted: every read reports
// end-of-data. It is used as a placeholder for a source that failed to open
// but whose position in a chain must be preserved for diagnostics.
func Empty() Source { return emptySource{} }

type emptySource struct{}

func (emptySource) Read([]byte) (int, error) { return 0, io.EOF }

func (emptySource) Close() error { return nil }

// stdinSource reads from the stdin stream it was given. It does not own the
// underlying handle, so Close is a no-op.
type stdinSource struct{ r io.Reader }

func (s stdinSource) Read(p []byte) (int, error) { return s.r.Read(p) }

func (stdinSource) Close() error { return nil }

// Kind enumerates the ways opening a source can fail.
type Kind int

const (
	// EmptyURI means the URI was the empty string.
	EmptyURI Kind = iota
	// CannotOpen means the URI named a file that could not be opened.
	CannotOpen
)

// Error is the error type returned by Open. It carries the offending URI and,
// for CannotOpen, the underlying OS error as its cause.
type Error struct {
	Kind Kind
	URI  string

	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case CannotOpen:
		return fmt.Sprintf("cannot open %q: %v", e.URI, e.cause)
	default:
		return "empty source URI"
	}
}

// Unwrap returns the underlying OS error, if any.
func (e *Error) Unwrap() error { return e.cause }
