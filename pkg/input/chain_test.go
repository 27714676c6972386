package input

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"src.slowscan.dev/pkg/must"
)

// abortAll is a handler for chains that are not expected to fail.
var abortAll = HandlerFunc(func(error, int) Verdict { return Abort })

// readerSource adapts any io.Reader into a Source for tests.
type readerSource struct{ io.Reader }

func (readerSource) Close() error { return nil }

// failingSource fails each Read with err until remaining reaches zero, then
// yields data.
type failingSource struct {
	err       error
	remaining int
	data      io.Reader
}

func (s *failingSource) Read(p []byte) (int, error) {
	if s.remaining > 0 {
		s.remaining--
		return 0, s.err
	}
	return s.data.Read(p)
}

func (s *failingSource) Close() error { return nil }

func chainOf(h Handler, sources ...Source) *Chain { return Concat(sources, h) }

func TestChain_Concatenates(t *testing.T) {
	c := chainOf(abortAll,
		readerSource{strings.NewReader("foo")},
		Empty(),
		readerSource{strings.NewReader("bar")})
	b := must.OK1(io.ReadAll(c))
	if string(b) != "foobar" {
		t.Errorf("read %q, want %q", b, "foobar")
	}
}

func TestChain_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	must.WriteFile(a, "contents of a\n")
	must.WriteFile(b, "contents of b\n")

	var sources []Source
	for _, uri := range []string{a, "/no/such/file", b} {
		src, err := Open(uri, nil)
		if err != nil {
			// The host substitutes a placeholder so positions are preserved.
			src = Empty()
		}
		sources = append(sources, src)
	}
	c := Concat(sources, abortAll)
	defer c.Close()

	got := must.OK1(io.ReadAll(c))
	if want := "contents of a\ncontents of b\n"; string(got) != want {
		t.Errorf("read %q, want %q", got, want)
	}
}

func TestChain_Exhausted(t *testing.T) {
	c := chainOf(abortAll, readerSource{strings.NewReader("x")})
	must.OK1(io.ReadAll(c))

	buf := make([]byte, 4)
	for i := 0; i < 2; i++ {
		n, err := c.Read(buf)
		if n != 0 || err != io.EOF {
			t.Errorf("read #%d after exhaustion -> (%d, %v), want (0, io.EOF)", i, n, err)
		}
	}
}

func TestChain_Empty(t *testing.T) {
	c := chainOf(abortAll)
	n, err := c.Read(make([]byte, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("read -> (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestChain_ContinueSkipsFailingSource(t *testing.T) {
	errRead := errors.New("disk on fire")
	var gotErrs []error
	var gotIndices []int
	h := HandlerFunc(func(err error, i int) Verdict {
		gotErrs = append(gotErrs, err)
		gotIndices = append(gotIndices, i)
		return Continue
	})
	c := chainOf(h,
		readerSource{strings.NewReader("foo")},
		&failingSource{err: errRead, remaining: 1, data: strings.NewReader("lost")},
		readerSource{strings.NewReader("bar")})

	b := must.OK1(io.ReadAll(c))
	if string(b) != "foobar" {
		t.Errorf("read %q, want %q", b, "foobar")
	}
	if len(gotErrs) != 1 || gotErrs[0] != errRead || gotIndices[0] != 1 {
		t.Errorf("handler called with (%v, %v), want one call with (%v, 1)",
			gotErrs, gotIndices, errRead)
	}
}

func TestChain_AbortPropagatesError(t *testing.T) {
	errRead := errors.New("disk on fire")
	c := chainOf(HandlerFunc(func(error, int) Verdict { return Abort }),
		readerSource{strings.NewReader("foo")},
		&failingSource{err: errRead, remaining: 1, data: strings.NewReader("recovered")},
		readerSource{strings.NewReader("never reached")})

	b, err := io.ReadAll(c)
	if err != errRead {
		t.Fatalf("read -> error %v, want %v", err, errRead)
	}
	// No bytes from sources after the failing one.
	if string(b) != "foo" {
		t.Errorf("read %q, want %q", b, "foo")
	}

	// The cursor is left at the failing source, so a retry re-attempts it.
	rest := must.OK1(io.ReadAll(c))
	if want := "recoverednever reached"; string(rest) != want {
		t.Errorf("read %q after retry, want %q", rest, want)
	}
}

func TestChain_NilHandlerAborts(t *testing.T) {
	errRead := errors.New("disk on fire")
	c := Concat([]Source{&failingSource{err: errRead, remaining: 1}}, nil)
	_, err := io.ReadAll(c)
	if err != errRead {
		t.Errorf("read -> error %v, want %v", err, errRead)
	}
}

// closeRecorder records whether it was closed.
type closeRecorder struct {
	Source
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestChain_CloseClosesAllSources(t *testing.T) {
	srcs := []*closeRecorder{
		{Source: Empty()}, {Source: Empty()}, {Source: Empty()},
	}
	c := Concat([]Source{srcs[0], srcs[1], srcs[2]}, abortAll)
	if err := c.Close(); err != nil {
		t.Fatalf("Close -> error %v", err)
	}
	for i, src := range srcs {
		if !src.closed {
			t.Errorf("source %d not closed", i)
		}
	}
}
