package input

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"src.slowscan.dev/pkg/must"
)

func TestOpen_EmptyURI(t *testing.T) {
	_, err := Open("", strings.NewReader(""))
	var openErr *Error
	if !errors.As(err, &openErr) || openErr.Kind != EmptyURI {
		t.Fatalf("Open(\"\") -> error %v, want *Error of kind EmptyURI", err)
	}
	if openErr.Error() != "empty source URI" {
		t.Errorf("message %q", openErr.Error())
	}
}

func TestOpen_Stdin(t *testing.T) {
	src, err := Open("-", strings.NewReader("from stdin"))
	if err != nil {
		t.Fatalf("Open(\"-\") -> error %v", err)
	}
	b := must.OK1(io.ReadAll(src))
	if string(b) != "from stdin" {
		t.Errorf("read %q, want %q", b, "from stdin")
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close -> error %v", err)
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	must.WriteFile(path, "file content")

	src, err := Open(path, strings.NewReader(""))
	if err != nil {
		t.Fatalf("Open(file) -> error %v", err)
	}
	defer src.Close()
	b := must.OK1(io.ReadAll(src))
	if string(b) != "file content" {
		t.Errorf("read %q, want %q", b, "file content")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	_, err := Open(path, strings.NewReader(""))

	var openErr *Error
	if !errors.As(err, &openErr) || openErr.Kind != CannotOpen {
		t.Fatalf("Open(missing) -> error %v, want *Error of kind CannotOpen", err)
	}
	if openErr.URI != path {
		t.Errorf("error carries URI %q, want %q", openErr.URI, path)
	}
	// The OS error is the cause.
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
	if !strings.Contains(openErr.Error(), path) {
		t.Errorf("message %q does not name the URI", openErr.Error())
	}
}

func TestEmpty(t *testing.T) {
	src := Empty()
	buf := make([]byte, 8)
	for i := 0; i < 2; i++ {
		n, err := src.Read(buf)
		if n != 0 || err != io.EOF {
			t.Errorf("read #%d -> (%d, %v), want (0, io.EOF)", i, n, err)
		}
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close -> error %v", err)
	}
}
