package errutil

import (
	"errors"
	"testing"
)

func TestMulti(t *testing.T) {
	err1 := errors.New("error 1")
	err2 := errors.New("error 2")

	if Multi() != nil {
		t.Errorf("Multi() != nil")
	}
	if Multi(nil, nil) != nil {
		t.Errorf("Multi(nil, nil) != nil")
	}
	if Multi(nil, err1) != err1 {
		t.Errorf("Multi(nil, err1) != err1")
	}

	got := Multi(err1, nil, err2).Error()
	if want := "multiple errors: error 1; error 2"; got != want {
		t.Errorf("got message %q, want %q", got, want)
	}

	// Nested Multi errors are flattened.
	flat := Multi(Multi(err1, err2), err1).Error()
	if want := "multiple errors: error 1; error 2; error 1"; flat != want {
		t.Errorf("got message %q, want %q", flat, want)
	}
}
