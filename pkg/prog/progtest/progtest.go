// Package progtest provides utilities for testing subprograms.
//
// The entry point of this package is Test, with test cases built with the
// fluent ThatSlowscan API:
//
//	Test(t, someProgram,
//	    ThatSlowscan("-delay", "0s", "file").WritesStdout("content"),
//	    ThatSlowscan("-bad-flag").ExitsWith(2),
//	)
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.slowscan.dev/pkg/must"
	"src.slowscan.dev/pkg/prog"
)

// Case is a test case for Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit   int
	stdout output
	stderr output
}

type output struct {
	content string
	partial bool
}

func (o output) match(got string) bool {
	if o.partial {
		return strings.Contains(got, o.content)
	}
	return got == o.content
}

// ThatSlowscan returns a new Case with the given arguments.
func ThatSlowscan(args ...string) *Case {
	return &Case{args: append([]string{"slowscan"}, args...)}
}

// WithStdin returns an altered Case that feeds the given string to the
// program's stdin.
func (c *Case) WithStdin(s string) *Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark cases that otherwise
// don't have any expectations.
func (c *Case) DoesNothing() *Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to exit with
// the given exit code.
func (c *Case) ExitsWith(code int) *Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program to produce
// exactly the given text on stdout.
func (c *Case) WritesStdout(s string) *Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program's
// stdout output to contain the given text.
func (c *Case) WritesStdoutContaining(s string) *Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to produce
// exactly the given text on stderr.
func (c *Case) WritesStderr(s string) *Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program's
// stderr output to contain the given text.
func (c *Case) WritesStderrContaining(s string) *Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...*Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exit != c.want.exit {
				t.Errorf("got exit code %v, want %v", r.exit, c.want.exit)
			}
			if !c.want.stdout.match(r.stdout) {
				t.Errorf("got stdout %q, want %q (partial=%v)",
					r.stdout, c.want.stdout.content, c.want.stdout.partial)
			}
			if !c.want.stderr.match(r.stderr) {
				t.Errorf("got stderr %q, want %q (partial=%v)",
					r.stderr, c.want.stderr.content, c.want.stderr.partial)
			}
		})
	}
}

type runResult struct {
	exit   int
	stdout string
	stderr string
}

func run(p prog.Program, args []string, stdin string) runResult {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	// Write the stdin payload before running, closing the write end so the
	// program sees EOF. The pipe buffer is large enough for test payloads.
	go func() {
		defer w0.Close()
		io.WriteString(w0, stdin)
	}()

	stdoutCh := capture(r1)
	stderrCh := capture(r2)

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)

	w1.Close()
	w2.Close()
	stdout := <-stdoutCh
	stderr := <-stderrCh
	r0.Close()

	return runResult{exit, stdout, stderr}
}

func capture(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b := must.OK1(io.ReadAll(r))
		r.Close()
		ch <- string(b)
	}()
	return ch
}
