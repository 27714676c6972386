// Package prog provides the entry point to slowscan. It parses command-line
// flags and dispatches to the appropriate subprogram.
package prog

import (
	"flag"
	"fmt"
	"io"
	"os"

	"src.slowscan.dev/pkg/logutil"
)

// Flags keeps command-line flags.
type Flags struct {
	Log string

	Help, Version, JSON bool

	Delay, FullWidthDelay, ControlCharDelay string
	TailDelay, LineMode, HideCursor         bool

	RC   string
	NoRC bool
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("slowscan", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output in JSON. Useful with -version")

	fs.StringVar(&f.Delay, "delay", "", "pause after each unit (default 20ms)")
	fs.StringVar(&f.FullWidthDelay, "full-width-delay", "",
		"pause after a full-width character (default twice -delay)")
	fs.StringVar(&f.ControlCharDelay, "control-char-delay", "",
		"pause after a control character (default 0s)")
	fs.BoolVar(&f.TailDelay, "tail-delay", false, "also pause after the last unit")
	fs.BoolVar(&f.LineMode, "line-mode", false, "write line by line instead of character by character")
	fs.BoolVar(&f.HideCursor, "hide-cursor", false, "hide the terminal cursor while writing")

	fs.BoolVar(&f.NoRC, "norc", false, "run without reading the rc file")
	fs.StringVar(&f.RC, "rc", "", "path to the rc file")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: slowscan [flags] [file ...]")
	fmt.Fprintln(out, "Each file is a path, or - for standard input.")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. We define -help, but not -h; so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	if !p.ShouldRun(f) {
		fmt.Fprintln(fds[2], "internal error: no suitable subprogram")
		return 2
	}
	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2], fs)
	case exitError:
		return err.exit
	}
	return 2
}

// Composite returns a Program that runs the first of the given programs whose
// ShouldRun returns true.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) ShouldRun(f *Flags) bool {
	for _, p := range cp {
		if p.ShouldRun(f) {
			return true
		}
	}
	return false
}

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		if p.ShouldRun(f) {
			return p.Run(fds, f, args)
		}
	}
	panic("compositeProgram.Run called when ShouldRun is false")
}

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// ShouldRun reports whether this subprogram should handle the invocation
	// described by the parsed flags.
	ShouldRun(f *Flags) bool
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
