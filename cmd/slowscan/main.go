// Slowscan writes text to its output with a pause between characters or
// lines, producing a typewriter effect. It reads from files given as
// arguments, or from standard input.
package main

import (
	"os"

	"src.slowscan.dev/pkg/buildinfo"
	"src.slowscan.dev/pkg/prog"
	"src.slowscan.dev/pkg/scanprog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, scanprog.Program{})))
}
