// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.slowscan.dev/pkg/buildinfo.Var=value" to "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"src.slowscan.dev/pkg/prog"
)

// Version identifies the version of slowscan. On development commits, it
// identifies the next release.
const Version = "v0.2.0"

// VersionSuffix is appended to Version in the output of "slowscan -version"
// to build the full version string. This can be overridden when building.
var VersionSuffix = "-dev.unknown"

// Program is the buildinfo subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) ShouldRun(f *prog.Flags) bool { return f.Version }

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	fullVersion := Version + VersionSuffix
	if f.JSON {
		fmt.Fprintf(fds[1], `{"version":%s,"goversion":%s}`+"\n",
			quoteJSON(fullVersion), quoteJSON(runtime.Version()))
	} else {
		fmt.Fprintln(fds[1], fullVersion)
	}
	return nil
}

func quoteJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshaling a string can't fail.
		panic(err)
	}
	return string(b)
}
