package app

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Version is set at build time with
// -ldflags "-X github.com/agbru/mulcheck/internal/app.Version=v1.0.0".
var Version = "dev"

// HasVersionFlag reports whether args ask for the version. It lets main
// answer before any other flag is validated.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the program version, the VCS revision when known and
// the Go toolchain.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "mulcheck %s", Version)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				fmt.Fprintf(out, " (%s)", s.Value[:7])
			}
		}
	}
	fmt.Fprintf(out, " %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
