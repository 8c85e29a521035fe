package main

import (
	"runtime"

	"github.com/bnema/gridbrowser/internal/cli/cmd"
	"github.com/bnema/gridbrowser/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must stay on the thread that initialized it.
	runtime.LockOSThread()
}

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
