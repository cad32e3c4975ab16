// Package version provides version information and build metadata for the
// applicant corrector. The variables are set through ldflags at build time.
package version

import (
	"fmt"
	"runtime"
)

var (
	// AppVersion represents the application version, set during build.
	AppVersion = "dev"
	// GitCommit represents the git commit hash, set during build.
	GitCommit = "unknown"
	// BuildDate represents the build date, set during build.
	BuildDate = "unknown"
)

// Version returns a formatted version string with build information.
func Version() string {
	return fmt.Sprintf(
		"applicant-corrector %s (%s)\nBuilt %s with %s (%s/%s)",
		AppVersion,
		GitCommit,
		BuildDate,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}
