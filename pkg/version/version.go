// Package version is used by the release process to add an
// informative version string to some commands.
package version

import (
	"fmt"
	"runtime"
)

// These strings will be overwritten by the linker (-ldflags "-X ...") during
// the release process.
var (
	BuildTime = ""
	GitSHA    = ""
	SemVer    = ""
)

const shortSHALen = 8

// Version returns a newline-terminated string describing the current
// version of the build.
func Version() string {
	if GitSHA == "" {
		return "devel\n"
	}

	str := fmt.Sprintf(`    Version:        %s
    Build time:     %s
    Git hash:       %s
    Go versions:    %s
`, Short(),
		BuildTime,
		GitSHA,
		runtime.Version(),
	)
	return str
}

// Short returns a single-word version identifier suitable for log attributes
func Short() string {
	if SemVer != "" {
		return SemVer
	}
	if GitSHA == "" {
		return "devel"
	}
	if len(GitSHA) > shortSHALen {
		return GitSHA[:shortSHALen]
	}
	return GitSHA
}
