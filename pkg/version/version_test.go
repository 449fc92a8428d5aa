package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	defer func(sha, semver string) {
		GitSHA, SemVer = sha, semver
	}(GitSHA, SemVer)

	GitSHA, SemVer = "", ""
	require.Equal(t, "devel\n", Version())
	require.Equal(t, "devel", Short())

	GitSHA = "f92ddc69b6e7a1c2"
	require.Equal(t, "f92ddc69", Short())
	require.Contains(t, Version(), "Git hash:       f92ddc69b6e7a1c2")

	SemVer = "v1.1.0"
	require.Equal(t, "v1.1.0", Short())
}
