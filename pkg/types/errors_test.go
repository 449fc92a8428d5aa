package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	var tests = []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			"first token",
			NewParseError([]string{"SYM", "ACK"}, 0, " ", "unknown flag"),
			"SYM ACK\n^\nunknown flag",
		},
		{
			"middle token",
			NewParseErrorf([]string{"ACK", "SYM", "FIN"}, 1, " ", "unknown flag %q", "SYM"),
			"ACK SYM FIN\n    ^\nunknown flag \"SYM\"",
		},
		{
			"position out of bounds",
			NewParseError([]string{"ACK"}, 4, " ", "broken"),
			"broken",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.err.Error())
			require.Equal(t, "\n"+test.expected, test.err.Pretty())
		})
	}
}

func TestBoundsErrors(t *testing.T) {
	require.EqualError(t,
		NewRangeError("256", "0", true, "255", true),
		"range constraint not met: 256 not in [0, 255]",
	)
	require.EqualError(t,
		NewRangeError("512", "0", false, "512", false),
		"range constraint not met: 512 not in (0, 512)",
	)
	require.EqualError(t,
		NewMinBoundsError("-1", "0", true),
		"min constraint not met: -1 must be >= 0",
	)
	require.EqualError(t,
		NewMinBoundsError("0", "0", false),
		"min constraint not met: 0 must be > 0",
	)
	require.EqualError(t,
		NewUnsupportedError("xml", []string{"plain", "json"}),
		"'xml' is not in {plain, json}",
	)
}
