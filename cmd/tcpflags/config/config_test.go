package config

import (
	"testing"

	"github.com/els0r/tcpflags/pkg/tcpflags"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	var tests = []struct {
		name  string
		cfg   *Config
		valid bool
	}{
		{"defaults", New(), true},
		{"json", &Config{Format: "json"}, true},
		{"rfc3540 short yaml", &Config{RFC3540: true, Short: true, Format: "yaml"}, true},
		{"empty format", &Config{}, false},
		{"unknown format", &Config{Format: "xml"}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestFlagSet(t *testing.T) {
	require.Equal(t, tcpflags.Standard(), New().FlagSet())
	require.Equal(t, tcpflags.RFC3540(), (&Config{RFC3540: true}).FlagSet())
	require.Equal(t, tcpflags.FlagSet{"C", "E", "U", "A", "P", "R", "S", "F"}, (&Config{Short: true}).FlagSet())
	require.Equal(t, tcpflags.FlagSet{"N", "C", "E", "U", "A", "P", "R", "S", "F"}, (&Config{RFC3540: true, Short: true}).FlagSet())
}
