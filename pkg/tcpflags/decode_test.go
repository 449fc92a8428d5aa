package tcpflags

import (
	"errors"
	"fmt"
	"math/bits"
	"testing"

	"github.com/els0r/tcpflags/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestBitsOf(t *testing.T) {
	var tests = []struct {
		value    uint64
		width    int
		expected []uint8
	}{
		{0, StandardWidth, []uint8{0, 0, 0, 0, 0, 0, 0, 0}},
		{19, StandardWidth, []uint8{0, 0, 0, 1, 0, 0, 1, 1}},
		{255, StandardWidth, []uint8{1, 1, 1, 1, 1, 1, 1, 1}},
		{256, RFC3540Width, []uint8{1, 0, 0, 0, 0, 0, 0, 0, 0}},
		{19, RFC3540Width, []uint8{0, 0, 0, 0, 1, 0, 0, 1, 1}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d/%d", test.value, test.width), func(t *testing.T) {
			bits, err := BitsOf(test.value, test.width)
			require.NoError(t, err)
			require.Equal(t, test.expected, bits)
		})
	}
}

func TestBitsOfInvalid(t *testing.T) {
	_, err := BitsOf(256, StandardWidth)
	require.ErrorIs(t, err, ErrInvalidInput)

	var rangeErr *types.RangeError
	require.True(t, errors.As(err, &rangeErr))
	require.Equal(t, "256", rangeErr.Val)
	require.Equal(t, "255", rangeErr.Max.Val)

	_, err = BitsOf(512, RFC3540Width)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = BitsOf(1, 7)
	require.ErrorIs(t, err, ErrInvalidInput)
	var unsupportedErr *types.UnsupportedError
	require.True(t, errors.As(err, &unsupportedErr))
}

func TestDecode(t *testing.T) {
	var tests = []struct {
		name     string
		value    uint64
		flags    FlagSet
		expected []string
	}{
		{"nothing set", 0, Standard(), []string{}},
		{"ack syn fin", 19, Standard(), []string{"ACK", "SYN", "FIN"}},
		{"syn only", 2, Standard(), []string{"SYN"}},
		{"syn ack", 18, Standard(), []string{"ACK", "SYN"}},
		{"everything", 255, Standard(), []string{"CWR", "ECE", "URG", "ACK", "PSH", "RST", "SYN", "FIN"}},
		{"ns only", 256, RFC3540(), []string{"NS"}},
		{"ack syn fin with ns set", 19, RFC3540(), []string{"ACK", "SYN", "FIN"}},
		{"everything with ns", 511, RFC3540(), []string{"NS", "CWR", "ECE", "URG", "ACK", "PSH", "RST", "SYN", "FIN"}},
		{"short names", 19, Standard().Short(), []string{"A", "S", "F"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			names, err := Decode(test.value, test.flags)
			require.NoError(t, err)
			require.NotNil(t, names)
			require.Equal(t, test.expected, names)
		})
	}
}

func TestDecodeAllStandardValues(t *testing.T) {
	flags := Standard()

	for value := uint64(0); value <= flags.Max(); value++ {
		names, err := Decode(value, flags)
		require.NoError(t, err)
		require.Len(t, names, bits.OnesCount64(value), "value %d", value)

		// the names must be a subsequence of the flag set
		pos := 0
		for _, name := range names {
			for pos < len(flags) && flags[pos] != name {
				pos++
			}
			require.Less(t, pos, len(flags), "value %d: %q out of order or unknown", value, name)
			pos++
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(256, Standard())
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Decode(1, FlagSet{"A", "B", "C"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Decode(1, FlagSet{"CWR", "ECE", "URG", "ACK", "ack", "RST", "SYN", "FIN"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, flags := range []FlagSet{Standard(), RFC3540(), Standard().Short(), RFC3540().Short()} {
		t.Run(flags.String(), func(t *testing.T) {
			for value := uint64(0); value <= flags.Max(); value++ {
				names, err := Decode(value, flags)
				require.NoError(t, err)

				encoded, err := Encode(names, flags)
				require.NoError(t, err)
				require.Equal(t, value, encoded)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	var tests = []struct {
		name     string
		names    []string
		flags    FlagSet
		expected uint64
	}{
		{"empty", nil, Standard(), 0},
		{"ack syn fin", []string{"ACK", "SYN", "FIN"}, Standard(), 19},
		{"order does not matter", []string{"FIN", "ACK", "SYN"}, Standard(), 19},
		{"case insensitive", []string{"ack", "Syn", "fin"}, Standard(), 19},
		{"duplicates", []string{"SYN", "SYN"}, Standard(), 2},
		{"ns", []string{"NS"}, RFC3540(), 256},
		{"short", []string{"A", "S"}, Standard().Short(), 18},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := Encode(test.names, test.flags)
			require.NoError(t, err)
			require.Equal(t, test.expected, value)
		})
	}
}

func TestEncodeUnknownFlag(t *testing.T) {
	// NS is not part of the standard flag set
	_, err := Encode([]string{"ACK", "NS"}, Standard())
	require.ErrorIs(t, err, ErrInvalidInput)

	var parseErr *types.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, 1, parseErr.Pos)
	require.Contains(t, parseErr.Pretty(), "ACK NS\n    ^\n")
}

func TestParseValue(t *testing.T) {
	var tests = []struct {
		input    string
		flags    FlagSet
		expected uint64
		valid    bool
	}{
		{"19", Standard(), 19, true},
		{" 19 ", Standard(), 19, true},
		{"0", Standard(), 0, true},
		{"019", Standard(), 19, true},
		{"255", Standard(), 255, true},
		{"0x13", Standard(), 19, true},
		{"0b00010011", Standard(), 19, true},
		{"0o23", Standard(), 19, true},
		{"256", RFC3540(), 256, true},
		{"511", RFC3540(), 511, true},
		{"256", Standard(), 0, false},
		{"512", RFC3540(), 0, false},
		{"-1", Standard(), 0, false},
		{"", Standard(), 0, false},
		{"ACK", Standard(), 0, false},
		{"1.5", Standard(), 0, false},
		{"0x", Standard(), 0, false},
		{"99999999999999999999999", Standard(), 0, false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			value, err := ParseValue(test.input, test.flags)
			if !test.valid {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, value)
		})
	}
}

func TestParseValueNegative(t *testing.T) {
	_, err := ParseValue("-3", Standard())

	var minErr *types.MinBoundsError
	require.True(t, errors.As(err, &minErr))
	require.Equal(t, "-3", minErr.Val)
}
