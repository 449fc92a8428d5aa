/*
Package tcpflags translates the decimal TCP flags field found in NetFlow (v5, v9 / RFC 3954)
and IPFIX records into the names of the flags it contains, and back.

Collectors record the bitwise-OR of the flags seen across all segments of a flow, so a
value of 19 (0b00010011) reads as "ACK SYN FIN".

RFC 3540 defines an experimental ninth flag, NS, for ECN-nonce concealment protection.
It is rarely if ever used, but the IANA IPFIX entities list includes it, so it can be
selected explicitly. Reserved bits are not decoded.
*/
package tcpflags

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/els0r/tcpflags/pkg/types"
)

// Widths of the supported flag sets
const (
	StandardWidth = 8 // StandardWidth : CWR through FIN
	RFC3540Width  = 9 // RFC3540Width : NS prepended to the standard flags
)

// ErrInvalidInput is wrapped by every error caused by a value or flag set that
// cannot be mapped
var ErrInvalidInput = errors.New("invalid input")

var supportedWidths = []string{strconv.Itoa(StandardWidth), strconv.Itoa(RFC3540Width)}

// FlagSet is an ordered list of TCP flag names. Position 0 denotes the most
// significant bit of the field
type FlagSet []string

var rfc3540Flags = FlagSet{"NS", "CWR", "ECE", "URG", "ACK", "PSH", "RST", "SYN", "FIN"}

// RFC3540 returns the nine flags including the ECN-nonce (NS) bit
func RFC3540() FlagSet {
	return slices.Clone(rfc3540Flags)
}

// Standard returns the eight flags of the TCP header as recorded by most collectors
func Standard() FlagSet {
	return slices.Clone(rfc3540Flags[1:])
}

// Select returns the RFC 3540 flag set if rfc3540 is true and the standard one otherwise
func Select(rfc3540 bool) FlagSet {
	if rfc3540 {
		return RFC3540()
	}
	return Standard()
}

// Short returns a copy of the flag set with every name abbreviated to its first letter,
// e.g. "C E U A P R S F"
func (fs FlagSet) Short() FlagSet {
	short := make(FlagSet, len(fs))
	for i, name := range fs {
		if name != "" {
			short[i] = name[:1]
		}
	}
	return short
}

// Width returns the number of bits covered by the flag set
func (fs FlagSet) Width() int {
	return len(fs)
}

// Max returns the largest value representable by the flag set
func (fs FlagSet) Max() uint64 {
	return maxValue(len(fs))
}

// Validate checks that the flag set has a supported width and consists of distinct,
// non-empty names
func (fs FlagSet) Validate() error {
	if err := validateWidth(len(fs)); err != nil {
		return err
	}

	seen := make(map[string]int, len(fs))
	for i, name := range fs {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: flag at position %d has an empty name", ErrInvalidInput, i)
		}
		key := strings.ToUpper(name)
		if j, exists := seen[key]; exists {
			return fmt.Errorf("%w: flag %q at position %d duplicates position %d", ErrInvalidInput, name, i, j)
		}
		seen[key] = i
	}
	return nil
}

// Bit returns the mask of the flag called name. The lookup is case-insensitive
func (fs FlagSet) Bit(name string) (uint64, bool) {
	for i, candidate := range fs {
		if strings.EqualFold(candidate, name) {
			return 1 << (len(fs) - 1 - i), true
		}
	}
	return 0, false
}

// String returns the space-joined flag names
func (fs FlagSet) String() string {
	return strings.Join(fs, " ")
}

func validateWidth(width int) error {
	if width != StandardWidth && width != RFC3540Width {
		return fmt.Errorf("%w: unsupported flag set width: %w", ErrInvalidInput,
			types.NewUnsupportedError(strconv.Itoa(width), supportedWidths),
		)
	}
	return nil
}

func maxValue(width int) uint64 {
	return 1<<width - 1
}
