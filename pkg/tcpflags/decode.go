package tcpflags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/els0r/tcpflags/pkg/types"
)

// BitsOf returns the binary digits of value, zero-padded to width and ordered from
// the most significant bit to the least significant one
func BitsOf(value uint64, width int) ([]uint8, error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	if err := checkRange(value, width); err != nil {
		return nil, err
	}

	bits := make([]uint8, width)
	for i := range bits {
		bits[i] = uint8(value >> (width - 1 - i) & 1)
	}
	return bits, nil
}

// Decode returns the names of all flags set in value, in flag set order. The
// result is empty (but not nil) if no bit is set
func Decode(value uint64, flags FlagSet) ([]string, error) {
	if err := flags.Validate(); err != nil {
		return nil, err
	}
	bits, err := BitsOf(value, flags.Width())
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(flags))
	for i, bit := range bits {
		if bit == 1 {
			names = append(names, flags[i])
		}
	}
	return names, nil
}

// Encode is the inverse of Decode: it ORs together the bits of all named flags.
// Names are matched case-insensitively and may be repeated
func Encode(names []string, flags FlagSet) (uint64, error) {
	if err := flags.Validate(); err != nil {
		return 0, err
	}

	var value uint64
	for i, name := range names {
		bit, ok := flags.Bit(name)
		if !ok {
			return 0, fmt.Errorf("%w: %w", ErrInvalidInput,
				types.NewParseErrorf(names, i, " ", "unknown flag %q, expected one of {%s}", name, strings.Join(flags, ", ")),
			)
		}
		value |= bit
	}
	return value, nil
}

// ParseValue parses a flags field value as provided on the command line. Decimal
// notation is assumed unless the value carries a 0x, 0b or 0o prefix
func ParseValue(s string, flags FlagSet) (uint64, error) {
	if err := flags.Validate(); err != nil {
		return 0, err
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidInput)
	}
	if strings.HasPrefix(s, "-") {
		if _, err := strconv.ParseInt(s, 0, 64); err == nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidInput, types.NewMinBoundsError(s, "0", true))
		}
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}

	base := 10
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXbBoO", rune(s[1])) {
		base = 0
	}

	value, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	if err := checkRange(value, flags.Width()); err != nil {
		return 0, err
	}
	return value, nil
}

func checkRange(value uint64, width int) error {
	if upper := maxValue(width); value > upper {
		return fmt.Errorf("%w: %w", ErrInvalidInput,
			types.NewRangeError(strconv.FormatUint(value, 10), "0", true, strconv.FormatUint(upper, 10), true),
		)
	}
	return nil
}
