// Package formatting renders flags field values in the notations commonly found in
// collector output and packet dissectors
package formatting

import "fmt"

// Hex prints val as a 0x-prefixed hexadecimal number, zero-padded to the number of
// nibbles needed for width bits, e.g. 19 -> 0x13 (8 bits), 19 -> 0x013 (9 bits)
func Hex(val uint64, width int) string {
	return fmt.Sprintf("0x%0*x", nibbles(width), val)
}

// Binary prints val as a binary number zero-padded to width bits,
// e.g. 19 -> 00010011
func Binary(val uint64, width int) string {
	return fmt.Sprintf("%0*b", width, val)
}

func nibbles(width int) int {
	if width <= 0 {
		return 1
	}
	return (width + 3) / 4
}
