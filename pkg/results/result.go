package results

import (
	"github.com/els0r/tcpflags/pkg/formatting"
	"github.com/els0r/tcpflags/pkg/tcpflags"
)

// Row is the printable representation of a single flags field value
type Row struct {
	Value  uint64   `json:"value" yaml:"value"`   // Value: decimal flags field. Example: 19
	Hex    string   `json:"hex" yaml:"hex"`       // Hex: hexadecimal notation. Example: 0x13
	Binary string   `json:"binary" yaml:"binary"` // Binary: bits, most significant first. Example: 00010011
	Flags  []string `json:"flags" yaml:"flags"`   // Flags: names of the set flags. Example: ["ACK", "SYN", "FIN"]
}

// Rows is a list of rows
type Rows []Row

// NewRow converts a decoded entry into a row. width is the number of bits of the
// flag set the entry was decoded with
func NewRow(entry tcpflags.Entry, width int) Row {
	flags := entry.Flags
	if flags == nil {
		flags = []string{}
	}
	return Row{
		Value:  entry.Value,
		Hex:    formatting.Hex(entry.Value, width),
		Binary: formatting.Binary(entry.Value, width),
		Flags:  flags,
	}
}

// NewRows converts all entries of a table into rows
func NewRows(table tcpflags.Table, width int) Rows {
	rows := make(Rows, 0, len(table))
	for _, entry := range table {
		rows = append(rows, NewRow(entry, width))
	}
	return rows
}
