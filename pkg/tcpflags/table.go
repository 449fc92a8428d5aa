package tcpflags

import "sort"

// Entry maps a flags field value to the flags it contains
type Entry struct {
	Value uint64   `json:"value" yaml:"value"` // Value: decimal flags field. Example: 19
	Flags []string `json:"flags" yaml:"flags"` // Flags: names of the set flags. Example: ["ACK", "SYN", "FIN"]
}

// Table is a list of entries ordered by strictly increasing value
type Table []Entry

// BuildTable decodes every value representable by the flag set, from 0 up to and
// including flags.Max()
func BuildTable(flags FlagSet) (Table, error) {
	if err := flags.Validate(); err != nil {
		return nil, err
	}

	table := make(Table, 0, flags.Max()+1)
	for value := uint64(0); value <= flags.Max(); value++ {
		names, err := Decode(value, flags)
		if err != nil {
			return nil, err
		}
		table = append(table, Entry{Value: value, Flags: names})
	}
	return table, nil
}

// Lookup returns the entry for value
func (t Table) Lookup(value uint64) (Entry, bool) {
	i := sort.Search(len(t), func(i int) bool {
		return t[i].Value >= value
	})
	if i < len(t) && t[i].Value == value {
		return t[i], true
	}
	return Entry{}, false
}
