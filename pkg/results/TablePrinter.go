package results

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/els0r/tcpflags/pkg/types"
	"github.com/els0r/tcpflags/pkg/types/shellformat"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// OutputColumn ranges over all possible output columns.
// Not every format honors the column selection, e.g. the JSON and YAML
// printers always emit complete rows
type OutputColumn int

// Enumeration of all possible output columns
const (
	OutcolValue OutputColumn = iota
	OutcolHex
	OutcolBinary
	OutcolFlags
	CountOutcol
)

// AllColumns lists every output column in display order
var AllColumns = []OutputColumn{OutcolValue, OutcolHex, OutcolBinary, OutcolFlags}

// Supported output formats
const (
	FormatPlain = "plain" // FormatPlain : space separated columns, one row per line
	FormatText  = "txt"   // FormatText : aligned table with header
	FormatCSV   = "csv"   // FormatCSV : comma-separated table with header
	FormatJSON  = "json"  // FormatJSON : array of rows
	FormatYAML  = "yaml"  // FormatYAML : sequence of rows
)

// DefaultFormat is the output format used if none is selected
const DefaultFormat = FormatPlain

// SupportedFormats lists all formats accepted by NewTablePrinter
var SupportedFormats = []string{FormatPlain, FormatText, FormatCSV, FormatJSON, FormatYAML}

// ValidateFormat checks if format is supported
func ValidateFormat(format string) error {
	for _, f := range SupportedFormats {
		if f == format {
			return nil
		}
	}
	return types.NewUnsupportedError(format, SupportedFormats)
}

var headers = [CountOutcol]string{
	"value",
	"hex",
	"binary",
	"flags",
}

func extract(row Row, col OutputColumn) string {
	switch col {
	case OutcolValue:
		return strconv.FormatUint(row.Value, 10)
	case OutcolHex:
		return row.Hex
	case OutcolBinary:
		return row.Binary
	case OutcolFlags:
		return strings.Join(row.Flags, " ")
	}
	panic(fmt.Sprintf("unknown output column %d", col))
}

// TablePrinter provides an interface for printing decoded flags in various
// formats, e.g. JSON, CSV, and nicely aligned human readable text.
//
// Call AddRow() for each entry you want to print (in order). When you've added
// all rows, call Print() to make sure that all data is printed.
//
// Note that some implementations may start printing data before you call Print().
type TablePrinter interface {
	AddRow(row Row)
	AddRows(ctx context.Context, rows Rows) error
	Print() error
}

// basePrinter encapsulates variables and methods used by all TablePrinter
// implementations.
type basePrinter struct {
	output io.Writer
	cols   []OutputColumn
}

// NewTablePrinter creates a printer for format writing to output. If no columns
// are selected, all of them are printed
func NewTablePrinter(output io.Writer, format string, cols ...OutputColumn) (TablePrinter, error) {
	if len(cols) == 0 {
		cols = AllColumns
	}
	for _, col := range cols {
		if col < 0 || col >= CountOutcol {
			return nil, fmt.Errorf("unknown output column %d", col)
		}
	}
	b := basePrinter{output: output, cols: cols}

	var printer TablePrinter
	switch format {
	case FormatPlain:
		printer = NewPlainTablePrinter(b)
	case FormatText:
		printer = NewTextTablePrinter(b)
	case FormatCSV:
		printer = NewCSVTablePrinter(b)
	case FormatJSON:
		printer = NewJSONTablePrinter(b)
	case FormatYAML:
		printer = NewYAMLTablePrinter(b)
	default:
		return nil, fmt.Errorf("unknown output format: %w", types.NewUnsupportedError(format, SupportedFormats))
	}
	return printer, nil
}

func addRows(ctx context.Context, p TablePrinter, rows Rows) error {
	for i, row := range rows {
		select {
		case <-ctx.Done():
			// printer filling was cancelled
			return fmt.Errorf("printing cancelled before fully filled. %d/%d rows processed: %w", i, len(rows), ctx.Err())
		default:
			p.AddRow(row)
		}
	}
	return nil
}

// PlainTablePrinter writes the selected columns of each row on a single line,
// separated by a single space. An empty flag list yields an empty column, so a
// row with value 0 is printed as "0 "
type PlainTablePrinter struct {
	basePrinter
	fields []string
	err    error
}

// NewPlainTablePrinter creates a new PlainTablePrinter
func NewPlainTablePrinter(b basePrinter) *PlainTablePrinter {
	return &PlainTablePrinter{
		basePrinter: b,
		fields:      make([]string, 0, len(b.cols)),
	}
}

// AddRow writes a row to the output
func (p *PlainTablePrinter) AddRow(row Row) {
	if p.err != nil {
		return
	}
	p.fields = p.fields[:0]
	for _, col := range p.cols {
		p.fields = append(p.fields, extract(row, col))
	}
	_, p.err = fmt.Fprintln(p.output, strings.Join(p.fields, " "))
}

func (p *PlainTablePrinter) AddRows(ctx context.Context, rows Rows) error {
	return addRows(ctx, p, rows)
}

// Print returns the first error encountered while writing rows
func (p *PlainTablePrinter) Print() error {
	return p.err
}

// TextTablePrinter writes an aligned table with a header line. The header is
// emphasized if the output is a terminal
type TextTablePrinter struct {
	basePrinter
	buf    *bytes.Buffer
	writer *tabwriter.Writer
}

// NewTextTablePrinter creates a new table printer
func NewTextTablePrinter(b basePrinter) *TextTablePrinter {
	buf := &bytes.Buffer{}
	t := &TextTablePrinter{
		basePrinter: b,
		buf:         buf,
		writer:      tabwriter.NewWriter(buf, 0, 1, 2, ' ', 0),
	}

	header := make([]string, 0, len(b.cols))
	for _, col := range t.cols {
		header = append(header, strings.ToUpper(headers[col]))
	}
	fmt.Fprintln(t.writer, strings.Join(header, "\t"))

	return t
}

// AddRow adds an entry to the table printer
func (t *TextTablePrinter) AddRow(row Row) {
	fields := make([]string, 0, len(t.cols))
	for _, col := range t.cols {
		fields = append(fields, extract(row, col))
	}
	fmt.Fprintln(t.writer, strings.Join(fields, "\t"))
}

func (t *TextTablePrinter) AddRows(ctx context.Context, rows Rows) error {
	return addRows(ctx, t, rows)
}

// Print aligns all rows and writes the table to the output
func (t *TextTablePrinter) Print() error {
	if err := t.writer.Flush(); err != nil {
		return err
	}

	header, body, _ := strings.Cut(t.buf.String(), "\n")

	// the emphasis is applied after alignment so the escape sequences don't
	// count towards the column widths
	f := shellformat.For(t.output)
	_, err := fmt.Fprintf(t.output, "%s\n%s", f.Fmt(shellformat.Bold, "%s", strings.TrimRight(header, " ")), body)
	return err
}

// CSVTablePrinter writes out all rows in CSV format
type CSVTablePrinter struct {
	basePrinter
	writer *csv.Writer
	fields []string
}

// NewCSVTablePrinter creates a new CSVTablePrinter
func NewCSVTablePrinter(b basePrinter) *CSVTablePrinter {
	c := CSVTablePrinter{
		b,
		csv.NewWriter(b.output),
		make([]string, 0, len(b.cols)),
	}

	for _, col := range c.cols {
		c.fields = append(c.fields, headers[col])
	}
	_ = c.writer.Write(c.fields)

	return &c
}

// AddRow writes a row to the CSVTablePrinter
func (c *CSVTablePrinter) AddRow(row Row) {
	c.fields = c.fields[:0]
	for _, col := range c.cols {
		c.fields = append(c.fields, extract(row, col))
	}
	_ = c.writer.Write(c.fields)
}

func (c *CSVTablePrinter) AddRows(ctx context.Context, rows Rows) error {
	return addRows(ctx, c, rows)
}

// Print flushes the writer and actually prints out all CSV rows contained in the table printer
func (c *CSVTablePrinter) Print() error {
	c.writer.Flush()
	return c.writer.Error()
}

// JSONTablePrinter collects all rows and serializes them as a JSON array
type JSONTablePrinter struct {
	basePrinter
	rows Rows
}

// NewJSONTablePrinter creates a new JSONTablePrinter
func NewJSONTablePrinter(b basePrinter) *JSONTablePrinter {
	return &JSONTablePrinter{basePrinter: b, rows: Rows{}}
}

// AddRow adds a row to the JSONTablePrinter
func (j *JSONTablePrinter) AddRow(row Row) {
	j.rows = append(j.rows, row)
}

func (j *JSONTablePrinter) AddRows(ctx context.Context, rows Rows) error {
	return addRows(ctx, j, rows)
}

// Print serializes all rows
func (j *JSONTablePrinter) Print() error {
	return jsoniter.NewEncoder(j.output).Encode(j.rows)
}

// YAMLTablePrinter collects all rows and serializes them as a YAML sequence
type YAMLTablePrinter struct {
	basePrinter
	rows Rows
}

// NewYAMLTablePrinter creates a new YAMLTablePrinter
func NewYAMLTablePrinter(b basePrinter) *YAMLTablePrinter {
	return &YAMLTablePrinter{basePrinter: b, rows: Rows{}}
}

// AddRow adds a row to the YAMLTablePrinter
func (y *YAMLTablePrinter) AddRow(row Row) {
	y.rows = append(y.rows, row)
}

func (y *YAMLTablePrinter) AddRows(ctx context.Context, rows Rows) error {
	return addRows(ctx, y, rows)
}

// Print serializes all rows
func (y *YAMLTablePrinter) Print() error {
	enc := yaml.NewEncoder(y.output)
	enc.SetIndent(2)
	if err := enc.Encode(y.rows); err != nil {
		return err
	}
	return enc.Close()
}
