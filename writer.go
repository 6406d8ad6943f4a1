package csvexport

import (
	"bufio"
	"errors"
	"io"
)

const (
	defaultBufferSize = 1 << 10 // 1024 bytes

	eol = "\r\n"
)

var (
	errNilWriter      = errors.New("csvexport: writer is nil")
	errWriterNoTarget = errors.New("csvexport: writer destination cannot be nil")
)

// Writer emits CSV rows built from Values. Rows are separated by CRLF and the last
// row written is never followed by a terminator.
type Writer struct {
	dst *bufio.Writer

	// Options controls field rendering, separators and column order.
	Options Options

	rows int
	err  error
}

// NewWriter creates a new Writer with internal buffering tuned for bulk writes.
func NewWriter(w io.Writer, opts Options) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst:     bufio.NewWriterSize(w, defaultBufferSize),
		Options: opts,
	}
}

// Reset updates the underlying writer while preserving the options. The next row
// written is treated as the first.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.rows = 0
	w.err = nil
}

// Rows reports how many rows have been written since the last Reset.
func (w *Writer) Rows() int {
	if w == nil {
		return 0
	}
	return w.rows
}

// Write emits a single row, stringifying each value and joining them with the field separator.
func (w *Writer) Write(fields []Value) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	if w.rows > 0 {
		if _, err := w.dst.WriteString(eol); err != nil {
			w.err = err
			return err
		}
	}

	sep := w.Options.fieldSep()
	for i := range fields {
		if i > 0 {
			if _, err := w.dst.WriteString(sep); err != nil {
				w.err = err
				return err
			}
		}
		if _, err := w.dst.WriteString(StringifyField(fields[i], w.Options)); err != nil {
			w.err = err
			return err
		}
	}
	w.rows++
	return nil
}

// WriteHeader emits the configured header row. It is a no-op when no header is set.
func (w *Writer) WriteHeader() error {
	if w == nil {
		return errNilWriter
	}
	if len(w.Options.Header) == 0 {
		return nil
	}
	titles := make([]Value, len(w.Options.Header))
	for i, title := range w.Options.Header {
		titles[i] = Text(title)
	}
	return w.Write(titles)
}

// WriteLabel emits the keys of r as a row.
func (w *Writer) WriteLabel(r Record) error {
	if w == nil {
		return errNilWriter
	}
	return w.Write(r.Keys())
}

// WriteRecord emits r, selecting fields by ColumnOrder when it is set.
func (w *Writer) WriteRecord(r Record) error {
	if w == nil {
		return errNilWriter
	}
	if len(w.Options.ColumnOrder) > 0 {
		return w.Write(r.Select(w.Options.ColumnOrder))
	}
	return w.Write(r.Values())
}

// WriteAll writes the header, the label row and every record, stopping at the first error.
func (w *Writer) WriteAll(records []Record) error {
	if w == nil {
		return errNilWriter
	}
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if w.Options.Label && len(records) > 0 {
		if err := w.WriteLabel(records[0]); err != nil {
			return err
		}
	}
	for _, record := range records {
		if err := w.WriteRecord(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}
