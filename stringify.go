package csvexport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultFilename is the download name used when none is configured.
const DefaultFilename = "download.csv"

var errNilSource = errors.New("csvexport: data source is nil")

// DataResolutionError reports that the data source failed to produce records.
type DataResolutionError struct {
	Err error
}

// Error formats the resolution failure with the underlying cause.
func (e *DataResolutionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvexport: data resolution failed: %v", e.Err)
}

// Unwrap returns the original cause.
func (e *DataResolutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Payload is the encoded CSV body tagged with the charset name it was requested with.
type Payload struct {
	Data    []byte
	Charset string
}

// MIMEType returns the content type for the payload, e.g. "text/csv;charset=utf-8;".
func (p *Payload) MIMEType() string {
	return "text/csv;charset=" + p.Charset + ";"
}

// WriteTo writes the payload bytes to w.
func (p *Payload) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Data)
	return int64(n), err
}

// Format renders records as CSV text: the header row, the label row and one row per record.
func Format(records []Record, opts Options) string {
	var sb strings.Builder
	w := NewWriter(&sb, opts)
	// A strings.Builder never fails, so neither can the writer.
	_ = w.WriteAll(records)
	_ = w.Flush()
	return sb.String()
}

// Stringify resolves src, renders the CSV text and encodes it in the configured charset.
// When src cannot be resolved it returns a *DataResolutionError and no payload.
func Stringify(ctx context.Context, src DataSource, opts Options) (*Payload, error) {
	if src == nil {
		return nil, &DataResolutionError{Err: errNilSource}
	}
	records, err := src.resolve(ctx)
	if err != nil {
		return nil, &DataResolutionError{Err: err}
	}

	text := Format(records, opts)
	name := opts.charsetName()
	return &Payload{
		Data:    Encode(ParseCharset(name), text, opts.AddByteOrderMarker),
		Charset: name,
	}, nil
}
