// # csvexport: Record-to-CSV Serialization with Charset Projection for Go
//
// csvexport turns an in-memory collection of records into a CSV text body and projects that
// body into a byte payload in one of four charsets, ready to be served or saved as a file.
//
// # Features
//
// - Field stringification with delimiter doubling, forced or structural quoting, `TRUE`/`FALSE` booleans and custom or locale-aware decimal separators.
// - Optional header row, label row derived from the first record's keys, and explicit column order.
// - Buffered `Writer` emitting CRLF-separated rows with no trailing terminator.
// - Byte encoders for `utf-8`, `utf-16`, `utf-16be` and `utf-16le`, each with its standard byte-order mark.
// - Data sources that are direct, produced on demand, or deferred behind a future, resolved once by `Stringify`.
// - Loose option bags (`OptionsFromMap`), YAML option files (`LoadOptions`) and JSON record input (`RecordsFromJSON`).
//
// # Getting Started
//
//	payload, err := csvexport.Stringify(ctx, csvexport.Direct(records), csvexport.Options{
//		Header:  []string{"A", "B"},
//		Charset: "utf-16le",
//	})
//
// The `download` package serves a payload over HTTP as a named attachment and `cmd/csvexport`
// converts JSON files from the command line.
package csvexport
