package csvexport

import (
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"strconv"
	"testing"
)

func benchmarkRecords() []Record {
	records := make([]Record, 512)
	for i := range records {
		records[i] = SliceRecord(i, "xxxxxxxxxxxxxxxx", "yyyy,yyyy", 1.5*float64(i), i%2 == 0, "quoted \"word\"")
	}
	return records
}

func BenchmarkStringify(b *testing.B) {
	records := benchmarkRecords()
	opts := Options{Header: []string{"id", "x", "y", "f", "b", "q"}, Charset: "utf-16le", AddByteOrderMarker: true}
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Stringify(context.Background(), Direct(records), opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	records := benchmarkRecords()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = Format(records, Options{})
	}
}

func BenchmarkEncodingCSV(b *testing.B) {
	rows := make([][]string, 512)
	for i := range rows {
		rows[i] = []string{strconv.Itoa(i), "xxxxxxxxxxxxxxxx", "yyyy,yyyy", strconv.FormatFloat(1.5*float64(i), 'f', -1, 64), "TRUE", "quoted \"word\""}
	}
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		w := stdcsv.NewWriter(&buf)
		w.UseCRLF = true
		if err := w.WriteAll(rows); err != nil {
			b.Fatal(err)
		}
	}
}
