package csvexport

import (
	stdcsv "encoding/csv"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzFormatRoundTrip(f *testing.F) {
	seeds := [][2]string{
		{"", ""},
		{"a", "b"},
		{"a,b", "c"},
		{"he said \"hi\"", "x"},
		{"multi\nline", ""},
		{"\"\"", ","},
	}
	for _, seed := range seeds {
		f.Add(seed[0], seed[1])
	}

	f.Fuzz(func(t *testing.T, a, b string) {
		// encoding/csv folds \r\n inside quoted fields, so CR is out of scope here.
		if strings.ContainsRune(a+b, '\r') || !utf8.ValidString(a+b) {
			t.Skip()
		}

		records := []Record{SliceRecord(a, b), SliceRecord(b, a)}
		out := Format(records, Options{QuoteStrings: true})

		if strings.HasSuffix(out, "\r\n") {
			t.Fatalf("output ends with a terminator: %q", truncateForMessage(out))
		}

		r := stdcsv.NewReader(strings.NewReader(out))
		r.FieldsPerRecord = -1
		got, err := r.ReadAll()
		if err != nil {
			t.Fatalf("encoding/csv rejected %q: %v", truncateForMessage(out), err)
		}
		want := [][]string{{a, b}, {b, a}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round trip mismatch: got %q want %q", got, want)
		}
	})
}

func truncateForMessage(s string) string {
	const limit = 128
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
