package csvexport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromMap(t *testing.T) {
	t.Parallel()

	opts := OptionsFromMap(map[string]any{
		"fieldSeparator":   `\t`,
		"textDelimiter":    "'",
		"decimalSeparator": ",",
		"quoteStrings":     "true",
		"addBom":           "1",
		"charset":          "UTF-16LE",
		"csvHeader":        []any{"A", 2},
		"csvColumnOrder":   []string{"b", "a"},
		"csvLabel":         true,
		"lazyLoad":         "true",
		"filename":         "report.csv",
	})

	assert.Equal(t, Options{
		Header:             []string{"A", "2"},
		Label:              true,
		ColumnOrder:        []string{"b", "a"},
		FieldSep:           "\t",
		TxtDelim:           "'",
		QuoteStrings:       true,
		DecimalSep:         ",",
		Charset:            "UTF-16LE",
		AddByteOrderMarker: true,
	}, opts)
}

func TestOptionsFromMapMalformed(t *testing.T) {
	t.Parallel()

	opts := OptionsFromMap(map[string]any{
		"header":       "A B",
		"columnOrder":  42,
		"label":        "true",
		"fieldSep":     9,
		"quoteStrings": "maybe",
		"charset":      nil,
		"decimalSep":   "",
	})
	assert.Equal(t, Options{}, opts)

	// Malformed options degrade to the defaults.
	records := []Record{SliceRecord("a b", 1.5)}
	assert.Equal(t, "a b,1.5", Format(records, opts))
	assert.Equal(t, "utf-8", opts.charsetName())
}

func TestOptionsFromMapPrimaryKeysWin(t *testing.T) {
	t.Parallel()

	opts := OptionsFromMap(map[string]any{
		"fieldSep":       ";",
		"fieldSeparator": "|",
		"label":          false,
		"csvLabel":       true,
	})
	assert.Equal(t, ";", opts.FieldSep)
	assert.False(t, opts.Label)
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	content := `header: [Name, Price]
label: false
columnOrder: [name, price]
fieldSep: '\t'
txtDelim: "'"
quoteStrings: true
decimalSep: locale
locale: de-DE
charset: utf-16le
addByteOrderMarker: true
unknownKey: ignored
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, Options{
		Header:             []string{"Name", "Price"},
		ColumnOrder:        []string{"name", "price"},
		FieldSep:           "\t",
		TxtDelim:           "'",
		QuoteStrings:       true,
		DecimalSep:         "locale",
		Locale:             "de-DE",
		Charset:            "utf-16le",
		AddByteOrderMarker: true,
	}, opts)
}

func TestLoadOptionsErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("header: [unterminated"), 0o644))
	_, err = LoadOptions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse options file")
}

func TestSpecialChars(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		`\t`: "\t",
		`\b`: "\b",
		`\v`: "\v",
		`\f`: "\f",
		`\r`: "\r",
	}
	for token, want := range cases {
		assert.True(t, IsSpecialChar(token), token)
		assert.Equal(t, want, ResolveSpecialChar(token), token)
		assert.Equal(t, want, NormalizeFieldSep(token), token)
	}

	for _, token := range []string{`\n`, ",", "\t", "", `\\t`} {
		assert.False(t, IsSpecialChar(token), token)
		assert.Equal(t, "", ResolveSpecialChar(token), token)
		assert.Equal(t, token, NormalizeFieldSep(token), token)
	}
}
