package csvexport

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	// DecimalSepLocale selects locale-aware number formatting for non-integer numbers.
	DecimalSepLocale = "locale"
	// DefaultLocale is used by DecimalSepLocale when Options.Locale is empty.
	DefaultLocale = "en-US"
)

// Options configures serialization. The zero value of every field selects its default.
type Options struct {
	// Header is emitted as the first row when non-empty.
	Header []string `yaml:"header"`
	// Label emits a row of the first record's keys.
	Label bool `yaml:"label"`
	// ColumnOrder selects and orders fields by key. Empty keeps each record's natural order.
	ColumnOrder []string `yaml:"columnOrder"`
	// FieldSep separates fields within a row. Default is ",".
	FieldSep string `yaml:"fieldSep"`
	// TxtDelim wraps text fields that need quoting. Default is `"`.
	TxtDelim string `yaml:"txtDelim"`
	// QuoteStrings wraps every text field in TxtDelim.
	QuoteStrings bool `yaml:"quoteStrings"`
	// DecimalSep replaces "." in non-integer numbers. Default is ".", "locale" formats per Locale.
	DecimalSep string `yaml:"decimalSep"`
	// Locale is the BCP 47 tag used when DecimalSep is "locale". Default is "en-US".
	Locale string `yaml:"locale"`
	// Charset is one of utf-8, utf-16, utf-16le or utf-16be, case-insensitive. Default is utf-8.
	Charset string `yaml:"charset"`
	// AddByteOrderMarker prefixes the payload with the charset's BOM.
	AddByteOrderMarker bool `yaml:"addByteOrderMarker"`
}

func (o Options) fieldSep() string {
	if o.FieldSep == "" {
		return ","
	}
	return o.FieldSep
}

func (o Options) txtDelim() string {
	if o.TxtDelim == "" {
		return `"`
	}
	return o.TxtDelim
}

func (o Options) decimalSep() string {
	if o.DecimalSep == "" {
		return "."
	}
	return o.DecimalSep
}

func (o Options) locale() string {
	if o.Locale == "" {
		return DefaultLocale
	}
	return o.Locale
}

func (o Options) charsetName() string {
	if o.Charset == "" {
		return UTF8.String()
	}
	return o.Charset
}

// LoadOptions reads Options from a YAML file and normalizes an escaped field separator.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("csvexport: failed to read options file %q: %w", path, err)
	}
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("csvexport: failed to parse options file %q: %w", path, err)
	}
	opts.FieldSep = NormalizeFieldSep(opts.FieldSep)
	return opts, nil
}

// OptionsFromMap builds Options from a loosely typed bag such as decoded attributes.
// Unknown keys are ignored and values of the wrong type are treated as absent.
func OptionsFromMap(m map[string]any) Options {
	var opts Options

	if v, ok := lookupAny(m, "header", "csvHeader"); ok {
		opts.Header = stringSlice(v)
	}
	if v, ok := lookupAny(m, "columnOrder", "csvColumnOrder"); ok {
		opts.ColumnOrder = stringSlice(v)
	}
	if v, ok := lookupAny(m, "label", "csvLabel"); ok {
		// Only a real boolean enables the label row.
		if b, isBool := v.(bool); isBool {
			opts.Label = b
		}
	}
	if v, ok := lookupAny(m, "fieldSep", "fieldSeparator"); ok {
		opts.FieldSep = NormalizeFieldSep(looseString(v))
	}
	if v, ok := lookupAny(m, "txtDelim", "textDelimiter"); ok {
		opts.TxtDelim = looseString(v)
	}
	if v, ok := lookupAny(m, "decimalSep", "decimalSeparator"); ok {
		opts.DecimalSep = looseString(v)
	}
	if v, ok := lookupAny(m, "locale"); ok {
		opts.Locale = looseString(v)
	}
	if v, ok := lookupAny(m, "charset"); ok {
		opts.Charset = looseString(v)
	}
	if v, ok := lookupAny(m, "quoteStrings"); ok {
		opts.QuoteStrings = looseBool(v)
	}
	if v, ok := lookupAny(m, "addByteOrderMarker", "addBom"); ok {
		opts.AddByteOrderMarker = looseBool(v)
	}
	return opts
}

func lookupAny(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringSlice(v any) []string {
	switch v.(type) {
	case []string, []any:
		s, err := cast.ToStringSliceE(v)
		if err != nil {
			return nil
		}
		return s
	default:
		return nil
	}
}

func looseString(v any) string {
	s, _ := v.(string)
	return s
}

func looseBool(v any) bool {
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}
