package csvexport

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// StringifyField renders one field according to opts.
func StringifyField(v Value, opts Options) string {
	decimalSep := opts.decimalSep()

	if IsFloat(v) {
		if decimalSep == DecimalSepLocale {
			return formatLocale(v.f, opts.locale())
		}
		if decimalSep != "." {
			return strings.Replace(formatNumber(v.f), ".", decimalSep, 1)
		}
	}

	switch v.kind {
	case KindText:
		return quoteText(v.s, opts)
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	default:
		return v.String()
	}
}

// StringifyFields renders each value with StringifyField.
func StringifyFields(values []Value, opts Options) []string {
	out := make([]string, len(values))
	for i := range values {
		out[i] = StringifyField(values[i], opts)
	}
	return out
}

func quoteText(s string, opts Options) string {
	delim := opts.txtDelim()
	s = strings.ReplaceAll(s, delim, delim+delim)
	if opts.QuoteStrings || textNeedsQuote(s, opts.fieldSep()) {
		return delim + s + delim
	}
	return s
}

func textNeedsQuote(s, sep string) bool {
	return strings.Contains(s, sep) || strings.ContainsAny(s, "\r\n")
}

// formatLocale renders f with the grouping and decimal symbols of the given locale.
// An unparsable tag falls back to DefaultLocale.
func formatLocale(f float64, tag string) string {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.MustParse(DefaultLocale)
	}
	p := message.NewPrinter(lang)
	return p.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
}
