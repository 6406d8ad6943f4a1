package csvexport

import (
	"strings"
	"unicode/utf16"
)

// Charset names a supported byte projection of the CSV text.
type Charset uint8

const (
	// UTF8 is the default charset.
	UTF8 Charset = iota
	// UTF16 is big-endian UTF-16, identical to UTF16BE.
	UTF16
	// UTF16LE is little-endian UTF-16.
	UTF16LE
	// UTF16BE is big-endian UTF-16.
	UTF16BE
)

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16BE = []byte{0xfe, 0xff}
	bomUTF16LE = []byte{0xff, 0xfe}
)

// String returns the canonical lower-case charset name.
func (c Charset) String() string {
	switch c {
	case UTF16:
		return "utf-16"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// ParseCharset resolves a charset name case-insensitively. Unknown names fall back to UTF8.
func ParseCharset(name string) Charset {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-16":
		return UTF16
	case "utf-16le":
		return UTF16LE
	case "utf-16be":
		return UTF16BE
	default:
		return UTF8
	}
}

// BOM returns the byte-order mark for c. The slice must not be modified.
func (c Charset) BOM() []byte {
	switch c {
	case UTF16, UTF16BE:
		return bomUTF16BE
	case UTF16LE:
		return bomUTF16LE
	default:
		return bomUTF8
	}
}

// Encode projects text into bytes using c.
func Encode(c Charset, text string, addBOM bool) []byte {
	switch c {
	case UTF16:
		return EncodeUTF16(text, addBOM)
	case UTF16LE:
		return EncodeUTF16LE(text, addBOM)
	case UTF16BE:
		return EncodeUTF16BE(text, addBOM)
	default:
		return EncodeUTF8(text, addBOM)
	}
}

// EncodeUTF8 encodes every UTF-16 code unit of text on its own: one byte up to 0x7F,
// two bytes up to 0x7FF, three bytes otherwise. Surrogate pairs are not combined, so
// characters outside the Basic Multilingual Plane take six bytes.
func EncodeUTF8(text string, addBOM bool) []byte {
	units := utf16.Encode([]rune(text))
	out := make([]byte, 0, len(units)*3+len(bomUTF8))
	if addBOM {
		out = append(out, bomUTF8...)
	}
	for _, u := range units {
		switch {
		case u < 0x80:
			out = append(out, byte(u))
		case u < 0x800:
			out = append(out, byte(u>>6)|0xc0, byte(u&0x3f)|0x80)
		default:
			out = append(out, byte(u>>12)|0xe0, byte((u>>6)&0x3f)|0x80, byte(u&0x3f)|0x80)
		}
	}
	return out
}

// EncodeUTF16 is EncodeUTF16BE.
func EncodeUTF16(text string, addBOM bool) []byte {
	return EncodeUTF16BE(text, addBOM)
}

// EncodeUTF16BE writes each code unit high byte first.
func EncodeUTF16BE(text string, addBOM bool) []byte {
	units := utf16.Encode([]rune(text))
	out := make([]byte, 0, len(units)*2+len(bomUTF16BE))
	if addBOM {
		out = append(out, bomUTF16BE...)
	}
	for _, u := range units {
		out = append(out, byte(u>>8), byte(u))
	}
	return out
}

// EncodeUTF16LE writes each code unit low byte first.
func EncodeUTF16LE(text string, addBOM bool) []byte {
	units := utf16.Encode([]rune(text))
	out := make([]byte, 0, len(units)*2+len(bomUTF16LE))
	if addBOM {
		out = append(out, bomUTF16LE...)
	}
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}
