package csvexport

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cast"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindOther holds anything that is not a number, string or boolean, including nil.
	KindOther Kind = iota
	// KindInt holds a signed integer.
	KindInt
	// KindFloat holds a float64, which may still be integral.
	KindFloat
	// KindText holds a string.
	KindText
	// KindBool holds a boolean.
	KindBool
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "other"
	}
}

// Value is a single scalar field. The zero Value is Other(nil) and renders as an empty field.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	s     string
	b     bool
	other any
}

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a string Value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Other wraps an arbitrary value that is rendered with its default text conversion.
func Other(v any) Value { return Value{kind: KindOther, other: v} }

// ValueOf classifies a loosely typed Go value into a Value.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case nil:
		return Other(nil)
	case string:
		return Text(x)
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return unsignedValue(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return unsignedValue(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i)
		}
		if f, err := x.Float64(); err == nil {
			return Float(f)
		}
		return Text(x.String())
	default:
		return Other(v)
	}
}

func unsignedValue(u uint64) Value {
	if u > math.MaxInt64 {
		return Other(u)
	}
	return Int(int64(u))
}

// Values converts each element with ValueOf.
func Values(vs ...any) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = ValueOf(v)
	}
	return out
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Interface returns the underlying Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	case KindBool:
		return v.b
	default:
		return v.other
	}
}

// String returns the default text conversion of v, the form used when no
// stringification rule applies.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatNumber(v.f)
	case KindText:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		if v.other == nil {
			return ""
		}
		s, err := cast.ToStringE(v.other)
		if err != nil {
			return fmt.Sprint(v.other)
		}
		return s
	}
}

// IsFloat reports whether v is a non-integer number. Non-finite floats count as floats.
func IsFloat(v Value) bool {
	if v.kind != KindFloat {
		return false
	}
	if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
		return true
	}
	return math.Mod(v.f, 1) != 0
}

// formatNumber renders f the shortest way that round-trips, switching to exponent
// form only for very large or very small magnitudes.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-7 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
