package csvexport

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidJSON is returned when record input is not valid JSON.
	ErrInvalidJSON = errors.New("csvexport: invalid JSON input")
	// ErrNotArray is returned when record input is valid JSON but not an array.
	ErrNotArray = errors.New("csvexport: JSON input is not an array")
)

// RecordsFromJSON decodes a JSON array of objects or arrays into records. Object
// members keep their document order.
func RecordsFromJSON(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	var records []Record
	root.ForEach(func(_, item gjson.Result) bool {
		records = append(records, recordFromJSON(item))
		return true
	})
	return records, nil
}

func recordFromJSON(item gjson.Result) Record {
	switch {
	case item.IsObject():
		var fields []Field
		item.ForEach(func(key, value gjson.Result) bool {
			fields = append(fields, Field{Key: Text(key.String()), Value: valueFromJSON(value)})
			return true
		})
		return NewRecord(fields...)
	case item.IsArray():
		var fields []Field
		item.ForEach(func(_, value gjson.Result) bool {
			fields = append(fields, Field{Key: Int(int64(len(fields))), Value: valueFromJSON(value)})
			return true
		})
		return NewRecord(fields...)
	default:
		return NewRecord(Field{Key: Int(0), Value: valueFromJSON(item)})
	}
}

func valueFromJSON(v gjson.Result) Value {
	switch v.Type {
	case gjson.String:
		return Text(v.String())
	case gjson.True:
		return Bool(true)
	case gjson.False:
		return Bool(false)
	case gjson.Number:
		if !strings.ContainsAny(v.Raw, ".eE") {
			if i := v.Int(); float64(i) == v.Num {
				return Int(i)
			}
		}
		return Float(v.Num)
	case gjson.JSON:
		return Other(v.Raw)
	default:
		return Other(nil)
	}
}
