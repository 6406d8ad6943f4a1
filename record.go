package csvexport

import "sort"

// Field is one keyed value of a Record.
type Field struct {
	Key   Value
	Value Value
}

// Record is an ordered set of fields. Sequence records are keyed by index, mapping
// records by field name.
type Record struct {
	fields []Field
}

// NewRecord builds a record that keeps the given field order.
func NewRecord(fields ...Field) Record {
	return Record{fields: fields}
}

// SliceRecord builds a sequence record keyed by position.
func SliceRecord(values ...any) Record {
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = Field{Key: Int(int64(i)), Value: ValueOf(v)}
	}
	return Record{fields: fields}
}

// MapRecord builds a mapping record. Go maps carry no order, so fields follow
// ascending key order.
func MapRecord(m map[string]any) Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, len(keys))
	for i, k := range keys {
		fields[i] = Field{Key: Text(k), Value: ValueOf(m[k])}
	}
	return Record{fields: fields}
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Fields returns the fields in natural order. The slice must not be modified.
func (r Record) Fields() []Field { return r.fields }

// Keys returns the field keys in natural order.
func (r Record) Keys() []Value {
	keys := make([]Value, len(r.fields))
	for i := range r.fields {
		keys[i] = r.fields[i].Key
	}
	return keys
}

// Values returns the field values in natural order.
func (r Record) Values() []Value {
	values := make([]Value, len(r.fields))
	for i := range r.fields {
		values[i] = r.fields[i].Value
	}
	return values
}

// Lookup finds the value whose key has the given text form, so "2" selects index 2
// of a sequence record.
func (r Record) Lookup(key string) (Value, bool) {
	for i := range r.fields {
		if r.fields[i].Key.String() == key {
			return r.fields[i].Value, true
		}
	}
	return Value{}, false
}

// Select returns the values for keys in order. Missing keys yield the zero Value.
func (r Record) Select(keys []string) []Value {
	values := make([]Value, len(keys))
	for i, k := range keys {
		values[i], _ = r.Lookup(k)
	}
	return values
}
