package csvexport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsFromJSON(t *testing.T) {
	t.Parallel()

	input := `[
		{"name": "Widget, large", "price": 2.5, "stock": 10, "active": true, "note": null},
		{"name": "Gadget", "price": 3.0, "stock": -1, "active": false, "note": {"k": [1, 2]}},
		["x", 1e3, 7]
	]`

	records, err := RecordsFromJSON([]byte(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, []Value{Text("name"), Text("price"), Text("stock"), Text("active"), Text("note")}, first.Keys())
	assert.Equal(t, []Value{Text("Widget, large"), Float(2.5), Int(10), Bool(true), Other(nil)}, first.Values())

	note, ok := records[1].Lookup("note")
	require.True(t, ok)
	assert.Equal(t, KindOther, note.Kind())
	assert.Equal(t, `{"k": [1, 2]}`, note.String())

	price, ok := records[1].Lookup("price")
	require.True(t, ok)
	assert.Equal(t, KindFloat, price.Kind())

	assert.Equal(t, []Value{Int(0), Int(1), Int(2)}, records[2].Keys())
	assert.Equal(t, []Value{Text("x"), Float(1000), Int(7)}, records[2].Values())
}

func TestRecordsFromJSONFormat(t *testing.T) {
	t.Parallel()

	records, err := RecordsFromJSON([]byte(`[{"z":1,"a":"x,y"},{"z":2.5,"a":"z"}]`))
	require.NoError(t, err)

	payload, err := Stringify(context.Background(), Direct(records), Options{Label: true})
	require.NoError(t, err)
	assert.Equal(t, "z,a\r\n1,\"x,y\"\r\n2.5,z", string(payload.Data))
}

func TestRecordsFromJSONScalarItems(t *testing.T) {
	t.Parallel()

	records, err := RecordsFromJSON([]byte(`["solo", 4]`))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []Value{Text("solo")}, records[0].Values())
	assert.Equal(t, "solo\r\n4", Format(records, Options{}))
}

func TestRecordsFromJSONErrors(t *testing.T) {
	t.Parallel()

	_, err := RecordsFromJSON([]byte(`[{"a":1}`))
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = RecordsFromJSON([]byte(`{"a":1}`))
	assert.ErrorIs(t, err, ErrNotArray)

	records, err := RecordsFromJSON([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}
