package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceAuto(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"42", 42.0},
		{"3.5", 3.5},
		{" 7 ", 7.0},
		{"1e3", 1000.0},
		{".5", 0.5},
		{"0x1F", 31.0},
		{"0b101", 5.0},
		{"007", 7.0},
		{"abc", "abc"},
		{"", ""},
		{"   ", "   "},
		{"true", true},
		{"false", false},
		{"True", "True"},
		{"12abc", "12abc"},
		{"1e", "1e"},
		{"0o9", "0o9"},
		{"\u00a07\u2028", 7.0},
		{"\ufeff8\t", 8.0},
		{"\u00851", "\u00851"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceAuto(tt.in))
		})
	}

	inf := CoerceAuto("-Infinity")
	require.IsType(t, 0.0, inf)
	assert.True(t, math.IsInf(inf.(float64), -1))
}

func TestCoercionPolicy_Kinds(t *testing.T) {
	p := NewCoercionPolicy(map[string]FieldKind{
		"supplier":    KindString,
		"price":       KindNumber,
		"inStock":     KindInteger,
		"isAlcoholic": KindBoolean,
	})

	v, err := p.Coerce("supplier", "007")
	require.NoError(t, err)
	assert.Equal(t, "007", v)

	v, err = p.Coerce("price", "2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = p.Coerce("price", "cheap")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
	assert.Equal(t, KindNumber, verr.Kind)

	_, err = p.Coerce("inStock", "1.5")
	assert.Error(t, err)

	v, err = p.Coerce("isAlcoholic", "false")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = p.Coerce("isAlcoholic", "yes")
	assert.Error(t, err)

	v, err = p.Coerce("name", "42")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	assert.Equal(t, []string{"inStock", "isAlcoholic", "price", "supplier"}, p.Overrides())
}

func TestParseFieldKind(t *testing.T) {
	k, err := ParseFieldKind("")
	require.NoError(t, err)
	assert.Equal(t, KindAuto, k)

	k, err = ParseFieldKind(" String ")
	require.NoError(t, err)
	assert.Equal(t, KindString, k)

	_, err = ParseFieldKind("date")
	assert.Error(t, err)
}

func TestBuildUpdate(t *testing.T) {
	p := NewCoercionPolicy(nil)
	updated, err := p.BuildUpdate(3.0, []Input{
		{ID: "input-name", Value: "Beer"},
		{ID: "input-price", Value: "42"},
		{ID: "input-isAlcoholic", Value: "true"},
		{ID: "input-supplier", Value: "abc"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"id":3,"name":"Beer","price":42,"isAlcoholic":true,"supplier":"abc"}`, updated.String())
}

func TestBuildUpdate_ValidationStops(t *testing.T) {
	p := NewCoercionPolicy(map[string]FieldKind{"price": KindNumber})
	_, err := p.BuildUpdate(1.0, []Input{{ID: "input-price", Value: "x"}})
	assert.Error(t, err)
}

func TestEditFieldsAndDetailRows(t *testing.T) {
	it := mustItem(t, `{"id":2,"type":"crate","bottle":{"name":"Beer"},"noOfBottles":12,"note":null}`)

	rows := DetailRows(it)
	require.Len(t, rows, 5)
	assert.Equal(t, DetailRow{Key: "id", Value: "2"}, rows[0])
	assert.Equal(t, DetailRow{Key: "bottle", Value: `{"name":"Beer"}`, Nested: true}, rows[2])
	assert.Equal(t, DetailRow{Key: "note", Value: "null", Nested: true}, rows[4])

	fields := EditFields(it)
	require.Len(t, fields, 5)
	assert.False(t, fields[0].Editable, "id is read-only")
	assert.True(t, fields[1].Editable)
	assert.Equal(t, "input-type", fields[1].InputID())
	assert.False(t, fields[2].Editable)
	assert.True(t, fields[2].Nested)
	assert.Equal(t, "12", fields[3].Value)
}

func TestFieldFromInputID(t *testing.T) {
	assert.Equal(t, "price", FieldFromInputID("input-price"))
	assert.Equal(t, "my-input-x", FieldFromInputID("my-input-input-x"))
}

func TestOverrideInputs(t *testing.T) {
	it := mustItem(t, `{"id":1,"type":"bottle","name":"Cola","price":2,"meta":{"x":1}}`)

	inputs, err := OverrideInputs(it, map[string]string{"price": "42"})
	require.NoError(t, err)
	assert.Equal(t, []Input{
		{ID: "input-type", Value: "bottle"},
		{ID: "input-name", Value: "Cola"},
		{ID: "input-price", Value: "42"},
	}, inputs)

	updated, err := NewCoercionPolicy(nil).BuildUpdate(1.0, inputs)
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"type":"bottle","name":"Cola","price":42}`, updated.String())
}

func TestOverrideInputs_RejectsReadOnlyAndUnknown(t *testing.T) {
	it := mustItem(t, `{"id":1,"type":"bottle","meta":{"x":1}}`)

	for _, key := range []string{"id", "meta", "color"} {
		_, err := OverrideInputs(it, map[string]string{key: "x"})
		assert.Error(t, err, key)
	}
}
