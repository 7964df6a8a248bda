package catalog

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, raw string) *Item {
	t.Helper()
	var it Item
	require.NoError(t, json.Unmarshal([]byte(raw), &it))
	return &it
}

func TestItem_UnmarshalKeepsOrder(t *testing.T) {
	it := mustItem(t, `{"type":"crate","id":3,"bottle":{"name":"Beer","volume":0.33},"price":35.0}`)

	assert.Equal(t, []string{"type", "id", "bottle", "price"}, it.Keys())
	assert.Equal(t, "3", it.IDString())
	assert.Equal(t, TypeCrate, it.Type())

	bottle, ok := it.Get("bottle")
	require.True(t, ok)
	require.IsType(t, &Item{}, bottle)
	assert.Equal(t, []string{"name", "volume"}, bottle.(*Item).Keys())
}

func TestItem_MarshalRoundTrip(t *testing.T) {
	raw := `{"id":1,"name":"Tom & Jerry <3>","price":35,"tags":["a",null,2.5],"bottle":{"isAlcoholic":false}}`
	it := mustItem(t, raw)

	data, err := json.Marshal(it)
	require.NoError(t, err)
	assert.Equal(t, raw, string(data))
	assert.Equal(t, raw, it.String())
}

func TestItem_MarshalNonFiniteAsNull(t *testing.T) {
	it := NewItem(Field{Key: "price", Value: math.NaN()}, Field{Key: "volume", Value: math.Inf(1)})
	assert.Equal(t, `{"price":null,"volume":null}`, it.String())
}

func TestItem_UnmarshalRejectsNonObject(t *testing.T) {
	var it Item
	err := json.Unmarshal([]byte(`[1,2]`), &it)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got array")
}

func TestItem_SetReplacesInPlace(t *testing.T) {
	it := NewItem(Field{Key: "a", Value: 1.0}, Field{Key: "b", Value: 2.0})
	it.Set("a", "x")
	it.Set("c", true)
	it.Delete("b")

	assert.Equal(t, []string{"a", "c"}, it.Keys())
	v, _ := it.Get("a")
	assert.Equal(t, "x", v)
}

func TestItem_CloneIsDeep(t *testing.T) {
	it := mustItem(t, `{"bottle":{"name":"Beer"}}`)
	clone := it.Clone()

	b, _ := clone.Get("bottle")
	b.(*Item).Set("name", "Cola")

	orig, _ := it.Get("bottle")
	name, _ := orig.(*Item).Get("name")
	assert.Equal(t, "Beer", name)
}

func TestDecodeCollection(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "array", body: `[{"id":1},{"id":2}]`, want: 2},
		{name: "object body is empty", body: `{"status":"ok"}`, want: 0},
		{name: "null body is empty", body: `null`, want: 0},
		{name: "non-object elements skipped", body: `[{"id":1},3,"x"]`, want: 1},
		{name: "invalid json", body: `[{"id":`, wantErr: true},
		{name: "trailing newline", body: "[{\"id\":1}]\n", want: 1},
		{name: "trailing garbage", body: `[{"id":1,"type":"bottle","name":"Cola","price":2}] not json`, wantErr: true},
		{name: "second document", body: `[{"id":1}] [{"id":2}]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := DecodeCollection([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestDecodeValue_RejectsTrailingData(t *testing.T) {
	_, err := DecodeValue([]byte(`{"id":1} }`))
	assert.Error(t, err)

	var it Item
	assert.Error(t, it.UnmarshalJSON([]byte(`{"id":1} x`)))

	v, err := DecodeValue([]byte(" {\"id\":1}\r\n"))
	require.NoError(t, err)
	assert.IsType(t, &Item{}, v)
}

func TestRawJSON_LineSeparatorsStayLiteral(t *testing.T) {
	assert.Equal(t, "\"a\u2028b\u2029c<&>\"", RawJSON("a\u2028b\u2029c<&>"))
	// A backslash followed by the text u2028 is not a separator.
	assert.Equal(t, `"\\u2028"`, RawJSON(`\u2028`))
	assert.Equal(t, "{\"note\":\"x\u2028y\"}", NewItem(Field{Key: "note", Value: "x\u2028y"}).String())
}

func TestJSText(t *testing.T) {
	assert.Equal(t, "undefined", JSText(nil, false))
	assert.Equal(t, "null", JSText(nil, true))
	assert.Equal(t, "2", JSText(2.0, true))
	assert.Equal(t, "0.5", JSText(0.5, true))
	assert.Equal(t, "35", JSText(35.0, true))
	assert.Equal(t, "false", JSText(false, true))
	assert.Equal(t, "[object Object]", JSText(NewItem(), true))
	assert.Equal(t, "a,,2", JSText([]any{"a", nil, 2.0}, true))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1e+21", FormatNumber(1e21))
	assert.Equal(t, "1.5e-7", FormatNumber(1.5e-7))
	assert.Equal(t, "0", FormatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "123456789", FormatNumber(123456789))
	assert.Equal(t, "NaN", FormatNumber(math.NaN()))
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil, false))
	assert.False(t, Truthy(nil, true))
	assert.False(t, Truthy("", true))
	assert.False(t, Truthy(0.0, true))
	assert.False(t, Truthy(math.NaN(), true))
	assert.False(t, Truthy(false, true))
	assert.True(t, Truthy("0", true))
	assert.True(t, Truthy(NewItem(), true))
	assert.True(t, Truthy([]any{}, true))
}
