package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

// Field is one key/value pair of an Item.
type Field struct {
	Key   string
	Value any
}

// Item is a beverage as sent by the catalog backend: a JSON object whose key
// order is preserved. Values are nil, bool, float64, string, []any or *Item.
type Item struct {
	fields []Field
}

// NewItem builds an item from fields in the given order. Later duplicates
// overwrite earlier values in place.
func NewItem(fields ...Field) *Item {
	it := &Item{}
	for _, f := range fields {
		it.Set(f.Key, f.Value)
	}
	return it
}

// Len returns the number of fields.
func (it *Item) Len() int {
	if it == nil {
		return 0
	}
	return len(it.fields)
}

// Fields returns a copy of the fields in order.
func (it *Item) Fields() []Field {
	if it == nil {
		return nil
	}
	out := make([]Field, len(it.fields))
	copy(out, it.fields)
	return out
}

// Keys returns the field names in order.
func (it *Item) Keys() []string {
	if it == nil {
		return nil
	}
	keys := make([]string, len(it.fields))
	for i, f := range it.fields {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the value stored under key and whether the key is present.
func (it *Item) Get(key string) (any, bool) {
	if it == nil {
		return nil, false
	}
	for _, f := range it.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of an existing key or appends a new one.
func (it *Item) Set(key string, value any) {
	for i := range it.fields {
		if it.fields[i].Key == key {
			it.fields[i].Value = value
			return
		}
	}
	it.fields = append(it.fields, Field{Key: key, Value: value})
}

// Delete removes key if present.
func (it *Item) Delete(key string) {
	for i := range it.fields {
		if it.fields[i].Key == key {
			it.fields = append(it.fields[:i], it.fields[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	out := &Item{fields: make([]Field, len(it.fields))}
	for i, f := range it.fields {
		out.fields[i] = Field{Key: f.Key, Value: cloneValue(f.Value)}
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Item:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// ID returns the raw id value.
func (it *Item) ID() (any, bool) {
	return it.Get("id")
}

// IDString returns the id as it appears in URLs, e.g. "3".
func (it *Item) IDString() string {
	id, ok := it.ID()
	return JSText(id, ok)
}

// Type returns the discriminant, or "" when it is missing or not a string.
func (it *Item) Type() string {
	v, _ := it.Get("type")
	s, _ := v.(string)
	return s
}

// IsBottle reports whether the item is partitioned into the bottle list.
func (it *Item) IsBottle() bool { return it.Type() == TypeBottle }

// IsCrate reports whether the item is partitioned into the crate list.
func (it *Item) IsCrate() bool { return it.Type() == TypeCrate }

// String returns the compact JSON form.
func (it *Item) String() string {
	return RawJSON(it)
}

// MarshalJSON writes the fields in order. Non-finite numbers become null.
func (it *Item) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, it); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping key order.
func (it *Item) UnmarshalJSON(data []byte) error {
	v, err := decodeDocument(data)
	if err != nil {
		return err
	}
	obj, ok := v.(*Item)
	if !ok {
		return fmt.Errorf("beverage must be a JSON object, got %s", jsonKind(v))
	}
	it.fields = obj.fields
	return nil
}

// DecodeCollection parses a catalog response body. A body that is valid JSON
// but not an array yields an empty collection; array elements that are not
// objects are skipped.
func DecodeCollection(data []byte) ([]*Item, error) {
	v, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode beverages: %w", err)
	}
	arr, ok := v.([]any)
	if !ok {
		return []*Item{}, nil
	}
	items := make([]*Item, 0, len(arr))
	for _, e := range arr {
		if obj, ok := e.(*Item); ok {
			items = append(items, obj)
		}
	}
	return items, nil
}

// DecodeValue parses any JSON document into the catalog value representation.
func DecodeValue(data []byte) (any, error) {
	return decodeDocument(data)
}

// decodeDocument reads exactly one JSON value; only whitespace may follow it.
func decodeDocument(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	switch tok, err := dec.Token(); {
	case err == io.EOF:
		return v, nil
	case err != nil:
		return nil, fmt.Errorf("invalid data after JSON value: %w", err)
	default:
		return nil, fmt.Errorf("unexpected %v after JSON value", tok)
	}
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		obj := &Item{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(FormatNumber(t))
	case int:
		buf.WriteString(FormatNumber(float64(t)))
	case string:
		return writeString(buf, t)
	case *Item:
		if t == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('{')
		for i, f := range t.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, f.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, f.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return err
		}
		buf.Write(data)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	start := buf.Len()
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	if strings.ContainsAny(s, "\u2028\u2029") {
		out := unescapeLineSeparators(buf.Bytes()[start:])
		buf.Truncate(start)
		buf.Write(out)
	}
	return nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes the encoder
// always emits back into the literal characters.
func unescapeLineSeparators(enc []byte) []byte {
	out := make([]byte, 0, len(enc))
	for i := 0; i < len(enc); i++ {
		if enc[i] != '\\' {
			out = append(out, enc[i])
			continue
		}
		if i+5 < len(enc) && enc[i+1] == 'u' && string(enc[i+2:i+5]) == "202" && (enc[i+5] == '8' || enc[i+5] == '9') {
			if enc[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		// Any other escape is two bytes, or six for \uXXXX; copying the
		// backslash and its successor keeps \\ pairs intact.
		out = append(out, enc[i])
		if i+1 < len(enc) {
			i++
			out = append(out, enc[i])
		}
	}
	return out
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return "object"
	}
}
