package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// FieldKind names how an edited string is turned back into a JSON value.
type FieldKind string

const (
	// KindAuto guesses: numeric text becomes a number, "true"/"false" a
	// boolean, anything else stays a string.
	KindAuto FieldKind = "auto"
	// KindString keeps the text verbatim.
	KindString FieldKind = "string"
	// KindNumber requires a numeric literal.
	KindNumber FieldKind = "number"
	// KindInteger requires a numeric literal without fraction.
	KindInteger FieldKind = "integer"
	// KindBoolean requires "true" or "false".
	KindBoolean FieldKind = "boolean"
)

// ParseFieldKind validates a kind read from configuration. "" means auto.
func ParseFieldKind(s string) (FieldKind, error) {
	switch k := FieldKind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindAuto, nil
	case KindAuto, KindString, KindNumber, KindInteger, KindBoolean:
		return k, nil
	default:
		return "", fmt.Errorf("unknown field kind %q (want auto, string, number, integer or boolean)", s)
	}
}

// CoercionPolicy maps field names to kinds. Unlisted fields use KindAuto.
type CoercionPolicy struct {
	kinds map[string]FieldKind
}

// NewCoercionPolicy copies kinds into a policy.
func NewCoercionPolicy(kinds map[string]FieldKind) CoercionPolicy {
	p := CoercionPolicy{kinds: make(map[string]FieldKind, len(kinds))}
	for field, kind := range kinds {
		p.kinds[field] = kind
	}
	return p
}

// KindFor returns the kind configured for field.
func (p CoercionPolicy) KindFor(field string) FieldKind {
	if k, ok := p.kinds[field]; ok && k != "" {
		return k
	}
	return KindAuto
}

// Overrides lists the fields that do not use KindAuto, sorted by name.
func (p CoercionPolicy) Overrides() []string {
	var out []string
	for field, kind := range p.kinds {
		if kind != KindAuto && kind != "" {
			out = append(out, field)
		}
	}
	sort.Strings(out)
	return out
}

// Coerce converts the raw text of field according to its kind.
func (p CoercionPolicy) Coerce(field, raw string) (any, error) {
	kind := p.KindFor(field)
	switch kind {
	case KindString:
		return raw, nil
	case KindNumber, KindInteger:
		f, ok := ToNumber(raw)
		if !ok || (kind == KindInteger && f != math.Trunc(f)) {
			return nil, &ValidationError{Field: field, Value: raw, Kind: kind}
		}
		return f, nil
	case KindBoolean:
		switch raw {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, &ValidationError{Field: field, Value: raw, Kind: kind}
	default:
		return CoerceAuto(raw), nil
	}
}

// CoerceAuto applies the guessing rule of KindAuto.
func CoerceAuto(raw string) any {
	if f, ok := ToNumber(raw); ok {
		return f
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}

// Input is the current content of one edit input.
type Input struct {
	ID    string
	Value string
}

// BuildUpdate assembles the update body {id, ...coercedFields} from the edit
// inputs. The field name is the input ID without its "input-" prefix.
func (p CoercionPolicy) BuildUpdate(id any, inputs []Input) (*Item, error) {
	updated := NewItem(Field{Key: "id", Value: id})
	for _, in := range inputs {
		key := FieldFromInputID(in.ID)
		v, err := p.Coerce(key, in.Value)
		if err != nil {
			return nil, err
		}
		updated.Set(key, v)
	}
	return updated, nil
}
