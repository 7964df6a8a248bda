package catalog

import (
	"bytes"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Beverage kinds used for partitioning.
const (
	TypeBottle = "bottle"
	TypeCrate  = "crate"
)

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)$`)
	decimalPrefix  = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	integerPrefix  = regexp.MustCompile(`^[+-]?\d+`)
	radixLiteral   = regexp.MustCompile(`^0([xXoObB])([0-9a-fA-F]+)$`)
)

// FormatNumber renders a number in shortest round-trip form: 2, 0.5, 1e+21.
func FormatNumber(f float64) string {
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
	if abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// 1e-07 -> 1e-7
		if n := len(s); n >= 4 && s[n-4] == 'e' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// JSText converts a value to the text an interpolated template shows.
// present=false stands for an absent key.
func JSText(v any, present bool) string {
	if !present {
		return "undefined"
	}
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return FormatNumber(t)
	case int:
		return strconv.Itoa(t)
	case string:
		return t
	case *Item:
		return "[object Object]"
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			if e != nil {
				parts[i] = JSText(e, true)
			}
		}
		return strings.Join(parts, ",")
	default:
		return RawJSON(t)
	}
}

// Truthy reports whether a value counts as set in a conditional.
func Truthy(v any, present bool) bool {
	if !present {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// IsObject reports whether a value is an object or array (null excluded).
func IsObject(v any) bool {
	switch t := v.(type) {
	case *Item:
		return t != nil
	case []any:
		return true
	default:
		return false
	}
}

// RawJSON returns the compact JSON text of a value.
func RawJSON(v any) string {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return ""
	}
	return buf.String()
}

// isJSSpace reports whether r is white space or a line terminator for
// string-to-number conversion. U+0085 is neither.
func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', '\n', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func trimJS(s string) string {
	return strings.TrimFunc(s, isJSSpace)
}

// ToNumber converts a whole string to a number with numeric-literal rules:
// surrounding whitespace ignored, decimal, exponent, Infinity and 0x/0o/0b
// forms accepted. ok is false for anything else, including blank input.
func ToNumber(s string) (float64, bool) {
	s = trimJS(s)
	if s == "" {
		return 0, false
	}
	if m := radixLiteral.FindStringSubmatch(s); m != nil {
		base := 16
		switch m[1] {
		case "o", "O":
			base = 8
		case "b", "B":
			base = 2
		}
		n, ok := new(big.Int).SetString(m[2], base)
		if !ok {
			return 0, false
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, true
	}
	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	return parseDecimal(s), true
}

// ParseFloatPrefix parses the longest leading decimal number, ignoring
// leading whitespace. "3.5abc" gives 3.5; "" and "abc" give NaN.
func ParseFloatPrefix(s string) float64 {
	m := decimalPrefix.FindString(trimJS(s))
	if m == "" {
		return math.NaN()
	}
	return parseDecimal(m)
}

// ParseIntPrefix parses the leading base-10 integer. "12.7" gives 12.
func ParseIntPrefix(s string) float64 {
	m := integerPrefix.FindString(trimJS(s))
	if m == "" {
		return math.NaN()
	}
	return parseDecimal(m)
}

func parseDecimal(s string) float64 {
	switch strings.TrimLeft(s, "+-") {
	case "Infinity":
		if strings.HasPrefix(s, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// Out-of-range literals still yield ±Inf or 0 alongside the range error.
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
