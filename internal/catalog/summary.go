package catalog

import "strings"

// SegmentStyle tells a renderer how to decorate a piece of a summary.
type SegmentStyle int

const (
	StylePlain SegmentStyle = iota
	StyleBold
	StyleMuted
	StyleAlcoholic
	StyleNonAlcoholic
	StylePrice
	StyleRaw
)

// Segment is a run of summary text sharing one style.
type Segment struct {
	Text  string
	Style SegmentStyle
}

// Summary is the one-line description of an item shown in a list.
type Summary []Segment

// String returns the summary without decoration.
func (s Summary) String() string {
	var b strings.Builder
	for _, seg := range s {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Summarize picks the bottle or crate summary by the item type. Items of any
// other type summarize to their raw JSON.
func Summarize(it *Item) Summary {
	switch it.Type() {
	case TypeBottle:
		return BottleSummary(it)
	case TypeCrate:
		return CrateSummary(it)
	default:
		return Summary{{Text: RawJSON(it), Style: StyleRaw}}
	}
}

// BottleSummary renders "{name} - ${price}", or the raw item JSON when the
// bottle has no usable name.
func BottleSummary(it *Item) Summary {
	name, hasName := it.Get("name")
	if !Truthy(name, hasName) {
		return Summary{{Text: RawJSON(it), Style: StyleRaw}}
	}
	price, hasPrice := it.Get("price")
	return Summary{{Text: JSText(name, true) + " - $" + JSText(price, hasPrice), Style: StylePlain}}
}

// CrateSummary renders "Crate of {bottleInfo} ({noOfBottles} bottles) - ${price}".
// bottleInfo is built from the nested bottle: its name (bold) or raw JSON,
// then ", {volume}L" when the volume is set, then an alcoholic tag whenever
// the isAlcoholic key exists (false and null both read "Non-alcoholic").
// Without a nested bottle object the raw crate JSON is used instead.
func CrateSummary(it *Item) Summary {
	info := bottleInfo(it)
	if len(info) == 0 {
		return Summary{{Text: RawJSON(it), Style: StyleRaw}}
	}
	count, hasCount := it.Get("noOfBottles")
	price, hasPrice := it.Get("price")

	out := Summary{{Text: "Crate of ", Style: StylePlain}}
	out = append(out, info...)
	out = append(out,
		Segment{Text: " ", Style: StylePlain},
		Segment{Text: "(" + JSText(count, hasCount) + " bottles)", Style: StyleMuted},
		Segment{Text: " - ", Style: StylePlain},
		Segment{Text: "$" + JSText(price, hasPrice), Style: StylePrice},
	)
	return out
}

func bottleInfo(crate *Item) Summary {
	raw, _ := crate.Get("bottle")
	if !IsObject(raw) {
		return nil
	}
	bottle, isItem := raw.(*Item)
	if !isItem {
		// Arrays have no name, volume or isAlcoholic.
		return Summary{{Text: RawJSON(raw), Style: StyleRaw}}
	}

	var info Summary
	if name, ok := bottle.Get("name"); Truthy(name, ok) {
		info = append(info, Segment{Text: JSText(name, true), Style: StyleBold})
	} else {
		info = append(info, Segment{Text: RawJSON(bottle), Style: StyleRaw})
	}
	if volume, ok := bottle.Get("volume"); Truthy(volume, ok) {
		info = append(info,
			Segment{Text: ", ", Style: StylePlain},
			Segment{Text: JSText(volume, true) + "L", Style: StyleMuted},
		)
	}
	if alcoholic, ok := bottle.Get("isAlcoholic"); ok {
		tag := Segment{Text: "Non-alcoholic", Style: StyleNonAlcoholic}
		if Truthy(alcoholic, true) {
			tag = Segment{Text: "Alcoholic", Style: StyleAlcoholic}
		}
		info = append(info, Segment{Text: ", ", Style: StylePlain}, tag)
	}
	return info
}
