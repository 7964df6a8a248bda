package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBottleSummary(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "name and price", raw: `{"id":1,"type":"bottle","name":"Cola","price":2}`, want: "Cola - $2"},
		{name: "fractional price", raw: `{"type":"bottle","name":"Beer Bottle","price":1.5}`, want: "Beer Bottle - $1.5"},
		{name: "missing price", raw: `{"type":"bottle","name":"Water"}`, want: "Water - $undefined"},
		{name: "missing name falls back to json", raw: `{"id":7,"type":"bottle","price":3}`, want: `{"id":7,"type":"bottle","price":3}`},
		{name: "empty name falls back to json", raw: `{"type":"bottle","name":""}`, want: `{"type":"bottle","name":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BottleSummary(mustItem(t, tt.raw)).String())
		})
	}
}

func TestCrateSummary(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "full bottle info",
			raw:  `{"id":2,"type":"crate","bottle":{"name":"Beer","volume":0.5,"isAlcoholic":true},"noOfBottles":12,"price":20}`,
			want: "Crate of Beer, 0.5L, Alcoholic (12 bottles) - $20",
		},
		{
			name: "non-alcoholic false still tagged",
			raw:  `{"type":"crate","bottle":{"name":"Cola","isAlcoholic":false},"noOfBottles":6,"price":9}`,
			want: "Crate of Cola, Non-alcoholic (6 bottles) - $9",
		},
		{
			name: "null isAlcoholic counts as present",
			raw:  `{"type":"crate","bottle":{"name":"Cola","isAlcoholic":null},"noOfBottles":6,"price":9}`,
			want: "Crate of Cola, Non-alcoholic (6 bottles) - $9",
		},
		{
			name: "absent isAlcoholic has no tag",
			raw:  `{"type":"crate","bottle":{"name":"Juice","volume":1},"noOfBottles":6,"price":9}`,
			want: "Crate of Juice, 1L (6 bottles) - $9",
		},
		{
			name: "zero volume skipped",
			raw:  `{"type":"crate","bottle":{"name":"Juice","volume":0},"noOfBottles":6,"price":9}`,
			want: "Crate of Juice (6 bottles) - $9",
		},
		{
			name: "unnamed bottle uses bottle json",
			raw:  `{"type":"crate","bottle":{"volume":0.33},"noOfBottles":20,"price":35}`,
			want: `Crate of {"volume":0.33}, 0.33L (20 bottles) - $35`,
		},
		{
			name: "no bottle uses crate json",
			raw:  `{"type":"crate","noOfBottles":20,"price":35}`,
			want: `{"type":"crate","noOfBottles":20,"price":35}`,
		},
		{
			name: "null bottle uses crate json",
			raw:  `{"type":"crate","bottle":null}`,
			want: `{"type":"crate","bottle":null}`,
		},
		{
			name: "missing count",
			raw:  `{"type":"crate","bottle":{"name":"Beer"},"price":20}`,
			want: "Crate of Beer (undefined bottles) - $20",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CrateSummary(mustItem(t, tt.raw)).String())
		})
	}
}

func TestCrateSummary_Styles(t *testing.T) {
	s := CrateSummary(mustItem(t, `{"type":"crate","bottle":{"name":"Beer","volume":0.5,"isAlcoholic":true},"noOfBottles":12,"price":20}`))

	styles := map[string]SegmentStyle{}
	for _, seg := range s {
		styles[seg.Text] = seg.Style
	}
	assert.Equal(t, StyleBold, styles["Beer"])
	assert.Equal(t, StyleMuted, styles["0.5L"])
	assert.Equal(t, StyleAlcoholic, styles["Alcoholic"])
	assert.Equal(t, StyleMuted, styles["(12 bottles)"])
	assert.Equal(t, StylePrice, styles["$20"])

	s = CrateSummary(mustItem(t, `{"type":"crate","bottle":{"name":"Cola","isAlcoholic":false}}`))
	assert.Contains(t, s, Segment{Text: "Non-alcoholic", Style: StyleNonAlcoholic})
}

func TestSummarize_UnknownTypeIsRaw(t *testing.T) {
	s := Summarize(mustItem(t, `{"id":9,"type":"keg"}`))
	assert.Equal(t, Summary{{Text: `{"id":9,"type":"keg"}`, Style: StyleRaw}}, s)
}

func TestPartitionItems(t *testing.T) {
	items, err := DecodeCollection([]byte(`[
		{"id":1,"type":"bottle","name":"Cola","price":2},
		{"id":2,"type":"crate","bottle":{"name":"Beer"},"noOfBottles":12,"price":20},
		{"id":3,"type":"keg"},
		{"id":4},
		{"id":5,"type":"Bottle"},
		{"id":6,"type":"bottle","name":"Water","price":1}
	]`))
	assert.NoError(t, err)

	p := PartitionItems(items)
	assert.Len(t, p.Bottles, 2)
	assert.Len(t, p.Crates, 1)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "1", p.Bottles[0].IDString())
	assert.Equal(t, "6", p.Bottles[1].IDString())

	// every bottle/crate lands in exactly one list
	seen := map[string]int{}
	for _, it := range append(append([]*Item{}, p.Bottles...), p.Crates...) {
		seen[it.IDString()]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "item %s", id)
	}
	assert.NotContains(t, seen, "3")
	assert.NotContains(t, seen, "5")
}

func TestFindByID(t *testing.T) {
	items, _ := DecodeCollection([]byte(`[{"id":1},{"id":"abc"}]`))
	it, ok := FindByID(items, "abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", it.IDString())

	_, ok = FindByID(items, "2")
	assert.False(t, ok)
}
