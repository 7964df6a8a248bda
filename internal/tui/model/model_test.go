package model

import (
	"fmt"
	"testing"
	"time"

	"bevctl/internal/catalog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
	{"id":1,"type":"bottle","name":"Cola","price":2},
	{"id":2,"type":"crate","bottle":{"name":"Beer","volume":0.5,"isAlcoholic":true},"noOfBottles":12,"price":20},
	{"id":3,"type":"bottle","name":"Water","price":1.5},
	{"id":4,"type":"keg","name":"Lager"}
]`

func loadItems(t *testing.T) []*catalog.Item {
	t.Helper()
	items, err := catalog.DecodeCollection([]byte(catalogJSON))
	require.NoError(t, err)
	return items
}

func newTestModel() *Model {
	return InitialModel(Options{ReloadOnClose: true})
}

func TestSetStatusMessage(t *testing.T) {
	m := newTestModel()

	cmd1 := m.SetStatusMessage("First message", StatusBarSuccess, time.Second)
	require.NotNil(t, cmd1)
	assert.Equal(t, "First message", m.StatusBarMessage)
	assert.Equal(t, StatusBarSuccess, m.StatusBarMessageType)
	first := m.StatusBarClearCancel
	require.NotNil(t, first)

	cmd2 := m.SetStatusMessage("Second message", StatusBarError, time.Second)
	require.NotNil(t, cmd2)
	assert.Equal(t, "Second message", m.StatusBarMessage)
	assert.Equal(t, StatusBarError, m.StatusBarMessageType)
	assert.NotEqual(t, first, m.StatusBarClearCancel)

	select {
	case <-first:
	default:
		t.Error("expected the first clear timer to be cancelled")
	}

	m.ClearStatusMessage()
	assert.Empty(t, m.StatusBarMessage)
	assert.Nil(t, m.StatusBarClearCancel)
}

func TestSetStatusMessage_TickClears(t *testing.T) {
	m := newTestModel()
	cmd := m.SetStatusMessage("Saved", StatusBarSuccess, time.Millisecond)
	assert.Equal(t, ClearStatusBarMsg{}, cmd())

	stale := m.SetStatusMessage("Old", StatusBarInfo, time.Millisecond)
	m.SetStatusMessage("New", StatusBarInfo, time.Hour)
	assert.Nil(t, stale(), "a replaced message must not clear the new one")
}

func TestAddRawLineToActivityLog_Caps(t *testing.T) {
	m := newTestModel()
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, fmt.Sprintf("line %d", i))
	}
	require.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Equal(t, "line 5", m.ActivityLog[0])
	assert.True(t, m.ActivityLogDirty)
}

func TestKeyMap_Help(t *testing.T) {
	keys := DefaultKeyMap()

	full := keys.FullHelp()
	require.Len(t, full, 3)
	for i, group := range full {
		assert.NotEmpty(t, group, "group %d", i)
	}

	short := keys.ShortHelp()
	require.Len(t, short, 2)
	assert.Equal(t, keys.Quit.Help(), short[1].Help())
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"up", keys.Up, []string{"k", "up"}},
		{"down", keys.Down, []string{"j", "down"}},
		{"edit", keys.Edit, []string{"e"}},
		{"delete", keys.Delete, []string{"d"}},
		{"close", keys.Close, []string{"c"}},
		{"add", keys.Add, []string{"a"}},
		{"quit", keys.Quit, []string{"q", "ctrl+c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
		})
	}
}

func TestDetailMode_String(t *testing.T) {
	assert.Equal(t, "Closed", ModeClosed.String())
	assert.Equal(t, "Viewing", ModeViewing.String())
	assert.Equal(t, "Editing", ModeEditing.String())
	assert.Equal(t, "Unknown", DetailMode(42).String())
}
