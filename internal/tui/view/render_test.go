package view

import (
	"strings"
	"testing"

	"bevctl/internal/catalog"
	"bevctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
	{"id":1,"type":"bottle","name":"Cola","price":2},
	{"id":2,"type":"crate","bottle":{"name":"Beer","volume":0.5,"isAlcoholic":true},"noOfBottles":12,"price":20},
	{"id":3,"type":"bottle","name":"Water","price":1.5}
]`

func loadedModel(t *testing.T, width, height int) *model.Model {
	t.Helper()
	items, err := catalog.DecodeCollection([]byte(catalogJSON))
	require.NoError(t, err)
	m := model.InitialModel(model.Options{BaseURL: "http://localhost:9090"})
	m.Width, m.Height = width, height
	m.ApplyLoad(items)
	return m
}

func render(m *model.Model) string {
	return ansi.Strip(Render(m))
}

func TestRender_Lists(t *testing.T) {
	out := render(loadedModel(t, 120, 30))

	assert.Contains(t, out, "Bottles (2)")
	assert.Contains(t, out, "Crates (1)")
	assert.Contains(t, out, "Cola - $2")
	assert.Contains(t, out, "Water - $1.5")
	assert.Contains(t, out, "Crate of Beer, 0.5L, Alcoholic (12 bottles) - $20")
	assert.Contains(t, out, "2 bottles • 1 crates")
	assert.NotContains(t, out, catalog.LoadErrorMessage)
}

func TestRender_FillsTerminal(t *testing.T) {
	for _, size := range [][2]int{{120, 30}, {60, 40}} {
		out := Render(loadedModel(t, size[0], size[1]))
		assert.Equal(t, size[1], lipgloss.Height(out), "height for %dx%d", size[0], size[1])
		assert.LessOrEqual(t, lipgloss.Width(out), size[0], "width for %dx%d", size[0], size[1])
	}
}

func TestRender_DefaultSizeBeforeWindowSize(t *testing.T) {
	out := Render(loadedModel(t, 0, 0))
	assert.Equal(t, defaultHeight, lipgloss.Height(out))
}

func TestRender_NarrowTerminalStacksLists(t *testing.T) {
	out := render(loadedModel(t, 60, 40))

	bottles := strings.Index(out, "Bottles (2)")
	crates := strings.Index(out, "Crates (1)")
	require.GreaterOrEqual(t, bottles, 0)
	require.GreaterOrEqual(t, crates, 0)
	assert.Greater(t, strings.Count(out[bottles:crates], "\n"), 1, "crates are below bottles")
}

func TestRender_LoadFailure(t *testing.T) {
	m := loadedModel(t, 120, 30)
	m.ApplyLoadFailure()

	out := render(m)

	assert.Contains(t, out, "Error loading beverages")
	assert.Contains(t, out, "No beverages")
	assert.NotContains(t, out, "Cola")
}

func TestRender_AddErrorShownVerbatim(t *testing.T) {
	m := loadedModel(t, 120, 40)
	m.OpenAddForm()
	m.ErrorMessage = catalog.AddErrorMessage(&catalog.AddFailure{StatusCode: 500})

	out := render(m)

	assert.Contains(t, out, "Error adding beverage: Unexpected response status: 500")
	assert.Contains(t, out, "Add beverage")
}

func TestRender_DetailPanel(t *testing.T) {
	m := loadedModel(t, 120, 40)
	m.ShowDetails(m.Crates[0])

	out := render(m)

	assert.Contains(t, out, "Beverage 2")
	assert.Contains(t, out, `bottle:`)
	assert.Contains(t, out, `{"name":"Beer","volume":0.5,"isAlcoholic":true}`)
	assert.Contains(t, out, "noOfBottles:")
	assert.Contains(t, out, "e Edit")
	assert.Contains(t, out, "d Delete")
	assert.Contains(t, out, "c Close")
}

func TestRender_EditForm(t *testing.T) {
	m := loadedModel(t, 120, 40)
	m.StartEdit(m.Bottles[0])

	out := render(m)

	assert.Contains(t, out, "Edit beverage 1")
	assert.Contains(t, out, "name:")
	assert.Contains(t, out, "Cola")
	assert.Contains(t, out, "enter Save")
	assert.Contains(t, out, "esc Cancel")
	assert.NotContains(t, out, "e Edit")
}

func TestRender_AddForm(t *testing.T) {
	m := loadedModel(t, 120, 40)
	m.OpenAddForm()
	m.AddForm.CycleType(1)
	m.AddForm.IsAlcoholic = true

	out := render(m)

	for _, label := range model.AddFormLabels {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "‹ crate ›")
	assert.Contains(t, out, IconChecked)
	assert.Contains(t, out, "enter Add")
}

func TestRender_StatusMessageReplacesCounts(t *testing.T) {
	m := loadedModel(t, 120, 30)
	m.StatusBarMessage = "Error deleting beverage: Unexpected response status: 404"
	m.StatusBarMessageType = model.StatusBarError

	out := render(m)

	assert.Contains(t, out, "Error deleting beverage: Unexpected response status: 404")
	assert.NotContains(t, out, "2 bottles • 1 crates")
}

func TestRender_HelpOverlay(t *testing.T) {
	m := loadedModel(t, 120, 40)
	m.Overlay = model.OverlayHelp

	out := render(m)

	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "reload")
	assert.NotContains(t, out, "Cola - $2")
}

func TestRender_LogOverlay(t *testing.T) {
	m := loadedModel(t, 120, 30)
	m.Overlay = model.OverlayLog
	m.LogViewport.Width, m.LogViewport.Height = 100, 10
	m.LogViewport.SetContent(PrepareLogContent([]string{"12:00:00 [INFO] [TUI] Loaded"}, 100))

	out := render(m)

	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "[TUI] Loaded")
}

func TestPrepareLogContent(t *testing.T) {
	lines := []string{
		"12:00:00 [ERROR] [Client] request failed",
		"12:00:01 [INFO] [TUI] a rather long line that will be cut",
	}

	out := ansi.Strip(PrepareLogContent(lines, 20))

	got := strings.Split(out, "\n")
	require.Len(t, got, 2)
	for _, l := range got {
		assert.LessOrEqual(t, ansi.StringWidth(l), 20)
	}
	assert.True(t, strings.HasSuffix(got[1], "…"))

	whole := ansi.Strip(PrepareLogContent(lines, 0))
	assert.Equal(t, strings.Join(lines, "\n"), whole)
}

func TestRenderSummary_Truncates(t *testing.T) {
	s := catalog.Summary{
		{Text: "Crate of ", Style: catalog.StylePlain},
		{Text: "Beer", Style: catalog.StyleBold},
		{Text: " - $20", Style: catalog.StylePrice},
	}

	assert.Equal(t, "Crate of Beer - $20", ansi.Strip(RenderSummary(s, 40)))
	assert.Equal(t, "Crate of B…", ansi.Strip(RenderSummary(s, 11)))
	assert.Empty(t, ansi.Strip(RenderSummary(s, 0)))
}
