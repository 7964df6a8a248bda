package model

import (
	"context"

	"bevctl/internal/catalog"
	"bevctl/internal/client"
	"bevctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// LoadBeveragesCmd fetches the whole catalog.
func LoadBeveragesCmd(api client.CatalogAPI) tea.Cmd {
	return func() tea.Msg {
		if api == nil {
			return nil
		}
		items, err := api.List(context.Background())
		return BeveragesLoadedMsg{Items: items, Err: err}
	}
}

// SaveBeverageCmd sends the update body built from the edit form.
func SaveBeverageCmd(api client.CatalogAPI, id string, body *catalog.Item) tea.Cmd {
	return func() tea.Msg {
		if api == nil {
			return nil
		}
		return BeverageSavedMsg{ID: id, Result: api.Update(context.Background(), id, body)}
	}
}

// DeleteBeverageCmd removes the beverage with the given id.
func DeleteBeverageCmd(api client.CatalogAPI, id string) tea.Cmd {
	return func() tea.Msg {
		if api == nil {
			return nil
		}
		return BeverageDeletedMsg{ID: id, Result: api.Delete(context.Background(), id)}
	}
}

// AddBeverageCmd posts a new beverage built from the add form.
func AddBeverageCmd(api client.CatalogAPI, body *catalog.Item) tea.Cmd {
	return func() tea.Msg {
		if api == nil {
			return nil
		}
		name, _ := body.Get("name")
		return BeverageAddedMsg{
			Name: catalog.JSText(name, true),
			Err:  api.Create(context.Background(), body),
		}
	}
}

// ListenForLogEntriesCmd waits for the next entry on the logging channel.
// It yields nil once the channel is closed.
func ListenForLogEntriesCmd(logChan <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-logChan
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
