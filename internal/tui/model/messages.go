package model

import (
	"bevctl/internal/catalog"
	"bevctl/internal/client"
	"bevctl/pkg/logging"
)

// ---- Catalog messages ----

// BeveragesLoadedMsg carries the outcome of a catalog load.
type BeveragesLoadedMsg struct {
	Items []*catalog.Item
	Err   error
}

// BeverageSavedMsg carries the outcome of an update.
type BeverageSavedMsg struct {
	ID     string
	Result client.Result
}

// BeverageDeletedMsg carries the outcome of a delete.
type BeverageDeletedMsg struct {
	ID     string
	Result client.Result
}

// BeverageAddedMsg carries the outcome of a create.
type BeverageAddedMsg struct {
	Name string
	Err  error
}

// ---- Logging / status bar ----

// NewLogEntryMsg delivers one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

type ClearStatusBarMsg struct{}
