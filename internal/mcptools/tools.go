// Package mcptools exposes the beverage catalog as MCP tools.
package mcptools

import (
	"context"
	"fmt"
	"strings"

	"bevctl/internal/catalog"
	"bevctl/internal/client"
	"bevctl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCPTools"

// Tool names.
const (
	ToolList   = "catalog_list"
	ToolShow   = "catalog_show"
	ToolAdd    = "catalog_add"
	ToolUpdate = "catalog_update"
	ToolDelete = "catalog_delete"
)

// CatalogTools provides MCP tools backed by a catalog API.
type CatalogTools struct {
	api    client.CatalogAPI
	policy catalog.CoercionPolicy
}

// NewCatalogTools creates the catalog tools. Updates are coerced with policy.
func NewCatalogTools(api client.CatalogAPI, policy catalog.CoercionPolicy) *CatalogTools {
	return &CatalogTools{api: api, policy: policy}
}

// GetTools returns the tool definitions.
func (ct *CatalogTools) GetTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(ToolList,
			mcp.WithDescription("List the beverage catalog as bottles and crates"),
			mcp.WithString("type",
				mcp.Description("Only list this type"),
				mcp.Enum(catalog.TypeBottle, catalog.TypeCrate),
			),
		),
		mcp.NewTool(ToolShow,
			mcp.WithDescription("Show one beverage as JSON"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Beverage id"),
			),
		),
		mcp.NewTool(ToolAdd,
			mcp.WithDescription("Add a beverage. Numeric fields keep their leading number; unparsable numbers are sent as null"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Beverage name")),
			mcp.WithString("price", mcp.Description("Price")),
			mcp.WithString("volume", mcp.Description("Volume in liters")),
			mcp.WithString("supplier", mcp.Description("Supplier")),
			mcp.WithString("volumePercent", mcp.Description("Alcohol by volume")),
			mcp.WithString("inStock", mcp.Description("Units in stock")),
			mcp.WithString("type",
				mcp.Description("bottle or crate, default bottle"),
				mcp.Enum(catalog.TypeBottle, catalog.TypeCrate),
			),
			mcp.WithBoolean("isAlcoholic", mcp.Description("Whether the beverage contains alcohol")),
		),
		mcp.NewTool(ToolUpdate,
			mcp.WithDescription("Update editable fields of a beverage. Fields not given keep their current value"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Beverage id")),
			mcp.WithObject("fields",
				mcp.Required(),
				mcp.Description("Field name to new value"),
			),
		),
		mcp.NewTool(ToolDelete,
			mcp.WithDescription("Delete a beverage"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Beverage id")),
		),
	}
}

// ServerTools pairs every tool with its handler.
func (ct *CatalogTools) ServerTools() []server.ServerTool {
	handlers := map[string]server.ToolHandlerFunc{
		ToolList:   ct.HandleList,
		ToolShow:   ct.HandleShow,
		ToolAdd:    ct.HandleAdd,
		ToolUpdate: ct.HandleUpdate,
		ToolDelete: ct.HandleDelete,
	}
	tools := ct.GetTools()
	out := make([]server.ServerTool, 0, len(tools))
	for _, tool := range tools {
		out = append(out, server.ServerTool{Tool: tool, Handler: handlers[tool.Name]})
	}
	return out
}

// HandleList handles catalog_list.
func (ct *CatalogTools) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := ct.api.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", catalog.LoadErrorMessage, err)), nil
	}
	p := catalog.PartitionItems(items)

	var sb strings.Builder
	switch req.GetString("type", "") {
	case catalog.TypeBottle:
		writeSection(&sb, "Bottles", p.Bottles)
	case catalog.TypeCrate:
		writeSection(&sb, "Crates", p.Crates)
	default:
		writeSection(&sb, "Bottles", p.Bottles)
		sb.WriteString("\n")
		writeSection(&sb, "Crates", p.Crates)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func writeSection(sb *strings.Builder, title string, items []*catalog.Item) {
	fmt.Fprintf(sb, "%s (%d):\n", title, len(items))
	for _, it := range items {
		fmt.Fprintf(sb, "  [%s] %s\n", it.IDString(), catalog.Summarize(it))
	}
}

// HandleShow handles catalog_show.
func (ct *CatalogTools) HandleShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	it, errResult := ct.find(ctx, id)
	if errResult != nil {
		return errResult, nil
	}
	return mcp.NewToolResultText(it.String()), nil
}

func (ct *CatalogTools) find(ctx context.Context, id string) (*catalog.Item, *mcp.CallToolResult) {
	items, err := ct.api.List(ctx)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("%s: %v", catalog.LoadErrorMessage, err))
	}
	it, ok := catalog.FindByID(items, id)
	if !ok {
		return nil, mcp.NewToolResultError(fmt.Sprintf("Beverage not found: %s", id))
	}
	return it, nil
}

// HandleAdd handles catalog_add.
func (ct *CatalogTools) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	form := catalog.AddForm{
		Name:          name,
		Price:         req.GetString("price", ""),
		Volume:        req.GetString("volume", ""),
		Supplier:      req.GetString("supplier", ""),
		VolumePercent: req.GetString("volumePercent", ""),
		InStock:       req.GetString("inStock", ""),
		Type:          req.GetString("type", catalog.TypeBottle),
		IsAlcoholic:   req.GetBool("isAlcoholic", false),
	}
	body := form.Build()
	if err := ct.api.Create(ctx, body); err != nil {
		logging.Error(subsystem, err, "Adding beverage %q failed", name)
		return mcp.NewToolResultError(catalog.AddErrorMessage(err)), nil
	}
	logging.Info(subsystem, "Added beverage %q", name)
	return mcp.NewToolResultText(fmt.Sprintf("Added beverage %s", body.String())), nil
}

// HandleUpdate handles catalog_update.
func (ct *CatalogTools) HandleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	raw, ok := req.GetArguments()["fields"].(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("fields must be a JSON object"), nil
	}
	overrides := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			overrides[k] = s
			continue
		}
		overrides[k] = catalog.JSText(v, true)
	}

	it, errResult := ct.find(ctx, id)
	if errResult != nil {
		return errResult, nil
	}
	inputs, err := catalog.OverrideInputs(it, overrides)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error updating beverage: %v", err)), nil
	}
	itemID, _ := it.ID()
	body, err := ct.policy.BuildUpdate(itemID, inputs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error updating beverage: %v", err)), nil
	}

	res := ct.api.Update(ctx, id, body)
	if !res.OK() {
		return mcp.NewToolResultError("Error updating beverage: " + res.Message()), nil
	}
	logging.Info(subsystem, "Beverage %s updated", id)
	return mcp.NewToolResultText(body.String()), nil
}

// HandleDelete handles catalog_delete.
func (ct *CatalogTools) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	res := ct.api.Delete(ctx, id)
	if !res.OK() {
		return mcp.NewToolResultError("Error deleting beverage: " + res.Message()), nil
	}
	logging.Info(subsystem, "Beverage %s deleted", id)
	return mcp.NewToolResultText(fmt.Sprintf("Beverage %s deleted", id)), nil
}
