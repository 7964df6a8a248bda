package cmd

import (
	"fmt"
	"io"

	"bevctl/internal/catalog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

func parseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// catalogDocument is the partitioned catalog as one ordered value.
func catalogDocument(p catalog.Partition) *catalog.Item {
	return catalog.NewItem(
		catalog.Field{Key: "bottles", Value: itemList(p.Bottles)},
		catalog.Field{Key: "crates", Value: itemList(p.Crates)},
	)
}

func itemList(items []*catalog.Item) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func printCatalog(w io.Writer, format OutputFormat, p catalog.Partition) error {
	switch format {
	case OutputFormatJSON:
		_, err := fmt.Fprintln(w, catalogDocument(p).String())
		return err
	case OutputFormatYAML:
		return printYAML(w, catalogDocument(p))
	default:
		printListTable(w, fmt.Sprintf("Bottles (%d)", len(p.Bottles)), p.Bottles)
		fmt.Fprintln(w)
		printListTable(w, fmt.Sprintf("Crates (%d)", len(p.Crates)), p.Crates)
		return nil
	}
}

func printListTable(w io.Writer, title string, items []*catalog.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, text.FgYellow.Sprint("No beverages"))
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(title)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("ID"),
		text.FgHiCyan.Sprint("BEVERAGE"),
	})
	for _, it := range items {
		t.AppendRow(table.Row{it.IDString(), catalog.Summarize(it).String()})
	}
	t.Render()
}

func printItem(w io.Writer, format OutputFormat, it *catalog.Item) error {
	switch format {
	case OutputFormatJSON:
		_, err := fmt.Fprintln(w, it.String())
		return err
	case OutputFormatYAML:
		return printYAML(w, it)
	default:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		t.SetTitle(catalog.Summarize(it).String())
		t.AppendHeader(table.Row{
			text.FgHiCyan.Sprint("PROPERTY"),
			text.FgHiCyan.Sprint("VALUE"),
		})
		for _, row := range catalog.DetailRows(it) {
			t.AppendRow(table.Row{text.FgYellow.Sprint(row.Key), row.Value})
		}
		t.Render()
		return nil
	}
}

func printYAML(w io.Writer, it *catalog.Item) error {
	node, err := yamlNode(it)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	return enc.Close()
}

// yamlNode converts a catalog value to a YAML node, keeping field order.
func yamlNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *catalog.Item:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range t.Fields() {
			value, err := yamlNode(f.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}, value)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t {
			value, err := yamlNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, value)
		}
		return n, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: catalog.JSText(t, true)}, nil
	case float64:
		tag := "!!float"
		if t == float64(int64(t)) {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: catalog.FormatNumber(t)}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}, nil
	default:
		return nil, fmt.Errorf("unsupported value %T", v)
	}
}
