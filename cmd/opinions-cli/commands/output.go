package commands

import (
	"encoding/json"
	"io"

	"debateservice/lib/scrapers/debateorg"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func printOpinion(w io.Writer, opinion debateorg.Opinion, asJson bool) error {
	if asJson {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(opinion)
	}

	summary := newTable(w)
	summary.AppendHeader(table.Row{"Opinion", "Yes", "No"})
	summary.AppendRow(table.Row{opinion.Name, opinion.YesPercent, opinion.NoPercent})
	summary.Render()

	if len(opinion.Arguments) == 0 {
		return nil
	}

	args := newTable(w)
	args.AppendHeader(table.Row{"#", "Author", "Argument"})
	args.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
	})
	for i, arg := range opinion.Arguments {
		args.AppendRow(table.Row{i + 1, arg.Author, arg.Description})
	}
	args.Render()
	return nil
}
