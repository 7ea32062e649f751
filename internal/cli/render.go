package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Alfex4936/mapsrpc/internal/model"
	"github.com/Alfex4936/mapsrpc/internal/util"
)

// render writes v in format. For "table", tbl fills a go-pretty writer;
// a nil tbl falls back to JSON.
func render[T any](w io.Writer, format string, v T, tbl func(table.Writer, T)) error {
	if format == "table" && tbl != nil {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleLight)
		tbl(tw, v)
		_, err := fmt.Fprintln(w, tw.Render())
		return err
	}
	if format == "table" {
		format = "json"
	}
	out, err := util.Marshal(v, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func placeTable(tw table.Writer, places []model.Place) {
	tw.AppendHeader(table.Row{"ID", "NAME", "RATING", "REVIEWS", "CATEGORY", "ADDRESS", "MISSING"})
	for _, p := range places {
		tw.AppendRow(table.Row{
			dash(p.ID), dash(p.Name), float(p.Rating), integer(p.ReviewCount),
			dash(p.Category), dash(p.Address), missing(p.Missing),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 6, WidthMax: 40},
	})
}

func reviewTable(tw table.Writer, reviews []model.Review) {
	tw.AppendHeader(table.Row{"AUTHOR", "RATING", "LANG", "DATE", "TEXT"})
	for _, r := range reviews {
		tw.AppendRow(table.Row{dash(r.Author), float(r.Rating), r.Language, dash(r.RelativeDate), dash(r.Text)})
	}
	tw.AppendFooter(table.Row{"", "", "", "TOTAL", len(reviews)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 5, WidthMax: 60},
	})
}

func resultTable(tw table.Writer, results []*model.Result) {
	tw.AppendHeader(table.Row{"#", "PLACE", "COMPLETE", "REVIEWS", "DROPPED"})
	for i, r := range results {
		name, complete := "-", "-"
		if r.Place != nil {
			name = dash(r.Place.Name)
			complete = strconv.FormatBool(r.Place.Complete)
		}
		tw.AppendRow(table.Row{i, name, complete, len(r.Reviews), r.Dropped})
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func float(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', 1, 64)
}

func integer(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

func missing(fields []string) string {
	if len(fields) == 0 {
		return "-"
	}
	return fmt.Sprint(fields)
}
