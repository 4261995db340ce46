package terminal

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"go-weather/internal/application/screen"
)

const helpLine = "/search toggle search · /pick N select · /blur close · /refresh · /quit"

// RenderText draws a view as plain text
func RenderText(view screen.View) string {
	var b strings.Builder

	if view.Loading {
		b.WriteString("Loading weather...\n")
		return b.String()
	}

	if view.Search != nil {
		writeSearch(&b, view.Search)
	}

	if view.Failure != nil {
		fmt.Fprintf(&b, "Weather unavailable: %s\n", view.Failure.Error())
	}

	if view.Location != nil {
		fmt.Fprintf(&b, "%s\n%s\n%s\n", view.Location.Name, view.Location.Region, view.Location.Country)
	}

	if view.Current != nil {
		fmt.Fprintf(&b, "\n[%s] %s °C\n%s\n", view.Current.Icon, formatNumber(view.Current.TempC), view.Current.Condition)
		fmt.Fprintf(&b, "wind %skm/hr  humidity %s%%  sunrise %s\n",
			formatNumber(view.Current.WindKph), formatNumber(view.Current.Humidity), view.Current.Sunrise)
	}

	if len(view.Daily) > 0 {
		b.WriteString("\nDaily forecast\n")
		w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, day := range view.Daily {
			fmt.Fprintf(w, "  %s\t[%s]\t%s°C\n", day.Weekday, day.Icon, formatNumber(day.AvgTempC))
		}
		_ = w.Flush()
	}

	b.WriteString("\n" + helpLine + "\n")
	return b.String()
}

func writeSearch(b *strings.Builder, search *screen.SearchView) {
	fmt.Fprintf(b, "Search city: %s\n", search.Text)
	if search.Failure != nil {
		fmt.Fprintf(b, "  search failed: %s\n", search.Failure.Error())
	}
	if len(search.Results) == 0 {
		b.WriteString("\n")
		return
	}

	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	for _, row := range search.Results {
		// rows are picked by their 1-based position
		fmt.Fprintf(w, "  %d) %s\t%s\n", row.Index+1, row.Label, row.Country)
	}
	_ = w.Flush()
	b.WriteString("\n")
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
