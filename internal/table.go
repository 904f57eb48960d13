package internal

import (
	"fmt"
	"hashlens/unhash"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// NewTable returns a borderless, left aligned, tab padded table.
func NewTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// ColorizeCollisions renders candidates with negative ones in red.
func ColorizeCollisions(collisions []unhash.Collision, maxNames int) string {
	shortened := maxNames > 0 && len(collisions) > maxNames
	if shortened {
		collisions = collisions[:maxNames]
	}
	parts := make([]string, 0, len(collisions)+1)
	for _, c := range collisions {
		if c.Sign < 0 {
			parts = append(parts, color.FgRed.Render("(-)"+c.Name))
			continue
		}
		parts = append(parts, color.FgGreen.Render(c.Name))
	}
	if shortened {
		parts = append(parts, "...")
	}
	return strings.Join(parts, " | ")
}

// ColorizeWeight renders a weight with its sign color.
func ColorizeWeight(w float64) string {
	s := fmt.Sprintf("%+.4f", w)
	if w < 0 {
		return color.FgRed.Render(s)
	}
	return color.FgGreen.Render(s)
}
