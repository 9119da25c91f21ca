package listing

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/folio/handler/payload"
)

const (
	columnGap      = "  "
	maxColumnWidth = 36
	ellipsis       = "…"
)

var headers = []string{"#", "TITLE", "ORGANIZATION", "DATE", "POINTS"}

// Render writes records as a left aligned table. Widths are measured in
// terminal cells so wide runes keep the columns straight.
func Render(w io.Writer, records []payload.ExperienceData) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, headers)

	for i, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			record.Title,
			record.CompanyName,
			record.Date,
			strconv.Itoa(len(record.Points)),
		})
	}

	widths := columnWidths(rows)

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, formatRow(row, widths)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return nil
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(headers))

	for _, row := range rows {
		for i, cell := range row {
			width := runewidth.StringWidth(cell)
			if width > maxColumnWidth {
				width = maxColumnWidth
			}

			if width > widths[i] {
				widths[i] = width
			}
		}
	}

	return widths
}

func formatRow(row []string, widths []int) string {
	cells := make([]string, len(row))

	for i, cell := range row {
		cell = runewidth.Truncate(cell, widths[i], ellipsis)

		if i == len(row)-1 {
			cells[i] = cell

			continue
		}

		cells[i] = runewidth.FillRight(cell, widths[i])
	}

	return strings.TrimRight(strings.Join(cells, columnGap), " ")
}
