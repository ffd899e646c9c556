package calendar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/yuzawa-san/wawona/internal/domain"
)

const (
	checkMark   = "✅"
	todayMarker = "*"
	spaceHeader = "Today's\nSpace"
)

type rowKind int

const (
	rowHeader rowKind = iota
	rowSelf
	rowFollowed
)

func renderGrid(grid domain.Grid, s styles) string {
	var (
		rows  [][]string
		kinds []rowKind
		// todayCols maps a header row to the column holding today.
		todayCols = map[int]int{}
	)

	for _, week := range grid.Weeks {
		header := []string{week.Label}
		for i, day := range week.Days {
			label := day.Format("Mon\n02")
			if i == week.TodayIndex {
				label += todayMarker
				todayCols[len(rows)] = i + 1
			}
			header = append(header, label)
		}
		if grid.ShowSpaces {
			if week.HasToday() {
				header = append(header, spaceHeader)
			} else {
				header = append(header, "")
			}
		}
		rows = append(rows, header)
		kinds = append(kinds, rowHeader)

		for _, r := range week.Rows {
			row := []string{r.Name}
			for _, booked := range r.Booked {
				if booked {
					row = append(row, checkMark)
				} else {
					row = append(row, "")
				}
			}
			if grid.ShowSpaces {
				row = append(row, r.Space)
			}
			rows = append(rows, row)
			if r.Name == domain.YouName {
				kinds = append(kinds, rowSelf)
			} else {
				kinds = append(kinds, rowFollowed)
			}
		}
	}

	if len(rows) == 0 {
		return ""
	}

	lastCol := len(rows[0]) - 1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		BorderRow(true).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(kinds) {
				return s.cell
			}
			switch kinds[row] {
			case rowHeader:
				if todayCols[row] == col && col > 0 {
					return s.today
				}
				return s.header
			case rowSelf:
				if col == 0 {
					return s.you
				}
			default:
				if col == 0 {
					return s.name
				}
			}
			if grid.ShowSpaces && col == lastCol {
				return s.space
			}
			return s.cell
		})

	return t.String()
}
