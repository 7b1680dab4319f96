// Package calendar builds the monthly tone-map grid: a Monday-first layout
// of one cell per day, bound to the month's record summaries.
package calendar

import (
	"time"

	"github.com/filter-today/filterctl/internal/record"
)

// Grid describes the 7-column layout of one month.
type Grid struct {
	Year          int
	Month         int
	LeadingOffset int // blank cells before day 1 (0..6, weeks start Monday)
	DayCount      int // days in the month (28..31)
}

// MonthGrid computes the layout for (year, month). Months outside 1..12 are
// clamped. Weeks start on Monday: a month opening on Sunday gets offset 6.
func MonthGrid(year, month int) Grid {
	if month < 1 {
		month = 1
	}
	if month > 12 {
		month = 12
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)

	offset := int(first.Weekday()) - 1
	if first.Weekday() == time.Sunday {
		offset = 6
	}

	// Day 0 of the next month is the last day of this one.
	dayCount := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()

	return Grid{Year: year, Month: month, LeadingOffset: offset, DayCount: dayCount}
}

// Cell is one slot of the rendered grid. Leading pad cells carry no date
// semantics; every other cell maps to exactly one day of the month.
type Cell struct {
	Date         time.Time
	Key          string // YYYY-MM-DD, empty for pad cells
	Day          int    // 1-based day of month, 0 for pad cells
	IsLeadingPad bool
	HasRecord    bool
	IsFuture     bool // strictly after today (local midnight)
	IsSelected   bool
	HexCode      string // record color, empty when HasRecord is false
	Content      string // record preview text
}

// Selectable reports whether a click on this cell may start an edit session.
// Future days are never selectable, with or without a record.
func (c Cell) Selectable() bool {
	return !c.IsLeadingPad && !c.IsFuture
}

// BuildCells derives the ordered cell sequence for a grid: LeadingOffset pad
// cells followed by one cell per day, each bound to the month's record index
// and flagged against today (local midnight). At most the cell whose key
// equals selected is marked selected; a selected key naming a future or
// absent day marks nothing. The derivation is pure: identical inputs yield
// an identical sequence.
func BuildCells(g Grid, index record.ToneMap, selected string, today time.Time) []Cell {
	cells := make([]Cell, 0, g.LeadingOffset+g.DayCount)

	for i := 0; i < g.LeadingOffset; i++ {
		cells = append(cells, Cell{IsLeadingPad: true})
	}

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)

	for day := 1; day <= g.DayCount; day++ {
		date := time.Date(g.Year, time.Month(g.Month), day, 0, 0, 0, 0, time.Local)
		key := record.DateKey(date)
		cell := Cell{
			Date:     date,
			Key:      key,
			Day:      day,
			IsFuture: date.After(midnight),
		}
		if summary, ok := index[key]; ok {
			cell.HasRecord = true
			cell.HexCode = summary.HexCode
			cell.Content = summary.Content
		}
		if key == selected && cell.Selectable() {
			cell.IsSelected = true
		}
		cells = append(cells, cell)
	}

	return cells
}
