package month

import "time"

// Cell is one position in the grid of a month. Day is zero for cells that
// pad the first and last week with days of the neighbouring months.
type Cell struct {
	Day     int
	Weekday Weekday
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Cells returns the complete weeks covering the month, each week starting
// with first. The result is always a multiple of seven long.
func Cells(year int, m time.Month, first Weekday) []Cell {
	first = first.normalize()
	start := FromTime(time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Weekday())
	lead := int((start - first + daysPerWeek) % daysPerWeek)
	days := DaysIn(year, m)

	n := lead + days
	if mod := n % daysPerWeek; mod > 0 {
		n += daysPerWeek - mod
	}

	cells := make([]Cell, n)
	for i := range cells {
		cells[i].Weekday = (first + Weekday(i)) % daysPerWeek
		if day := i - lead + 1; day >= 1 && day <= days {
			cells[i].Day = day
		}
	}
	return cells
}
