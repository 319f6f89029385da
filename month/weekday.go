package month

import "time"

// Weekday is a day of the week numbered from Monday (0) to Sunday (6).
type Weekday int

// Days of the week.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const daysPerWeek = 7

var names = [daysPerWeek]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// String returns the two letter abbreviation used in the weekday row.
func (d Weekday) String() string {
	return names[d.normalize()]
}

// IsWeekend reports whether d is Saturday or Sunday.
func (d Weekday) IsWeekend() bool {
	d = d.normalize()
	return d == Saturday || d == Sunday
}

func (d Weekday) normalize() Weekday {
	return (d%daysPerWeek + daysPerWeek) % daysPerWeek
}

// FromTime converts a time.Weekday, which counts from Sunday.
func FromTime(d time.Weekday) Weekday {
	return Weekday(d+6) % daysPerWeek
}

// Weekdays returns all seven days of the week starting with first.
func Weekdays(first Weekday) []Weekday {
	first = first.normalize()
	days := make([]Weekday, daysPerWeek)
	for i := range days {
		days[i] = (first + Weekday(i)) % daysPerWeek
	}
	return days
}
