package timefmt

import (
	"fmt"
	"strconv"
	"time"
)

var weekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// invalidNumber is what an unusable deadline decomposes to.
const invalidNumber = "NaN"

// ParsedDate holds the display fields of a deadline.
type ParsedDate struct {
	DayName       string
	MonthName     string
	DayNumber     string
	YearNumber    int
	HoursNumber   string // 24-hour value, not converted
	MinutesNumber string
	Time          string // "am" or "pm"
}

// Decompose returns the display fields of t in local wall-clock time.
//
// Time is "am" whenever the hour is 12 or less, so midnight and noon are both
// "am". A zero t is treated as an invalid instant and yields placeholder fields
// instead of a panic.
func Decompose(t time.Time) ParsedDate {
	if t.IsZero() {
		return ParsedDate{
			DayNumber:     invalidNumber,
			HoursNumber:   invalidNumber,
			MinutesNumber: invalidNumber,
			Time:          "pm",
		}
	}

	local := t.Local()
	hours := ZeroPad(int64(local.Hour()))

	meridiem := "pm"
	if n, err := strconv.Atoi(hours); err == nil && n <= 12 {
		meridiem = "am"
	}

	return ParsedDate{
		DayName:       weekdays[local.Weekday()],
		MonthName:     months[local.Month()-1],
		DayNumber:     ZeroPad(int64(local.Day())),
		YearNumber:    local.Year(),
		HoursNumber:   hours,
		MinutesNumber: ZeroPad(int64(local.Minute())),
		Time:          meridiem,
	}
}

// String renders "Sunday, 05 January 2025 15:04pm".
func (p ParsedDate) String() string {
	return fmt.Sprintf("%s, %s %s %d %s:%s%s",
		p.DayName, p.DayNumber, p.MonthName, p.YearNumber,
		p.HoursNumber, p.MinutesNumber, p.Time)
}
