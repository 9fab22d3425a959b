// Package timefmt converts deadlines and remaining durations into display strings.
package timefmt

import "strconv"

// Millisecond constants used by Breakdown.
const (
	OneSec  int64 = 1000
	OneMin        = 60 * OneSec
	OneHour       = 60 * OneMin
	OneDay        = 24 * OneHour
)

// Remaining is a remaining-time breakdown.
type Remaining struct {
	Days  int64
	Hours int64
	Mins  int64
	Secs  int64
}

// ZeroPad prefixes a single "0" to the decimal form of n when -10 < n < 10.
// Negative single digits keep their sign after the pad, so -5 renders "0-5".
func ZeroPad(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n > -10 && n < 10 {
		return "0" + s
	}
	return s
}

// Breakdown splits ms into days, hours, minutes and seconds using truncating
// division. Callers treat ms <= 0 as expired before relying on the result.
func Breakdown(ms int64) Remaining {
	return Remaining{
		Days:  ms / OneDay,
		Hours: (ms % OneDay) / OneHour,
		Mins:  (ms % OneHour) / OneMin,
		Secs:  (ms % OneMin) / OneSec,
	}
}

// Strings returns the display form: days unpadded, the rest zero-padded.
func (r Remaining) Strings() (days, hours, mins, secs string) {
	return strconv.FormatInt(r.Days, 10), ZeroPad(r.Hours), ZeroPad(r.Mins), ZeroPad(r.Secs)
}
