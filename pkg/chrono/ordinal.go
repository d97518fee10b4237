// Package chrono is a self-contained calendar and clock-arithmetic engine
// for the proleptic Gregorian calendar. It represents calendar dates,
// times of day, and composite date-times, supports normalized duration
// arithmetic, fixed-UTC-offset timezones, and round-trip ISO 8601
// conversion.
//
// The package performs no clock reads of its own: operations that need the
// current time or a local-time decomposition take a HostClock explicitly.
// Every value type is immutable and comparable; operations that look like
// mutation (Replace, arithmetic) return a new value. The model assumes
// exactly 86400 seconds per day; leap seconds and DST rules are out of
// scope.
package chrono

import "fmt"

// Year bounds for every date-carrying value in the package.
const (
	MinYear = 1
	MaxYear = 9999
)

// maxOrdinal is the ordinal of 9999-12-31.
const maxOrdinal = 3652059

// Days in the repeating Gregorian cycles.
const (
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

var daysInMonthTable = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysBeforeMonthTable[m] is the number of days in a non-leap year
// preceding the first day of month m.
var daysBeforeMonthTable = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

var monthAbbrev = [13]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var dayAbbrev = [8]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// IsLeap reports whether year is a leap year under the Gregorian rule.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year. Month must be in 1..12.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysInMonthTable[month]
}

// daysBeforeYear returns the number of days before January 1st of year.
func daysBeforeYear(year int) int {
	y := year - 1
	return y*365 + y/4 - y/100 + y/400
}

// daysBeforeMonth returns the number of days in year preceding the first
// day of month.
func daysBeforeMonth(year, month int) int {
	d := daysBeforeMonthTable[month]
	if month > 2 && IsLeap(year) {
		d++
	}
	return d
}

func checkDateFields(year, month, day int) error {
	if year < MinYear || year > MaxYear {
		return &FieldError{Field: "year", Msg: fmt.Sprintf("must be in %d..%d, got %d", MinYear, MaxYear, year)}
	}
	if month < 1 || month > 12 {
		return &FieldError{Field: "month", Msg: fmt.Sprintf("must be in 1..12, got %d", month)}
	}
	if dim := DaysInMonth(year, month); day < 1 || day > dim {
		return &FieldError{Field: "day", Msg: fmt.Sprintf("must be in 1..%d, got %d", dim, day)}
	}
	return nil
}

// ymdToOrdinal converts a valid (year, month, day) to its proleptic
// Gregorian ordinal, where 0001-01-01 is day 1.
func ymdToOrdinal(year, month, day int) int {
	return daysBeforeYear(year) + daysBeforeMonth(year, month) + day
}

// ordinalToYMD is the inverse of ymdToOrdinal for n in [1, maxOrdinal].
//
// The leap-year pattern repeats every 400 years, so the strategy is to
// locate the closest 400-year boundary at or before n and work with the
// offset from that boundary. Counting from zero makes the boundaries land
// exactly on multiples of the cycle lengths, hence the leading n--.
func ordinalToYMD(n int) (year, month, day int) {
	n--
	n400 := n / daysPer400Years
	n = n % daysPer400Years
	year = n400*400 + 1

	// n100 can reach 4 here: four full 100-year cycles precede the
	// desired day only when that day is December 31 at the very end of a
	// 400-year cycle. Same for n1 and the 4-year cycle below.
	n100 := n / daysPer100Years
	n = n % daysPer100Years

	n4 := n / daysPer4Years
	n = n % daysPer4Years

	n1 := n / 365
	n = n % 365

	year += n100*100 + n4*4 + n1
	if n1 == 4 || n100 == 4 {
		return year - 1, 12, 31
	}

	// The year is now correct and n is the day offset from January 1.
	// The month estimate is either exact or one too large.
	leap := n1 == 3 && (n4 != 24 || n100 == 3)
	month = (n + 50) >> 5
	preceding := daysBeforeMonthTable[month]
	if month > 2 && leap {
		preceding++
	}
	if preceding > n {
		month--
		preceding -= daysInMonthTable[month]
		if month == 2 && leap {
			preceding--
		}
	}
	n -= preceding
	return year, month, n + 1
}
