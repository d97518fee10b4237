package chrono

import "fmt"

// Date is an immutable proleptic Gregorian calendar date. Dates are always
// naive: they carry no timezone. The zero Date is not valid; construct
// through NewDate, DateFromOrdinal or ParseDateISO.
type Date struct {
	year  int
	month int
	day   int
}

// NewDate validates the fields and returns the date. Year must be in
// 1..9999, month in 1..12 and day in 1..DaysInMonth(year, month);
// violations return a *FieldError naming the field.
func NewDate(year, month, day int) (Date, error) {
	if err := checkDateFields(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is like NewDate but panics on error.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromOrdinal returns the date with the given proleptic Gregorian
// ordinal, where 0001-01-01 has ordinal 1.
func DateFromOrdinal(n int) (Date, error) {
	if n < 1 || n > maxOrdinal {
		return Date{}, &OverflowError{Msg: fmt.Sprintf("ordinal must be in 1..%d, got %d", maxOrdinal, n)}
	}
	y, m, d := ordinalToYMD(n)
	return Date{year: y, month: m, day: d}, nil
}

// DateFromTimestamp returns the local date for a POSIX timestamp,
// decomposed through the host clock.
func DateFromTimestamp(hc HostClock, t float64) (Date, error) {
	y, mo, d, _, _, _ := hc.LocalDecompose(epochSecondsOf(t))
	return NewDate(y, mo, d)
}

// Today returns the current local date.
func Today(hc HostClock) (Date, error) {
	return DateFromTimestamp(hc, hc.RawNow())
}

// Year returns the year, between 1 and 9999.
func (d Date) Year() int { return d.year }

// Month returns the month, between 1 and 12.
func (d Date) Month() int { return d.month }

// Day returns the day of month.
func (d Date) Day() int { return d.day }

// Ordinal returns the proleptic Gregorian ordinal of the date.
func (d Date) Ordinal() int {
	return ymdToOrdinal(d.year, d.month, d.day)
}

// Weekday returns the day of the week with Monday as 0 and Sunday as 6.
func (d Date) Weekday() int {
	return (d.Ordinal() + 6) % 7
}

// ISOWeekday returns the day of the week with Monday as 1 and Sunday as 7.
func (d Date) ISOWeekday() int {
	if wd := d.Ordinal() % 7; wd != 0 {
		return wd
	}
	return 7
}

// Replace returns a copy with the given fields replaced; zero arguments
// keep the current value (no date field has 0 as a valid value).
func (d Date) Replace(year, month, day int) (Date, error) {
	if year == 0 {
		year = d.year
	}
	if month == 0 {
		month = d.month
	}
	if day == 0 {
		day = d.day
	}
	return NewDate(year, month, day)
}

// AddSpan returns the date shifted by the day component of the span; the
// sub-day components are ignored, matching date+duration semantics. The
// result is a *OverflowError when it leaves year 1..9999.
func (d Date) AddSpan(sp Span) (Date, error) {
	ord := int64(d.Ordinal()) + sp.days
	if ord < 1 || ord > maxOrdinal {
		return Date{}, &OverflowError{Msg: "date result out of range"}
	}
	return DateFromOrdinal(int(ord))
}

// SubSpan returns the date shifted backwards by the day component of the
// span.
func (d Date) SubSpan(sp Span) (Date, error) {
	ord := int64(d.Ordinal()) - sp.days
	if ord < 1 || ord > maxOrdinal {
		return Date{}, &OverflowError{Msg: "date result out of range"}
	}
	return DateFromOrdinal(int(ord))
}

// Sub returns the span between two dates (d - other).
func (d Date) Sub(other Date) Span {
	return Span{days: int64(d.Ordinal() - other.Ordinal())}
}

// Cmp compares two dates chronologically, returning -1, 0 or +1.
func (d Date) Cmp(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt64(int64(d.year), int64(other.year))
	case d.month != other.month:
		return cmpInt64(int64(d.month), int64(other.month))
	default:
		return cmpInt64(int64(d.day), int64(other.day))
	}
}

// Equal reports whether two dates are the same day.
func (d Date) Equal(other Date) bool { return d == other }

// Before reports whether d is before other.
func (d Date) Before(other Date) bool { return d.Cmp(other) < 0 }

// After reports whether d is after other.
func (d Date) After(other Date) bool { return d.Cmp(other) > 0 }

// ISOFormat renders the date as YYYY-MM-DD.
func (d Date) ISOFormat() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d Date) String() string { return d.ISOFormat() }
