package chrono

import "fmt"

// epochOrdinal is the proleptic Gregorian ordinal of 1970-01-01.
const epochOrdinal = 719163

// DateTime is an immutable composite of a calendar date and a time of
// day, plus an optional fixed-offset zone and the fold discriminator. A
// DateTime is naive (zone == nil) or aware (zone != nil); which of the
// two it is gets fixed at construction and never changes silently.
//
// DateTime is comparable; == means identical fields including zone
// identity and fold. Use Equal for instant equality across offsets.
type DateTime struct {
	year   int
	month  int
	day    int
	hour   int
	minute int
	second int
	micro  int
	fold   int
	zone   *FixedZone
}

// EpochUTC is 1970-01-01T00:00:00 in UTC, the reference point for POSIX
// timestamps.
var EpochUTC = DateTime{year: 1970, month: 1, day: 1, zone: UTC}

// NewDateTime validates every field and returns a naive date-time.
func NewDateTime(year, month, day, hour, minute, second, micro int) (DateTime, error) {
	return NewDateTimeIn(year, month, day, hour, minute, second, micro, nil, 0)
}

// NewDateTimeIn is NewDateTime with a zone (nil for naive) and fold.
func NewDateTimeIn(year, month, day, hour, minute, second, micro int, zone *FixedZone, fold int) (DateTime, error) {
	if err := checkDateFields(year, month, day); err != nil {
		return DateTime{}, err
	}
	if err := checkTimeFields(hour, minute, second, micro, fold); err != nil {
		return DateTime{}, err
	}
	return DateTime{
		year: year, month: month, day: day,
		hour: hour, minute: minute, second: second, micro: micro,
		zone: zone, fold: fold,
	}, nil
}

// MustDateTime is like NewDateTime but panics on error.
func MustDateTime(year, month, day, hour, minute, second, micro int) DateTime {
	dt, err := NewDateTime(year, month, day, hour, minute, second, micro)
	if err != nil {
		panic(err)
	}
	return dt
}

// DateTimeFromOrdinal returns midnight of the date with the given
// proleptic Gregorian ordinal, naive.
func DateTimeFromOrdinal(n int) (DateTime, error) {
	d, err := DateFromOrdinal(n)
	if err != nil {
		return DateTime{}, err
	}
	return Combine(d, ClockTime{}), nil
}

// Combine joins a date with a time of day; zone and fold come from the
// time.
func Combine(d Date, t ClockTime) DateTime {
	return DateTime{
		year: d.year, month: d.month, day: d.day,
		hour: t.hour, minute: t.minute, second: t.second, micro: t.micro,
		zone: t.zone, fold: t.fold,
	}
}

// Now returns the current local time as a naive date-time.
func Now(hc HostClock) (DateTime, error) {
	return FromTimestamp(hc, hc.RawNow(), nil)
}

// NowIn returns the current time in the given zone.
func NowIn(hc HostClock, zone *FixedZone) (DateTime, error) {
	return FromTimestamp(hc, hc.RawNow(), zone)
}

// UTCNow returns the current UTC time as a naive date-time.
func UTCNow(hc HostClock) (DateTime, error) {
	return UTCFromTimestamp(hc.RawNow())
}

// FromTimestamp converts a POSIX timestamp. With a nil zone the result is
// naive local time obtained through the host clock; with a zone the
// result is computed from the timestamp by pure arithmetic and expressed
// in that zone.
func FromTimestamp(hc HostClock, t float64, zone *FixedZone) (DateTime, error) {
	sec, us := splitTimestamp(t)
	if zone != nil {
		dt, err := fromEpochSeconds(sec, us)
		if err != nil {
			return DateTime{}, err
		}
		dt.zone = zone
		// Shift from UTC wall clock into the zone's wall clock.
		return dt.AddSpan(zone.offset)
	}
	y, mo, d, h, mi, s := hc.LocalDecompose(sec)
	if s > 59 {
		s = 59
	}
	return NewDateTime(y, mo, d, h, mi, s, us)
}

// UTCFromTimestamp converts a POSIX timestamp to naive UTC wall-clock
// fields without consulting any host primitive.
func UTCFromTimestamp(t float64) (DateTime, error) {
	sec, us := splitTimestamp(t)
	return fromEpochSeconds(sec, us)
}

// fromEpochSeconds builds the naive UTC decomposition of whole epoch
// seconds plus a microsecond remainder.
func fromEpochSeconds(sec int64, us int) (DateTime, error) {
	days, rem := floorDivMod(sec, secondsPerDay)
	ord := days + epochOrdinal
	if ord < 1 || ord > maxOrdinal {
		return DateTime{}, &OverflowError{Msg: "timestamp out of range"}
	}
	y, mo, d := ordinalToYMD(int(ord))
	h := int(rem / 3600)
	mi := int(rem%3600) / 60
	s := int(rem % 60)
	return DateTime{year: y, month: mo, day: d, hour: h, minute: mi, second: s, micro: us}, nil
}

// Field accessors.

// Year returns the year, between 1 and 9999.
func (dt DateTime) Year() int { return dt.year }

// Month returns the month, between 1 and 12.
func (dt DateTime) Month() int { return dt.month }

// Day returns the day of month.
func (dt DateTime) Day() int { return dt.day }

// Hour returns the hour, in 0..23.
func (dt DateTime) Hour() int { return dt.hour }

// Minute returns the minute, in 0..59.
func (dt DateTime) Minute() int { return dt.minute }

// Second returns the second, in 0..59.
func (dt DateTime) Second() int { return dt.second }

// Microsecond returns the microsecond, in 0..999999.
func (dt DateTime) Microsecond() int { return dt.micro }

// Fold returns the fold discriminator, 0 or 1.
func (dt DateTime) Fold() int { return dt.fold }

// Zone returns the referenced zone, or nil for a naive value.
func (dt DateTime) Zone() *FixedZone { return dt.zone }

// IsAware reports whether the value carries a zone.
func (dt DateTime) IsAware() bool { return dt.zone != nil }

// DatePart returns the calendar date.
func (dt DateTime) DatePart() Date {
	return Date{year: dt.year, month: dt.month, day: dt.day}
}

// TimePart returns the time of day, naive, preserving fold.
func (dt DateTime) TimePart() ClockTime {
	return ClockTime{hour: dt.hour, minute: dt.minute, second: dt.second, micro: dt.micro, fold: dt.fold}
}

// TimePartWithZone returns the time of day with the zone attached.
func (dt DateTime) TimePartWithZone() ClockTime {
	t := dt.TimePart()
	t.zone = dt.zone
	return t
}

// UTCOffset returns the zone offset; ok is false for a naive value.
func (dt DateTime) UTCOffset() (Span, bool) {
	if dt.zone == nil {
		return Span{}, false
	}
	return dt.zone.OffsetFor(&dt)
}

// ZoneName returns the zone's display name; ok is false for a naive
// value.
func (dt DateTime) ZoneName() (string, bool) {
	if dt.zone == nil {
		return "", false
	}
	return dt.zone.NameFor(&dt)
}

// Ordinal returns the proleptic Gregorian ordinal of the date part.
func (dt DateTime) Ordinal() int {
	return ymdToOrdinal(dt.year, dt.month, dt.day)
}

// Weekday returns the day of the week with Monday as 0 and Sunday as 6.
func (dt DateTime) Weekday() int { return dt.DatePart().Weekday() }

// ISOWeekday returns the day of the week with Monday as 1 and Sunday as 7.
func (dt DateTime) ISOWeekday() int { return dt.DatePart().ISOWeekday() }

// Replace returns a copy with the given fields replaced; absent options
// keep the current values. WithZone(nil) strips the zone.
func (dt DateTime) Replace(opts ...ReplaceOption) (DateTime, error) {
	r := gatherReplace(opts)
	zone := dt.zone
	if r.zoneSet {
		zone = r.zone
	}
	return NewDateTimeIn(
		orInt(r.year, dt.year), orInt(r.month, dt.month), orInt(r.day, dt.day),
		orInt(r.hour, dt.hour), orInt(r.minute, dt.minute), orInt(r.second, dt.second),
		orInt(r.micro, dt.micro), zone, orInt(r.fold, dt.fold))
}

// secondOfDay returns the time of day in whole seconds.
func (dt DateTime) secondOfDay() int {
	return dt.hour*3600 + dt.minute*60 + dt.second
}

// AddSpan returns the date-time shifted forward by a span. The zone
// reference carries over; fold resets to 0. A result outside year 1..9999
// is a *OverflowError.
func (dt DateTime) AddSpan(sp Span) (DateTime, error) {
	sum, err := newSpanTriple(
		int64(dt.Ordinal())+sp.days,
		int64(dt.secondOfDay())+int64(sp.secs),
		int64(dt.micro)+int64(sp.us))
	if err != nil {
		return DateTime{}, &OverflowError{Msg: "date-time result out of range"}
	}
	if sum.days < 1 || sum.days > maxOrdinal {
		return DateTime{}, &OverflowError{Msg: "date-time result out of range"}
	}
	y, mo, d := ordinalToYMD(int(sum.days))
	h := int(sum.secs) / 3600
	mi := int(sum.secs) % 3600 / 60
	s := int(sum.secs) % 60
	return DateTime{
		year: y, month: mo, day: d,
		hour: h, minute: mi, second: s, micro: int(sum.us),
		zone: dt.zone,
	}, nil
}

// SubSpan returns the date-time shifted backward by a span.
func (dt DateTime) SubSpan(sp Span) (DateTime, error) {
	sum, err := newSpanTriple(
		int64(dt.Ordinal())-sp.days,
		int64(dt.secondOfDay())-int64(sp.secs),
		int64(dt.micro)-int64(sp.us))
	if err != nil {
		return DateTime{}, &OverflowError{Msg: "date-time result out of range"}
	}
	if sum.days < 1 || sum.days > maxOrdinal {
		return DateTime{}, &OverflowError{Msg: "date-time result out of range"}
	}
	y, mo, d := ordinalToYMD(int(sum.days))
	h := int(sum.secs) / 3600
	mi := int(sum.secs) % 3600 / 60
	s := int(sum.secs) % 60
	return DateTime{
		year: y, month: mo, day: d,
		hour: h, minute: mi, second: s, micro: int(sum.us),
		zone: dt.zone,
	}, nil
}

// Sub returns the span dt - other. If both sides reference the same zone
// (or both are naive) the difference is taken on wall-clock fields;
// otherwise both sides are offset-adjusted first. Mixing a naive and an
// aware value is a *ComparisonError.
func (dt DateTime) Sub(other DateTime) (Span, error) {
	base, err := newSpanTriple(
		int64(dt.Ordinal())-int64(other.Ordinal()),
		int64(dt.secondOfDay())-int64(other.secondOfDay()),
		int64(dt.micro)-int64(other.micro))
	if err != nil {
		return Span{}, err
	}
	if dt.zone == other.zone {
		return base, nil
	}
	myoff, myok := dt.UTCOffset()
	otoff, otok := other.UTCOffset()
	if myok && otok && myoff == otoff {
		return base, nil
	}
	if !myok || !otok {
		return Span{}, &ComparisonError{Msg: "cannot mix naive and aware date-times"}
	}
	adj, err := base.Add(otoff)
	if err != nil {
		return Span{}, err
	}
	return adj.Sub(myoff)
}

// Equal reports whether two date-times denote the same instant. Mixing
// naive and aware compares unequal rather than failing, as does the
// ambiguous case where either side's offset would change under a toggled
// fold (a repeated wall-clock instant).
func (dt DateTime) Equal(other DateTime) bool {
	c, err := dt.cmp(other, true)
	return err == nil && c == 0
}

// Compare orders two date-times, returning -1, 0 or +1. Comparing a naive
// value with an aware one is a *ComparisonError.
func (dt DateTime) Compare(other DateTime) (int, error) {
	return dt.cmp(other, false)
}

// Before reports whether dt is strictly earlier than other.
func (dt DateTime) Before(other DateTime) (bool, error) {
	c, err := dt.Compare(other)
	return c < 0, err
}

// After reports whether dt is strictly later than other.
func (dt DateTime) After(other DateTime) (bool, error) {
	c, err := dt.Compare(other)
	return c > 0, err
}

func (dt DateTime) cmp(other DateTime, allowMixed bool) (int, error) {
	baseCompare := dt.zone == other.zone
	var myoff, otoff Span
	var myok, otok bool
	if !baseCompare {
		myoff, myok = dt.UTCOffset()
		otoff, otok = other.UTCOffset()
		if allowMixed {
			// A wall-clock reading whose offset changes when fold is
			// toggled is ambiguous; such instants are never equal.
			if myok && dt.offsetWithFold(1-dt.fold) != myoff {
				return 2, nil
			}
			if otok && other.offsetWithFold(1-other.fold) != otoff {
				return 2, nil
			}
		}
		baseCompare = myok && otok && myoff == otoff
	}
	if baseCompare {
		return dt.cmpFields(other), nil
	}
	if !myok || !otok {
		if allowMixed {
			return 2, nil // unequal; no ordering implied
		}
		return 0, &ComparisonError{Msg: "cannot compare naive and aware date-times"}
	}
	diff, err := dt.Sub(other)
	if err != nil {
		return 0, err
	}
	switch {
	case diff.days < 0:
		return -1, nil
	case diff.IsZero():
		return 0, nil
	default:
		return 1, nil
	}
}

// offsetWithFold evaluates the zone offset as if fold had the given
// value. Fixed zones never vary with fold, but the check keeps equality
// honest for any ZoneProvider that might.
func (dt DateTime) offsetWithFold(fold int) Span {
	alt := dt
	alt.fold = fold
	off, _ := alt.zone.OffsetFor(&alt)
	return off
}

func (dt DateTime) cmpFields(other DateTime) int {
	a := [7]int{dt.year, dt.month, dt.day, dt.hour, dt.minute, dt.second, dt.micro}
	b := [7]int{other.year, other.month, other.day, other.hour, other.minute, other.second, other.micro}
	for i := range a {
		if a[i] != b[i] {
			return cmpInt64(int64(a[i]), int64(b[i]))
		}
	}
	return 0
}

// UTCKey returns a comparable key identifying the instant: the span from
// the UTC epoch for aware values, or the wall-clock span from the naive
// epoch for naive ones. Two aware values in different fixed offsets that
// denote the same instant produce identical keys; a naive key never
// collides semantics with an aware one, so the boolean distinguishes
// them.
func (dt DateTime) UTCKey() (key Span, aware bool) {
	base, _ := newSpanTriple(
		int64(dt.Ordinal()-epochOrdinal),
		int64(dt.secondOfDay()),
		int64(dt.micro))
	if off, ok := dt.UTCOffset(); ok {
		adj, _ := base.Sub(off)
		return adj, true
	}
	return base, false
}

// Timestamp returns the POSIX timestamp. Aware values need no host
// support; naive values are resolved through the host clock's local-time
// decomposition, with fold selecting the earlier or later root when the
// local clock repeats (and the nearer side of a gap when it skips).
func (dt DateTime) Timestamp(hc HostClock) (float64, error) {
	if dt.zone != nil {
		diff, err := dt.Sub(EpochUTC)
		if err != nil {
			return 0, err
		}
		return diff.TotalSeconds(), nil
	}
	s := dt.mktime(hc)
	return float64(s) + float64(dt.micro)/1e6, nil
}

// naiveEpochSeconds returns the whole seconds from the naive epoch to the
// wall-clock fields, ignoring zone and microseconds.
func (dt DateTime) naiveEpochSeconds() int64 {
	return int64(dt.Ordinal()-epochOrdinal)*secondsPerDay + int64(dt.secondOfDay())
}

// mktime inverts the host's local-time decomposition: it solves
// t = local(u) for u, where t is the target wall clock in naive epoch
// seconds. Two probes bracket the answer under the assumption that the
// local offset is within ±24h and changes at most once nearby; fold picks
// the earlier (0) or later (1) root when two exist, and the gap case
// falls back to the max (fold 0) or min (fold 1) candidate.
func (dt DateTime) mktime(hc HostClock) int64 {
	const maxFoldSeconds = 24 * 3600
	t := dt.naiveEpochSeconds()

	local := func(u int64) int64 {
		y, mo, d, h, mi, s := hc.LocalDecompose(u)
		return int64(ymdToOrdinal(y, mo, d)-epochOrdinal)*secondsPerDay +
			int64(h*3600+mi*60+s)
	}

	a := local(t) - t
	u1 := t - a
	t1 := local(u1)
	var b int64
	if t1 == t {
		// One solution found; check whether an earlier (fold 0) or
		// later (fold 1) one exists.
		probe := int64(-maxFoldSeconds)
		if dt.fold == 1 {
			probe = maxFoldSeconds
		}
		u2 := u1 + probe
		b = local(u2) - u2
		if a == b {
			return u1
		}
	} else {
		b = t1 - u1
	}
	u2 := t - b
	t2 := local(u2)
	if t2 == t {
		return u2
	}
	if t1 == t {
		return u1
	}
	// Neither candidate decodes back to t: the target is in a gap.
	if dt.fold == 1 {
		if u1 < u2 {
			return u1
		}
		return u2
	}
	if u1 > u2 {
		return u1
	}
	return u2
}

// CTime renders the date-time in ctime(3) shape, e.g.
// "Sun Mar 14 15:09:26 2021", using fixed English abbreviations.
func (dt DateTime) CTime() string {
	return fmt.Sprintf("%s %s %2d %02d:%02d:%02d %04d",
		dayAbbrev[dt.ISOWeekday()], monthAbbrev[dt.month], dt.day,
		dt.hour, dt.minute, dt.second, dt.year)
}

// ISOFormat renders the value in ISO 8601 form with a 'T' separator:
// YYYY-MM-DDTHH:MM:SS[.ffffff][±HH:MM]. The microsecond part appears only
// when nonzero, the offset only for aware values.
func (dt DateTime) ISOFormat() string {
	return dt.ISOFormatSep('T')
}

// ISOFormatSep is ISOFormat with a custom single-character separator
// between the date and time parts.
func (dt DateTime) ISOFormatSep(sep byte) string {
	s := fmt.Sprintf("%04d-%02d-%02d%c", dt.year, dt.month, dt.day, sep) +
		formatTimeFields(dt.hour, dt.minute, dt.second, dt.micro)
	if off, ok := dt.UTCOffset(); ok {
		s += formatOffset(off)
	}
	return s
}

// String renders with a space separator, the conventional display form.
func (dt DateTime) String() string { return dt.ISOFormatSep(' ') }
