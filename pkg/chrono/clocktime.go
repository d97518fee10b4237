package chrono

import "fmt"

// ClockTime is an immutable time of day, independent of any particular
// date. A ClockTime is naive when it has no zone and aware when it
// references a FixedZone. Fold disambiguates the earlier (0) and later (1)
// of two instants that share the same wall-clock fields across an offset
// transition.
//
// The zero ClockTime is midnight, naive.
type ClockTime struct {
	hour   int
	minute int
	second int
	micro  int
	fold   int
	zone   *FixedZone
}

func checkTimeFields(hour, minute, second, micro, fold int) error {
	if hour < 0 || hour > 23 {
		return &FieldError{Field: "hour", Msg: fmt.Sprintf("must be in 0..23, got %d", hour)}
	}
	if minute < 0 || minute > 59 {
		return &FieldError{Field: "minute", Msg: fmt.Sprintf("must be in 0..59, got %d", minute)}
	}
	if second < 0 || second > 59 {
		return &FieldError{Field: "second", Msg: fmt.Sprintf("must be in 0..59, got %d", second)}
	}
	if micro < 0 || micro > 999999 {
		return &FieldError{Field: "microsecond", Msg: fmt.Sprintf("must be in 0..999999, got %d", micro)}
	}
	if fold != 0 && fold != 1 {
		return &FieldError{Field: "fold", Msg: fmt.Sprintf("must be either 0 or 1, got %d", fold)}
	}
	return nil
}

// NewClockTime validates the fields and returns a naive time of day.
func NewClockTime(hour, minute, second, micro int) (ClockTime, error) {
	return NewClockTimeIn(hour, minute, second, micro, nil, 0)
}

// NewClockTimeIn is NewClockTime with a zone (nil for naive) and fold.
func NewClockTimeIn(hour, minute, second, micro int, zone *FixedZone, fold int) (ClockTime, error) {
	if err := checkTimeFields(hour, minute, second, micro, fold); err != nil {
		return ClockTime{}, err
	}
	return ClockTime{hour: hour, minute: minute, second: second, micro: micro, zone: zone, fold: fold}, nil
}

// MustClockTime is like NewClockTime but panics on error.
func MustClockTime(hour, minute, second, micro int) ClockTime {
	t, err := NewClockTime(hour, minute, second, micro)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour returns the hour, in 0..23.
func (t ClockTime) Hour() int { return t.hour }

// Minute returns the minute, in 0..59.
func (t ClockTime) Minute() int { return t.minute }

// Second returns the second, in 0..59.
func (t ClockTime) Second() int { return t.second }

// Microsecond returns the microsecond, in 0..999999.
func (t ClockTime) Microsecond() int { return t.micro }

// Fold returns the fold discriminator, 0 or 1.
func (t ClockTime) Fold() int { return t.fold }

// Zone returns the referenced zone, or nil for a naive time.
func (t ClockTime) Zone() *FixedZone { return t.zone }

// UTCOffset returns the zone offset; ok is false for a naive time.
func (t ClockTime) UTCOffset() (Span, bool) {
	if t.zone == nil {
		return Span{}, false
	}
	return t.zone.OffsetFor(nil)
}

// ZoneName returns the zone's display name; ok is false for a naive time.
func (t ClockTime) ZoneName() (string, bool) {
	if t.zone == nil {
		return "", false
	}
	return t.zone.NameFor(nil)
}

// Replace returns a copy with the given fields replaced. Only time-of-day
// options (WithHour through WithMicrosecond, WithZone, WithFold) apply;
// date options are a *FieldError.
func (t ClockTime) Replace(opts ...ReplaceOption) (ClockTime, error) {
	r := gatherReplace(opts)
	if f, ok := r.dateField(); ok {
		return ClockTime{}, &FieldError{Field: f, Msg: "is not a clock-time field"}
	}
	zone := t.zone
	if r.zoneSet {
		zone = r.zone
	}
	return NewClockTimeIn(
		orInt(r.hour, t.hour), orInt(r.minute, t.minute), orInt(r.second, t.second),
		orInt(r.micro, t.micro), zone, orInt(r.fold, t.fold))
}

// Equal reports whether two times denote the same instant of the day.
// Mixing naive and aware compares unequal rather than failing.
func (t ClockTime) Equal(other ClockTime) bool {
	c, err := t.cmp(other, true)
	return err == nil && c == 0
}

// Compare orders two times, returning -1, 0 or +1. Comparing a naive time
// with an aware one is a *ComparisonError.
func (t ClockTime) Compare(other ClockTime) (int, error) {
	return t.cmp(other, false)
}

func (t ClockTime) cmp(other ClockTime, allowMixed bool) (int, error) {
	if t.zone == other.zone {
		return t.cmpFields(other), nil
	}
	myoff, myok := t.UTCOffset()
	otoff, otok := other.UTCOffset()
	if myok && otok && myoff == otoff {
		return t.cmpFields(other), nil
	}
	if !myok || !otok {
		if allowMixed {
			return 2, nil // unequal; no ordering implied
		}
		return 0, &ComparisonError{Msg: "cannot compare naive and aware times"}
	}
	myhhmm := t.hour*60 + t.minute - offsetMinutes(myoff)
	othhmm := other.hour*60 + other.minute - offsetMinutes(otoff)
	switch {
	case myhhmm != othhmm:
		return cmpInt64(int64(myhhmm), int64(othhmm)), nil
	case t.second != other.second:
		return cmpInt64(int64(t.second), int64(other.second)), nil
	default:
		return cmpInt64(int64(t.micro), int64(other.micro)), nil
	}
}

func (t ClockTime) cmpFields(other ClockTime) int {
	switch {
	case t.hour != other.hour:
		return cmpInt64(int64(t.hour), int64(other.hour))
	case t.minute != other.minute:
		return cmpInt64(int64(t.minute), int64(other.minute))
	case t.second != other.second:
		return cmpInt64(int64(t.second), int64(other.second))
	default:
		return cmpInt64(int64(t.micro), int64(other.micro))
	}
}

// ISOFormat renders the time as HH:MM:SS[.ffffff], with the microsecond
// part only when nonzero, followed by the ±HH:MM offset for aware times.
func (t ClockTime) ISOFormat() string {
	s := formatTimeFields(t.hour, t.minute, t.second, t.micro)
	if off, ok := t.UTCOffset(); ok {
		s += formatOffset(off)
	}
	return s
}

func (t ClockTime) String() string { return t.ISOFormat() }

// ReplaceOption selects a field for Replace on ClockTime, Date-bearing
// values and DateTime.
type ReplaceOption func(*replaceFields)

type replaceFields struct {
	year, month, day            *int
	hour, minute, second, micro *int
	fold                        *int
	zone                        *FixedZone
	zoneSet                     bool
}

func gatherReplace(opts []ReplaceOption) replaceFields {
	var r replaceFields
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// dateField returns the first date option present, if any.
func (r *replaceFields) dateField() (string, bool) {
	switch {
	case r.year != nil:
		return "year", true
	case r.month != nil:
		return "month", true
	case r.day != nil:
		return "day", true
	}
	return "", false
}

func orInt(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

// WithYear replaces the year.
func WithYear(v int) ReplaceOption { return func(r *replaceFields) { r.year = &v } }

// WithMonth replaces the month.
func WithMonth(v int) ReplaceOption { return func(r *replaceFields) { r.month = &v } }

// WithDay replaces the day.
func WithDay(v int) ReplaceOption { return func(r *replaceFields) { r.day = &v } }

// WithHour replaces the hour.
func WithHour(v int) ReplaceOption { return func(r *replaceFields) { r.hour = &v } }

// WithMinute replaces the minute.
func WithMinute(v int) ReplaceOption { return func(r *replaceFields) { r.minute = &v } }

// WithSecond replaces the second.
func WithSecond(v int) ReplaceOption { return func(r *replaceFields) { r.second = &v } }

// WithMicrosecond replaces the microsecond.
func WithMicrosecond(v int) ReplaceOption { return func(r *replaceFields) { r.micro = &v } }

// WithFold replaces the fold discriminator.
func WithFold(v int) ReplaceOption { return func(r *replaceFields) { r.fold = &v } }

// WithZone replaces the zone; nil makes the result naive.
func WithZone(z *FixedZone) ReplaceOption {
	return func(r *replaceFields) { r.zone = z; r.zoneSet = true }
}
