package chrono

import "fmt"

// ZoneProvider is the capability a date-time value needs from a timezone:
// a UTC offset and, optionally, a display name. The argument is the value
// asking, or nil when no specific value applies; a fixed-offset zone
// ignores it. The boolean is false when the capability is undefined.
type ZoneProvider interface {
	OffsetFor(dt *DateTime) (Span, bool)
	NameFor(dt *DateTime) (string, bool)
}

// FixedZone is a timezone with a constant UTC offset and no DST rules. It
// cannot represent locations whose offset varies over the year or has
// changed historically.
//
// Values reference a FixedZone by pointer and never own it; the identity
// of the pointer is meaningful (comparison between two date-times takes a
// fast path when both reference the same zone).
type FixedZone struct {
	offset Span
	name   string
	named  bool
}

// Process-wide zone constants. Unnamed zero-offset zones collapse to UTC.
var (
	UTC = &FixedZone{}

	// MinZone and MaxZone carry the extreme representable offsets,
	// -23:59 and +23:59.
	MinZone = &FixedZone{offset: Span{days: -1, secs: secondsPerDay - (23*3600 + 59*60)}}
	MaxZone = &FixedZone{offset: Span{secs: 23*3600 + 59*60}}
)

func checkZoneOffset(offset Span) error {
	if offset.days < -1 || offset.days > 0 || (offset.days == -1 && offset.secs == 0 && offset.us == 0) {
		// Anything with |offset| >= 24h.
		return &FieldError{Field: "offset", Msg: "must be strictly between -24h and +24h"}
	}
	if offset.us != 0 || offset.secs%60 != 0 {
		return &FieldError{Field: "offset", Msg: "must be a whole number of minutes"}
	}
	return nil
}

// NewFixedZone returns a zone with the given offset and display name. The
// offset must be strictly between -24h and +24h and a whole number of
// minutes, else a *FieldError.
func NewFixedZone(offset Span, name string) (*FixedZone, error) {
	if err := checkZoneOffset(offset); err != nil {
		return nil, err
	}
	return &FixedZone{offset: offset, name: name, named: true}, nil
}

// FixedZoneFor returns an unnamed zone with the given offset. A zero
// offset returns the UTC singleton.
func FixedZoneFor(offset Span) (*FixedZone, error) {
	if err := checkZoneOffset(offset); err != nil {
		return nil, err
	}
	if offset.IsZero() {
		return UTC, nil
	}
	return &FixedZone{offset: offset}, nil
}

// MustFixedZone is like NewFixedZone but panics on error.
func MustFixedZone(offset Span, name string) *FixedZone {
	z, err := NewFixedZone(offset, name)
	if err != nil {
		panic(err)
	}
	return z
}

// Offset returns the zone's UTC offset, positive east of UTC.
func (z *FixedZone) Offset() Span { return z.offset }

// Name returns the explicit display name, or a synthesized "UTC±HH:MM"
// when none was given. The UTC singleton is named "UTC".
func (z *FixedZone) Name() string {
	if z.named {
		return z.name
	}
	if z == UTC {
		return "UTC"
	}
	return offsetName(z.offset)
}

// Equal reports whether two zones have the same offset. The display name
// does not participate.
func (z *FixedZone) Equal(other *FixedZone) bool {
	if z == nil || other == nil {
		return z == other
	}
	return z.offset == other.offset
}

func (z *FixedZone) String() string { return z.Name() }

// OffsetFor implements ZoneProvider; the offset is constant.
func (z *FixedZone) OffsetFor(*DateTime) (Span, bool) { return z.offset, true }

// NameFor implements ZoneProvider.
func (z *FixedZone) NameFor(*DateTime) (string, bool) { return z.Name(), true }

// offsetMinutes returns the offset as signed whole minutes.
func offsetMinutes(offset Span) int {
	return int(offset.days)*24*60 + int(offset.secs)/60
}

func offsetName(offset Span) string {
	m := offsetMinutes(offset)
	sign := "+"
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, m/60, m%60)
}
