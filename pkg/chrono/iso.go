package chrono

import (
	"fmt"
	"regexp"
	"strconv"
)

// The grammar is consumed as a straight-line sequence of optional
// segments, each anchored at the current position; the tail segments may
// be absent but any unconsumed trailing text is a parse failure.
var (
	isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

	// HH[:MM[:SS[.fff[fff]]]]
	isoTimeSegments = []*regexp.Regexp{
		regexp.MustCompile(`^(\d{2})`),
		regexp.MustCompile(`^:(\d{2})`),
		regexp.MustCompile(`^:(\d{2})`),
		regexp.MustCompile(`^\.(\d{3})`),
		regexp.MustCompile(`^(\d{3})`),
	}

	// [+-]HH:MM[:SS[.ffffff]]
	isoOffsetSegments = []*regexp.Regexp{
		regexp.MustCompile(`^([+-]\d{2}):(\d{2})`),
		regexp.MustCompile(`^:(\d{2})`),
		regexp.MustCompile(`^\.(\d{6})`),
	}

	// Splits a time string before its trailing offset block; greedy, so
	// the last sign wins.
	isoOffsetSplit = regexp.MustCompile(`^(.*)[+-]`)
)

// ParseDateISO parses a YYYY-MM-DD date. Any other shape is a
// *ParseError carrying the input.
func ParseDateISO(s string) (Date, error) {
	m := isoDatePattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, &ParseError{Input: s}
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	dt, err := NewDate(y, mo, d)
	if err != nil {
		return Date{}, &ParseError{Input: s, Cause: err}
	}
	return dt, nil
}

// ParseClockTimeISO parses HH[:MM[:SS[.fff[fff]]]] with an optional
// [+-]HH:MM[:SS[.ffffff]] offset block. A present offset yields an aware
// result in an unnamed fixed zone (UTC for a zero offset).
func ParseClockTimeISO(s string) (ClockTime, error) {
	t, err := parseClockTime(s)
	if err != nil {
		return ClockTime{}, &ParseError{Input: s, Cause: err}
	}
	return t, nil
}

func parseClockTime(s string) (ClockTime, error) {
	timePart := s
	offsetPart := ""
	if m := isoOffsetSplit.FindStringSubmatch(s); m != nil {
		timePart = m[1]
		offsetPart = s[len(m[1]):]
	}

	vals, ok := matchSegments(timePart, isoTimeSegments)
	if !ok || len(vals) < 1 {
		return ClockTime{}, fmt.Errorf("malformed time")
	}
	hh := vals[0]
	mm, ss := segVal(vals, 1), segVal(vals, 2)
	us := segVal(vals, 3)*1000 + segVal(vals, 4)

	var zone *FixedZone
	if offsetPart != "" {
		off, err := parseOffset(offsetPart)
		if err != nil {
			return ClockTime{}, err
		}
		zone, err = FixedZoneFor(off)
		if err != nil {
			return ClockTime{}, err
		}
	}
	return NewClockTimeIn(hh, mm, ss, us, zone, 0)
}

// ParseOffsetISO parses a [+-]HH:MM[:SS[.ffffff]] UTC offset into a Span.
// The sign applies to every sub-field.
func ParseOffsetISO(s string) (Span, error) {
	off, err := parseOffset(s)
	if err != nil {
		return Span{}, &ParseError{Input: s, Cause: err}
	}
	return off, nil
}

func parseOffset(s string) (Span, error) {
	vals, ok := matchSegments(s, isoOffsetSegments)
	if !ok || len(vals) < 2 {
		return Span{}, fmt.Errorf("malformed offset")
	}
	hh := vals[0]
	sign := 1
	if hh < 0 || s[0] == '-' {
		sign = -1
		hh = -hh
	}
	return NewSpan(SpanParts{
		Hours:        float64(sign * hh),
		Minutes:      float64(sign * segVal(vals, 1)),
		Seconds:      float64(sign * segVal(vals, 2)),
		Microseconds: float64(sign * segVal(vals, 3)),
	})
}

// ParseDateTimeISO parses YYYY-MM-DD[*HH[:MM[:SS[.fff[fff]]]][offset]],
// where * is any single separator character.
func ParseDateTimeISO(s string) (DateTime, error) {
	if len(s) <= 10 {
		d, err := ParseDateISO(s)
		if err != nil {
			return DateTime{}, &ParseError{Input: s, Cause: err}
		}
		return Combine(d, ClockTime{}), nil
	}
	d, err := ParseDateISO(s[:10])
	if err != nil {
		return DateTime{}, &ParseError{Input: s, Cause: err}
	}
	t, err := parseClockTime(s[11:])
	if err != nil {
		return DateTime{}, &ParseError{Input: s, Cause: err}
	}
	return Combine(d, t), nil
}

// matchSegments consumes s left to right against the segment patterns.
// Trailing segments may be absent, but once input runs short of a match
// or text remains after the last segment the whole parse fails.
func matchSegments(s string, segments []*regexp.Regexp) ([]int, bool) {
	var vals []int
	rest := s
	for _, re := range segments {
		if rest == "" {
			break
		}
		m := re.FindStringSubmatch(rest)
		if m == nil {
			return nil, false
		}
		for _, g := range m[1:] {
			v, err := strconv.Atoi(g)
			if err != nil {
				return nil, false
			}
			vals = append(vals, v)
		}
		rest = rest[len(m[0]):]
	}
	if rest != "" {
		return nil, false
	}
	return vals, true
}

func segVal(vals []int, i int) int {
	if i < len(vals) {
		return vals[i]
	}
	return 0
}

func formatTimeFields(hh, mm, ss, us int) string {
	if us != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%06d", hh, mm, ss, us)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
}

// formatOffset renders a UTC offset as ±HH:MM[:SS[.ffffff]], suppressing
// the trailing seconds block when zero.
func formatOffset(off Span) string {
	sign := "+"
	if off.days < 0 {
		sign = "-"
		off, _ = off.Neg()
	}
	total := int(off.secs)
	hh, mm, ss := total/3600, (total%3600)/60, total%60
	s := fmt.Sprintf("%s%02d:%02d", sign, hh, mm)
	if ss != 0 || off.us != 0 {
		s += fmt.Sprintf(":%02d", ss)
		if off.us != 0 {
			s += fmt.Sprintf(".%06d", off.us)
		}
	}
	return s
}
