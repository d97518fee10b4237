package chrono

import (
	"fmt"
	"math"
	"math/big"
)

// maxSpanDays bounds the day component of a Span.
const maxSpanDays = 999999999

const (
	secondsPerDay = 86400
	microsPerSec  = 1000000
	microsPerDay  = int64(secondsPerDay) * microsPerSec
)

// Span is a duration, canonically normalized to a (days, seconds,
// microseconds) triple with days in ±999,999,999, seconds in [0, 86399]
// and microseconds in [0, 999999]. Negative durations carry negative days
// with non-negative finer components (floor-division semantics), so the
// triple is the unique representation of its total microsecond count and
// two Spans are interchangeable exactly when they are == to each other.
//
// The zero Span is a zero-length duration and ready to use.
type Span struct {
	days int64
	secs int32
	us   int32
}

// SpanParts carries the quantities accepted by NewSpan. Each field may be
// fractional; fractional remainders of coarse units are carried down to
// finer units during normalization. Integer-valued fields with magnitude
// at most 2^53 convert exactly.
type SpanParts struct {
	Days         float64
	Seconds      float64
	Microseconds float64
	Milliseconds float64
	Minutes      float64
	Hours        float64
	Weeks        float64
}

// NewSpan normalizes the given quantities into a Span. Weeks fold into
// days, hours and minutes into seconds, milliseconds into microseconds;
// fractional parts propagate to the next finer unit, and the accumulated
// fractional microseconds are rounded half-to-even at the final step only.
// The result is a *OverflowError if the normalized day count exceeds
// ±999,999,999, and a *FieldError if any quantity is NaN or infinite.
func NewSpan(p SpanParts) (Span, error) {
	fields := []struct {
		name string
		v    float64
	}{
		{"days", p.Days}, {"seconds", p.Seconds}, {"microseconds", p.Microseconds},
		{"milliseconds", p.Milliseconds}, {"minutes", p.Minutes}, {"hours", p.Hours},
		{"weeks", p.Weeks},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return Span{}, &FieldError{Field: f.name, Msg: "must be finite"}
		}
	}

	// Fold coarse units down to days / seconds / microseconds.
	days := p.Days + p.Weeks*7
	seconds := p.Seconds + p.Minutes*60 + p.Hours*3600
	micros := p.Microseconds + p.Milliseconds*1000

	// Anything this large cannot normalize into the day bound no matter
	// how the components cancel below int64 range, so reject before the
	// float-to-int conversions become unsafe.
	if math.Abs(days) > 1e18 || math.Abs(seconds) > 4e18 || math.Abs(micros) > 4e18 {
		return Span{}, &OverflowError{Msg: "span day count is too large"}
	}

	// Split off fractions, carrying each remainder one unit down.
	dayWhole, dayFrac := math.Modf(days)
	d := int64(dayWhole)
	daySecWhole, daySecFrac := math.Modf(dayFrac * secondsPerDay)
	s := int64(daySecWhole)

	secWhole, secFrac := math.Modf(seconds)
	secFrac += daySecFrac
	carryDays, rem := floorDivMod(int64(secWhole), secondsPerDay)
	d += carryDays
	s += rem

	usFloat := secFrac * 1e6
	microWhole, microFrac := math.Modf(micros)
	usFloat += microFrac

	carrySecs, us := floorDivMod(int64(microWhole), microsPerSec)
	carryDays, rem = floorDivMod(carrySecs, secondsPerDay)
	d += carryDays
	s += rem
	us = addRoundHalfEven(us, usFloat)

	// Final carry into the canonical triple.
	carrySecs, us = floorDivMod(us, microsPerSec)
	s += carrySecs
	carryDays, s = floorDivMod(s, secondsPerDay)
	d += carryDays

	if d < -maxSpanDays || d > maxSpanDays {
		return Span{}, &OverflowError{Msg: fmt.Sprintf("span day count is too large: %d", d)}
	}
	return Span{days: d, secs: int32(s), us: int32(us)}, nil
}

// MustSpan is like NewSpan but panics on error. Intended for constants and
// tests with inputs known to be valid.
func MustSpan(p SpanParts) Span {
	s, err := NewSpan(p)
	if err != nil {
		panic(err)
	}
	return s
}

// newSpanTriple normalizes an exact integer (days, seconds, microseconds)
// triple. The components may be negative or out of range; only the
// normalized day bound can fail.
func newSpanTriple(days, seconds, micros int64) (Span, error) {
	carrySecs, us := floorDivMod(micros, microsPerSec)
	seconds += carrySecs
	carryDays, s := floorDivMod(seconds, secondsPerDay)
	days += carryDays

	if days < -maxSpanDays || days > maxSpanDays {
		return Span{}, &OverflowError{Msg: fmt.Sprintf("span day count is too large: %d", days)}
	}
	return Span{days: days, secs: int32(s), us: int32(us)}, nil
}

// spanFromMicroBig normalizes a total microsecond count of arbitrary size.
func spanFromMicroBig(total *big.Int) (Span, error) {
	q, r := floorDivModBig(total, big.NewInt(microsPerDay))
	if !q.IsInt64() {
		return Span{}, &OverflowError{Msg: "span day count is too large"}
	}
	rest := r.Int64() // in [0, microsPerDay)
	return newSpanTriple(q.Int64(), 0, rest)
}

// microTotal returns the exact total microsecond count. The full Span
// range exceeds int64 microseconds, hence the big integer.
func (sp Span) microTotal() *big.Int {
	t := new(big.Int).SetInt64(sp.days)
	t.Mul(t, big.NewInt(microsPerDay))
	t.Add(t, big.NewInt(int64(sp.secs)*microsPerSec+int64(sp.us)))
	return t
}

// Days returns the day component, between -999999999 and 999999999.
func (sp Span) Days() int64 { return sp.days }

// Seconds returns the second component, between 0 and 86399.
func (sp Span) Seconds() int { return int(sp.secs) }

// Microseconds returns the microsecond component, between 0 and 999999.
func (sp Span) Microseconds() int { return int(sp.us) }

// IsZero reports whether the span has zero length.
func (sp Span) IsZero() bool { return sp.days == 0 && sp.secs == 0 && sp.us == 0 }

// TotalSeconds returns the span's length in seconds as a float64. The
// whole-second part is computed exactly in integers; the result is exact
// whenever that part is below 2^53 seconds, and loses at most sub-second
// precision beyond that.
func (sp Span) TotalSeconds() float64 {
	whole := sp.days*secondsPerDay + int64(sp.secs)
	return float64(whole) + float64(sp.us)/1e6
}

// Neg returns the negated span. It fails with *OverflowError only when the
// result would exceed the day bound (the negation of the most negative
// representable span with a nonzero sub-day component).
func (sp Span) Neg() (Span, error) {
	return newSpanTriple(-sp.days, -int64(sp.secs), -int64(sp.us))
}

// Add returns sp + other.
func (sp Span) Add(other Span) (Span, error) {
	return newSpanTriple(sp.days+other.days, int64(sp.secs)+int64(other.secs), int64(sp.us)+int64(other.us))
}

// Sub returns sp - other.
func (sp Span) Sub(other Span) (Span, error) {
	return newSpanTriple(sp.days-other.days, int64(sp.secs)-int64(other.secs), int64(sp.us)-int64(other.us))
}

// Mul returns the span scaled by an integer factor.
func (sp Span) Mul(n int64) (Span, error) {
	t := sp.microTotal()
	t.Mul(t, big.NewInt(n))
	return spanFromMicroBig(t)
}

// MulFloat returns the span scaled by a float factor, rounding the result
// half-to-even at microsecond resolution. The multiplication happens in
// float64, so factors applied to spans longer than ~2^53 microseconds
// (about 292 years) may lose sub-second precision.
func (sp Span) MulFloat(f float64) (Span, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Span{}, &FieldError{Field: "factor", Msg: "must be finite"}
	}
	t, _ := new(big.Float).SetInt(sp.microTotal()).Float64()
	scaled := math.RoundToEven(t * f)
	if math.IsInf(scaled, 0) {
		return Span{}, &OverflowError{Msg: "span day count is too large"}
	}
	r, _ := big.NewFloat(scaled).Int(nil)
	return spanFromMicroBig(r)
}

// DivInt returns the span floor-divided by an integer.
func (sp Span) DivInt(n int64) (Span, error) {
	if n == 0 {
		return Span{}, &FieldError{Field: "divisor", Msg: "must be nonzero"}
	}
	q, _ := floorDivModBig(sp.microTotal(), big.NewInt(n))
	return spanFromMicroBig(q)
}

// Div returns the integer quotient of two spans under floor division.
func (sp Span) Div(other Span) (int64, error) {
	if other.IsZero() {
		return 0, &FieldError{Field: "divisor", Msg: "must be a nonzero span"}
	}
	q, _ := floorDivModBig(sp.microTotal(), other.microTotal())
	if !q.IsInt64() {
		return 0, &OverflowError{Msg: "span quotient is too large"}
	}
	return q.Int64(), nil
}

// Mod returns the remainder of floor division by other. The result has the
// sign behavior of floor division: it is always in [0, other) for positive
// other.
func (sp Span) Mod(other Span) (Span, error) {
	if other.IsZero() {
		return Span{}, &FieldError{Field: "divisor", Msg: "must be a nonzero span"}
	}
	_, r := floorDivModBig(sp.microTotal(), other.microTotal())
	return spanFromMicroBig(r)
}

// DivMod returns both the quotient and the remainder of floor division.
func (sp Span) DivMod(other Span) (int64, Span, error) {
	q, err := sp.Div(other)
	if err != nil {
		return 0, Span{}, err
	}
	r, err := sp.Mod(other)
	if err != nil {
		return 0, Span{}, err
	}
	return q, r, nil
}

// Cmp compares two spans, returning -1, 0 or +1. The normalized triple
// makes lexicographic comparison equivalent to comparing total lengths.
func (sp Span) Cmp(other Span) int {
	switch {
	case sp.days != other.days:
		return cmpInt64(sp.days, other.days)
	case sp.secs != other.secs:
		return cmpInt64(int64(sp.secs), int64(other.secs))
	default:
		return cmpInt64(int64(sp.us), int64(other.us))
	}
}

// String renders the span as [-][N day(s), ]H:MM:SS[.ffffff], with the
// day block only when nonzero and the fraction only when nonzero.
func (sp Span) String() string {
	mm, ss := sp.secs/60, sp.secs%60
	hh, mm := mm/60, mm%60
	s := fmt.Sprintf("%d:%02d:%02d", hh, mm, ss)
	if sp.days != 0 {
		plural := "s"
		if sp.days == 1 || sp.days == -1 {
			plural = ""
		}
		s = fmt.Sprintf("%d day%s, %s", sp.days, plural, s)
	}
	if sp.us != 0 {
		s += fmt.Sprintf(".%06d", sp.us)
	}
	return s
}

// addRoundHalfEven adds a fractional microsecond accumulator to an
// integer count, rounding a half-microsecond tie toward the even total.
// The carried day and second units are even microsecond counts, so the
// parity of us is the parity of the whole span.
func addRoundHalfEven(us int64, f float64) int64 {
	whole, fr := math.Modf(f)
	us += int64(whole)
	switch {
	case fr > 0.5 || (fr == 0.5 && us%2 != 0):
		us++
	case fr < -0.5 || (fr == -0.5 && us%2 != 0):
		us--
	}
	return us
}

// floorDivMod returns the floor quotient and non-negative remainder of
// a/b for b > 0.
func floorDivMod(a, b int64) (q, r int64) {
	q = a / b
	r = a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// floorDivModBig is floor division for big integers (big.Int.QuoRem
// truncates toward zero, which differs for negative operands).
func floorDivModBig(a, b *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
