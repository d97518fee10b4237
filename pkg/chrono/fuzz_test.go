package chrono

import (
	"strings"
	"testing"
)

// FuzzParseDateTimeISO tests the date-time parser with arbitrary input.
// Run with: go test -fuzz=FuzzParseDateTimeISO -fuzztime=30s ./pkg/chrono/...
func FuzzParseDateTimeISO(f *testing.F) {
	seeds := []string{
		// Well-formed values
		"2021-03-14",
		"2021-03-14T15",
		"2021-03-14T15:09",
		"2021-03-14T15:09:26",
		"2021-03-14T15:09:26.535",
		"2021-03-14T15:09:26.535123",
		"2021-03-14 15:09:26",
		"2021-03-14T15:09:26+05:30",
		"2021-03-14T15:09:26-08:00",
		"2021-03-14T15:09:26+00:00",
		"2021-03-14T15:09:26.535000+05:30",
		"0001-01-01T00:00:00",
		"9999-12-31T23:59:59.999999",

		// Boundary fields
		"2020-02-29T00:00:00",
		"2021-02-29T00:00:00",
		"2021-03-14T24:00:00",
		"2021-03-14T15:09:26+23:59",
		"2021-03-14T15:09:26-23:59",
		"2021-03-14T15:09:26+24:00",

		// Malformed shapes
		"",
		"2021",
		"2021-3-14",
		"2021/03/14",
		"2021-03-14T",
		"2021-03-14T15:9",
		"2021-03-14T15:09:26.5",
		"2021-03-14T15:09:26x",
		"2021-03-14T15:09:26+5:30",
		"2021-03-14T15:09:26+05",
		"--",
		"++",
		strings.Repeat("9", 100),
		strings.Repeat("2021-03-14T", 50),

		// Unicode and sign noise
		"2021-03-14T15:09:26±00:00",
		"٢٠٢١-03-14",
		"2021-03-14T15:09:26+-05:30",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data string) {
		// The parser should not panic on any input.
		dt, err := ParseDateTimeISO(data)
		if err != nil {
			return
		}

		// Accepted values carry fields inside the documented ranges.
		if dt.Year() < MinYear || dt.Year() > MaxYear {
			t.Errorf("Parsed year %d out of range from %q", dt.Year(), data)
		}
		if dt.Month() < 1 || dt.Month() > 12 || dt.Day() < 1 || dt.Day() > 31 {
			t.Errorf("Parsed calendar fields out of range from %q", data)
		}
		if dt.Hour() > 23 || dt.Minute() > 59 || dt.Second() > 59 || dt.Microsecond() > 999999 {
			t.Errorf("Parsed time fields out of range from %q", data)
		}

		// Re-rendering and re-parsing an accepted value converges.
		again, err := ParseDateTimeISO(dt.ISOFormat())
		if err != nil {
			t.Errorf("Rendered form %q of %q failed to parse: %v", dt.ISOFormat(), data, err)
			return
		}
		if !again.Equal(dt) && again != dt {
			t.Errorf("Expected %q to re-parse to %v, got %v", dt.ISOFormat(), dt, again)
		}
	})
}

// FuzzParseClockTimeISO tests the time-of-day parser with arbitrary input.
// Run with: go test -fuzz=FuzzParseClockTimeISO -fuzztime=30s ./pkg/chrono/...
func FuzzParseClockTimeISO(f *testing.F) {
	seeds := []string{
		"15",
		"15:09",
		"15:09:26",
		"15:09:26.535",
		"15:09:26.535123",
		"15:09:26+05:30",
		"15:09:26-08:00",
		"12:00+00:00",
		"12:00-00:30",
		"00:00:00",
		"23:59:59.999999",

		"",
		"5",
		"24",
		"15:60",
		"15:09:60",
		"15:09:26.5",
		"15:09:26x",
		"15:09+5:30",
		"15:09+05",
		"+05:30",
		"-",
		strings.Repeat(":", 50),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data string) {
		ct, err := ParseClockTimeISO(data)
		if err != nil {
			return
		}
		if ct.Hour() > 23 || ct.Minute() > 59 || ct.Second() > 59 || ct.Microsecond() > 999999 {
			t.Errorf("Parsed time fields out of range from %q", data)
		}
		if off, ok := ct.UTCOffset(); ok {
			if err := checkZoneOffset(off); err != nil {
				t.Errorf("Parsed offset %v invalid from %q: %v", off, data, err)
			}
		}
		again, err := ParseClockTimeISO(ct.ISOFormat())
		if err != nil {
			t.Errorf("Rendered form %q of %q failed to parse: %v", ct.ISOFormat(), data, err)
			return
		}
		if !again.Equal(ct) {
			t.Errorf("Expected %q to re-parse to %v, got %v", ct.ISOFormat(), ct, again)
		}
	})
}

// FuzzSpanNormalization tests span construction with arbitrary component
// mixes. Run with: go test -fuzz=FuzzSpanNormalization -fuzztime=30s ./pkg/chrono/...
func FuzzSpanNormalization(f *testing.F) {
	f.Add(0.0, 0.0, 0.0, 0.0, 0.0)
	f.Add(1.0, 0.0, 0.0, 0.0, 0.0)
	f.Add(0.0, 36.0, 90.0, 0.0, 0.0)
	f.Add(-1.0, 0.0, 0.0, -1.0, -1.0)
	f.Add(0.5, 0.25, 0.1, 1.5, 2.5)
	f.Add(999999999.0, 23.0, 59.0, 59.0, 999999.0)
	f.Add(-999999999.0, 0.0, 0.0, 0.0, 0.0)
	f.Add(1e18, 0.0, 0.0, 0.0, 0.0)
	f.Add(0.0, 0.0, 0.0, 1e-7, 0.5)

	f.Fuzz(func(t *testing.T, days, hours, minutes, seconds, micros float64) {
		sp, err := NewSpan(SpanParts{
			Days: days, Hours: hours, Minutes: minutes,
			Seconds: seconds, Microseconds: micros,
		})
		if err != nil {
			return
		}

		// Accepted spans are canonical.
		if sp.Seconds() < 0 || sp.Seconds() >= secondsPerDay {
			t.Errorf("Seconds %d out of canonical range", sp.Seconds())
		}
		if sp.Microseconds() < 0 || sp.Microseconds() >= microsPerSec {
			t.Errorf("Microseconds %d out of canonical range", sp.Microseconds())
		}
		if sp.Days() < -999999999 || sp.Days() > 999999999 {
			t.Errorf("Days %d out of documented range", sp.Days())
		}

		// Re-normalizing the canonical triple is the identity.
		again, err := NewSpan(SpanParts{
			Days:         float64(sp.Days()),
			Seconds:      float64(sp.Seconds()),
			Microseconds: float64(sp.Microseconds()),
		})
		if err != nil {
			t.Errorf("Canonical triple of %v failed to re-normalize: %v", sp, err)
			return
		}
		if again != sp {
			t.Errorf("Expected normalization to be idempotent, got %v then %v", sp, again)
		}
	})
}
