package chrono

import (
	"errors"
	"testing"
)

func TestParseDateISO(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		y, m, d int
	}{
		{"plain", "2021-03-14", 2021, 3, 14},
		{"min", "0001-01-01", 1, 1, 1},
		{"max", "9999-12-31", 9999, 12, 31},
		{"leap_day", "2020-02-29", 2020, 2, 29},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDateISO(tc.input)
			if err != nil {
				t.Fatalf("ParseDateISO(%q): %v", tc.input, err)
			}
			if got != MustDate(tc.y, tc.m, tc.d) {
				t.Errorf("Expected %04d-%02d-%02d, got %v", tc.y, tc.m, tc.d, got)
			}
		})
	}
}

func TestParseDateISOErrors(t *testing.T) {
	inputs := []string{
		"",
		"2021-3-14",
		"21-03-14",
		"2021/03/14",
		"2021-03-14T",
		"2021-02-29",
		"2021-13-01",
		"0000-01-01",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDateISO(input)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected ParseError for %q, got %v", input, err)
			}
		})
	}
}

func TestParseOffsetISO(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  SpanParts
	}{
		{"positive", "+05:30", SpanParts{Hours: 5, Minutes: 30}},
		{"negative", "-08:00", SpanParts{Hours: -8}},
		{"negative_minutes_only", "-00:30", SpanParts{Minutes: -30}},
		{"zero", "+00:00", SpanParts{}},
		{"with_seconds", "+01:02:03", SpanParts{Hours: 1, Minutes: 2, Seconds: 3}},
		{"with_micros", "-01:02:03.000004", SpanParts{Hours: -1, Minutes: -2, Seconds: -3, Microseconds: -4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseOffsetISO(tc.input)
			if err != nil {
				t.Fatalf("ParseOffsetISO(%q): %v", tc.input, err)
			}
			if want := MustSpan(tc.want); got != want {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}

	for _, input := range []string{"", "+5:30", "05:30", "+05", "+05:30:10.5", "+05:30x"} {
		t.Run("bad_"+input, func(t *testing.T) {
			_, err := ParseOffsetISO(input)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected ParseError for %q, got %v", input, err)
			}
			if parseErr.Input != input {
				t.Errorf("Expected error to carry %q, got %q", input, parseErr.Input)
			}
		})
	}
}

func TestParseDateTimeISO(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  DateTime
	}{
		{"date_only", "2021-03-14", MustDateTime(2021, 3, 14, 0, 0, 0, 0)},
		{"hour_only", "2021-03-14T15", MustDateTime(2021, 3, 14, 15, 0, 0, 0)},
		{"full", "2021-03-14T15:09:26", MustDateTime(2021, 3, 14, 15, 9, 26, 0)},
		{"space_separator", "2021-03-14 15:09:26", MustDateTime(2021, 3, 14, 15, 9, 26, 0)},
		{"millis", "2021-03-14T15:09:26.535", MustDateTime(2021, 3, 14, 15, 9, 26, 535000)},
		{"micros", "2021-03-14T15:09:26.535123", MustDateTime(2021, 3, 14, 15, 9, 26, 535123)},
		{"utc_offset", "2021-03-14T15:09:26+00:00", mustDateTimeIn(2021, 3, 14, 15, 9, 26, 0, UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDateTimeISO(tc.input)
			if err != nil {
				t.Fatalf("ParseDateTimeISO(%q): %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseDateTimeISOOffset(t *testing.T) {
	got, err := ParseDateTimeISO("2021-03-14T15:09:26.535000+05:30")
	if err != nil {
		t.Fatalf("ParseDateTimeISO: %v", err)
	}
	if got.Hour() != 15 || got.Minute() != 9 || got.Second() != 26 || got.Microsecond() != 535000 {
		t.Errorf("Expected 15:09:26.535000, got %v", got)
	}
	off, ok := got.UTCOffset()
	if !ok {
		t.Fatal("Expected an aware result")
	}
	if want := MustSpan(SpanParts{Hours: 5, Minutes: 30}); off != want {
		t.Errorf("Expected offset +05:30, got %v", off)
	}
	name, _ := got.ZoneName()
	if name != "UTC+05:30" {
		t.Errorf("Expected synthesized zone name, got %q", name)
	}
}

func TestParseDateTimeISOErrors(t *testing.T) {
	inputs := []string{
		"",
		"2021-03-14x",
		"2021-03-14T25:00:00",
		"2021-03-14T15:09:26.5",
		"2021-03-14T15:09:26+24:00",
		"2021-02-30T00:00:00",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDateTimeISO(input)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected ParseError for %q, got %v", input, err)
			}
			if parseErr.Input != input {
				t.Errorf("Expected error to carry %q, got %q", input, parseErr.Input)
			}
		})
	}
}

func TestISORoundTrip(t *testing.T) {
	values := []DateTime{
		MustDateTime(2021, 3, 14, 15, 9, 26, 535000),
		MustDateTime(2021, 3, 14, 15, 9, 26, 0),
		MustDateTime(1, 1, 1, 0, 0, 0, 0),
		MustDateTime(9999, 12, 31, 23, 59, 59, 999999),
		mustDateTimeIn(2021, 3, 14, 15, 9, 26, 0, UTC),
	}
	for _, dt := range values {
		s := dt.ISOFormat()
		back, err := ParseDateTimeISO(s)
		if err != nil {
			t.Fatalf("ParseDateTimeISO(%q): %v", s, err)
		}
		if back != dt {
			t.Errorf("Expected %q to round-trip to %v, got %v", s, dt, back)
		}
	}

	// An aware value in a named zone round-trips to the same instant in an
	// unnamed zone with the same offset.
	ist := MustFixedZone(MustSpan(SpanParts{Hours: 5, Minutes: 30}), "IST")
	dt := mustDateTimeIn(2021, 3, 14, 15, 9, 26, 0, ist)
	back, err := ParseDateTimeISO(dt.ISOFormat())
	if err != nil {
		t.Fatalf("ParseDateTimeISO: %v", err)
	}
	if !back.Equal(dt) {
		t.Errorf("Expected the same instant, got %v vs %v", back, dt)
	}
	off, _ := back.UTCOffset()
	if want := MustSpan(SpanParts{Hours: 5, Minutes: 30}); off != want {
		t.Errorf("Expected offset to survive, got %v", off)
	}
}
