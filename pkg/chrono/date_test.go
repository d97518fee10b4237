package chrono

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDateValidation(t *testing.T) {
	cases := []struct {
		name    string
		y, m, d int
		field   string
	}{
		{"valid", 2021, 3, 14, ""},
		{"leap_day", 2020, 2, 29, ""},
		{"min", 1, 1, 1, ""},
		{"max", 9999, 12, 31, ""},
		{"year_too_small", 0, 1, 1, "year"},
		{"year_too_large", 10000, 1, 1, "year"},
		{"month_zero", 2021, 0, 1, "month"},
		{"month_thirteen", 2021, 13, 1, "month"},
		{"day_zero", 2021, 1, 0, "day"},
		{"day_past_month_end", 2021, 4, 31, "day"},
		{"feb_29_non_leap", 2021, 2, 29, "day"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDate(tc.y, tc.m, tc.d)
			if tc.field == "" {
				if err != nil {
					t.Fatalf("Expected valid date, got %v", err)
				}
				return
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("Expected FieldError, got %v", err)
			}
			if fieldErr.Field != tc.field {
				t.Errorf("Expected field %q, got %q", tc.field, fieldErr.Field)
			}
		})
	}
}

func TestDateOrdinalRoundTrip(t *testing.T) {
	d := MustDate(2021, 3, 14)
	back, err := DateFromOrdinal(d.Ordinal())
	if err != nil {
		t.Fatalf("DateFromOrdinal: %v", err)
	}
	if back != d {
		t.Errorf("Expected %v, got %v", d, back)
	}

	var overflow *OverflowError
	if _, err := DateFromOrdinal(0); !errors.As(err, &overflow) {
		t.Errorf("Expected OverflowError for ordinal 0, got %v", err)
	}
	if _, err := DateFromOrdinal(maxOrdinal + 1); !errors.As(err, &overflow) {
		t.Errorf("Expected OverflowError past max ordinal, got %v", err)
	}
}

func TestDateWeekday(t *testing.T) {
	cases := []struct {
		name         string
		y, m, d      int
		weekday      int
		isoWeekday   int
	}{
		{"epoch_thursday", 1970, 1, 1, 3, 4},
		{"pi_day_2021_sunday", 2021, 3, 14, 6, 7},
		{"day_one_monday", 1, 1, 1, 0, 1},
		{"y2k_saturday", 2000, 1, 1, 5, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := MustDate(tc.y, tc.m, tc.d)
			if got := d.Weekday(); got != tc.weekday {
				t.Errorf("Weekday: expected %d, got %d", tc.weekday, got)
			}
			if got := d.ISOWeekday(); got != tc.isoWeekday {
				t.Errorf("ISOWeekday: expected %d, got %d", tc.isoWeekday, got)
			}
		})
	}
}

func TestDateReplace(t *testing.T) {
	d := MustDate(2021, 3, 14)

	moved, err := d.Replace(2022, 0, 0)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if moved != MustDate(2022, 3, 14) {
		t.Errorf("Expected 2022-03-14, got %v", moved)
	}
	if d != MustDate(2021, 3, 14) {
		t.Error("Expected original date to be unchanged")
	}

	if _, err := MustDate(2020, 2, 29).Replace(2021, 0, 0); err == nil {
		t.Error("Expected error moving Feb 29 to a non-leap year")
	}
}

func TestDateArithmetic(t *testing.T) {
	// Crossing a leap day: 2020 is a leap year, so a 365-day shift from
	// Feb 29 lands one calendar day short of the anniversary.
	shifted, err := MustDate(2020, 2, 29).AddSpan(MustSpan(SpanParts{Days: 365}))
	if err != nil {
		t.Fatalf("AddSpan: %v", err)
	}
	if shifted != MustDate(2021, 2, 28) {
		t.Errorf("Expected 2021-02-28, got %v", shifted)
	}

	back, err := shifted.SubSpan(MustSpan(SpanParts{Days: 365}))
	if err != nil {
		t.Fatalf("SubSpan: %v", err)
	}
	if back != MustDate(2020, 2, 29) {
		t.Errorf("Expected 2020-02-29, got %v", back)
	}

	diff := MustDate(2021, 1, 1).Sub(MustDate(2020, 1, 1))
	if want := MustSpan(SpanParts{Days: 366}); diff != want {
		t.Errorf("Expected 366 days across 2020, got %v", diff)
	}

	var overflow *OverflowError
	if _, err := MustDate(9999, 12, 31).AddSpan(MustSpan(SpanParts{Days: 1})); !errors.As(err, &overflow) {
		t.Errorf("Expected OverflowError past 9999-12-31, got %v", err)
	}
	if _, err := MustDate(1, 1, 1).SubSpan(MustSpan(SpanParts{Days: 1})); !errors.As(err, &overflow) {
		t.Errorf("Expected OverflowError before 0001-01-01, got %v", err)
	}
}

func TestDateComparison(t *testing.T) {
	early := MustDate(2020, 5, 1)
	late := MustDate(2021, 1, 1)

	if !early.Before(late) || late.Before(early) {
		t.Error("Expected 2020-05-01 < 2021-01-01")
	}
	if !late.After(early) {
		t.Error("Expected 2021-01-01 > 2020-05-01")
	}
	if !early.Equal(MustDate(2020, 5, 1)) {
		t.Error("Expected equal dates to compare equal")
	}
	if early.Cmp(late) != -1 || late.Cmp(early) != 1 || early.Cmp(early) != 0 {
		t.Error("Expected Cmp to agree with Before/After")
	}
}

func TestDateISOFormat(t *testing.T) {
	if got := MustDate(2021, 3, 14).ISOFormat(); got != "2021-03-14" {
		t.Errorf("Expected 2021-03-14, got %q", got)
	}
	if got := MustDate(1, 1, 1).ISOFormat(); got != "0001-01-01" {
		t.Errorf("Expected 0001-01-01, got %q", got)
	}
}

func TestToday(t *testing.T) {
	clock := &fakeClock{now: 1615734566, offset: 0}
	d, err := Today(clock)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	// 1615734566 is 2021-03-14T15:09:26Z.
	if d != MustDate(2021, 3, 14) {
		t.Errorf("Expected 2021-03-14, got %v", d)
	}
	if !strings.HasPrefix(d.String(), "2021-") {
		t.Errorf("Expected ISO string, got %q", d.String())
	}
}
