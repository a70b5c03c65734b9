package primitives

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("converts to kobo", func(t *testing.T) {
		cases := []struct {
			in   string
			want int64
		}{
			{"50,000.00", 5000000},
			{"100.00", 10000},
			{"₦1,234.56", 123456},
			{"NGN 2,000", 200000},
			{"-250.50", -25050},
			{"(250.50)", -25050},
			{"0.005", 1}, // rounds to nearest kobo
		}
		for _, tc := range cases {
			got, ok := ParseAmount(tc.in)
			require.True(t, ok, "input %q", tc.in)
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	})

	t.Run("zero and garbage are not amounts", func(t *testing.T) {
		for _, in := range []string{"", "-", "0", "0.00", "₦0.00", "abc", "12.3.4", "N/A"} {
			_, ok := ParseAmount(in)
			assert.False(t, ok, "input %q", in)
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Run("day month-name year", func(t *testing.T) {
		got, ok := ParseDate("02-Feb-2024", LayoutsDayMonthNameYear)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("month names are case-insensitive", func(t *testing.T) {
		got, ok := ParseDate("15-SEPTEMBER-2024", LayoutsDayMonthNameYear)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("two-digit years are 2000+YY", func(t *testing.T) {
		got, ok := ParseDate("01-Jan-99", LayoutsDayMonthNameYear)
		require.True(t, ok)
		assert.Equal(t, 2099, got.Year())
	})

	t.Run("four-digit 19xx years pass through", func(t *testing.T) {
		got, ok := ParseDate("01-Jan-1999", LayoutsDayMonthNameYear)
		require.True(t, ok)
		assert.Equal(t, 1999, got.Year())
	})

	t.Run("slash dates with time", func(t *testing.T) {
		got, ok := ParseDate("05/03/2024 13:45:10", LayoutsDaySlashMonthYear)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 3, 5, 13, 45, 10, 0, time.UTC), got)
	})

	t.Run("day month-name year with time", func(t *testing.T) {
		got, ok := ParseDate("7 Jan 2024 08:30:00", LayoutsDayMonthNameYearTime)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 7, 8, 30, 0, 0, time.UTC), got)
	})

	t.Run("unmatched formats miss without error", func(t *testing.T) {
		for _, in := range []string{"", "not a date", "2024-01-02"} {
			_, ok := ParseDate(in, LayoutsDayMonthNameYear)
			assert.False(t, ok, "input %q", in)
		}
	})
}
