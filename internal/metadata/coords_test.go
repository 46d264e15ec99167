package metadata_test

import (
	"math"
	"testing"

	"starshelf/internal/metadata"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseRA(t *testing.T) {
	cases := []struct {
		value any
		want  float64
		ok    bool
	}{
		{5.5916667, 5.5916667, true},
		{"5:35:17", 5.0 + 35.0/60.0 + 17.0/3600.0, true},
		{"5 35 17", 5.0 + 35.0/60.0 + 17.0/3600.0, true},
		{"12:30", 12.5, true},
		{"0", 0, true},
		{"", 0, false},
		{nil, 0, false},
		{"five hours", 0, false},
		{true, 0, false},
	}
	for _, tc := range cases {
		got, ok := metadata.ParseRA(tc.value)
		if ok != tc.ok || (ok && !closeTo(got, tc.want)) {
			t.Errorf("ParseRA(%v) = %v,%v want %v,%v", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseDec(t *testing.T) {
	cases := []struct {
		value any
		want  float64
		ok    bool
	}{
		{-5.391111, -5.391111, true},
		{"-5:23:28", -(5.0 + 23.0/60.0 + 28.0/3600.0), true},
		{"+41:16:09", 41.0 + 16.0/60.0 + 9.0/3600.0, true},
		{"89 15", 89.25, true},
		{"", 0, false},
		{"north", 0, false},
	}
	for _, tc := range cases {
		got, ok := metadata.ParseDec(tc.value)
		if ok != tc.ok || (ok && !closeTo(got, tc.want)) {
			t.Errorf("ParseDec(%v) = %v,%v want %v,%v", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}
