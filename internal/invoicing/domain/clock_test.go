package invoicing

import (
	"errors"
	"math"
	"testing"
)

func TestHours(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  float64
		err   error
	}{
		{name: "ninety minutes", start: "09:00", end: "10:30", want: 1.5},
		{name: "full block", start: "08:00", end: "12:00", want: 4},
		{name: "one minute", start: "06:00", end: "06:01", want: 1.0 / 60},
		{name: "end equals start", start: "10:00", end: "10:00", err: ErrInvalidTimeRange},
		{name: "end before start", start: "10:00", end: "09:00", err: ErrInvalidTimeRange},
		{name: "missing colon", start: "0900", end: "10:30", err: ErrMalformedTime},
		{name: "hour out of range", start: "24:00", end: "25:00", err: ErrMalformedTime},
		{name: "minute out of range", start: "09:60", end: "10:00", err: ErrMalformedTime},
		{name: "not digits", start: "ab:cd", end: "10:00", err: ErrMalformedTime},
		{name: "empty", start: "", end: "10:00", err: ErrMalformedTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Hours(tc.start, tc.end)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %v hours, got %v", tc.want, got)
			}
		})
	}
}
