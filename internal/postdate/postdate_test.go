package postdate

import (
	"testing"
	"time"
)

func TestFormatter_Format(t *testing.T) {
	ts := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		f    Formatter
		want string
	}{
		{"latin utc", New("latin", time.UTC), "Friday 01 March 2024"},
		{"persian digits", New("persian", time.UTC), "Friday ۰۱ March ۲۰۲۴"},
		{"zero value uses utc", Formatter{}, "Friday 01 March 2024"},
		{"location shifts the day", New("latin", time.FixedZone("IRST", 3*3600+1800)), "Saturday 02 March 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Format(ts); got != tt.want {
				t.Errorf("Format: got %q, want %q", got, tt.want)
			}
		})
	}
}
