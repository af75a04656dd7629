package helpers

import (
	"testing"
	"time"
)

func TestClampLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"in range", 20, 10, 20, 10},
		{"zero limit", 0, 0, DefaultListLimit, 0},
		{"negative limit", -5, 0, DefaultListLimit, 0},
		{"over max", 500, 0, DefaultListLimit, 0},
		{"at max", MaxListLimit, 0, MaxListLimit, 0},
		{"negative offset", 20, -3, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := ClampLimitOffset(tt.limit, tt.offset)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("got (%d, %d), want (%d, %d)", limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2010-05-20")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !got.Equal(time.Date(2010, 5, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date: %v", got)
	}

	if _, err := ParseDate("20-05-2010"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestParseDurationFallsBack(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("expected 90m, got %v", got)
	}
	if got := ParseDuration("not-a-duration", time.Hour); got != time.Hour {
		t.Errorf("expected fallback, got %v", got)
	}
}
