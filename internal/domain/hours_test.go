package domain

import (
	"testing"
	"time"
)

func TestBusinessHoursOpenAt(t *testing.T) {
	h := BusinessHours{OpenTime: "08:30", CloseTime: "17:00"}
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	open, err := h.OpenAt(date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 9, 10, 8, 30, 0, 0, time.UTC)
	if !open.Equal(want) {
		t.Errorf("OpenAt = %v, want %v", open, want)
	}

	closeAt, err := h.CloseAt(date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = time.Date(2026, 9, 10, 17, 0, 0, 0, time.UTC)
	if !closeAt.Equal(want) {
		t.Errorf("CloseAt = %v, want %v", closeAt, want)
	}
}

func TestBusinessHoursBadClock(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	for _, clock := range []string{"", "9", "25:00", "09:75", "ab:cd"} {
		h := BusinessHours{OpenTime: clock}
		if _, err := h.OpenAt(date); err == nil {
			t.Errorf("OpenAt(%q) expected error, got nil", clock)
		}
	}
}

func TestCoordinatesDistanceMiles(t *testing.T) {
	// Miami facility to Fort Lauderdale: roughly 21 miles great-circle.
	miami := Coordinates{Lat: 25.7617, Lon: -80.1918}
	ftl := Coordinates{Lat: 26.1224, Lon: -80.1373}

	d := miami.DistanceMiles(ftl)
	if d < 20 || d > 26 {
		t.Fatalf("distance = %.1f miles, want roughly 21-25", d)
	}

	if z := miami.DistanceMiles(miami); z != 0 {
		t.Fatalf("distance to self = %v, want 0", z)
	}
}
