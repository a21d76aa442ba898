package chrono_test

import (
	"testing"
	"time"

	"tzbridge/chrono"
)

func TestFloor(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		unit time.Duration
		want time.Duration
	}{
		{name: "exact multiple", d: 2 * time.Hour, unit: time.Hour, want: 2 * time.Hour},
		{name: "rounds down", d: 90 * time.Minute, unit: time.Hour, want: time.Hour},
		{name: "negative rounds toward -inf", d: -90 * time.Minute, unit: time.Hour, want: -2 * time.Hour},
		{name: "negative exact multiple", d: -time.Hour, unit: time.Hour, want: -time.Hour},
		{name: "zero unit passes through", d: 90 * time.Minute, unit: 0, want: 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chrono.Floor(tt.d, tt.unit); got != tt.want {
				t.Errorf("Floor(%s, %s) = %s, want %s", tt.d, tt.unit, got, tt.want)
			}
		})
	}
}

func TestCeil(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		unit time.Duration
		want time.Duration
	}{
		{name: "exact multiple", d: 2 * time.Hour, unit: time.Hour, want: 2 * time.Hour},
		{name: "rounds up", d: 61 * time.Minute, unit: time.Hour, want: 2 * time.Hour},
		{name: "negative rounds toward zero", d: -90 * time.Minute, unit: time.Hour, want: -time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chrono.Ceil(tt.d, tt.unit); got != tt.want {
				t.Errorf("Ceil(%s, %s) = %s, want %s", tt.d, tt.unit, got, tt.want)
			}
		})
	}
}

func TestRoundAbs(t *testing.T) {
	if got := chrono.Round(90*time.Second, time.Minute); got != 2*time.Minute {
		t.Errorf("Round half away from zero: got %s", got)
	}
	if got := chrono.Round(89*time.Second, time.Minute); got != time.Minute {
		t.Errorf("Round down below half: got %s", got)
	}
	if got := chrono.Abs(-time.Minute); got != time.Minute {
		t.Errorf("Abs(-1m) = %s", got)
	}
}

func TestDayWeekUnits(t *testing.T) {
	if chrono.Week != 7*chrono.Day {
		t.Error("a week is seven 24h days")
	}
	if got := chrono.Floor(25*time.Hour, chrono.Day); got != chrono.Day {
		t.Errorf("Floor(25h, Day) = %s", got)
	}
	if got := chrono.Ceil(25*time.Hour, chrono.Day); got != 2*chrono.Day {
		t.Errorf("Ceil(25h, Day) = %s", got)
	}
}

func TestTimeRounding(t *testing.T) {
	instant := time.Date(2024, time.June, 1, 12, 34, 56, 789, time.UTC)

	floored := chrono.FloorTime(instant, time.Hour)
	if floored.Minute() != 0 || floored.Second() != 0 || floored.Nanosecond() != 0 {
		t.Errorf("FloorTime left sub-hour fields: %s", floored)
	}
	if floored.After(instant) {
		t.Error("FloorTime moved forward")
	}

	ceiled := chrono.CeilTime(instant, time.Hour)
	if ceiled.Hour() != 13 {
		t.Errorf("expected 13:00, got %s", ceiled)
	}
	if ceiled.Sub(floored) != time.Hour {
		t.Error("expected floor and ceil exactly one unit apart for a non-multiple")
	}

	exact := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	if !chrono.CeilTime(exact, time.Hour).Equal(exact) {
		t.Error("CeilTime moved an exact multiple")
	}

	rounded := chrono.RoundTime(instant, time.Hour)
	if rounded.Hour() != 13 {
		t.Errorf("12:34 rounds to 13:00, got %s", rounded)
	}
}
