package domain

import (
	"testing"
	"time"
)

func TestFormatTargetDate(t *testing.T) {
	tests := []struct {
		name string
		in   *time.Time
		want string
	}{
		{"nil is tbc", nil, "to be confirmed"},
		{"valentines evening", ptr(time.Date(2025, 2, 15, 1, 0, 0, 0, time.UTC)), "14 Feb 2025, 19:00 GMT-6"},
		{"crosses year boundary", ptr(time.Date(2026, 1, 1, 3, 5, 0, 0, time.UTC)), "31 Dec 2025, 21:05 GMT-6"},
		{"non-utc input", ptr(time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))), "1 Jun 2025, 04:00 GMT-6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTargetDate(tt.in); got != tt.want {
				t.Errorf("FormatTargetDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDisplayDateRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2025, 2, 15, 1, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2030, 12, 31, 5, 59, 30, 0, time.UTC),
		time.Now(),
	}
	for _, in := range instants {
		t.Run(in.Format(time.RFC3339), func(t *testing.T) {
			got, err := ParseDisplayDate(FormatTargetDate(&in))
			if err != nil {
				t.Fatalf("ParseDisplayDate: %v", err)
			}
			if d := got.Sub(in); d < -time.Minute || d > time.Minute {
				t.Errorf("round trip drifted by %v", d)
			}
		})
	}
}

func TestParseDisplayDateRejects(t *testing.T) {
	bad := []string{
		"",
		"to be confirmed",
		"14 Feb 2025 19:00 GMT-6",
		"14 Foo 2025, 19:00 GMT-6",
		"31 Feb 2025, 19:00 GMT-6",
		"14 Feb 2025, 25:00 GMT-6",
		"14 Feb 2025, 19:00 UTC",
	}
	for _, s := range bad {
		t.Run(s, func(t *testing.T) {
			if _, err := ParseDisplayDate(s); err == nil {
				t.Errorf("ParseDisplayDate(%q) succeeded, want error", s)
			}
		})
	}
}

func TestLocalInputRoundTrip(t *testing.T) {
	now := time.Now()
	round, err := ParseLocalInput(FormatLocalInput(now))
	if err != nil {
		t.Fatalf("ParseLocalInput: %v", err)
	}
	if d := now.Sub(round); d < 0 || d >= time.Minute {
		t.Errorf("round trip lost %v", d)
	}
}

func TestParseLocalInput(t *testing.T) {
	got, err := ParseLocalInput("2025-02-14T19:00")
	if err != nil {
		t.Fatalf("ParseLocalInput: %v", err)
	}
	want := time.Date(2025, 2, 15, 1, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseLocalInput = %v, want %v", got, want)
	}
	if _, err := ParseLocalInput("14/02/2025 19:00"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestNextValentines(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"early in year", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 15, 1, 0, 0, 0, time.UTC)},
		{"after the date", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 15, 1, 0, 0, 0, time.UTC)},
		{"exactly at the date", time.Date(2025, 2, 15, 1, 0, 0, 0, time.UTC), time.Date(2026, 2, 15, 1, 0, 0, 0, time.UTC)},
		{"new year utc, still december locally", time.Date(2026, 1, 1, 2, 0, 0, 0, time.UTC), time.Date(2026, 2, 15, 1, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextValentines(tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("NextValentines(%v) = %v, want %v", tt.now, got, tt.want)
			}
			if !got.After(tt.now) {
				t.Errorf("NextValentines(%v) = %v, not after now", tt.now, got)
			}
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }
