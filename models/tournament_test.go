package models

import (
	"testing"
	"time"
)

func TestSeriesStatus(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{
			name:  "entirely in the past",
			start: now.AddDate(0, -2, 0),
			end:   now.AddDate(0, -1, 0),
			want:  StatusCompleted,
		},
		{
			name:  "entirely in the future",
			start: now.AddDate(0, 1, 0),
			end:   now.AddDate(0, 2, 0),
			want:  StatusUpcoming,
		},
		{
			name:  "running right now",
			start: now.AddDate(0, 0, -3),
			end:   now.AddDate(0, 0, 3),
			want:  StatusActive,
		},
		{
			name:  "starts exactly now",
			start: now,
			end:   now.AddDate(0, 0, 7),
			want:  StatusActive,
		},
		{
			name:  "ends exactly now",
			start: now.AddDate(0, 0, -7),
			end:   now,
			want:  StatusActive,
		},
		{
			name:  "one-day series on the boundary",
			start: now,
			end:   now,
			want:  StatusActive,
		},
		{
			name:  "ended a second ago",
			start: now.AddDate(0, 0, -7),
			end:   now.Add(-time.Second),
			want:  StatusCompleted,
		},
		{
			name:  "starts in a second",
			start: now.Add(time.Second),
			end:   now.AddDate(0, 0, 7),
			want:  StatusUpcoming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeriesStatus(now, tt.start, tt.end); got != tt.want {
				t.Errorf("SeriesStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyStatusOverridesClientValue(t *testing.T) {
	now := time.Now()
	series := TournamentSeries{
		SeriesName: "WSOP 2025",
		StartDate:  now.AddDate(0, 1, 0),
		EndDate:    now.AddDate(0, 2, 0),
		Status:     StatusCompleted, // whatever a client sent is ignored
	}

	series.ApplyStatus(now)

	if series.Status != StatusUpcoming {
		t.Errorf("Status = %q, want %q", series.Status, StatusUpcoming)
	}
}

func TestBeforeSaveRejectsInvertedDates(t *testing.T) {
	now := time.Now()
	series := TournamentSeries{
		SeriesName: "Backwards Series",
		StartDate:  now.AddDate(0, 1, 0),
		EndDate:    now,
	}

	if err := series.BeforeSave(nil); err == nil {
		t.Fatal("expected error when start date is after end date, got nil")
	}
}

func TestBeforeSaveDerivesStatus(t *testing.T) {
	now := time.Now()
	series := TournamentSeries{
		SeriesName: "EPT Barcelona",
		StartDate:  now.AddDate(0, 0, -1),
		EndDate:    now.AddDate(0, 0, 5),
	}

	if err := series.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave() error = %v", err)
	}
	if series.Status != StatusActive {
		t.Errorf("Status = %q, want %q", series.Status, StatusActive)
	}
}
