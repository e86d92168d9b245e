package services

import (
	"strings"
	"testing"

	"felt2felt-api/models"
)

func TestParseCSVRows(t *testing.T) {
	input := "seriesName,city,region,country,startDate,endDate\n" +
		"WSOP 2025,Las Vegas,Nevada,USA,2025-05-27,2025-07-16\n" +
		" EPT Barcelona , Barcelona , Catalonia , Spain ,2025-08-18,2025-08-31\n"

	rows, err := parseCSVRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseCSVRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["seriesName"] != "WSOP 2025" {
		t.Errorf("seriesName = %q, want %q", rows[0]["seriesName"], "WSOP 2025")
	}
	if rows[1]["city"] != "Barcelona" {
		t.Errorf("expected trimmed city, got %q", rows[1]["city"])
	}
}

func TestParseCSVRowsEmptyFile(t *testing.T) {
	rows, err := parseCSVRows(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parseCSVRows() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows for empty input, want 0", len(rows))
	}
}

func TestParseCSVRowsHeaderOnly(t *testing.T) {
	rows, err := parseCSVRows(strings.NewReader("seriesName,city\n"))
	if err != nil {
		t.Fatalf("parseCSVRows() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows for header-only input, want 0", len(rows))
	}
}

func TestBuildSeriesFromRow(t *testing.T) {
	row := map[string]string{
		"seriesName":   "WSOP 2025",
		"majorCircuit": "WSOP",
		"city":         "Las Vegas",
		"region":       "Nevada",
		"country":      "USA",
		"startDate":    "2025-05-27",
		"endDate":      "2025-07-16",
		"officialSite": "https://wsop.com",
		"tags":         "Las Vegas Summer 2025, bracelet",
	}

	series, err := buildSeriesFromRow(row)
	if err != nil {
		t.Fatalf("buildSeriesFromRow() error = %v", err)
	}
	if series.SeriesName != "WSOP 2025" {
		t.Errorf("SeriesName = %q", series.SeriesName)
	}
	if series.ID == "" {
		t.Error("expected generated ID")
	}
	if series.StartDate.After(series.EndDate) {
		t.Error("start date after end date")
	}
	want := models.StringList{"las-vegas-summer-2025", "bracelet"}
	if len(series.Tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", series.Tags, want)
	}
	for i := range want {
		if series.Tags[i] != want[i] {
			t.Errorf("Tags[%d] = %q, want %q", i, series.Tags[i], want[i])
		}
	}
}

func TestBuildSeriesFromRowErrors(t *testing.T) {
	base := func() map[string]string {
		return map[string]string{
			"seriesName": "WSOP 2025",
			"city":       "Las Vegas",
			"region":     "Nevada",
			"country":    "USA",
			"startDate":  "2025-05-27",
			"endDate":    "2025-07-16",
		}
	}

	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"missing series name", func(r map[string]string) { r["seriesName"] = "" }},
		{"missing city", func(r map[string]string) { r["city"] = "" }},
		{"missing country", func(r map[string]string) { r["country"] = "" }},
		{"bad start date", func(r map[string]string) { r["startDate"] = "27/05/2025" }},
		{"missing end date", func(r map[string]string) { r["endDate"] = "" }},
		{"inverted dates", func(r map[string]string) {
			r["startDate"] = "2025-07-16"
			r["endDate"] = "2025-05-27"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := base()
			tt.mutate(row)
			if _, err := buildSeriesFromRow(row); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	got := normalizeTags([]string{"Las Vegas Summer 2025", " bracelet ", ""})
	want := models.StringList{"las-vegas-summer-2025", "bracelet"}
	if len(got) != len(want) {
		t.Fatalf("normalizeTags() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("normalizeTags()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, err := parseDate("2025-05-27"); err != nil {
		t.Errorf("parseDate(date-only) error = %v", err)
	}
	if _, err := parseDate("2025-05-27T10:00:00Z"); err != nil {
		t.Errorf("parseDate(RFC3339) error = %v", err)
	}
	if _, err := parseDate(""); err == nil {
		t.Error("parseDate(\"\") expected error")
	}
	if _, err := parseDate("May 27, 2025"); err == nil {
		t.Error("parseDate(prose) expected error")
	}
}
