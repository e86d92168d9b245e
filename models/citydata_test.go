package models

import "testing"

func TestCityKeyFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Las Vegas", "las vegas"},
		{"las vegas", "las vegas"},
		{"  London  ", "london"},
		{"São Paulo", "sao paulo"},
		{"sao paulo", "sao paulo"},
		{"MONTRÉAL", "montreal"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CityKeyFor(tt.in); got != tt.want {
			t.Errorf("CityKeyFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCityCostDataBeforeSave(t *testing.T) {
	data := CityCostData{City: "São Paulo", Currency: "BRL"}
	if err := data.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave() error = %v", err)
	}
	if data.CityKey != "sao paulo" {
		t.Errorf("CityKey = %q, want %q", data.CityKey, "sao paulo")
	}

	data = CityCostData{City: "Las Vegas"}
	if err := data.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave() error = %v", err)
	}
	if data.Currency != "USD" {
		t.Errorf("Currency = %q, want default USD", data.Currency)
	}

	data = CityCostData{City: "Nowhere", Currency: "NOPE"}
	if err := data.BeforeSave(nil); err == nil {
		t.Error("expected error for invalid currency code, got nil")
	}

	data = CityCostData{City: "   "}
	if err := data.BeforeSave(nil); err == nil {
		t.Error("expected error for blank city, got nil")
	}
}
