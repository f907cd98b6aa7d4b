package parse

import (
	"testing"

	"github.com/DavidW312/Running-Website/internal/types"
)

func TestMileage(t *testing.T) {
	cases := []struct {
		cell string
		want float64
	}{
		{"5", 5},
		{"6.5", 6.5},
		{" 4.25 ", 4.25},
		{"", 0},
		{"A", 0},
		{"XA", 0},
		{"INJ", 0},
		{"five", 0},
	}
	for _, tc := range cases {
		if got := Mileage(tc.cell); got != tc.want {
			t.Errorf("Mileage(%q) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}

func TestStatus(t *testing.T) {
	cases := []struct {
		cell string
		want types.DayStatus
	}{
		{"A", types.StatusAbsent},
		{"XA", types.StatusExcused},
		{"INJ", types.StatusInjured},
		{"", types.StatusNone},
		{"5", types.StatusNone},
		{"a", types.StatusNone},
		{"P", types.StatusNone}, // never parsed from input, only synthesized
	}
	for _, tc := range cases {
		if got := Status(tc.cell); got != tc.want {
			t.Errorf("Status(%q) = %q, want %q", tc.cell, got, tc.want)
		}
	}
}

func TestRaceTime(t *testing.T) {
	cases := []struct {
		cell string
		want float64
	}{
		{"4:30.5", 270.5},
		{"12.3", 12.3},
		{"270.5", 270.5},
		{"10:00", 600},
		{" 5:05 ", 305},
	}
	for _, tc := range cases {
		if got := RaceTime(tc.cell); got != tc.want {
			t.Errorf("RaceTime(%q) = %v, want %v", tc.cell, got, tc.want)
		}
	}

	for _, cell := range []string{"", "-", "--", "0", "abc", "4:xx", "-12", "  "} {
		if got := RaceTime(cell); got < 999999 {
			t.Errorf("RaceTime(%q) = %v, want sentinel >= 999999", cell, got)
		}
		if IsValidRaceTime(cell) {
			t.Errorf("IsValidRaceTime(%q) = true, want false", cell)
		}
	}

	if !IsValidRaceTime("4:30.5") {
		t.Error("IsValidRaceTime(\"4:30.5\") = false, want true")
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		raw        string
		wantName   string
		wantGender types.Gender
	}{
		{"Jordan (F)", "Jordan", types.GenderGirls},
		{"Jordan", "Jordan", types.GenderBoys},
		{"Sam Smith (F)", "Sam Smith", types.GenderGirls},
		{"(F) Riley", "Riley", types.GenderGirls},
		{"  Alex   Doe  ", "Alex Doe", types.GenderBoys},
	}
	for _, tc := range cases {
		name, gender := SplitName(tc.raw)
		if name != tc.wantName || gender != tc.wantGender {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)",
				tc.raw, name, gender, tc.wantName, tc.wantGender)
		}
	}
}
