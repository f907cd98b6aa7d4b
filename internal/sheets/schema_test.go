package sheets

import (
	"reflect"
	"testing"

	"github.com/DavidW312/Running-Website/internal/types"
)

func TestWeekTabs(t *testing.T) {
	tabs := []string{"Week 1", "PRs", "Week 2", "Race_Results", "Weekly Summary", "Notes"}
	got := WeekTabs(tabs)
	want := []string{"Week 1", "Week 2", "Weekly Summary"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WeekTabs = %v, want %v", got, want)
	}
}

func TestSchemaByVersion(t *testing.T) {
	if s, err := SchemaByVersion(""); err != nil || s.Version != "v2" {
		t.Errorf("default schema = %q, %v; want v2", s.Version, err)
	}
	if s, err := SchemaByVersion("V1"); err != nil || s.Version != "v1" {
		t.Errorf("SchemaByVersion(\"V1\") = %q, %v; want v1", s.Version, err)
	}
	if _, err := SchemaByVersion("v9"); err == nil {
		t.Error("SchemaByVersion(\"v9\") succeeded, want error")
	}
}

func TestAttendanceRowsV2(t *testing.T) {
	schema := SchemaV2()
	rows := schema.AttendanceRows(RowSet{
		{"Smith (F)", "Jordan", "Distance", "5", "5", "A", "5", "5", "5"},
		{"Doe", "Alex", "", "3", "4"}, // ragged row, no group
		{"", ""},                      // skipped
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	jordan := rows[0]
	if jordan.DisplayName != "Jordan Smith" || jordan.Gender != types.GenderGirls {
		t.Errorf("row 0 = %q/%q, want Jordan Smith / girls", jordan.DisplayName, jordan.Gender)
	}
	if jordan.Group != "Distance" {
		t.Errorf("group = %q, want Distance", jordan.Group)
	}
	if jordan.Daily[2] != "A" {
		t.Errorf("daily[2] = %q, want A", jordan.Daily[2])
	}
	// v2 has no total column: computed from day cells, status cells count 0
	if jordan.TotalMiles != 25 {
		t.Errorf("total miles = %v, want 25", jordan.TotalMiles)
	}

	alex := rows[1]
	if alex.Gender != types.GenderBoys || alex.Group != types.DefaultGroup {
		t.Errorf("row 1 = %q/%q, want boys / %s", alex.Gender, alex.Group, types.DefaultGroup)
	}
	if alex.TotalMiles != 7 {
		t.Errorf("total miles = %v, want 7", alex.TotalMiles)
	}
}

func TestAttendanceRowsV1TotalColumn(t *testing.T) {
	schema := SchemaV1()
	rows := schema.AttendanceRows(RowSet{
		// v1: no group column, total sourced from the sheet even when it
		// disagrees with the day cells
		{"Smith", "Jordan", "5", "5", "5", "5", "5", "5", "31.5"},
	})
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].TotalMiles != 31.5 {
		t.Errorf("total miles = %v, want 31.5 from the total column", rows[0].TotalMiles)
	}
	if rows[0].Group != types.DefaultGroup {
		t.Errorf("group = %q, want %s", rows[0].Group, types.DefaultGroup)
	}
}

func TestRaceResultsV2(t *testing.T) {
	schema := SchemaV2()
	results := schema.RaceResults(RowSet{
		{"Name", "Meet", "800m", "1600m", "3200m", "Relay 1", "Event 1", "Relay 2", "Event 2"},
		{"Jordan Smith", "City Invite", "2:24.0", "", "", "4:10.0", "4x400", "9:05.0", "4x800"},
		{"Alex Doe", "City Invite", "", "5:25.0", ""},
		{"", "City Invite", "2:30.0"},
	})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	jordan := results[0]
	if jordan.Name != "Jordan Smith" || jordan.Meet != "City Invite" {
		t.Fatalf("unexpected result row: %+v", jordan)
	}
	if jordan.Times[0] != "2:24.0" {
		t.Errorf("times[0] = %q, want 2:24.0", jordan.Times[0])
	}
	wantLegs := []types.RelayLeg{
		{Time: "4:10.0", Event: "4x400"},
		{Time: "9:05.0", Event: "4x800"},
	}
	if !reflect.DeepEqual(jordan.Legs, wantLegs) {
		t.Errorf("legs = %+v, want %+v", jordan.Legs, wantLegs)
	}

	if len(results[1].Legs) != 0 {
		t.Errorf("row without relay cells grew legs: %+v", results[1].Legs)
	}
}

func TestRaceResultsV1SingleLeg(t *testing.T) {
	schema := SchemaV1()
	results := schema.RaceResults(RowSet{
		{"Jordan Smith", "City Invite", "2:24.0", "", "", "4:10.0", "4x400"},
	})
	if len(results) != 1 || len(results[0].Legs) != 1 {
		t.Fatalf("unexpected results: %+v", results)
	}
	if results[0].Legs[0] != (types.RelayLeg{Time: "4:10.0", Event: "4x400"}) {
		t.Errorf("leg = %+v", results[0].Legs[0])
	}
}
