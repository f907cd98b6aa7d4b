package pr

import "testing"

func TestIsNewRecordInvalidRaceTime(t *testing.T) {
	priors := []string{"", "--", "4:30", "270", " "}
	for _, raceTime := range []string{"", "-", "0", " "} {
		for _, prior := range priors {
			if IsNewRecord(raceTime, prior) {
				t.Errorf("IsNewRecord(%q, %q) = true, want false", raceTime, prior)
			}
		}
	}
}

func TestIsNewRecordDebut(t *testing.T) {
	for _, prior := range []string{"", "--", " "} {
		if !IsNewRecord("4:30.5", prior) {
			t.Errorf("IsNewRecord(\"4:30.5\", %q) = false, want true", prior)
		}
		if got := Improvement(prior, "4:30.5"); got != "(Debut)" {
			t.Errorf("Improvement(%q, \"4:30.5\") = %q, want \"(Debut)\"", prior, got)
		}
	}
}

func TestIsNewRecordComparison(t *testing.T) {
	cases := []struct {
		raceTime string
		prior    string
		isRecord bool
		label    string
	}{
		// strictly faster
		{"4:28.0", "4:30.5", true, "(-2.5s)"},
		{"268", "4:30.5", true, "(-2.5s)"},
		// equal time still qualifies but shows no improvement
		{"4:30.5", "4:30.5", true, ""},
		{"270.5", "4:30.5", true, ""},
		// slower
		{"4:31.0", "4:30.5", false, ""},
	}
	for _, tc := range cases {
		if got := IsNewRecord(tc.raceTime, tc.prior); got != tc.isRecord {
			t.Errorf("IsNewRecord(%q, %q) = %v, want %v", tc.raceTime, tc.prior, got, tc.isRecord)
		}
		if got := Improvement(tc.prior, tc.raceTime); got != tc.label {
			t.Errorf("Improvement(%q, %q) = %q, want %q", tc.prior, tc.raceTime, got, tc.label)
		}
	}
}

func TestRegistryBuild(t *testing.T) {
	reg := NewRegistry([][]string{
		{"Name", "800m", "1600m", "3200m"},
		{"Jordan (F)", "2:25.0", "5:10.0", "--"},
		{"Alex", "2:30.0"},
		{"  jordan (f)  ", "9:99", "9:99", "9:99"}, // duplicate, first wins
		{"", "2:00.0"},
	})

	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}

	record, ok := reg.Lookup("  JORDAN (F)")
	if !ok {
		t.Fatal("Lookup(\"  JORDAN (F)\") not found")
	}
	if record.Times[0] != "2:25.0" || record.Times[2] != "--" {
		t.Errorf("unexpected record times: %v", record.Times)
	}

	// short rows pad missing events with empty strings
	record, ok = reg.Lookup("alex")
	if !ok {
		t.Fatal("Lookup(\"alex\") not found")
	}
	if record.Times[1] != "" || record.Times[2] != "" {
		t.Errorf("unexpected padding for short row: %v", record.Times)
	}

	if _, ok := reg.Lookup("nobody"); ok {
		t.Error("Lookup(\"nobody\") found, want miss")
	}
}

func TestRegistryHeaderOnlyFirstRow(t *testing.T) {
	// an athlete actually named "Name" below the first row is kept
	reg := NewRegistry([][]string{
		{"Name", "800m", "1600m", "3200m"},
		{"Name", "2:25.0", "--", "--"},
	})
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegistryRecordsIsCopy(t *testing.T) {
	reg := NewRegistry([][]string{{"Alex", "2:30.0", "--", "--"}})
	records := reg.Records()
	records[0].Name = "mutated"
	if fresh := reg.Records(); fresh[0].Name != "Alex" {
		t.Error("Records() exposed internal state")
	}
}
