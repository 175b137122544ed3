package momentum

import (
	"testing"
	"time"
)

func TestNewSchedule_Ordering(t *testing.T) {
	jan15 := NewDate(2020, time.January, 15)
	mar1 := NewDate(2020, time.March, 1)

	trades := []Trade{
		// B exits on mar1, the same date C enters.
		{Name: "C", EntryPrice: M(50), EntryDate: mar1},
		{Name: "B", EntryPrice: M(20), EntryDate: jan15, ExitPrice: M(25), ExitDate: mar1},
		{Name: "A", EntryPrice: M(10), EntryDate: jan15},
	}

	schedule, errs := NewSchedule(trades)
	if len(errs) != 0 {
		t.Fatalf("NewSchedule() returned unexpected data errors: %v", errs)
	}

	units := schedule.Units()
	if len(units) != 2 {
		t.Fatalf("got %d work units, want 2", len(units))
	}

	if units[0].Date != jan15 || units[1].Date != mar1 {
		t.Errorf("units out of date order: %v, %v", units[0].Date, units[1].Date)
	}

	// jan15: two entries, sorted by stock name, no exits
	if len(units[0].Exits) != 0 || len(units[0].Entries) != 2 {
		t.Fatalf("jan15 unit = %d exits, %d entries", len(units[0].Exits), len(units[0].Entries))
	}
	if units[0].Entries[0].Name != "A" || units[0].Entries[1].Name != "B" {
		t.Errorf("entries not sorted by name: %q, %q", units[0].Entries[0].Name, units[0].Entries[1].Name)
	}

	// mar1 carries both B's exit and C's entry in the same unit, exit first by construction.
	if len(units[1].Exits) != 1 || units[1].Exits[0].Name != "B" {
		t.Errorf("mar1 exits = %v", units[1].Exits)
	}
	if len(units[1].Entries) != 1 || units[1].Entries[0].Name != "C" {
		t.Errorf("mar1 entries = %v", units[1].Entries)
	}
}

func TestNewSchedule_RejectsInvalidRecords(t *testing.T) {
	trades := []Trade{
		{Name: "GOOD", EntryPrice: M(10), EntryDate: NewDate(2020, time.January, 15)},
		{Name: "NODATE", EntryPrice: M(10)}, // missing entry date
	}
	schedule, errs := NewSchedule(trades)
	if len(errs) != 1 {
		t.Fatalf("got %d data errors, want 1: %v", len(errs), errs)
	}
	if schedule.Len() != 1 {
		t.Errorf("got %d work units, want 1", schedule.Len())
	}
}
