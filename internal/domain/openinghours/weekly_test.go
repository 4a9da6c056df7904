package openinghours

import (
	"testing"

	"github.com/BruksfildServices01/barber-app-web/internal/models"
)

func strPtr(s string) *string { return &s }

func TestReconcileEmpty(t *testing.T) {
	full := Reconcile(nil)

	if len(full) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(full))
	}
	for i, day := range WeekDays {
		row := full[i]
		if row.DayOfWeek != day {
			t.Errorf("row %d: expected %s, got %s", i, day, row.DayOfWeek)
		}
		if row.Active {
			t.Errorf("row %d: synthesized rows must be inactive", i)
		}
		if row.ID != 0 {
			t.Errorf("row %d: synthesized rows must have no id", i)
		}
		if row.OpenTime == nil || *row.OpenTime != DefaultOpenTime {
			t.Errorf("row %d: expected default open time", i)
		}
		if row.CloseTime == nil || *row.CloseTime != DefaultCloseTime {
			t.Errorf("row %d: expected default close time", i)
		}
	}
}

func TestReconcilePartial(t *testing.T) {
	rows := []models.WeeklySchedule{
		{
			ID:        12,
			DayOfWeek: models.Wednesday,
			Active:    true,
			OpenTime:  strPtr("10:00"),
			CloseTime: strPtr("19:00"),
		},
	}

	full := Reconcile(rows)

	if len(full) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(full))
	}

	wed := full[2]
	if wed.DayOfWeek != models.Wednesday || wed.ID != 12 || !wed.Active {
		t.Errorf("backend row must land unmodified at the Wednesday slot: %+v", wed)
	}
	if *wed.OpenTime != "10:00" || *wed.CloseTime != "19:00" {
		t.Errorf("backend times must be kept: %+v", wed)
	}

	for i, row := range full {
		if i == 2 {
			continue
		}
		if row.Active || row.ID != 0 {
			t.Errorf("row %d (%s) must be a synthesized closed day: %+v", i, row.DayOfWeek, row)
		}
	}
}

func TestReconcileSortsArrivalOrder(t *testing.T) {
	rows := []models.WeeklySchedule{
		{ID: 3, DayOfWeek: models.Sunday},
		{ID: 1, DayOfWeek: models.Monday},
		{ID: 2, DayOfWeek: models.Friday},
	}

	full := Reconcile(rows)

	if full[0].DayOfWeek != models.Monday || full[0].ID != 1 {
		t.Errorf("Monday first, got %+v", full[0])
	}
	if full[4].DayOfWeek != models.Friday || full[4].ID != 2 {
		t.Errorf("Friday fifth, got %+v", full[4])
	}
	if full[6].DayOfWeek != models.Sunday || full[6].ID != 3 {
		t.Errorf("Sunday last, got %+v", full[6])
	}
}

func TestReconcileDropsDuplicateDays(t *testing.T) {
	rows := []models.WeeklySchedule{
		{ID: 1, DayOfWeek: models.Monday, Active: true, OpenTime: strPtr("08:00"), CloseTime: strPtr("17:00")},
		{ID: 2, DayOfWeek: models.Monday, Active: false, OpenTime: strPtr("10:00"), CloseTime: strPtr("12:00")},
	}

	full := Reconcile(rows)

	if len(full) != 7 {
		t.Fatalf("duplicate days must not inflate the set: got %d rows", len(full))
	}

	monday := full[0]
	if monday.DayOfWeek != models.Monday || monday.ID != 1 {
		t.Errorf("first occurrence must win: %+v", monday)
	}
	if !monday.Active || *monday.OpenTime != "08:00" {
		t.Errorf("duplicate row leaked into the working set: %+v", monday)
	}
}

func TestHasChanges(t *testing.T) {
	original := Reconcile(nil)
	working := Snapshot(original)

	if HasChanges(working, original) {
		t.Fatal("freshly cloned set must report no changes")
	}

	working[3].Active = true
	if !HasChanges(working, original) {
		t.Error("toggling active on a single row must set the flag")
	}

	working[3].Active = false
	if HasChanges(working, original) {
		t.Error("reverting the only edit must clear the flag")
	}

	working[5].OpenTime = strPtr("08:00")
	if !HasChanges(working, original) {
		t.Error("an open time edit must set the flag")
	}
}

func TestHasChangesIsKeyedByDay(t *testing.T) {
	original := Reconcile(nil)
	working := Snapshot(original)

	// mesma semana, ordem embaralhada: não pode acusar mudança
	working[0], working[6] = working[6], working[0]
	if HasChanges(working, original) {
		t.Error("comparison must be keyed by day, not by position")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	original := Reconcile(nil)
	working := Snapshot(original)

	*working[0].OpenTime = "07:00"
	if *original[0].OpenTime != DefaultOpenTime {
		t.Error("editing the working set must not leak into the snapshot")
	}
}

func TestForRecurringSave(t *testing.T) {
	date := "2025-03-10"
	rows := []models.WeeklySchedule{
		{DayOfWeek: models.Monday, TypeRule: models.RuleSpecificDate, SpecificDate: &date},
	}

	out := ForRecurringSave(rows)

	if out[0].TypeRule != models.RuleRecurring {
		t.Errorf("TypeRule must be forced to RECURRING, got %s", out[0].TypeRule)
	}
	if out[0].SpecificDate != nil {
		t.Errorf("SpecificDate must be forced to null, got %v", *out[0].SpecificDate)
	}
	if rows[0].TypeRule != models.RuleSpecificDate {
		t.Error("input slice must not be mutated")
	}
}

func TestValidateWeek(t *testing.T) {
	if err := ValidateWeek(Reconcile(nil)); err != nil {
		t.Errorf("a reconciled week must validate, got %v", err)
	}

	if err := ValidateWeek(Reconcile(nil)[:6]); err == nil {
		t.Error("6 rows must be rejected")
	}

	dup := Reconcile(nil)
	dup[1].DayOfWeek = models.Monday
	if err := ValidateWeek(dup); err == nil {
		t.Error("a duplicated day must be rejected")
	}

	missingTimes := Reconcile(nil)
	missingTimes[0].Active = true
	missingTimes[0].OpenTime = nil
	if err := ValidateWeek(missingTimes); err == nil {
		t.Error("an active day without times must be rejected")
	}
}
