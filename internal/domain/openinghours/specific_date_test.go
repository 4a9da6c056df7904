package openinghours

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-app-web/internal/httperr"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"date with time suffix", "2025-03-10T00:00:00Z", "2025-03-10"},
		{"plain date", "2025-03-10", "2025-03-10"},
		{"empty string", "", ""},
		{"nil", nil, ""},
		{"number", 42.0, ""},
		{"time value", time.Date(2025, 3, 10, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600)), "2025-03-11"},
		{"zero time", time.Time{}, ""},
	}

	for _, tc := range cases {
		if got := NormalizeDate(tc.in); got != tc.want {
			t.Errorf("%s: NormalizeDate(%v) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestNormalizeOverrideDefaults(t *testing.T) {
	form := NormalizeOverride(map[string]any{
		"id":           float64(9),
		"specificDate": "2025-12-24T00:00:00Z",
	})

	if form.ID != 9 {
		t.Errorf("id = %d, want 9", form.ID)
	}
	if form.SpecificDate != "2025-12-24" {
		t.Errorf("specificDate = %q", form.SpecificDate)
	}
	if !form.Active {
		t.Error("active must default to true")
	}
	if form.OpenTime != "" || form.CloseTime != "" {
		t.Errorf("times must default to empty: %+v", form)
	}
}

func TestNormalizeOverrideExplicitInactive(t *testing.T) {
	form := NormalizeOverride(map[string]any{
		"specificDate": "2025-12-25",
		"active":       false,
		"openTime":     "09:00",
	})

	if form.Active {
		t.Error("explicit active=false must be kept")
	}
	if form.OpenTime != "09:00" {
		t.Errorf("openTime = %q", form.OpenTime)
	}
}

func TestValidateRejectsLocally(t *testing.T) {
	missingDate := OverrideForm{Active: true, OpenTime: "09:00", CloseTime: "18:00"}
	if err := missingDate.Validate(); !httperr.IsValidation(err) {
		t.Errorf("missing date must fail local validation, got %v", err)
	}

	missingTime := OverrideForm{SpecificDate: "2025-03-10", Active: true, CloseTime: "18:00"}
	if err := missingTime.Validate(); !httperr.IsValidation(err) {
		t.Errorf("active override without open time must fail, got %v", err)
	}

	inactive := OverrideForm{SpecificDate: "2025-03-10", Active: false, OpenTime: "09:00", CloseTime: "18:00"}
	if err := inactive.Validate(); err != nil {
		t.Errorf("inactive override must validate regardless of times, got %v", err)
	}
}

func TestPayloadForcesNullTimesWhenInactive(t *testing.T) {
	inactive := OverrideForm{SpecificDate: "2025-03-10", Active: false, OpenTime: "09:00", CloseTime: "18:00"}
	payload := inactive.Payload()

	if payload.OpenTime != nil || payload.CloseTime != nil {
		t.Errorf("inactive payload must carry null times: %+v", payload)
	}
	if payload.SpecificDate != "2025-03-10" || payload.Active {
		t.Errorf("unexpected payload: %+v", payload)
	}

	active := OverrideForm{SpecificDate: "2025-03-10", Active: true, OpenTime: "09:00", CloseTime: "18:00"}
	activePayload := active.Payload()
	if activePayload.OpenTime == nil || *activePayload.OpenTime != "09:00" {
		t.Errorf("active payload must keep times: %+v", activePayload)
	}
	if activePayload.TypeRule != "SPECIFIC_DATE" {
		t.Errorf("typeRule = %q", activePayload.TypeRule)
	}
}
