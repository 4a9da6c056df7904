package models

import (
	"encoding/json"
	"testing"
)

func TestUnmarshalServicesUnderAlternateKey(t *testing.T) {
	raw := `{
		"id": 7,
		"dateTime": "2025-03-10T14:00:00Z",
		"states": "SCHEDULED",
		"services": [
			{"id": 1, "nameService": "Corte", "price": 50, "durationInMinutes": 30},
			{"id": 2, "nameService": "Barba", "price": 30, "durationInMinutes": 20}
		]
	}`

	var s Scheduling
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(s.Services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(s.Services))
	}
	if s.Services[0].NameService != "Corte" || s.Services[1].NameService != "Barba" {
		t.Errorf("unexpected service names: %+v", s.Services)
	}
	if s.Services[0].Price != 50 || s.Services[1].DurationInMinutes != 20 {
		t.Errorf("unexpected values: %+v", s.Services)
	}
	if s.ID != 7 || s.States != StateScheduled {
		t.Errorf("other fields must stay untouched: id=%d states=%q", s.ID, s.States)
	}
}

func TestUnmarshalFirstCandidateKeyWins(t *testing.T) {
	raw := `{
		"id": 1,
		"barberService": [{"id": 1, "nameService": "Corte", "price": 50, "durationInMinutes": 30}],
		"services": [{"id": 9, "nameService": "Outro", "price": 999, "durationInMinutes": 999}]
	}`

	var s Scheduling
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(s.Services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(s.Services))
	}
	if s.Services[0].NameService != "Corte" {
		t.Errorf("barberService must win over services, got %q", s.Services[0].NameService)
	}
}

func TestUnmarshalSkipsNonArrayCandidates(t *testing.T) {
	raw := `{
		"id": 1,
		"barberService": null,
		"barberServices": "not-a-list",
		"serviceList": [{"id": 3, "nameService": "Sobrancelha", "price": 15, "durationInMinutes": 10}]
	}`

	var s Scheduling
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(s.Services) != 1 || s.Services[0].NameService != "Sobrancelha" {
		t.Errorf("expected serviceList entry, got %+v", s.Services)
	}
}

func TestUnmarshalAlternateEntryKeys(t *testing.T) {
	raw := `{
		"id": 1,
		"barberService": [
			{"id": 1, "nome": "Corte", "descricao": "clássico", "preco": 45, "duracao": 25},
			{"id": 2, "nameService": "Barba", "nome": "ignorado", "price": "abc", "durationInMinutes": true}
		]
	}`

	var s Scheduling
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	first := s.Services[0]
	if first.NameService != "Corte" || first.Description != "clássico" {
		t.Errorf("localized keys must map: %+v", first)
	}
	if first.Price != 45 || first.DurationInMinutes != 25 {
		t.Errorf("localized numeric keys must map: %+v", first)
	}

	second := s.Services[1]
	if second.NameService != "Barba" {
		t.Errorf("canonical key must take priority, got %q", second.NameService)
	}
	if second.Price != 0 || second.DurationInMinutes != 0 {
		t.Errorf("non-numeric values must coerce to 0: %+v", second)
	}
}

func TestUnmarshalMalformedServiceValuesKeepRecord(t *testing.T) {
	raw := `{
		"id": 3,
		"states": "CONFIRMED",
		"barberService": [{"nameService": "Corte", "price": "abc", "durationInMinutes": true}]
	}`

	var s Scheduling
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("malformed service values must not fail the decode: %v", err)
	}

	if s.ID != 3 || s.States != StateConfirmed {
		t.Errorf("record fields must survive: id=%d states=%q", s.ID, s.States)
	}
	if len(s.Services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(s.Services))
	}
	if s.Services[0].NameService != "Corte" || s.Services[0].Price != 0 || s.Services[0].DurationInMinutes != 0 {
		t.Errorf("wrong-typed values must coerce to 0: %+v", s.Services[0])
	}
}

func TestUnmarshalMissingServicesDefaultsToEmpty(t *testing.T) {
	var s Scheduling
	if err := json.Unmarshal([]byte(`{"id": 5}`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if s.Services == nil {
		t.Fatal("Services must never be nil after normalization")
	}
	if len(s.Services) != 0 {
		t.Errorf("expected empty services, got %+v", s.Services)
	}
}

func TestUnmarshalListPreservesOrderAndLength(t *testing.T) {
	raw := `[
		{"id": 1, "services": [{"id": 1, "nameService": "A", "price": 1, "durationInMinutes": 1}]},
		{"id": 2},
		{"id": 3, "barberServices": [{"id": 2, "nameService": "B", "price": 2, "durationInMinutes": 2}]}
	]`

	var list []Scheduling
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(list) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(list))
	}
	for i, want := range []uint{1, 2, 3} {
		if list[i].ID != want {
			t.Errorf("entry %d: expected id %d, got %d", i, want, list[i].ID)
		}
		if list[i].Services == nil {
			t.Errorf("entry %d: services must be non-nil", i)
		}
	}
	if list[2].Services[0].NameService != "B" {
		t.Errorf("entry 3 services not normalized: %+v", list[2].Services)
	}
}
