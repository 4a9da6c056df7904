package scheduling

import (
	"testing"

	"github.com/BruksfildServices01/barber-app-web/internal/models"
)

func sample() *models.Scheduling {
	backendTotal := 120.0
	return &models.Scheduling{
		ID: 1,
		Services: []models.BarberService{
			{ID: 1, NameService: "Corte", Price: 50, DurationInMinutes: 30},
			{ID: 2, NameService: "Barba", Price: 30, DurationInMinutes: 20},
		},
		AdditionalServices: []models.AdditionalService{
			{Name: "Pomada", Price: 25, Quantity: 2},
			{Name: "Toalha quente", Price: 10}, // quantidade ausente conta 1
		},
		AdditionalValue: 15,
		TotalValue:      &backendTotal,
		PaymentMethod:   models.PaymentPix,
	}
}

func TestNilSafety(t *testing.T) {
	if got := TotalServicePrice(nil); got != 0 {
		t.Errorf("TotalServicePrice(nil) = %v, want 0", got)
	}
	if got := TotalServiceDuration(nil); got != 0 {
		t.Errorf("TotalServiceDuration(nil) = %v, want 0", got)
	}
	if got := AdditionalServicesTotal(nil); got != 0 {
		t.Errorf("AdditionalServicesTotal(nil) = %v, want 0", got)
	}
	if got := TotalValue(nil); got != 0 {
		t.Errorf("TotalValue(nil) = %v, want 0", got)
	}
	if got := Tip(nil); got != 0 {
		t.Errorf("Tip(nil) = %v, want 0", got)
	}

	names := ServiceNames(nil)
	if names == nil {
		t.Fatal("ServiceNames(nil) must be an empty list, not nil")
	}
	if len(names) != 0 {
		t.Errorf("ServiceNames(nil) = %v, want empty", names)
	}
}

func TestTotals(t *testing.T) {
	s := sample()

	if got := TotalServicePrice(s); got != 80 {
		t.Errorf("TotalServicePrice = %v, want 80", got)
	}
	if got := TotalServiceDuration(s); got != 50 {
		t.Errorf("TotalServiceDuration = %v, want 50", got)
	}
	if got := AdditionalServicesTotal(s); got != 60 {
		t.Errorf("AdditionalServicesTotal = %v, want 60 (25*2 + 10*1)", got)
	}
	if got := TotalValue(s); got != 140 {
		t.Errorf("TotalValue = %v, want 140", got)
	}
	if got := Tip(s); got != 15 {
		t.Errorf("Tip = %v, want 15", got)
	}
}

func TestServiceNamesOrder(t *testing.T) {
	names := ServiceNames(sample())
	if len(names) != 2 || names[0] != "Corte" || names[1] != "Barba" {
		t.Errorf("ServiceNames = %v, want [Corte Barba]", names)
	}
}

func TestTotalValueIndependentOfBackendTotal(t *testing.T) {
	s := sample()

	// a estimativa do app não pode espiar o totalValue do backend
	other := 999.0
	s.TotalValue = &other
	if got := TotalValue(s); got != 140 {
		t.Errorf("TotalValue = %v, want 140 regardless of backend total", got)
	}

	s.TotalValue = nil
	if got := TotalValue(s); got != 140 {
		t.Errorf("TotalValue = %v, want 140 with backend total absent", got)
	}
}

func TestPaymentLabel(t *testing.T) {
	if got := PaymentLabel(models.PaymentMoney); got != "Dinheiro" {
		t.Errorf("PaymentLabel(MONEY) = %q", got)
	}
	if got := PaymentLabel(models.PaymentCredit); got != "Cartão de Crédito" {
		t.Errorf("PaymentLabel(CREDIT) = %q", got)
	}
	if got := PaymentLabel("BITCOIN"); got != "BITCOIN" {
		t.Errorf("unknown methods must pass through, got %q", got)
	}
	if got := PaymentLabel(""); got != "-" {
		t.Errorf("absent method must map to placeholder, got %q", got)
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize(sample())
	if sum.EstimatedTotal != 140 || sum.ServicesTotal != 80 || sum.AdditionalTotal != 60 {
		t.Errorf("unexpected summary: %+v", sum)
	}
	if sum.PaymentLabel != "PIX" {
		t.Errorf("PaymentLabel = %q, want PIX", sum.PaymentLabel)
	}

	empty := Summarize(nil)
	if empty.ServiceNames == nil || len(empty.ServiceNames) != 0 {
		t.Errorf("nil summary must carry an empty name list: %+v", empty.ServiceNames)
	}
	if empty.PaymentLabel != "-" {
		t.Errorf("nil summary label = %q, want '-'", empty.PaymentLabel)
	}
}
