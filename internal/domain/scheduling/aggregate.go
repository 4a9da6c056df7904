package scheduling

import "github.com/BruksfildServices01/barber-app-web/internal/models"

// ===============================
// Valores derivados de um agendamento
// ===============================
//
// Todas as funções são totais sobre {nil, agendamento bem-formado}:
// nunca retornam erro nem entram em pânico.

// TotalServicePrice soma o preço dos serviços do agendamento.
func TotalServicePrice(s *models.Scheduling) float64 {
	if s == nil {
		return 0
	}
	var sum float64
	for _, svc := range s.Services {
		sum += svc.Price
	}
	return sum
}

// TotalServiceDuration soma a duração (minutos) dos serviços.
func TotalServiceDuration(s *models.Scheduling) int {
	if s == nil {
		return 0
	}
	var sum int
	for _, svc := range s.Services {
		sum += svc.DurationInMinutes
	}
	return sum
}

// ServiceNames lista os nomes dos serviços na ordem de origem.
// Sempre devolve uma lista, nunca nil.
func ServiceNames(s *models.Scheduling) []string {
	if s == nil {
		return []string{}
	}
	names := make([]string, 0, len(s.Services))
	for _, svc := range s.Services {
		names = append(names, svc.NameService)
	}
	return names
}

// AdditionalServicesTotal soma preço × quantidade dos serviços adicionais.
// Quantidade ausente ou não-positiva conta como 1.
func AdditionalServicesTotal(s *models.Scheduling) float64 {
	if s == nil {
		return 0
	}
	var sum float64
	for _, extra := range s.AdditionalServices {
		qty := extra.Quantity
		if qty <= 0 {
			qty = 1
		}
		sum += extra.Price * float64(qty)
	}
	return sum
}

// TotalValue é a estimativa do app: serviços + adicionais. Não substitui o
// totalValue calculado pelo backend (que pode embutir taxas/descontos);
// os dois são expostos lado a lado e nunca mesclados implicitamente.
func TotalValue(s *models.Scheduling) float64 {
	return TotalServicePrice(s) + AdditionalServicesTotal(s)
}

// Tip devolve o valor adicional (gorjeta) quando positivo.
func Tip(s *models.Scheduling) float64 {
	if s == nil || s.AdditionalValue <= 0 {
		return 0
	}
	return s.AdditionalValue
}

var paymentLabels = map[models.PaymentMethod]string{
	models.PaymentMoney:    "Dinheiro",
	models.PaymentCredit:   "Cartão de Crédito",
	models.PaymentDebit:    "Cartão de Débito",
	models.PaymentPix:      "PIX",
	models.PaymentTransfer: "Transferência",
}

// PaymentLabel traduz o método de pagamento para exibição. Valores
// desconhecidos passam adiante como estão; ausente vira "-".
func PaymentLabel(method models.PaymentMethod) string {
	if method == "" {
		return "-"
	}
	if label, ok := paymentLabels[method]; ok {
		return label
	}
	return string(method)
}
