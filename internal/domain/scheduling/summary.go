package scheduling

import "github.com/BruksfildServices01/barber-app-web/internal/models"

// Summary agrupa os valores derivados exibidos junto de um agendamento.
// EstimatedTotal é a conta do app; o totalValue do backend segue no
// próprio registro.
type Summary struct {
	ServiceNames      []string `json:"serviceNames"`
	ServicesTotal     float64  `json:"servicesTotal"`
	DurationInMinutes int      `json:"durationInMinutes"`
	AdditionalTotal   float64  `json:"additionalServicesTotal"`
	EstimatedTotal    float64  `json:"estimatedTotal"`
	Tip               float64  `json:"tip"`
	PaymentLabel      string   `json:"paymentMethodLabel"`
}

func Summarize(s *models.Scheduling) Summary {
	var method models.PaymentMethod
	if s != nil {
		method = s.PaymentMethod
	}
	return Summary{
		ServiceNames:      ServiceNames(s),
		ServicesTotal:     TotalServicePrice(s),
		DurationInMinutes: TotalServiceDuration(s),
		AdditionalTotal:   AdditionalServicesTotal(s),
		EstimatedTotal:    TotalValue(s),
		Tip:               Tip(s),
		PaymentLabel:      PaymentLabel(method),
	}
}
