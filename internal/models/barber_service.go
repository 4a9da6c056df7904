package models

// BarberService é o snapshot de um serviço como anexado a um agendamento.
// Preço e duração ficam congelados no momento do agendamento e podem
// divergir do catálogo atual.
type BarberService struct {
	ID                uint    `json:"id"`
	NameService       string  `json:"nameService"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	DurationInMinutes int     `json:"durationInMinutes"`
}

// AdditionalService é um item extra lançado durante o atendimento.
// Não guarda referência ao catálogo.
type AdditionalService struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
