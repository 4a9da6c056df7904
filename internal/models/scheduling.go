package models

import (
	"bytes"
	"encoding/json"
)

// ===============================
// Scheduling states
// ===============================

type States string

const (
	StateScheduled States = "SCHEDULED"
	StateConfirmed States = "CONFIRMED"
	StateCompleted States = "COMPLETED"
	StateCanceled  States = "CANCELED"
)

type PaymentMethod string

const (
	PaymentMoney    PaymentMethod = "MONEY"
	PaymentCredit   PaymentMethod = "CREDIT"
	PaymentDebit    PaymentMethod = "DEBIT"
	PaymentPix      PaymentMethod = "PIX"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMoney, PaymentCredit, PaymentDebit, PaymentPix, PaymentTransfer:
		return true
	}
	return false
}

// ===============================
// Scheduling
// ===============================

// Scheduling é o registro canônico de um agendamento. Transições de estado
// pertencem ao backend; o app apenas solicita e recarrega.
type Scheduling struct {
	ID                 uint                `json:"id"`
	Client             User                `json:"client"`
	Barber             User                `json:"barber"`
	Services           []BarberService     `json:"barberService"`
	DateTime           string              `json:"dateTime"`
	States             States              `json:"states"`
	Reason             string              `json:"reason,omitempty"`
	PaymentMethod      PaymentMethod       `json:"paymentMethod,omitempty"`
	Observation        string              `json:"observation,omitempty"`
	AdditionalValue    float64             `json:"additionalValue,omitempty"`
	TotalValue         *float64            `json:"totalValue,omitempty"`
	AdditionalServices []AdditionalService `json:"additionalServicesList,omitempty"`
	DateTimeCompletion string              `json:"dateTimeCompletion,omitempty"`
}

// Chaves já vistas em versões diferentes do backend para a lista de
// serviços. A primeira presente como array vence; as demais são ignoradas.
var serviceListKeys = []string{"barberService", "barberServices", "services", "serviceList"}

// UnmarshalJSON normaliza o payload cru do backend: resolve a chave da
// lista de serviços e os nomes alternativos de campo de cada entrada,
// garantindo Services não-nulo na forma canônica. A lista de serviços
// nunca passa pelo decode tipado; entradas com tipos errados (preço
// string, duração booleana) viram 0 em vez de derrubar o decode inteiro.
func (s *Scheduling) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	services := probeServices(raw)

	for _, key := range serviceListKeys {
		delete(raw, key)
	}

	rest, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	type alias Scheduling
	var aux alias
	if err := json.Unmarshal(rest, &aux); err != nil {
		return err
	}

	aux.Services = services
	*s = Scheduling(aux)
	return nil
}

// probeServices resolve a lista de serviços a partir do mapa cru: a
// primeira chave candidata presente como array vence. Sempre devolve uma
// lista, nunca nil.
func probeServices(raw map[string]json.RawMessage) []BarberService {
	for _, key := range serviceListKeys {
		value, ok := raw[key]
		if !ok || !isJSONArray(value) {
			continue
		}

		var entries []any
		if err := json.Unmarshal(value, &entries); err != nil {
			continue
		}

		out := make([]BarberService, 0, len(entries))
		for _, e := range entries {
			entry, _ := e.(map[string]any)
			out = append(out, serviceFromRaw(entry))
		}
		return out
	}
	return []BarberService{}
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func serviceFromRaw(entry map[string]any) BarberService {
	return BarberService{
		ID:                uint(numberField(entry, "id")),
		NameService:       stringField(entry, "nameService", "nome", "name"),
		Description:       stringField(entry, "description", "descricao"),
		Price:             numberField(entry, "price", "preco"),
		DurationInMinutes: int(numberField(entry, "durationInMinutes", "duracao")),
	}
}

// stringField devolve o primeiro valor string não-vazio entre as chaves,
// na ordem dada (a canônica primeiro).
func stringField(entry map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := entry[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// numberField devolve o primeiro valor numérico entre as chaves; qualquer
// valor não-numérico vira 0.
func numberField(entry map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := entry[k].(float64); ok {
			return v
		}
	}
	return 0
}
