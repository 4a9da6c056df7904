package openinghours

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-app-web/internal/httperr"
	"github.com/BruksfildServices01/barber-app-web/internal/models"
)

// OverrideForm é o estado editável de uma exceção de data: strings simples,
// sem nulos, como o formulário trabalha. A conversão para o payload de
// rede acontece só em Payload.
type OverrideForm struct {
	ID           uint   `json:"id,omitempty"`
	SpecificDate string `json:"specificDate"`
	Active       bool   `json:"active"`
	OpenTime     string `json:"openTime"`
	CloseTime    string `json:"closeTime"`
}

// NormalizeDate reduz qualquer representação de data vinda do backend a
// "YYYY-MM-DD": strings perdem o sufixo de hora/fuso a partir do primeiro
// 'T'; time.Time vira a data de calendário em UTC; o resto vira vazio.
func NormalizeDate(raw any) string {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return ""
		}
		date, _, _ := strings.Cut(v, "T")
		return date
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.UTC().Format("2006-01-02")
	case *time.Time:
		if v == nil {
			return ""
		}
		return NormalizeDate(*v)
	}
	return ""
}

// NormalizeOverride projeta uma exceção crua do backend no formulário:
// data normalizada, active=true por omissão, horários vazios por omissão.
func NormalizeOverride(raw map[string]any) OverrideForm {
	form := OverrideForm{
		ID:           uint(numberValue(raw["id"])),
		SpecificDate: NormalizeDate(raw["specificDate"]),
		Active:       true,
		OpenTime:     stringValue(raw["openTime"]),
		CloseTime:    stringValue(raw["closeTime"]),
	}
	if active, ok := raw["active"].(bool); ok {
		form.Active = active
	}
	return form
}

// NormalizeOverrideList projeta a lista inteira, preservando ordem.
func NormalizeOverrideList(raws []map[string]any) []OverrideForm {
	out := make([]OverrideForm, 0, len(raws))
	for _, raw := range raws {
		out = append(out, NormalizeOverride(raw))
	}
	return out
}

// Validate aplica as regras locais antes de qualquer chamada de rede:
// data obrigatória; com active, os dois horários obrigatórios.
func (f OverrideForm) Validate() error {
	if f.SpecificDate == "" {
		return httperr.ErrValidation("missing_date", "Informe a data da exceção.")
	}
	if f.Active && (f.OpenTime == "" || f.CloseTime == "") {
		return httperr.ErrValidation("missing_times", "Informe horário de abertura e fechamento.")
	}
	return nil
}

// Payload monta o corpo enviado ao backend. Quando a data está inativa os
// horários saem nulos, ignorando o que restou no formulário.
func (f OverrideForm) Payload() models.SpecificDate {
	payload := models.SpecificDate{
		SpecificDate: f.SpecificDate,
		Active:       f.Active,
		TypeRule:     models.RuleSpecificDate,
	}
	if f.Active {
		open := f.OpenTime
		close := f.CloseTime
		payload.OpenTime = &open
		payload.CloseTime = &close
	}
	return payload
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func numberValue(v any) float64 {
	n, _ := v.(float64)
	return n
}
