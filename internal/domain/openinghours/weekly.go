package openinghours

import (
	"sort"

	"github.com/BruksfildServices01/barber-app-web/internal/httperr"
	"github.com/BruksfildServices01/barber-app-web/internal/models"
)

// Ordem canônica da semana. Toda lista de horário semanal exibida ou
// comparada segue esta ordem, nunca a ordem de chegada do backend.
var WeekDays = []models.DayOfWeek{
	models.Monday,
	models.Tuesday,
	models.Wednesday,
	models.Thursday,
	models.Friday,
	models.Saturday,
	models.Sunday,
}

const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "18:00"
)

func dayIndex(d models.DayOfWeek) int {
	for i, day := range WeekDays {
		if day == d {
			return i
		}
	}
	return len(WeekDays)
}

// Reconcile monta o conjunto de trabalho completo de 7 dias a partir do
// resultado (possivelmente parcial) do backend: dias ausentes entram como
// fechados com horário padrão e sem id, dias repetidos ficam só com a
// primeira ocorrência, e o resultado sai ordenado de segunda a domingo.
func Reconcile(rows []models.WeeklySchedule) []models.WeeklySchedule {
	present := make(map[models.DayOfWeek]bool, len(rows))
	full := make([]models.WeeklySchedule, 0, len(WeekDays))
	for _, r := range rows {
		if present[r.DayOfWeek] {
			continue
		}
		present[r.DayOfWeek] = true
		full = append(full, r)
	}

	for _, day := range WeekDays {
		if present[day] {
			continue
		}
		open := DefaultOpenTime
		close := DefaultCloseTime
		full = append(full, models.WeeklySchedule{
			TypeRule:  models.RuleRecurring,
			DayOfWeek: day,
			Active:    false,
			OpenTime:  &open,
			CloseTime: &close,
		})
	}

	sort.SliceStable(full, func(i, j int) bool {
		return dayIndex(full[i].DayOfWeek) < dayIndex(full[j].DayOfWeek)
	})

	return full
}

// Snapshot copia o conjunto de trabalho para servir de base de comparação.
// Os campos de horário são re-apontados para que edições no conjunto de
// trabalho não vazem para o snapshot.
func Snapshot(rows []models.WeeklySchedule) []models.WeeklySchedule {
	out := make([]models.WeeklySchedule, len(rows))
	for i, r := range rows {
		out[i] = r
		out[i].OpenTime = cloneTime(r.OpenTime)
		out[i].CloseTime = cloneTime(r.CloseTime)
		out[i].SpecificDate = cloneTime(r.SpecificDate)
	}
	return out
}

func cloneTime(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// HasChanges compara o conjunto de trabalho com o snapshot original campo a
// campo (active, openTime, closeTime). A comparação é chaveada por dia da
// semana, não por posição, para não depender da ordem dos slices.
func HasChanges(working, original []models.WeeklySchedule) bool {
	byDay := make(map[models.DayOfWeek]models.WeeklySchedule, len(original))
	for _, r := range original {
		byDay[r.DayOfWeek] = r
	}

	for _, row := range working {
		orig, ok := byDay[row.DayOfWeek]
		if !ok {
			return true
		}
		if row.Active != orig.Active ||
			!timeEqual(row.OpenTime, orig.OpenTime) ||
			!timeEqual(row.CloseTime, orig.CloseTime) {
			return true
		}
	}
	return false
}

func timeEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ValidateWeek garante o invariante do conjunto de trabalho: exatamente uma
// linha por dia da semana. Linhas ativas precisam dos dois horários.
func ValidateWeek(rows []models.WeeklySchedule) error {
	if len(rows) != len(WeekDays) {
		return httperr.ErrValidation("incomplete_week", "O horário semanal precisa das 7 linhas, uma por dia.")
	}

	seen := make(map[models.DayOfWeek]bool, len(rows))
	for _, r := range rows {
		if dayIndex(r.DayOfWeek) >= len(WeekDays) {
			return httperr.ErrValidation("unknown_day", "Dia da semana desconhecido: "+string(r.DayOfWeek))
		}
		if seen[r.DayOfWeek] {
			return httperr.ErrValidation("duplicate_day", "Dia repetido no horário semanal: "+string(r.DayOfWeek))
		}
		seen[r.DayOfWeek] = true

		if r.Active && (emptyTime(r.OpenTime) || emptyTime(r.CloseTime)) {
			return httperr.ErrValidation("missing_times", "Dias ativos precisam de horário de abertura e fechamento.")
		}
	}
	return nil
}

func emptyTime(p *string) bool {
	return p == nil || *p == ""
}

// ForRecurringSave prepara o lote para o PUT semanal: toda linha sai como
// RECURRING e sem data específica, independente do que veio antes.
func ForRecurringSave(rows []models.WeeklySchedule) []models.WeeklySchedule {
	out := make([]models.WeeklySchedule, len(rows))
	for i, r := range rows {
		out[i] = r
		out[i].TypeRule = models.RuleRecurring
		out[i].SpecificDate = nil
	}
	return out
}
