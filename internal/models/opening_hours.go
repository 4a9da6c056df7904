package models

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

type TypeRule string

const (
	RuleRecurring    TypeRule = "RECURRING"
	RuleSpecificDate TypeRule = "SPECIFIC_DATE"
)

// WeeklySchedule é uma linha do horário semanal recorrente. ID zero
// significa "ainda não existe no backend" (criar no próximo save).
type WeeklySchedule struct {
	ID           uint      `json:"id,omitempty"`
	TypeRule     TypeRule  `json:"typeRule"`
	DayOfWeek    DayOfWeek `json:"dayOfWeek"`
	SpecificDate *string   `json:"specificDate"`
	Active       bool      `json:"active"`
	OpenTime     *string   `json:"openTime"`
	CloseTime    *string   `json:"closeTime"`
}

// SpecificDate é uma exceção de calendário que sobrepõe o horário semanal
// em uma única data.
type SpecificDate struct {
	ID           uint     `json:"id,omitempty"`
	SpecificDate string   `json:"specificDate"`
	Active       bool     `json:"active"`
	OpenTime     *string  `json:"openTime"`
	CloseTime    *string  `json:"closeTime"`
	TypeRule     TypeRule `json:"typeRule,omitempty"`
}
