package models

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleBarber Role = "BARBER"
	RoleClient Role = "CLIENT"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBarber, RoleClient:
		return true
	}
	return false
}

type User struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Role      Role   `json:"role"`
}
