package authservice

// Роли пользователей в системе клуба
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

// Profile профиль пользователя из сервиса аутентификации
type Profile struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
}

// IsStaff возвращает true для сотрудников клуба
func (p *Profile) IsStaff() bool {
	return p.Role == RoleStaff
}
