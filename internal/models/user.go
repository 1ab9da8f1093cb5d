package models

const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (user User) IsManager() bool {
	return user.Role == RoleManager
}
