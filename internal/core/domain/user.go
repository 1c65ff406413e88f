package domain

// User models a registered account. The password hash never leaves the
// server: it is excluded from JSON serialization entirely.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Lastname     string `json:"lastname"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Active       bool   `json:"active"`
}
