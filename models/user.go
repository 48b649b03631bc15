package models

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	Name         string   `json:"name"`
	Password     string   `json:"password,omitempty"` // plaintext by design of the demo, see README
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	RegisteredAt int64    `json:"registeredAt"` // unix milliseconds
}

// Public strips the password before the record leaves the API.
func (u User) Public() User {
	u.Password = ""
	return u
}
