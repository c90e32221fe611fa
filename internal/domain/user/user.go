package user

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type User struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Avatar        string    `json:"avatar,omitempty"`
	Role          string    `json:"role"`
	Phone         string    `json:"phone,omitempty"`
	Address       *Address  `json:"address,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
