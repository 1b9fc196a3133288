package entity

import (
	"github.com/darkr4m/actually-star-k9/core/entity"
)

// User is a trainer account. Passwords are stored as bcrypt hashes only.
type User struct {
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	FirstName    string `db:"first_name" json:"first_name"`
	LastName     string `db:"last_name" json:"last_name"`
	PhoneNumber  string `db:"phone_number" json:"phone_number"`
	IsActive     bool   `db:"is_active" json:"is_active"`
	entity.BaseEntity
}
