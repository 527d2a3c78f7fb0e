package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleNurse = "nurse"
	RoleClerk = "clerk"
)

// User is a staff account. Authentication is handled upstream; this
// service only keeps the roster and role assignments.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Login     string    `db:"login" json:"login"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
