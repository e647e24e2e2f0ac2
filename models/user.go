package models

import "time"

// Role is the closed set of principal roles. Authorization branches on this
// type only.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleApplicant Role = "applicant"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleApplicant
}

// User is an authentication principal. Applicants register themselves; admin
// accounts are created with the create-admin command.
type User struct {
	UserID    int       `gorm:"primaryKey;column:user_id" json:"userId"`
	Name      string    `gorm:"column:name" json:"name"`
	Email     string    `gorm:"column:email;unique" json:"email"`
	Password  string    `gorm:"column:password" json:"-"`
	Role      Role      `gorm:"column:role;default:applicant" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
