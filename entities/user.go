package entities

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a café staff or customer account.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:char(64);not null" json:"-"` // sha-256 hex
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"type:varchar(16);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserPatch names the user fields to change. Nil fields are left untouched.
type UserPatch struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Password == nil && p.Email == nil && p.Role == nil
}
