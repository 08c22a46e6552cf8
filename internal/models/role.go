package models

// Role names are fixed; rows are seeded at migration time and never
// created through the API.
type RoleName string

const (
	RoleAdmin RoleName = "Admin"
	RoleUser  RoleName = "User"
)

const (
	RoleAdminID uint = 1
	RoleUserID  uint = 2
)

type Role struct {
	ID   uint     `gorm:"primaryKey" json:"id"`
	Name RoleName `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

// IsAdmin reports whether the role grants moderation rights.
func (r RoleName) IsAdmin() bool {
	return r == RoleAdmin
}
