package models

import "time"

// Organizational roles, ordered central → leaf. Geography fields narrow as
// the role narrows; a daye carries all four plus an optional markaz.
const (
	RoleCentralAdmin  = "centraladmin"
	RoleDivisionAdmin = "divisionadmin"
	RoleDistrictAdmin = "districtadmin"
	RoleUpozilaAdmin  = "upozilaadmin"
	RoleUnionAdmin    = "unionadmin"
	RoleDaye          = "daye"
)

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:120;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:160;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
	Phone    string `json:"phone" gorm:"size:20"`
	Role     string `json:"role" gorm:"size:20;not null;index"`

	Division string `json:"division" gorm:"size:80"`
	District string `json:"district" gorm:"size:80"`
	Upazila  string `json:"upazila" gorm:"size:80"`
	Union    string `json:"union" gorm:"size:80;column:union_name"`
	Markaz   string `json:"markaz" gorm:"size:120"`

	Banned bool `json:"banned" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsAdminRole(role string) bool {
	switch role {
	case RoleCentralAdmin, RoleDivisionAdmin, RoleDistrictAdmin, RoleUpozilaAdmin, RoleUnionAdmin:
		return true
	}
	return false
}
