package models

import "time"

// EditRequest is a field worker's request to change profile or location
// data, reviewed by an admin. Grouped by email on the review screen.
type EditRequest struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Email    string    `json:"email" gorm:"size:160;not null;index"`
	Name     string    `json:"name" gorm:"size:120"`
	Phone    string    `json:"phone" gorm:"size:20"`
	Role     string    `json:"role" gorm:"size:20"`
	Division string    `json:"division" gorm:"size:80"`
	District string    `json:"district" gorm:"size:80"`
	Upazila  string    `json:"upazila" gorm:"size:80"`
	Union    string    `json:"union" gorm:"size:80;column:union_name"`
	Reason   string    `json:"reason" gorm:"type:text"`
	Status   string    `json:"status" gorm:"size:20;not null;default:pending"`
	Date     time.Time `json:"date" gorm:"autoCreateTime"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
