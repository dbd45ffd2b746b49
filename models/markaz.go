package models

import "time"

// Markaz is a local center a user can be affiliated with, independent of
// the geographic admin hierarchy.
type Markaz struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:120;not null;uniqueIndex"`
	Division string `json:"division" gorm:"size:80"`
	District string `json:"district" gorm:"size:80"`
	Upazila  string `json:"upazila" gorm:"size:80"`
	Union    string `json:"union" gorm:"size:80;column:union_name"`
	Note     string `json:"note" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
