package models

import "time"

type Notification struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Recipient string `json:"recipient" gorm:"size:160;not null;index"` // email
	Message   string `json:"message" gorm:"type:text;not null"`
	Read      bool   `json:"read" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
