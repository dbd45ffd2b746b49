package models

import "time"

// Todo is one entry in the weekly planner.
type Todo struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	UserEmail   string `json:"user_email" gorm:"size:160;not null;index"`
	Title       string `json:"title" gorm:"size:200;not null"`
	Description string `json:"description" gorm:"type:text"`
	Date        string `json:"date" gorm:"size:10;not null;index"` // yyyy-mm-dd
	Done        bool   `json:"done" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Task is a dated calendar item; external calendar sync consumes these.
type Task struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	UserEmail   string `json:"user_email" gorm:"size:160;not null;index"`
	Title       string `json:"title" gorm:"size:200;not null"`
	Description string `json:"description" gorm:"type:text"`
	Date        string `json:"date" gorm:"size:10;not null;index"` // yyyy-mm-dd
	Time        string `json:"time" gorm:"size:5"`                 // HH:MM, optional

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
