package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// FieldMap holds a category record's raw field values as submitted: numbers,
// booleans, and coded strings side by side. Stored as a JSON text column.
type FieldMap map[string]any

func (m FieldMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *FieldMap) Scan(src any) error {
	if src == nil {
		*m = FieldMap{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("fieldmap: unsupported scan source")
	}
	if len(b) == 0 {
		*m = FieldMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}

// ReportRecord is one user's submission for one category on one Dhaka-local
// calendar day. The (user_email, category, report_date) unique index backs
// the application-level duplicate check so concurrent double-submits cannot
// both land.
type ReportRecord struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserEmail     string    `json:"user_email" gorm:"size:160;not null;uniqueIndex:uniq_report_day,priority:1"`
	Category      string    `json:"category" gorm:"size:40;not null;uniqueIndex:uniq_report_day,priority:2"`
	ReportDate    string    `json:"report_date" gorm:"size:10;not null;uniqueIndex:uniq_report_day,priority:3"` // yyyy-mm-dd, Asia/Dhaka
	Date          time.Time `json:"date" gorm:"not null"`                                                      // submission instant
	Fields        FieldMap  `json:"fields" gorm:"type:text;not null"`
	EditorContent string    `json:"editorContent" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
