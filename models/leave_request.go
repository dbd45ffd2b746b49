package models

import "time"

const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

type LeaveRequest struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserEmail string `json:"user_email" gorm:"size:160;not null;index"`
	LeaveType string `json:"leave_type" gorm:"size:40;not null"`
	FromDate  string `json:"from_date" gorm:"size:10;not null"` // yyyy-mm-dd, inclusive
	ToDate    string `json:"to_date" gorm:"size:10;not null"`   // yyyy-mm-dd, inclusive
	Days      int    `json:"days" gorm:"not null"`              // derived from the range, stored
	Reason    string `json:"reason" gorm:"type:text"`

	Status          string     `json:"status" gorm:"size:20;not null;default:pending"`
	ApprovedBy      string     `json:"approved_by" gorm:"size:160"`
	RejectionReason string     `json:"rejection_reason" gorm:"type:text"` // non-empty iff status=rejected
	DecidedAt       *time.Time `json:"decided_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
