package model

import "time"

const (
	SyncTypeDepartment  = "department"
	SyncTypeEmployee    = "employee"
	SyncTypeLeaveType   = "leave_type"
	SyncTypeLeaveRecord = "leave_record"
	SyncTypeFull        = "full"

	SyncStatusRunning = "running"
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

// Log per invocation tahap sinkronisasi.
type SyncLog struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	SyncType   string     `json:"sync_type" gorm:"not null"` // department / employee / leave_type / leave_record / full
	Status     string     `json:"status" gorm:"not null"`    // running / success / failed
	Message    string     `json:"message" gorm:"type:text"`
	StartedAt  *time.Time `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
}
