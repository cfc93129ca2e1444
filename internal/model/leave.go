package model

import "time"

const (
	DurationUnitPercentDay  = "percent_day"
	DurationUnitPercentHour = "percent_hour"
)

// Jenis cuti dari katalog vacation type DingTalk.
type LeaveType struct {
	LeaveCode     string    `json:"leave_code" gorm:"primaryKey;size:64"`
	LeaveName     string    `json:"leave_name" gorm:"not null"`
	LeaveViewUnit string    `json:"leave_view_unit"` // day / halfDay / hour
	HoursInPerDay int       `json:"hours_in_per_day" gorm:"default:800"` // Jam kerja per hari x100 (800 = 8 jam)
	UpdatedAt     time.Time `json:"updated_at"`
}

// Record cuti hasil sinkronisasi dari API attendance DingTalk.
// Kombinasi (userid, start_time, end_time) adalah natural key untuk upsert.
type LeaveRecord struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          string    `json:"userid" gorm:"size:64;not null;uniqueIndex:uq_leave_record"`
	StartTime       int64     `json:"start_time" gorm:"not null;uniqueIndex:uq_leave_record"` // Unix ms
	EndTime         int64     `json:"end_time" gorm:"not null;uniqueIndex:uq_leave_record"`   // Unix ms
	DurationPercent int       `json:"duration_percent" gorm:"not null"` // Durasi x100 (100 = 1 hari, 650 = 6.5 jam)
	DurationUnit    string    `json:"duration_unit" gorm:"not null"`    // percent_day / percent_hour
	LeaveType       string    `json:"leave_type" gorm:"default:请假"`
	LeaveCode       *string   `json:"leave_code" gorm:"size:64"`
	Status          string    `json:"status" gorm:"default:已审批"`
	CreatedAt       time.Time `json:"created_at"`
}
