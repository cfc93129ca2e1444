package model

import "time"

// Karyawan hasil sinkronisasi dari DingTalk.
type Employee struct {
	UserID    string    `json:"userid" gorm:"primaryKey;size:64"`
	Name      string    `json:"name" gorm:"not null"`
	DeptID    int64     `json:"dept_id" gorm:"not null"`
	DeptName  string    `json:"dept_name"` // Snapshot nama departemen (bukan join live)
	Avatar    string    `json:"avatar"`
	Mobile    *string   `json:"mobile"` // Diisi belakangan lewat flow auth eksternal
	UpdatedAt time.Time `json:"updated_at"`
}
