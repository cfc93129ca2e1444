package model

import "time"

// Departemen hasil sinkronisasi dari DingTalk.
// dept_id ditentukan oleh DingTalk, bukan auto increment lokal.
type Department struct {
	DeptID    int64     `json:"dept_id" gorm:"primaryKey;autoIncrement:false"`
	Name      string    `json:"name" gorm:"not null"`
	ParentID  *int64    `json:"parent_id"` // NULL hanya untuk root sintetis
	UpdatedAt time.Time `json:"updated_at"`
}
