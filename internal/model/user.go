package model

import "gorm.io/gorm"

// Akun admin lokal untuk mengakses endpoint yang diproteksi.
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"password"`
}
