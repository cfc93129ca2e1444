package config

import (
	"fmt"

	"dingtalk-leave-backend/internal/model" // Sesuaikan dengan nama module di go.mod mu

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/dingtalk_leave?charset=utf8mb4&parseTime=True&loc=Local")

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: tabel mirror DingTalk + tabel pendukung.
	// Forward-only, hanya menambah kolom (tidak ada down-migration).
	Migrate(db)

	DB = db
}

// Migrate menjalankan AutoMigrate untuk semua tabel.
// Dipisah agar bisa dipakai ulang oleh test dengan DB lain.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(&model.Department{})
	db.AutoMigrate(&model.Employee{})
	db.AutoMigrate(&model.LeaveType{})
	db.AutoMigrate(&model.LeaveRecord{})
	db.AutoMigrate(&model.SyncLog{})
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.HariLibur{})
}
