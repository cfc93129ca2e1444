package model

import "gorm.io/gorm"

const (
	HariLiburJenisLibur = "LIBUR" // Hari libur nasional / cuti bersama
	HariLiburJenisMasuk = "MASUK" // Hari kerja pengganti di akhir pekan
)

// Override kalender kerja. Tanggal yang tidak ada di tabel ini
// mengikuti aturan default Senin-Jumat.
type HariLibur struct {
	gorm.Model
	Tanggal    string `json:"tanggal" gorm:"unique;not null"` // Format YYYY-MM-DD
	Jenis      string `json:"jenis" gorm:"default:LIBUR"`     // LIBUR / MASUK
	Keterangan string `json:"keterangan"`
}
