package config

import (
	"os"
	"strconv"
	"strings"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get environment variable as int64 with fallback
func GetEnvAsInt64(key string, fallback int64) int64 {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return fallback
}

// ID departemen root DingTalk (titik awal traversal sinkronisasi)
func RootDeptID() int64 {
	return GetEnvAsInt64("ROOT_DEPT_ID", 55205497)
}

// Userid admin yang dipakai sebagai op_userid untuk query cuti
func AdminUserID() string {
	return GetEnv("ADMIN_USERID", "")
}

// Whitelist nama jenis cuti yang ditampilkan (kosong = semua)
func LeaveTypeNames() []string {
	raw := GetEnv("LEAVE_TYPE_NAMES", "")
	if raw == "" {
		return nil
	}
	var names []string
	for _, n := range strings.Split(raw, ",") {
		n = strings.TrimSpace(n)
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "rahasia_negara"))
}
