package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	assert.Equal(t, "8080", GetEnv("PORT", "3000"))
	assert.Equal(t, "3000", GetEnv("PORT_TIDAK_ADA", "3000"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("SYNC_LOG_LIMIT", "50")
	assert.Equal(t, 50, GetEnvAsInt("SYNC_LOG_LIMIT", 20))

	// Nilai bukan angka jatuh ke fallback
	t.Setenv("SYNC_LOG_LIMIT", "banyak")
	assert.Equal(t, 20, GetEnvAsInt("SYNC_LOG_LIMIT", 20))

	assert.Equal(t, 20, GetEnvAsInt("LIMIT_TIDAK_ADA", 20))
}

func TestGetEnvAsInt64(t *testing.T) {
	t.Setenv("ROOT_DEPT_ID", "123456789012")
	assert.Equal(t, int64(123456789012), GetEnvAsInt64("ROOT_DEPT_ID", 55205497))
	assert.Equal(t, int64(123456789012), RootDeptID())

	assert.Equal(t, int64(55205497), GetEnvAsInt64("DEPT_TIDAK_ADA", 55205497))
}

func TestLeaveTypeNames(t *testing.T) {
	t.Setenv("LEAVE_TYPE_NAMES", " 年假,病假 ,, ")
	assert.Equal(t, []string{"年假", "病假"}, LeaveTypeNames())

	t.Setenv("LEAVE_TYPE_NAMES", "")
	assert.Nil(t, LeaveTypeNames())
}
