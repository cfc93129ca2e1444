package repository

import (
	"testing"
	"time"

	"dingtalk-leave-backend/config"
	"dingtalk-leave-backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	config.Migrate(db)
	return db
}

func msAt(day, hour int) int64 {
	return time.Date(2025, 3, day, hour, 0, 0, 0, time.Local).UnixMilli()
}

func TestLeaveRecordUpsertUpdatesOnNaturalKey(t *testing.T) {
	repo := NewLeaveRecordRepository(newTestDB(t))

	rec := model.LeaveRecord{
		UserID:          "u1",
		StartTime:       msAt(12, 9),
		EndTime:         msAt(12, 18),
		DurationPercent: 100,
		DurationUnit:    model.DurationUnitPercentDay,
		LeaveType:       "年假",
	}
	require.NoError(t, repo.Upsert(&rec))

	// Natural key sama, durasi berubah: baris lama ditimpa, bukan duplikat
	updated := model.LeaveRecord{
		UserID:          "u1",
		StartTime:       msAt(12, 9),
		EndTime:         msAt(12, 18),
		DurationPercent: 50,
		DurationUnit:    model.DurationUnitPercentDay,
		LeaveType:       "病假",
	}
	require.NoError(t, repo.Upsert(&updated))

	recs, err := repo.GetByStartTimeRange(msAt(1, 0), msAt(31, 23))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 50, recs[0].DurationPercent)
	assert.Equal(t, "病假", recs[0].LeaveType)
}

func TestLeaveRecordDeleteByStartTimeRange(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaveRecordRepository(db)

	inRange := model.LeaveRecord{
		UserID: "u1", StartTime: msAt(12, 9), EndTime: msAt(12, 18),
		DurationPercent: 100, DurationUnit: model.DurationUnitPercentDay, LeaveType: "年假",
	}
	outOfRange := model.LeaveRecord{
		UserID: "u1", StartTime: time.Date(2024, 3, 12, 9, 0, 0, 0, time.Local).UnixMilli(),
		EndTime:         time.Date(2024, 3, 12, 18, 0, 0, 0, time.Local).UnixMilli(),
		DurationPercent: 100, DurationUnit: model.DurationUnitPercentDay, LeaveType: "年假",
	}
	require.NoError(t, repo.Upsert(&inRange))
	require.NoError(t, repo.Upsert(&outOfRange))

	yearStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local).UnixMilli()
	yearEnd := time.Date(2025, 12, 31, 23, 59, 59, 0, time.Local).UnixMilli()
	require.NoError(t, repo.DeleteByStartTimeRange(yearStart, yearEnd))

	var recs []model.LeaveRecord
	require.NoError(t, db.Find(&recs).Error)
	require.Len(t, recs, 1)
	assert.Equal(t, outOfRange.StartTime, recs[0].StartTime)
}

func TestLeaveRecordOverlappingRange(t *testing.T) {
	repo := NewLeaveRecordRepository(newTestDB(t))

	// Cuti lintas akhir Maret ke awal April
	spanning := model.LeaveRecord{
		UserID: "u1", StartTime: msAt(31, 9),
		EndTime:         time.Date(2025, 4, 1, 18, 0, 0, 0, time.Local).UnixMilli(),
		DurationPercent: 200, DurationUnit: model.DurationUnitPercentDay, LeaveType: "年假",
	}
	require.NoError(t, repo.Upsert(&spanning))

	aprStart := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local).UnixMilli()
	aprEnd := time.Date(2025, 4, 30, 23, 59, 59, 0, time.Local).UnixMilli()

	// start_time di Maret, tapi tetap overlap dengan April
	byStart, err := repo.GetByStartTimeRange(aprStart, aprEnd)
	require.NoError(t, err)
	assert.Empty(t, byStart)

	overlapping, err := repo.GetOverlappingRange(aprStart, aprEnd)
	require.NoError(t, err)
	assert.Len(t, overlapping, 1)

	byUser, err := repo.GetByUserOverlappingRange("u1", aprStart, aprEnd)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	byOther, err := repo.GetByUserOverlappingRange("u2", aprStart, aprEnd)
	require.NoError(t, err)
	assert.Empty(t, byOther)
}
