package service

import (
	"testing"
	"time"

	"dingtalk-leave-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ms(year int, month time.Month, day, hour, min int) int64 {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local).UnixMilli()
}

func TestConvertDuration(t *testing.T) {
	// 1 hari penuh, jenis cuti 8 jam/hari
	assert.InDelta(t, 1.0, ConvertDuration(100, model.DurationUnitPercentDay, "day", 800), 1e-9)

	// Jenis cuti 12 jam/hari: 1 hari versi vendor = 1.5 hari kerja standar 8 jam
	assert.InDelta(t, 1.5, ConvertDuration(100, model.DurationUnitPercentDay, "day", 1200), 1e-9)

	// 4.8 jam tetap 4.8 jam
	assert.InDelta(t, 4.8, ConvertDuration(480, model.DurationUnitPercentHour, "hour", 800), 1e-9)

	// percent_hour ke day pakai standar 8 jam
	assert.InDelta(t, 0.5, ConvertDuration(400, model.DurationUnitPercentHour, "day", 1200), 1e-9)

	// hours_in_per_day 0 dianggap default 800
	assert.InDelta(t, 1.0, ConvertDuration(100, model.DurationUnitPercentDay, "day", 0), 1e-9)
}

func TestIsCalendarDayLeave(t *testing.T) {
	assert.True(t, IsCalendarDayLeave("婚假"))
	assert.True(t, IsCalendarDayLeave("产假(难产)"))
	assert.False(t, IsCalendarDayLeave("年假"))
	assert.False(t, IsCalendarDayLeave("病假"))
}

func TestWorkdayCalendarOverridesAndFallback(t *testing.T) {
	cal := NewWorkdayCalendar([]model.HariLibur{
		{Tanggal: "2025-05-01", Jenis: model.HariLiburJenisLibur}, // Kamis, libur nasional
		{Tanggal: "2025-04-27", Jenis: model.HariLiburJenisMasuk}, // Minggu, hari kerja pengganti
	})

	assert.False(t, cal.IsWorkday(time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, cal.IsWorkday(time.Date(2025, 4, 27, 0, 0, 0, 0, time.Local)))

	// Tanpa data: aturan Senin-Jumat
	assert.True(t, cal.IsWorkday(time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)))  // Rabu
	assert.False(t, cal.IsWorkday(time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local))) // Sabtu

	// Kalender nil tetap jalan dengan fallback
	var empty *WorkdayCalendar
	assert.True(t, empty.IsWorkday(time.Date(2030, 6, 3, 0, 0, 0, 0, time.Local))) // Senin jauh di masa depan
}

func TestCountLeaveDays(t *testing.T) {
	cal := NewWorkdayCalendar(nil)

	// Jumat 2025-03-14 s/d Senin 2025-03-17: 2 hari kerja, 4 hari kalender
	from := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 3, 17, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 2, cal.CountLeaveDays(from, to, false))
	assert.Equal(t, 4, cal.CountLeaveDays(from, to, true))
}

func TestProrateSingleWorkday(t *testing.T) {
	cal := NewWorkdayCalendar(nil)
	rec := model.LeaveRecord{
		UserID:          "u1",
		StartTime:       ms(2025, 3, 12, 9, 0), // Rabu
		EndTime:         ms(2025, 3, 12, 18, 0),
		DurationPercent: 100,
		DurationUnit:    model.DurationUnitPercentDay,
		LeaveType:       "年假",
	}
	lt := &model.LeaveType{LeaveCode: "annual", HoursInPerDay: 800}

	// Sub-periode memuat seluruh hari: nilai penuh
	marStart, marEnd := MonthRangeMs(2025, time.March)
	assert.InDelta(t, 1.0, Prorate(rec, lt, "day", marStart, marEnd, cal), 1e-9)

	// Sub-periode tidak overlap: nol
	aprStart, aprEnd := MonthRangeMs(2025, time.April)
	assert.InDelta(t, 0.0, Prorate(rec, lt, "day", aprStart, aprEnd, cal), 1e-9)
}

func TestProrateAcrossMonthBoundary(t *testing.T) {
	cal := NewWorkdayCalendar(nil)
	// Senin 2025-03-31 s/d Selasa 2025-04-01: dua hari kerja, dua hari cuti
	rec := model.LeaveRecord{
		UserID:          "u1",
		StartTime:       ms(2025, 3, 31, 9, 0),
		EndTime:         ms(2025, 4, 1, 18, 0),
		DurationPercent: 200,
		DurationUnit:    model.DurationUnitPercentDay,
		LeaveType:       "年假",
	}
	lt := &model.LeaveType{LeaveCode: "annual", HoursInPerDay: 800}

	marStart, marEnd := MonthRangeMs(2025, time.March)
	aprStart, aprEnd := MonthRangeMs(2025, time.April)
	assert.InDelta(t, 1.0, Prorate(rec, lt, "day", marStart, marEnd, cal), 1e-9)
	assert.InDelta(t, 1.0, Prorate(rec, lt, "day", aprStart, aprEnd, cal), 1e-9)
}

func TestProrateSpanWithoutWorkdays(t *testing.T) {
	cal := NewWorkdayCalendar(nil)
	// Sabtu-Minggu saja: tidak ada hari kerja, kontribusi nol ke manapun
	rec := model.LeaveRecord{
		UserID:          "u1",
		StartTime:       ms(2025, 3, 15, 9, 0),
		EndTime:         ms(2025, 3, 16, 18, 0),
		DurationPercent: 100,
		DurationUnit:    model.DurationUnitPercentDay,
		LeaveType:       "年假",
	}
	marStart, marEnd := MonthRangeMs(2025, time.March)
	assert.InDelta(t, 0.0, Prorate(rec, nil, "day", marStart, marEnd, cal), 1e-9)
}

func TestProrateCalendarDayLeaveCountsWeekend(t *testing.T) {
	cal := NewWorkdayCalendar(nil)
	// 婚假 Jumat s/d Minggu: 3 hari kalender
	rec := model.LeaveRecord{
		UserID:          "u1",
		StartTime:       ms(2025, 3, 14, 0, 0),
		EndTime:         ms(2025, 3, 16, 23, 0),
		DurationPercent: 300,
		DurationUnit:    model.DurationUnitPercentDay,
		LeaveType:       "婚假",
	}
	lt := &model.LeaveType{LeaveCode: "marriage", HoursInPerDay: 800}

	// Sub-periode Sabtu-Minggu: 2 dari 3 hari kalender
	periodStart := ms(2025, 3, 15, 0, 0)
	periodEnd := ms(2025, 3, 16, 23, 59)
	assert.InDelta(t, 2.0, Prorate(rec, lt, "day", periodStart, periodEnd, cal), 1e-9)
}

func TestMonthlySummary(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.Employee{UserID: "u1", Name: "Budi", DeptID: 100, DeptName: "Eng"}).Error)
	require.NoError(t, db.Create(&model.LeaveType{LeaveCode: "annual", LeaveName: "年假", LeaveViewUnit: "day", HoursInPerDay: 800}).Error)

	code := "annual"
	require.NoError(t, db.Create(&model.LeaveRecord{
		UserID:          "u1",
		StartTime:       ms(2025, 3, 12, 9, 0),
		EndTime:         ms(2025, 3, 12, 18, 0),
		DurationPercent: 100,
		DurationUnit:    model.DurationUnitPercentDay,
		LeaveType:       "年假",
		LeaveCode:       &code,
	}).Error)

	svc := NewLeaveService(db)
	summary, err := svc.MonthlySummary(2025, "day")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.PersonCount)
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, "Budi", summary.Rows[0].Name)
	assert.InDelta(t, 1.0, summary.Rows[0].Months[2], 1e-9) // Maret
	assert.InDelta(t, 1.0, summary.Rows[0].Total, 1e-9)
	assert.InDelta(t, 1.0, summary.Total, 1e-9)
}
