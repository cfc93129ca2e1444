package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"dingtalk-leave-backend/internal/model"
	"dingtalk-leave-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Konversi ke hari selalu pakai 8 jam standar, bukan jam per jenis cuti,
// supaya jenis cuti 12 jam/hari tetap sebanding saat diagregasi lintas jenis.
const standardHoursPerDay = 8.0

// ConvertDuration mengkonversi duration_percent (nilai x100) ke day atau hour.
// percent_hour: raw langsung jam. percent_day: raw adalah hari versi DingTalk,
// dikali hours_in_per_day jenis cutinya untuk dapat total jam.
func ConvertDuration(durationPercent int, durationUnit, targetUnit string, hoursInPerDay int) float64 {
	if hoursInPerDay == 0 {
		hoursInPerDay = 800
	}
	raw := float64(durationPercent) / 100.0
	hpd := float64(hoursInPerDay) / 100.0

	var totalHours float64
	if durationUnit == model.DurationUnitPercentHour {
		totalHours = raw
	} else {
		totalHours = raw * hpd
	}

	if targetUnit == "hour" {
		return totalHours
	}
	return totalHours / standardHoursPerDay
}

// Jenis cuti yang dihitung per hari kalender (termasuk akhir pekan/libur),
// bukan per hari kerja.
var calendarDayLeaveNames = []string{"产假", "婚假", "陪产假", "丧假"}

func IsCalendarDayLeave(leaveTypeName string) bool {
	for _, n := range calendarDayLeaveNames {
		if strings.Contains(leaveTypeName, n) {
			return true
		}
	}
	return false
}

// WorkdayCalendar menentukan hari kerja. Tanggal yang ada di tabel hari_libur
// mengikuti override (LIBUR = bukan hari kerja, MASUK = hari kerja pengganti);
// tanggal tanpa data jatuh ke aturan Senin-Jumat.
type WorkdayCalendar struct {
	overrides map[string]bool // YYYY-MM-DD -> hari kerja?
}

func NewWorkdayCalendar(liburs []model.HariLibur) *WorkdayCalendar {
	overrides := make(map[string]bool, len(liburs))
	for _, l := range liburs {
		overrides[l.Tanggal] = l.Jenis == model.HariLiburJenisMasuk
	}
	return &WorkdayCalendar{overrides: overrides}
}

// LoadWorkdayCalendar memuat override dari DB; kalau gagal, kalender kosong
// (fallback aturan akhir pekan) supaya query tetap jalan.
func LoadWorkdayCalendar(repo repository.HariLiburRepository) *WorkdayCalendar {
	liburs, err := repo.GetAll()
	if err != nil {
		logrus.WithError(err).Warn("Gagal load kalender hari libur, pakai aturan akhir pekan saja")
		return NewWorkdayCalendar(nil)
	}
	return NewWorkdayCalendar(liburs)
}

func (c *WorkdayCalendar) IsWorkday(d time.Time) bool {
	if c != nil && c.overrides != nil {
		if v, ok := c.overrides[d.Format("2006-01-02")]; ok {
			return v
		}
	}
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CountLeaveDays menghitung hari cuti pada rentang tanggal inklusif.
// calendarDay true = semua hari kalender dihitung, false = hari kerja saja.
func (c *WorkdayCalendar) CountLeaveDays(from, to time.Time, calendarDay bool) int {
	count := 0
	for d := dateOf(from); !d.After(dateOf(to)); d = d.AddDate(0, 0, 1) {
		if calendarDay || c.IsWorkday(d) {
			count++
		}
	}
	return count
}

// Prorate membagi nilai satu record ke sub-periode [periodStartMs, periodEndMs]
// berdasarkan rasio hari pada overlap terhadap hari seluruh span record.
// Record yang spannya tidak punya hari kerja berkontribusi nol.
func Prorate(rec model.LeaveRecord, lt *model.LeaveType, targetUnit string, periodStartMs, periodEndMs int64, cal *WorkdayCalendar) float64 {
	hpd := 800
	if lt != nil && lt.HoursInPerDay != 0 {
		hpd = lt.HoursInPerDay
	}
	value := ConvertDuration(rec.DurationPercent, rec.DurationUnit, targetUnit, hpd)

	recStart := dateOf(MsToTime(rec.StartTime))
	recEnd := dateOf(MsToTime(rec.EndTime))
	perStart := dateOf(MsToTime(periodStartMs))
	perEnd := dateOf(MsToTime(periodEndMs))

	calendarDay := IsCalendarDayLeave(rec.LeaveType)
	totalDays := cal.CountLeaveDays(recStart, recEnd, calendarDay)
	if totalDays == 0 {
		return 0
	}

	overlapStart := maxDate(recStart, perStart)
	overlapEnd := minDate(recEnd, perEnd)
	if overlapStart.After(overlapEnd) {
		return 0
	}
	overlapDays := cal.CountLeaveDays(overlapStart, overlapEnd, calendarDay)

	return value * float64(overlapDays) / float64(totalDays)
}

// ---- Helper waktu ----

func MsToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func YearRangeMs(year int) (int64, int64) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, 12, 31, 23, 59, 59, 0, time.Local)
	return start.UnixMilli(), end.UnixMilli()
}

func MonthRangeMs(year int, month time.Month) (int64, int64) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start.UnixMilli(), end.UnixMilli()
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ---- Konsumen downstream: rekap bulanan ----

type MonthlySummaryRow struct {
	EmployeeID string      `json:"employeeId"`
	Name       string      `json:"name"`
	Dept       string      `json:"dept"`
	Avatar     string      `json:"avatar"`
	Months     [12]float64 `json:"months"`
	Total      float64     `json:"total"`
}

type MonthlySummary struct {
	PersonCount int                 `json:"personCount"`
	Rows        []MonthlySummaryRow `json:"list"`
	Months      [12]float64         `json:"months"`
	Total       float64             `json:"total"`
}

type LeaveService struct {
	emps    repository.EmployeeRepository
	types   repository.LeaveTypeRepository
	records repository.LeaveRecordRepository
	liburs  repository.HariLiburRepository
}

func NewLeaveService(db *gorm.DB) *LeaveService {
	return &LeaveService{
		emps:    repository.NewEmployeeRepository(db),
		types:   repository.NewLeaveTypeRepository(db),
		records: repository.NewLeaveRecordRepository(db),
		liburs:  repository.NewHariLiburRepository(db),
	}
}

// MonthlySummary merekap cuti per karyawan per bulan untuk satu tahun,
// dalam unit day atau hour. Record lintas bulan diprorata per hari kerja.
func (s *LeaveService) MonthlySummary(year int, unit string) (*MonthlySummary, error) {
	if unit != "hour" {
		unit = "day"
	}

	employees, err := s.emps.GetAll()
	if err != nil {
		return nil, err
	}
	empMap := make(map[string]model.Employee, len(employees))
	for _, e := range employees {
		empMap[e.UserID] = e
	}

	leaveTypes, err := s.types.GetAll()
	if err != nil {
		return nil, err
	}
	typeMap := make(map[string]model.LeaveType, len(leaveTypes))
	for _, lt := range leaveTypes {
		typeMap[lt.LeaveCode] = lt
	}

	yearStartMs, yearEndMs := YearRangeMs(year)
	records, err := s.records.GetOverlappingRange(yearStartMs, yearEndMs)
	if err != nil {
		return nil, err
	}

	cal := LoadWorkdayCalendar(s.liburs)

	// { userid -> [12]nilai per bulan }
	perEmployee := make(map[string]*[12]float64)
	for _, rec := range records {
		if _, ok := empMap[rec.UserID]; !ok {
			continue
		}

		var lt *model.LeaveType
		if rec.LeaveCode != nil {
			if t, ok := typeMap[*rec.LeaveCode]; ok {
				lt = &t
			}
		}

		months, ok := perEmployee[rec.UserID]
		if !ok {
			months = &[12]float64{}
			perEmployee[rec.UserID] = months
		}

		for m := time.January; m <= time.December; m++ {
			mStart, mEnd := MonthRangeMs(year, m)
			if rec.EndTime < mStart || rec.StartTime > mEnd {
				continue
			}
			months[int(m)-1] += Prorate(rec, lt, unit, mStart, mEnd, cal)
		}
	}

	summary := &MonthlySummary{}
	for uid, months := range perEmployee {
		emp := empMap[uid]
		row := MonthlySummaryRow{
			EmployeeID: uid,
			Name:       emp.Name,
			Dept:       emp.DeptName,
			Avatar:     emp.Avatar,
		}
		for i, v := range months {
			row.Months[i] = round1(v)
			row.Total += v
			summary.Months[i] += v
		}
		row.Total = round1(row.Total)
		summary.Total += row.Total
		summary.Rows = append(summary.Rows, row)
	}

	sort.Slice(summary.Rows, func(i, j int) bool {
		return summary.Rows[i].Name < summary.Rows[j].Name
	})
	for i := range summary.Months {
		summary.Months[i] = round1(summary.Months[i])
	}
	summary.Total = round1(summary.Total)
	summary.PersonCount = len(summary.Rows)
	return summary, nil
}
