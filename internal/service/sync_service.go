package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"dingtalk-leave-backend/internal/dingtalk"
	"dingtalk-leave-backend/internal/model"
	"dingtalk-leave-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrNoOperator: tidak ada satupun userid yang bisa dipakai sebagai op_userid.
var ErrNoOperator = errors.New("tidak ada op_userid yang tersedia")

// ErrSyncRunning: masih ada full sync yang sedang jalan.
var ErrSyncRunning = errors.New("sinkronisasi masih berjalan")

// OperatorExhaustedError: semua kandidat op_userid sudah dicoba dan gagal.
type OperatorExhaustedError struct {
	Attempts int
}

func (e *OperatorExhaustedError) Error() string {
	return fmt.Sprintf("semua %d kandidat op_userid gagal untuk vacation type list", e.Attempts)
}

type SyncConfig struct {
	RootDeptID     int64
	AdminUserID    string
	LeaveTypeNames []string // Whitelist nama jenis cuti, kosong = semua
}

// SyncService menjalankan pipeline sinkronisasi empat tahap:
// departemen -> karyawan -> jenis cuti -> record cuti.
type SyncService struct {
	client *dingtalk.Client
	cfg    SyncConfig

	depts   repository.DepartmentRepository
	emps    repository.EmployeeRepository
	types   repository.LeaveTypeRepository
	records repository.LeaveRecordRepository
	logs    repository.SyncLogRepository

	running sync.Mutex // Hanya satu full sync pada satu waktu
}

func NewSyncService(db *gorm.DB, client *dingtalk.Client, cfg SyncConfig) *SyncService {
	return &SyncService{
		client:  client,
		cfg:     cfg,
		depts:   repository.NewDepartmentRepository(db),
		emps:    repository.NewEmployeeRepository(db),
		types:   repository.NewLeaveTypeRepository(db),
		records: repository.NewLeaveRecordRepository(db),
		logs:    repository.NewSyncLogRepository(db),
	}
}

// failStage menutup log dengan status failed lalu meneruskan error ke pemanggil.
func (s *SyncService) failStage(logID uint, msg string, err error) (string, error) {
	if ferr := s.logs.Finish(logID, model.SyncStatusFailed, msg); ferr != nil {
		logrus.WithError(ferr).Error("Gagal menutup sync log")
	}
	logrus.WithError(err).Error(msg)
	return "", err
}

// SyncDepartments traversal BFS dari departemen root, upsert setiap
// departemen yang ditemukan. Visited-set mencegah departemen yang bisa
// dicapai lewat dua jalur diproses dua kali.
func (s *SyncService) SyncDepartments() (string, error) {
	log, err := s.logs.Create(model.SyncTypeDepartment)
	if err != nil {
		return "", err
	}

	count := 0
	queue := []int64{s.cfg.RootDeptID}
	visited := make(map[int64]bool)

	for len(queue) > 0 {
		parentID := queue[0]
		queue = queue[1:]
		if visited[parentID] {
			continue
		}
		visited[parentID] = true

		subDepts, err := s.client.GetSubDepartments(parentID)
		if err != nil {
			return s.failStage(log.ID, fmt.Sprintf("Department sync failed: %v", err), err)
		}

		for _, d := range subDepts {
			parentRef := d.ParentID
			dept := model.Department{
				DeptID:   d.DeptID,
				Name:     d.Name,
				ParentID: &parentRef,
			}
			if err := s.depts.Upsert(&dept); err != nil {
				return s.failStage(log.ID, fmt.Sprintf("Department sync failed: %v", err), err)
			}
			count++
			queue = append(queue, d.DeptID)
		}
	}

	msg := fmt.Sprintf("Synced %d departments", count)
	if err := s.logs.Finish(log.ID, model.SyncStatusSuccess, msg); err != nil {
		return "", err
	}
	logrus.Info(msg)
	return msg, nil
}

// SyncEmployees sinkronisasi karyawan untuk satu departemen (deptID != nil)
// atau semua departemen yang ada di lokal. Karyawan yang muncul di dua
// departemen ditimpa oleh departemen yang diproses terakhir.
func (s *SyncService) SyncEmployees(deptID *int64) (string, error) {
	log, err := s.logs.Create(model.SyncTypeEmployee)
	if err != nil {
		return "", err
	}

	var deptIDs []int64
	if deptID != nil {
		deptIDs = []int64{*deptID}
	} else {
		deptIDs, err = s.depts.GetAllIDs()
		if err != nil {
			return s.failStage(log.ID, fmt.Sprintf("Employee sync failed: %v", err), err)
		}
	}

	// First-run: tabel departemen masih kosong, pakai root saja
	if len(deptIDs) == 0 {
		deptIDs = []int64{s.cfg.RootDeptID}
	}

	count := 0
	for _, did := range deptIDs {
		users, err := s.client.GetUserListSimple(did)
		if err != nil {
			return s.failStage(log.ID, fmt.Sprintf("Employee sync failed: %v", err), err)
		}

		deptName, err := s.depts.GetNameByID(did)
		if err != nil {
			return s.failStage(log.ID, fmt.Sprintf("Employee sync failed: %v", err), err)
		}

		for _, u := range users {
			emp := model.Employee{
				UserID:   u.UserID,
				Name:     u.Name,
				DeptID:   did,
				DeptName: deptName,
			}
			if err := s.emps.Upsert(&emp); err != nil {
				return s.failStage(log.ID, fmt.Sprintf("Employee sync failed: %v", err), err)
			}
			count++
		}
	}

	msg := fmt.Sprintf("Synced %d employees across %d departments", count, len(deptIDs))
	if err := s.logs.Finish(log.ID, model.SyncStatusSuccess, msg); err != nil {
		return "", err
	}
	logrus.Info(msg)
	return msg, nil
}

// operatorCandidates menyusun daftar kandidat op_userid:
// admin dari config dulu, lalu maksimal 5 karyawan lokal.
func (s *SyncService) operatorCandidates() ([]string, error) {
	var candidates []string
	if s.cfg.AdminUserID != "" {
		candidates = append(candidates, s.cfg.AdminUserID)
	}

	ids, err := s.emps.GetUserIDs(5)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		exists := false
		for _, c := range candidates {
			if c == id {
				exists = true
				break
			}
		}
		if !exists {
			candidates = append(candidates, id)
		}
	}
	return candidates, nil
}

// SyncLeaveTypes sinkronisasi katalog jenis cuti. Kandidat op_userid dicoba
// berurutan sampai ada yang berhasil; kalau semua gagal, stage ditandai
// failed dengan jumlah percobaan.
func (s *SyncService) SyncLeaveTypes() (string, error) {
	log, err := s.logs.Create(model.SyncTypeLeaveType)
	if err != nil {
		return "", err
	}

	candidates, err := s.operatorCandidates()
	if err != nil {
		return s.failStage(log.ID, fmt.Sprintf("Leave type sync failed: %v", err), err)
	}
	if len(candidates) == 0 {
		return s.failStage(log.ID, "No op_userid available, skipping leave type sync", ErrNoOperator)
	}

	var types []dingtalk.VacationType
	found := false
	for _, op := range candidates {
		t, err := s.client.GetVacationTypeList(op)
		if err != nil {
			logrus.WithError(err).Warnf("Vacation type list gagal dengan userid=%s", op)
			continue
		}
		types = t
		found = true
		break
	}
	if !found {
		exhausted := &OperatorExhaustedError{Attempts: len(candidates)}
		return s.failStage(log.ID, exhausted.Error(), exhausted)
	}

	count := 0
	for _, t := range types {
		lt := model.LeaveType{
			LeaveCode:     t.LeaveCode,
			LeaveName:     t.LeaveName,
			LeaveViewUnit: t.LeaveViewUnit,
			HoursInPerDay: t.HoursInPerDay,
		}
		if err := s.types.Upsert(&lt); err != nil {
			return s.failStage(log.ID, fmt.Sprintf("Leave type sync failed: %v", err), err)
		}
		count++
	}

	msg := fmt.Sprintf("Synced %d leave types", count)
	if err := s.logs.Finish(log.ID, model.SyncStatusSuccess, msg); err != nil {
		return "", err
	}
	logrus.Info(msg)
	return msg, nil
}

// SyncLeaveRecords rebuild record cuti satu tahun: record lama yang
// start_time-nya di tahun target dihapus dulu, lalu diisi ulang per jenis
// cuti per batch 50 karyawan. Kegagalan fetch satu batch hanya di-skip,
// tidak membatalkan seluruh stage.
func (s *SyncService) SyncLeaveRecords(year int) (string, error) {
	log, err := s.logs.Create(model.SyncTypeLeaveRecord)
	if err != nil {
		return "", err
	}

	opUserID := s.cfg.AdminUserID
	if opUserID == "" {
		ids, err := s.emps.GetUserIDs(1)
		if err != nil {
			return s.failStage(log.ID, fmt.Sprintf("Leave record sync failed: %v", err), err)
		}
		if len(ids) > 0 {
			opUserID = ids[0]
		}
	}
	if opUserID == "" {
		return s.failStage(log.ID, "No op_userid available, skipping leave record sync", ErrNoOperator)
	}

	allUserIDs, err := s.emps.GetAllUserIDs()
	if err != nil {
		return s.failStage(log.ID, fmt.Sprintf("Leave record sync failed: %v", err), err)
	}
	if len(allUserIDs) == 0 {
		err := errors.New("belum ada karyawan lokal")
		return s.failStage(log.ID, "No employees found, skipping leave record sync", err)
	}

	leaveTypes, err := s.types.GetAll()
	if err != nil {
		return s.failStage(log.ID, fmt.Sprintf("Leave record sync failed: %v", err), err)
	}
	if len(leaveTypes) == 0 {
		err := errors.New("belum ada jenis cuti lokal")
		return s.failStage(log.ID, "No leave types found, skipping leave record sync", err)
	}

	// Whitelist jenis cuti dari config
	if len(s.cfg.LeaveTypeNames) > 0 {
		var filtered []model.LeaveType
		for _, lt := range leaveTypes {
			for _, name := range s.cfg.LeaveTypeNames {
				if lt.LeaveName == name {
					filtered = append(filtered, lt)
					break
				}
			}
		}
		leaveTypes = filtered
	}

	yearStartMs, yearEndMs := YearRangeMs(year)

	// Pre-clear destruktif: hapus record tahun target lalu rebuild.
	// Idempoten per tahun tanpa perlu diffing per record.
	if err := s.records.DeleteByStartTimeRange(yearStartMs, yearEndMs); err != nil {
		return s.failStage(log.ID, fmt.Sprintf("Leave record sync failed: %v", err), err)
	}

	count := 0
	const batchSize = 50

	for _, lt := range leaveTypes {
		viewUnit := lt.LeaveViewUnit
		if viewUnit == "" {
			viewUnit = "day"
		}

		for i := 0; i < len(allUserIDs); i += batchSize {
			end := i + batchSize
			if end > len(allUserIDs) {
				end = len(allUserIDs)
			}
			batch := allUserIDs[i:end]

			recs, err := s.client.GetVacationRecordList(opUserID, lt.LeaveCode, batch)
			if err != nil {
				logrus.WithError(err).Warnf("Gagal fetch vacation record leave_code=%s, batch di-skip", lt.LeaveCode)
				continue
			}

			for _, rec := range recs {
				if rec.StartTime == 0 || rec.EndTime == 0 {
					continue
				}
				if rec.StartTime < yearStartMs || rec.StartTime > yearEndMs {
					continue
				}

				// Pilih durasi sesuai unit tampilan jenis cuti;
				// record tanpa nilai per_day maupun per_hour dibuang.
				var durationPercent int
				var durationUnit string
				switch {
				case viewUnit == "hour" && rec.RecordNumPerHour != nil:
					durationPercent = abs(*rec.RecordNumPerHour)
					durationUnit = model.DurationUnitPercentHour
				case rec.RecordNumPerDay != nil:
					durationPercent = abs(*rec.RecordNumPerDay)
					durationUnit = model.DurationUnitPercentDay
				case rec.RecordNumPerHour != nil:
					durationPercent = abs(*rec.RecordNumPerHour)
					durationUnit = model.DurationUnitPercentHour
				default:
					continue
				}

				code := lt.LeaveCode
				record := model.LeaveRecord{
					UserID:          rec.UserID,
					StartTime:       rec.StartTime,
					EndTime:         rec.EndTime,
					DurationPercent: durationPercent,
					DurationUnit:    durationUnit,
					LeaveType:       lt.LeaveName,
					LeaveCode:       &code,
					Status:          "已审批",
				}
				if err := s.records.Upsert(&record); err != nil {
					return s.failStage(log.ID, fmt.Sprintf("Leave record sync failed: %v", err), err)
				}
				count++
			}
		}
	}

	msg := fmt.Sprintf("Synced %d leave records for %d employees, year=%d", count, len(allUserIDs), year)
	if err := s.logs.Finish(log.ID, model.SyncStatusSuccess, msg); err != nil {
		return "", err
	}
	logrus.Info(msg)
	return msg, nil
}

// FullSync menjalankan keempat tahap berurutan. Tahap yang gagal
// menghentikan pipeline (fail-fast), tahap berikutnya tidak dijalankan.
func (s *SyncService) FullSync(year int) (string, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	log, err := s.logs.Create(model.SyncTypeFull)
	if err != nil {
		return "", err
	}

	var messages []string

	msg, err := s.SyncDepartments()
	if err != nil {
		return s.failStage(log.ID, fmt.Sprintf("Full sync failed: %v", err), err)
	}
	messages = append(messages, msg)

	msg, err = s.SyncEmployees(nil)
	if err != nil {
		return s.failStage(log.ID, fmt.Sprintf("Full sync failed: %v", err), err)
	}
	messages = append(messages, msg)

	msg, err = s.SyncLeaveTypes()
	if err != nil {
		return s.failStage(log.ID, fmt.Sprintf("Full sync failed: %v", err), err)
	}
	messages = append(messages, msg)

	msg, err = s.SyncLeaveRecords(year)
	if err != nil {
		return s.failStage(log.ID, fmt.Sprintf("Full sync failed: %v", err), err)
	}
	messages = append(messages, msg)

	combined := strings.Join(messages, "; ")
	if err := s.logs.Finish(log.ID, model.SyncStatusSuccess, combined); err != nil {
		return "", err
	}
	logrus.Infof("Full sync selesai: %s", combined)
	return combined, nil
}

// StartFullSync menjalankan FullSync di goroutine background.
// Non-blocking: kalau masih ada run yang jalan, langsung ditolak.
func (s *SyncService) StartFullSync(year int) error {
	if !s.running.TryLock() {
		return ErrSyncRunning
	}

	go func() {
		defer s.running.Unlock()
		if _, err := s.FullSync(year); err != nil {
			logrus.WithError(err).Error("Background full sync gagal")
		}
	}()
	return nil
}

// RecentLogs mengembalikan N entry sync log terakhir.
func (s *SyncService) RecentLogs(limit int) ([]model.SyncLog, error) {
	return s.logs.GetRecent(limit)
}

// TimeChunk adalah satu potongan rentang waktu dalam Unix ms.
type TimeChunk struct {
	StartMs int64
	EndMs   int64
}

// YearTimeChunks membagi satu tahun jadi potongan maksimal maxDays hari,
// untuk endpoint attendance yang membatasi rentang query 180 hari.
func YearTimeChunks(year int, maxDays int) []TimeChunk {
	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	yearEnd := time.Date(year, 12, 31, 23, 59, 59, 0, time.Local)

	var chunks []TimeChunk
	chunkStart := yearStart
	for !chunkStart.After(yearEnd) {
		endDate := chunkStart.AddDate(0, 0, maxDays-1)
		chunkEnd := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, 0, time.Local)
		if chunkEnd.After(yearEnd) {
			chunkEnd = yearEnd
		}
		chunks = append(chunks, TimeChunk{
			StartMs: chunkStart.UnixMilli(),
			EndMs:   chunkEnd.UnixMilli(),
		})
		chunkStart = time.Date(chunkEnd.Year(), chunkEnd.Month(), chunkEnd.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, 1)
	}
	return chunks
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
