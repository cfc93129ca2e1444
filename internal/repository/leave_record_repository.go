package repository

import (
	"dingtalk-leave-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveRecordRepository interface {
	Upsert(rec *model.LeaveRecord) error
	DeleteByStartTimeRange(startMs, endMs int64) error
	GetByStartTimeRange(startMs, endMs int64) ([]model.LeaveRecord, error)
	GetOverlappingRange(startMs, endMs int64) ([]model.LeaveRecord, error)
	GetByUserOverlappingRange(userID string, startMs, endMs int64) ([]model.LeaveRecord, error)
}

type leaveRecordRepository struct {
	db *gorm.DB
}

func NewLeaveRecordRepository(db *gorm.DB) LeaveRecordRepository {
	return &leaveRecordRepository{db}
}

// Upsert insert-or-update berdasarkan natural key (userid, start_time, end_time).
// Saat konflik hanya field durasi dan jenis cuti yang ditimpa.
func (r *leaveRecordRepository) Upsert(rec *model.LeaveRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "start_time"},
			{Name: "end_time"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"duration_percent", "duration_unit", "leave_type", "leave_code"}),
	}).Create(rec).Error
}

// DeleteByStartTimeRange menghapus record yang start_time-nya masuk rentang.
// Dipakai untuk pre-clear satu tahun sebelum rebuild.
func (r *leaveRecordRepository) DeleteByStartTimeRange(startMs, endMs int64) error {
	return r.db.Where("start_time >= ? AND start_time <= ?", startMs, endMs).
		Delete(&model.LeaveRecord{}).Error
}

func (r *leaveRecordRepository) GetByStartTimeRange(startMs, endMs int64) ([]model.LeaveRecord, error) {
	var recs []model.LeaveRecord
	err := r.db.Where("start_time >= ? AND start_time <= ?", startMs, endMs).Find(&recs).Error
	return recs, err
}

// GetOverlappingRange mengambil record yang overlap dengan rentang,
// termasuk record lintas bulan/tahun.
func (r *leaveRecordRepository) GetOverlappingRange(startMs, endMs int64) ([]model.LeaveRecord, error) {
	var recs []model.LeaveRecord
	err := r.db.Where("start_time <= ? AND end_time >= ?", endMs, startMs).Find(&recs).Error
	return recs, err
}

func (r *leaveRecordRepository) GetByUserOverlappingRange(userID string, startMs, endMs int64) ([]model.LeaveRecord, error) {
	var recs []model.LeaveRecord
	err := r.db.Where("user_id = ? AND start_time <= ? AND end_time >= ?", userID, endMs, startMs).
		Order("start_time").Find(&recs).Error
	return recs, err
}
