package repository

import (
	"time"

	"dingtalk-leave-backend/internal/model"

	"gorm.io/gorm"
)

type SyncLogRepository interface {
	Create(syncType string) (*model.SyncLog, error)
	Finish(id uint, status, message string) error
	GetRecent(limit int) ([]model.SyncLog, error)
}

type syncLogRepository struct {
	db *gorm.DB
}

func NewSyncLogRepository(db *gorm.DB) SyncLogRepository {
	return &syncLogRepository{db}
}

// Create membuat entry log baru dengan status running.
func (r *syncLogRepository) Create(syncType string) (*model.SyncLog, error) {
	now := time.Now().UTC()
	log := model.SyncLog{
		SyncType:  syncType,
		Status:    model.SyncStatusRunning,
		StartedAt: &now,
	}
	if err := r.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// Finish menutup entry log: success atau failed (terminal).
func (r *syncLogRepository) Finish(id uint, status, message string) error {
	now := time.Now().UTC()
	return r.db.Model(&model.SyncLog{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      status,
		"message":     message,
		"finished_at": now,
	}).Error
}

func (r *syncLogRepository) GetRecent(limit int) ([]model.SyncLog, error) {
	var logs []model.SyncLog
	err := r.db.Order("id desc").Limit(limit).Find(&logs).Error
	return logs, err
}
