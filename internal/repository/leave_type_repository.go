package repository

import (
	"dingtalk-leave-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveTypeRepository interface {
	Upsert(lt *model.LeaveType) error
	GetAll() ([]model.LeaveType, error)
}

type leaveTypeRepository struct {
	db *gorm.DB
}

func NewLeaveTypeRepository(db *gorm.DB) LeaveTypeRepository {
	return &leaveTypeRepository{db}
}

// Upsert insert-or-update berdasarkan natural key leave_code.
func (r *leaveTypeRepository) Upsert(lt *model.LeaveType) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "leave_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"leave_name", "leave_view_unit", "hours_in_per_day", "updated_at"}),
	}).Create(lt).Error
}

func (r *leaveTypeRepository) GetAll() ([]model.LeaveType, error) {
	var types []model.LeaveType
	err := r.db.Find(&types).Error
	return types, err
}
