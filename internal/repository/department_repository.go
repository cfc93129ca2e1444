package repository

import (
	"errors"

	"dingtalk-leave-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DepartmentRepository interface {
	Upsert(dept *model.Department) error
	GetAll() ([]model.Department, error)
	GetAllIDs() ([]int64, error)
	GetNameByID(deptID int64) (string, error)
	GetChildrenIDs(parentID int64) ([]int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db}
}

// Upsert insert-or-update berdasarkan natural key dept_id.
func (r *departmentRepository) Upsert(dept *model.Department) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dept_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "parent_id", "updated_at"}),
	}).Create(dept).Error
}

func (r *departmentRepository) GetAll() ([]model.Department, error) {
	var depts []model.Department
	err := r.db.Find(&depts).Error
	return depts, err
}

func (r *departmentRepository) GetAllIDs() ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Department{}).Pluck("dept_id", &ids).Error
	return ids, err
}

func (r *departmentRepository) GetNameByID(deptID int64) (string, error) {
	var dept model.Department
	err := r.db.First(&dept, "dept_id = ?", deptID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil // Departemen belum tersinkron, nama dikosongkan dulu
		}
		return "", err
	}
	return dept.Name, nil
}

func (r *departmentRepository) GetChildrenIDs(parentID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Department{}).Where("parent_id = ?", parentID).Pluck("dept_id", &ids).Error
	return ids, err
}
