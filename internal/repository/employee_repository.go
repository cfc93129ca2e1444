package repository

import (
	"dingtalk-leave-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmployeeRepository interface {
	Upsert(emp *model.Employee) error
	GetAll() ([]model.Employee, error)
	GetAllUserIDs() ([]string, error)
	GetUserIDs(limit int) ([]string, error)
	GetByUserID(userID string) (*model.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

// Upsert insert-or-update berdasarkan natural key userid.
func (r *employeeRepository) Upsert(emp *model.Employee) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "dept_id", "dept_name", "updated_at"}),
	}).Create(emp).Error
}

func (r *employeeRepository) GetAll() ([]model.Employee, error) {
	var emps []model.Employee
	err := r.db.Find(&emps).Error
	return emps, err
}

func (r *employeeRepository) GetAllUserIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Employee{}).Pluck("user_id", &ids).Error
	return ids, err
}

func (r *employeeRepository) GetUserIDs(limit int) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Employee{}).Limit(limit).Pluck("user_id", &ids).Error
	return ids, err
}

func (r *employeeRepository) GetByUserID(userID string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.First(&emp, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}
