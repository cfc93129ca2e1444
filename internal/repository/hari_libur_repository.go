package repository

import (
	"dingtalk-leave-backend/internal/model"

	"gorm.io/gorm"
)

type HariLiburRepository interface {
	GetAll() ([]model.HariLibur, error)
	Create(libur *model.HariLibur) error
	Delete(id uint) error
	GetByID(id uint) (*model.HariLibur, error)
	Update(libur *model.HariLibur) error
}

type hariLiburRepository struct {
	db *gorm.DB
}

func NewHariLiburRepository(db *gorm.DB) HariLiburRepository {
	return &hariLiburRepository{db}
}

func (r *hariLiburRepository) GetAll() ([]model.HariLibur, error) {
	var liburs []model.HariLibur
	err := r.db.Order("tanggal desc").Find(&liburs).Error
	return liburs, err
}

func (r *hariLiburRepository) Create(libur *model.HariLibur) error {
	return r.db.Create(libur).Error
}

func (r *hariLiburRepository) Delete(id uint) error {
	return r.db.Delete(&model.HariLibur{}, id).Error
}

func (r *hariLiburRepository) GetByID(id uint) (*model.HariLibur, error) {
	var libur model.HariLibur
	err := r.db.First(&libur, id).Error
	return &libur, err
}

func (r *hariLiburRepository) Update(libur *model.HariLibur) error {
	return r.db.Save(libur).Error
}
