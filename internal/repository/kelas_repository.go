package repository

import (
	"adaptive_learning_backend/internal/model"

	"gorm.io/gorm"
)

type KelasRepository struct {
	DB *gorm.DB
}

func NewKelasRepository(db *gorm.DB) *KelasRepository {
	return &KelasRepository{DB: db}
}

func (r *KelasRepository) Create(kelas *model.Kelas) error {
	return r.DB.Create(kelas).Error
}

func (r *KelasRepository) FindByID(id uint) (*model.Kelas, error) {
	var kelas model.Kelas
	err := r.DB.First(&kelas, id).Error
	return &kelas, err
}

func (r *KelasRepository) FindAll() ([]model.Kelas, error) {
	var kelas []model.Kelas
	err := r.DB.Order("name").Find(&kelas).Error
	return kelas, err
}

func (r *KelasRepository) Update(kelas *model.Kelas) error {
	return r.DB.Save(kelas).Error
}

func (r *KelasRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Kelas{}, id).Error
}

func (r *KelasRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Kelas{}).Count(&count).Error
	return count, err
}
