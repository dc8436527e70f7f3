package repository

import (
	"adaptive_learning_backend/internal/model"

	"gorm.io/gorm"
)

type MateriRepository struct {
	DB *gorm.DB
}

func NewMateriRepository(db *gorm.DB) *MateriRepository {
	return &MateriRepository{DB: db}
}

func (r *MateriRepository) withRelations() *gorm.DB {
	return r.DB.Preload("Jadwal.Kelas").Preload("Jadwal.Subject").Preload("Jadwal.Guru")
}

func (r *MateriRepository) Create(materi *model.Materi) error {
	return r.DB.Create(materi).Error
}

func (r *MateriRepository) FindByID(id uint) (*model.Materi, error) {
	var materi model.Materi
	err := r.withRelations().First(&materi, id).Error
	return &materi, err
}

func (r *MateriRepository) FindAll() ([]model.Materi, error) {
	var materis []model.Materi
	err := r.withRelations().Order("id").Find(&materis).Error
	return materis, err
}

func (r *MateriRepository) FindByJadwal(jadwalID uint) ([]model.Materi, error) {
	var materis []model.Materi
	err := r.withRelations().Where("jadwal_id = ?", jadwalID).Order("id").Find(&materis).Error
	return materis, err
}

func (r *MateriRepository) Update(materi *model.Materi) error {
	return r.DB.Save(materi).Error
}

func (r *MateriRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Materi{}, id).Error
}
