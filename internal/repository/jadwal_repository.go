package repository

import (
	"adaptive_learning_backend/internal/model"

	"gorm.io/gorm"
)

type JadwalRepository struct {
	DB *gorm.DB
}

func NewJadwalRepository(db *gorm.DB) *JadwalRepository {
	return &JadwalRepository{DB: db}
}

func (r *JadwalRepository) withRelations() *gorm.DB {
	return r.DB.Preload("Kelas").Preload("Subject").Preload("Guru")
}

func (r *JadwalRepository) Create(jadwal *model.Jadwal) error {
	return r.DB.Create(jadwal).Error
}

func (r *JadwalRepository) FindByID(id uint) (*model.Jadwal, error) {
	var jadwal model.Jadwal
	err := r.withRelations().First(&jadwal, id).Error
	return &jadwal, err
}

func (r *JadwalRepository) FindAll() ([]model.Jadwal, error) {
	var jadwals []model.Jadwal
	err := r.withRelations().Order("id").Find(&jadwals).Error
	return jadwals, err
}

func (r *JadwalRepository) FindByGuru(guruID uint) ([]model.Jadwal, error) {
	var jadwals []model.Jadwal
	err := r.withRelations().Where("guru_id = ?", guruID).Find(&jadwals).Error
	return jadwals, err
}

func (r *JadwalRepository) FindByHari(hari string) ([]model.Jadwal, error) {
	var jadwals []model.Jadwal
	err := r.withRelations().Where("hari = ?", hari).Order("jam_mulai").Find(&jadwals).Error
	return jadwals, err
}

func (r *JadwalRepository) Update(jadwal *model.Jadwal) error {
	return r.DB.Save(jadwal).Error
}

func (r *JadwalRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Jadwal{}, id).Error
}
