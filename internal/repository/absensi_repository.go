package repository

import (
	"time"

	"adaptive_learning_backend/internal/model"

	"gorm.io/gorm"
)

type AbsensiRepository struct {
	DB *gorm.DB
}

func NewAbsensiRepository(db *gorm.DB) *AbsensiRepository {
	return &AbsensiRepository{DB: db}
}

func (r *AbsensiRepository) withRelations() *gorm.DB {
	return r.DB.
		Preload("JadwalUser.User").
		Preload("JadwalUser.Jadwal.Kelas").
		Preload("JadwalUser.Jadwal.Subject")
}

func (r *AbsensiRepository) Create(absensi *model.Absensi) error {
	return r.DB.Create(absensi).Error
}

func (r *AbsensiRepository) FindByID(id uint) (*model.Absensi, error) {
	var absensi model.Absensi
	err := r.withRelations().First(&absensi, id).Error
	return &absensi, err
}

func (r *AbsensiRepository) FindAll() ([]model.Absensi, error) {
	var absensis []model.Absensi
	err := r.withRelations().Order("tanggal DESC").Find(&absensis).Error
	return absensis, err
}

// FindByJadwal lists attendance for a schedule slot, optionally narrowed to
// one student.
func (r *AbsensiRepository) FindByJadwal(jadwalID uint, userID *uint) ([]model.Absensi, error) {
	q := r.withRelations().
		Joins("JOIN jadwal_user ON jadwal_user.id = absensis.jadwal_user_id").
		Where("jadwal_user.jadwal_id = ?", jadwalID)
	if userID != nil {
		q = q.Where("jadwal_user.user_id = ?", *userID)
	}
	var absensis []model.Absensi
	err := q.Order("absensis.tanggal").Find(&absensis).Error
	return absensis, err
}

func (r *AbsensiRepository) FindByEnrollment(jadwalUserID uint) ([]model.Absensi, error) {
	var absensis []model.Absensi
	err := r.DB.Where("jadwal_user_id = ?", jadwalUserID).Order("tanggal").Find(&absensis).Error
	return absensis, err
}

func (r *AbsensiRepository) Update(absensi *model.Absensi) error {
	return r.DB.Save(absensi).Error
}

func (r *AbsensiRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Absensi{}, id).Error
}

// SummaryForDate counts present rows against all rows recorded on one
// calendar date.
func (r *AbsensiRepository) SummaryForDate(date time.Time) (hadir int64, total int64, err error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	base := r.DB.Model(&model.Absensi{}).Where("tanggal >= ? AND tanggal < ?", dayStart, dayEnd)
	if err = base.Count(&total).Error; err != nil {
		return
	}
	err = r.DB.Model(&model.Absensi{}).
		Where("tanggal >= ? AND tanggal < ? AND status = ?", dayStart, dayEnd, model.StatusHadir).
		Count(&hadir).Error
	return
}
