package repository

import (
	"adaptive_learning_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) withRelations() *gorm.DB {
	return r.DB.
		Preload("User").
		Preload("Jadwal.Kelas").
		Preload("Jadwal.Subject").
		Preload("Jadwal.Guru")
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.withRelations().First(&enrollment, id).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) FindAll() ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.withRelations().Order("id").Find(&enrollments).Error
	return enrollments, err
}

// FindByUserAndJadwal resolves the single enrollment row for a (student,
// slot) pair. gorm.ErrRecordNotFound here signals a data inconsistency for
// flows that require the student to be enrolled.
func (r *EnrollmentRepository) FindByUserAndJadwal(userID, jadwalID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.withRelations().
		Where("user_id = ? AND jadwal_id = ?", userID, jadwalID).
		First(&enrollment).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) FindByJadwal(jadwalID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.withRelations().Where("jadwal_id = ?", jadwalID).Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) FindByUser(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.withRelations().Where("user_id = ?", userID).Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) Update(enrollment *model.Enrollment) error {
	return r.DB.Save(enrollment).Error
}

// UpdateLevel writes a student's difficulty placement. It joins the caller's
// transaction when one is passed, otherwise runs on its own connection.
func (r *EnrollmentRepository) UpdateLevel(tx *gorm.DB, id uint, level int) error {
	db := r.DB
	if tx != nil {
		db = tx
	}
	return db.Model(&model.Enrollment{}).
		Where("id = ?", id).
		Update("difficulty_level", level).
		Error
}

func (r *EnrollmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Enrollment{}, id).Error
}
