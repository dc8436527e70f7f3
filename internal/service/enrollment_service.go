package service

import (
	"errors"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository) *EnrollmentService {
	return &EnrollmentService{EnrollmentRepo: enrollmentRepo}
}

// Enroll creates the single enrollment row for (userID, jadwalID). The
// difficulty level starts unset; the first quiz submission places the student.
func (s *EnrollmentService) Enroll(userID, jadwalID uint) (*model.Enrollment, error) {
	_, err := s.EnrollmentRepo.FindByUserAndJadwal(userID, jadwalID)
	if err == nil {
		return nil, util.ErrEnrollmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:   &userID,
		JadwalID: &jadwalID,
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}
	return s.EnrollmentRepo.FindByID(enrollment.ID)
}

func (s *EnrollmentService) GetByID(id uint) (*model.Enrollment, error) {
	return s.EnrollmentRepo.FindByID(id)
}

func (s *EnrollmentService) GetAll() ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindAll()
}

// GetByUserAndJadwal resolves the enrollment id the attendance endpoints key
// on.
func (s *EnrollmentService) GetByUserAndJadwal(userID, jadwalID uint) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.FindByUserAndJadwal(userID, jadwalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) GetByJadwal(jadwalID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindByJadwal(jadwalID)
}

func (s *EnrollmentService) GetByUser(userID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindByUser(userID)
}

// SetLevel is the admin override for a student's placement. The adaptive path
// never calls this; it goes through the quiz submission flow.
func (s *EnrollmentService) SetLevel(id uint, level int) (*model.Enrollment, error) {
	if level < model.MinDifficultyLevel || level > model.MaxDifficultyLevel {
		return nil, errors.New("difficulty level out of range")
	}
	if _, err := s.EnrollmentRepo.FindByID(id); err != nil {
		return nil, err
	}
	if err := s.EnrollmentRepo.UpdateLevel(nil, id, level); err != nil {
		return nil, err
	}
	return s.EnrollmentRepo.FindByID(id)
}

func (s *EnrollmentService) Delete(id uint) error {
	if _, err := s.EnrollmentRepo.FindByID(id); err != nil {
		return err
	}
	return s.EnrollmentRepo.Delete(id)
}
