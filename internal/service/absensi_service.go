package service

import (
	"errors"
	"time"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"

	"gorm.io/gorm"
)

type AbsensiService struct {
	AbsensiRepo    *repository.AbsensiRepository
	EnrollmentRepo *repository.EnrollmentRepository
	JadwalRepo     *repository.JadwalRepository
}

func NewAbsensiService(absensiRepo *repository.AbsensiRepository, enrollmentRepo *repository.EnrollmentRepository, jadwalRepo *repository.JadwalRepository) *AbsensiService {
	return &AbsensiService{
		AbsensiRepo:    absensiRepo,
		EnrollmentRepo: enrollmentRepo,
		JadwalRepo:     jadwalRepo,
	}
}

// Eligibility recomputes whether a student may record attendance for a slot
// right now. The same check gates SubmitOwn, so the client probe and the
// write enforce identical rules.
func (s *AbsensiService) Eligibility(userID, jadwalID uint, now time.Time) (AttendanceEligibility, error) {
	jadwal, err := s.JadwalRepo.FindByID(jadwalID)
	if err != nil {
		return AttendanceEligibility{}, err
	}

	enrollment, err := s.EnrollmentRepo.FindByUserAndJadwal(userID, jadwalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceEligibility{}, util.ErrEnrollmentNotFound
		}
		return AttendanceEligibility{}, err
	}

	existing, err := s.AbsensiRepo.FindByEnrollment(enrollment.ID)
	if err != nil {
		return AttendanceEligibility{}, err
	}

	return CheckAttendanceWindow(jadwal, existing, now)
}

// SubmitOwn records a student's own attendance. The window and once-per-week
// rules are enforced here regardless of what the client claimed.
func (s *AbsensiService) SubmitOwn(userID, jadwalID uint, status model.AbsensiStatus, now time.Time) (*model.Absensi, error) {
	if !status.Valid() {
		return nil, util.ErrInvalidStatusAbsensi
	}

	jadwal, err := s.JadwalRepo.FindByID(jadwalID)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.EnrollmentRepo.FindByUserAndJadwal(userID, jadwalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}

	existing, err := s.AbsensiRepo.FindByEnrollment(enrollment.ID)
	if err != nil {
		return nil, err
	}

	eligibility, err := CheckAttendanceWindow(jadwal, existing, now)
	if err != nil {
		return nil, err
	}
	if eligibility.AlreadyToday || eligibility.AlreadyWeek {
		return nil, util.ErrAttendanceDuplicate
	}
	if !eligibility.InWindow {
		return nil, util.ErrAttendanceClosed
	}

	absensi := &model.Absensi{
		JadwalUserID: &enrollment.ID,
		Tanggal:      eligibility.Window.Date,
		Status:       status,
	}
	if err := s.AbsensiRepo.Create(absensi); err != nil {
		return nil, err
	}
	return s.AbsensiRepo.FindByID(absensi.ID)
}

// Record lets staff insert an attendance row directly, outside the window
// rules. Used for corrections and back-dated entries.
func (s *AbsensiService) Record(jadwalUserID uint, tanggal time.Time, status model.AbsensiStatus) (*model.Absensi, error) {
	if !status.Valid() {
		return nil, util.ErrInvalidStatusAbsensi
	}
	if _, err := s.EnrollmentRepo.FindByID(jadwalUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}

	absensi := &model.Absensi{
		JadwalUserID: &jadwalUserID,
		Tanggal:      tanggal,
		Status:       status,
	}
	if err := s.AbsensiRepo.Create(absensi); err != nil {
		return nil, err
	}
	return s.AbsensiRepo.FindByID(absensi.ID)
}

func (s *AbsensiService) GetByID(id uint) (*model.Absensi, error) {
	return s.AbsensiRepo.FindByID(id)
}

func (s *AbsensiService) GetAll() ([]model.Absensi, error) {
	return s.AbsensiRepo.FindAll()
}

func (s *AbsensiService) GetByJadwal(jadwalID uint, userID *uint) ([]model.Absensi, error) {
	return s.AbsensiRepo.FindByJadwal(jadwalID, userID)
}

// UpdateStatus is the staff correction path; the date stays fixed.
func (s *AbsensiService) UpdateStatus(id uint, status model.AbsensiStatus) (*model.Absensi, error) {
	if !status.Valid() {
		return nil, util.ErrInvalidStatusAbsensi
	}
	absensi, err := s.AbsensiRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	absensi.Status = status
	if err := s.AbsensiRepo.Update(absensi); err != nil {
		return nil, err
	}
	return absensi, nil
}

func (s *AbsensiService) Delete(id uint) error {
	if _, err := s.AbsensiRepo.FindByID(id); err != nil {
		return err
	}
	return s.AbsensiRepo.Delete(id)
}

// TodaySummary is the present-versus-recorded ratio for the current date.
type TodaySummary struct {
	Date       string  `json:"date"`
	Hadir      int64   `json:"hadir"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

func (s *AbsensiService) SummaryToday(now time.Time) (*TodaySummary, error) {
	hadir, total, err := s.AbsensiRepo.SummaryForDate(now)
	if err != nil {
		return nil, err
	}
	summary := &TodaySummary{
		Date:  now.Format(util.DateFormat),
		Hadir: hadir,
		Total: total,
	}
	if total > 0 {
		summary.Percentage = 100 * float64(hadir) / float64(total)
	}
	return summary, nil
}
