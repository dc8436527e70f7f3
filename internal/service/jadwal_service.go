package service

import (
	"sort"
	"time"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
)

type JadwalService struct {
	JadwalRepo     *repository.JadwalRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewJadwalService(jadwalRepo *repository.JadwalRepository, enrollmentRepo *repository.EnrollmentRepository) *JadwalService {
	return &JadwalService{
		JadwalRepo:     jadwalRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

func (s *JadwalService) Create(jadwal *model.Jadwal) error {
	if _, err := ParseHari(jadwal.Hari); err != nil {
		return err
	}
	return s.JadwalRepo.Create(jadwal)
}

func (s *JadwalService) GetByID(id uint) (*model.Jadwal, error) {
	return s.JadwalRepo.FindByID(id)
}

func (s *JadwalService) GetAll() ([]model.Jadwal, error) {
	return s.JadwalRepo.FindAll()
}

// GetToday lists the slots that meet on the current weekday.
func (s *JadwalService) GetToday(now time.Time) ([]model.Jadwal, error) {
	return s.JadwalRepo.FindByHari(HariName(now.Weekday()))
}

// UpcomingJadwal pairs a slot with its next concrete occurrence.
type UpcomingJadwal struct {
	Jadwal   model.Jadwal `json:"jadwal"`
	Date     string       `json:"date"`
	StartsAt time.Time    `json:"starts_at"`
}

// GetUpcoming returns the next limit occurrences across all slots, soonest
// first. Slots with an unparseable day or clock are skipped.
func (s *JadwalService) GetUpcoming(now time.Time, limit int) ([]UpcomingJadwal, error) {
	jadwals, err := s.JadwalRepo.FindAll()
	if err != nil {
		return nil, err
	}

	upcoming := make([]UpcomingJadwal, 0, len(jadwals))
	for i := range jadwals {
		window, err := NextOccurrence(&jadwals[i], now)
		if err != nil {
			continue
		}
		upcoming = append(upcoming, UpcomingJadwal{
			Jadwal:   jadwals[i],
			Date:     window.Date.Format("2006-01-02"),
			StartsAt: window.Start,
		})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].StartsAt.Before(upcoming[j].StartsAt)
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}

// GetByGuru lists the slots a teacher teaches.
func (s *JadwalService) GetByGuru(guruID uint) ([]model.Jadwal, error) {
	return s.JadwalRepo.FindByGuru(guruID)
}

// GetBySiswa lists the slots a student is enrolled in.
func (s *JadwalService) GetBySiswa(userID uint) ([]model.Jadwal, error) {
	enrollments, err := s.EnrollmentRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	jadwals := make([]model.Jadwal, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Jadwal.ID != 0 {
			jadwals = append(jadwals, e.Jadwal)
		}
	}
	return jadwals, nil
}

func (s *JadwalService) Update(id uint, update *model.Jadwal) (*model.Jadwal, error) {
	jadwal, err := s.JadwalRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if update.Hari != "" {
		if _, err := ParseHari(update.Hari); err != nil {
			return nil, err
		}
		jadwal.Hari = update.Hari
	}
	if update.JamMulai != "" {
		jadwal.JamMulai = update.JamMulai
	}
	if update.JamSelesai != "" {
		jadwal.JamSelesai = update.JamSelesai
	}
	if update.KelasID != nil {
		jadwal.KelasID = update.KelasID
	}
	if update.SubjectID != nil {
		jadwal.SubjectID = update.SubjectID
	}
	if update.GuruID != nil {
		jadwal.GuruID = update.GuruID
	}
	if err := s.JadwalRepo.Update(jadwal); err != nil {
		return nil, err
	}
	return s.JadwalRepo.FindByID(id)
}

func (s *JadwalService) Delete(id uint) error {
	if _, err := s.JadwalRepo.FindByID(id); err != nil {
		return err
	}
	return s.JadwalRepo.Delete(id)
}
