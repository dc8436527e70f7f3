package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	UserService    *UserService
	KelasService   *KelasService
	SubjectService *SubjectService
	JadwalService  *JadwalService
	AnswerService  *AnswerService
	AbsensiService *AbsensiService
}

func NewDashboardService(
	userService *UserService,
	kelasService *KelasService,
	subjectService *SubjectService,
	jadwalService *JadwalService,
	answerService *AnswerService,
	absensiService *AbsensiService,
) *DashboardService {
	return &DashboardService{
		UserService:    userService,
		KelasService:   kelasService,
		SubjectService: subjectService,
		JadwalService:  jadwalService,
		AnswerService:  answerService,
		AbsensiService: absensiService,
	}
}

// AdminSummary is the admin landing-page payload.
type AdminSummary struct {
	UserCount        int64            `json:"user_count"`
	KelasCount       int64            `json:"kelas_count"`
	SubjectCount     int64            `json:"subject_count"`
	AnswerCount      int64            `json:"answer_count"`
	RoleDistribution []RoleCount      `json:"role_distribution"`
	TodayAttendance  *TodaySummary    `json:"today_attendance"`
	Upcoming         []UpcomingJadwal `json:"upcoming"`
}

// AdminDashboard gathers the admin counters concurrently. Each aggregate hits
// a different table, so the fan-out keeps the landing page to one round-trip
// of latency.
func (s *DashboardService) AdminDashboard(ctx context.Context, now time.Time) (*AdminSummary, error) {
	summary := &AdminSummary{}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		summary.UserCount, err = s.UserService.Count()
		return
	})
	g.Go(func() (err error) {
		summary.KelasCount, err = s.KelasService.Count()
		return
	})
	g.Go(func() (err error) {
		summary.SubjectCount, err = s.SubjectService.Count()
		return
	})
	g.Go(func() (err error) {
		summary.AnswerCount, err = s.AnswerService.Count()
		return
	})
	g.Go(func() (err error) {
		summary.RoleDistribution, err = s.UserService.RoleDistribution()
		return
	})
	g.Go(func() (err error) {
		summary.TodayAttendance, err = s.AbsensiService.SummaryToday(now)
		return
	})
	g.Go(func() (err error) {
		summary.Upcoming, err = s.JadwalService.GetUpcoming(now, 5)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

// SiswaSummary is the student landing-page payload.
type SiswaSummary struct {
	Schedules []UpcomingJadwal `json:"schedules"`
	Attempts  []AttemptSummary `json:"attempts"`
}

func (s *DashboardService) SiswaDashboard(ctx context.Context, userID uint, now time.Time) (*SiswaSummary, error) {
	summary := &SiswaSummary{}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		jadwals, err := s.JadwalService.GetBySiswa(userID)
		if err != nil {
			return err
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
		summary.Schedules = upcoming
		return nil
	})
	g.Go(func() (err error) {
		summary.Attempts, err = s.AnswerService.SummaryForUser(userID)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
