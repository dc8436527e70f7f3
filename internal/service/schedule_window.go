package service

import (
	"strings"
	"time"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/util"
)

var hariToWeekday = map[string]time.Weekday{
	"minggu": time.Sunday,
	"senin":  time.Monday,
	"selasa": time.Tuesday,
	"rabu":   time.Wednesday,
	"kamis":  time.Thursday,
	"jumat":  time.Friday,
	"sabtu":  time.Saturday,
}

// HariName maps a weekday back to its Indonesian day name.
func HariName(wd time.Weekday) string {
	for name, w := range hariToWeekday {
		if w == wd {
			return name
		}
	}
	return ""
}

// ParseHari maps an Indonesian day name to its weekday.
func ParseHari(hari string) (time.Weekday, error) {
	wd, ok := hariToWeekday[strings.ToLower(strings.TrimSpace(hari))]
	if !ok {
		return 0, util.ErrUnknownHari
	}
	return wd, nil
}

// AttendanceWindow is one concrete occurrence of a weekly slot: the calendar
// date plus the [Start, End) submission interval on that date.
type AttendanceWindow struct {
	Date  time.Time
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the half-open window.
func (w AttendanceWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func parseClock(s string) (h, m, sec int, err error) {
	t, err := time.Parse(util.ClockFormat, s)
	if err != nil {
		// Clients sometimes send HH:MM without seconds.
		t, err = time.Parse("15:04", s)
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return t.Hour(), t.Minute(), t.Second(), nil
}

// NextOccurrence computes the next occurrence of a weekly slot relative to
// now: today when the weekday matches and the slot has not yet ended,
// otherwise the next matching date within 7 days. This is the single source
// of truth for attendance dates and upcoming-schedule listings.
func NextOccurrence(jadwal *model.Jadwal, now time.Time) (AttendanceWindow, error) {
	target, err := ParseHari(jadwal.Hari)
	if err != nil {
		return AttendanceWindow{}, err
	}

	sh, sm, ss, err := parseClock(jadwal.JamMulai)
	if err != nil {
		return AttendanceWindow{}, err
	}
	eh, em, es, err := parseClock(jadwal.JamSelesai)
	if err != nil {
		return AttendanceWindow{}, err
	}

	days := (int(target) - int(now.Weekday()) + 7) % 7
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, days)

	window := AttendanceWindow{
		Date:  date,
		Start: time.Date(date.Year(), date.Month(), date.Day(), sh, sm, ss, 0, now.Location()),
		End:   time.Date(date.Year(), date.Month(), date.Day(), eh, em, es, 0, now.Location()),
	}

	// Same weekday but the slot already ended: roll to next week.
	if days == 0 && !now.Before(window.End) {
		window.Date = window.Date.AddDate(0, 0, 7)
		window.Start = window.Start.AddDate(0, 0, 7)
		window.End = window.End.AddDate(0, 0, 7)
	}

	return window, nil
}

// SameISOWeek reports whether a and b fall in the same ISO-8601 week
// (Monday-start). One attendance submission is allowed per slot per ISO week.
func SameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// AttendanceEligibility is the outcome of the window policy check for one
// student and slot at one instant.
type AttendanceEligibility struct {
	Window       AttendanceWindow
	InWindow     bool
	AlreadyToday bool
	AlreadyWeek  bool
}

// Allowed is true only when the current time is inside the window and the
// student has no record on the computed date nor anywhere in this ISO week.
func (e AttendanceEligibility) Allowed() bool {
	return e.InWindow && !e.AlreadyToday && !e.AlreadyWeek
}

// CheckAttendanceWindow evaluates the full eligibility policy against the
// student's existing records for the enrollment.
func CheckAttendanceWindow(jadwal *model.Jadwal, existing []model.Absensi, now time.Time) (AttendanceEligibility, error) {
	window, err := NextOccurrence(jadwal, now)
	if err != nil {
		return AttendanceEligibility{}, err
	}

	e := AttendanceEligibility{
		Window:   window,
		InWindow: window.Contains(now),
	}

	for _, a := range existing {
		t := a.Tanggal.In(now.Location())
		if t.Year() == window.Date.Year() && t.YearDay() == window.Date.YearDay() {
			e.AlreadyToday = true
		}
		if SameISOWeek(t, now) {
			e.AlreadyWeek = true
		}
	}

	return e, nil
}
