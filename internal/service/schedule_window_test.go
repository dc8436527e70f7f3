package service

import (
	"testing"
	"time"

	"adaptive_learning_backend/internal/model"
)

// Monday 2025-06-02 is the anchor week used throughout these tests.
func mondayJadwal() *model.Jadwal {
	return &model.Jadwal{
		Hari:       "senin",
		JamMulai:   "08:00:00",
		JamSelesai: "09:00:00",
	}
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return ts
}

func TestParseHari(t *testing.T) {
	tests := []struct {
		hari string
		want time.Weekday
	}{
		{"minggu", time.Sunday},
		{"senin", time.Monday},
		{"Selasa", time.Tuesday},
		{"RABU", time.Wednesday},
		{"kamis", time.Thursday},
		{"jumat", time.Friday},
		{"sabtu", time.Saturday},
	}
	for _, tt := range tests {
		got, err := ParseHari(tt.hari)
		if err != nil {
			t.Fatalf("ParseHari(%q): %v", tt.hari, err)
		}
		if got != tt.want {
			t.Errorf("ParseHari(%q) = %v, want %v", tt.hari, got, tt.want)
		}
	}
	if _, err := ParseHari("montag"); err == nil {
		t.Error("ParseHari(montag) expected error")
	}
}

func TestNextOccurrence(t *testing.T) {
	jadwal := mondayJadwal()

	tests := []struct {
		name     string
		now      string
		wantDate string
	}{
		{"same day before start", "2025-06-02 07:00:00", "2025-06-02"},
		{"same day during slot", "2025-06-02 08:30:00", "2025-06-02"},
		{"same day after end rolls a week", "2025-06-02 09:30:00", "2025-06-09"},
		{"exactly at end rolls a week", "2025-06-02 09:00:00", "2025-06-09"},
		{"earlier weekday in week", "2025-06-01 12:00:00", "2025-06-02"},
		{"later weekday in week", "2025-06-04 12:00:00", "2025-06-09"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := NextOccurrence(jadwal, at(t, tt.now))
			if err != nil {
				t.Fatalf("NextOccurrence: %v", err)
			}
			if got := window.Date.Format("2006-01-02"); got != tt.wantDate {
				t.Errorf("date = %s, want %s", got, tt.wantDate)
			}
			if window.Start.Hour() != 8 || window.End.Hour() != 9 {
				t.Errorf("window times = %v..%v, want 08:00..09:00", window.Start, window.End)
			}
		})
	}

	if _, err := NextOccurrence(&model.Jadwal{Hari: "funday", JamMulai: "08:00:00", JamSelesai: "09:00:00"}, time.Now()); err == nil {
		t.Error("expected error for unknown hari")
	}
}

func TestWindowContains(t *testing.T) {
	jadwal := mondayJadwal()
	window, err := NextOccurrence(jadwal, at(t, "2025-06-02 07:00:00"))
	if err != nil {
		t.Fatal(err)
	}
	if !window.Contains(at(t, "2025-06-02 08:00:00")) {
		t.Error("start of window should be inside")
	}
	if !window.Contains(at(t, "2025-06-02 08:59:59")) {
		t.Error("last second should be inside")
	}
	if window.Contains(at(t, "2025-06-02 09:00:00")) {
		t.Error("end of window is exclusive")
	}
	if window.Contains(at(t, "2025-06-02 07:59:59")) {
		t.Error("before start should be outside")
	}
}

func absensiOn(t *testing.T, date string) model.Absensi {
	return model.Absensi{Tanggal: at(t, date+" 00:00:00"), Status: model.StatusHadir}
}

func TestCheckAttendanceWindow(t *testing.T) {
	jadwal := mondayJadwal()

	t.Run("inside window with no history", func(t *testing.T) {
		elig, err := CheckAttendanceWindow(jadwal, nil, at(t, "2025-06-02 08:30:00"))
		if err != nil {
			t.Fatal(err)
		}
		if !elig.Allowed() {
			t.Errorf("expected eligible, got %+v", elig)
		}
	})

	t.Run("outside window", func(t *testing.T) {
		elig, err := CheckAttendanceWindow(jadwal, nil, at(t, "2025-06-02 09:30:00"))
		if err != nil {
			t.Fatal(err)
		}
		if elig.Allowed() {
			t.Error("expected not eligible after window closes")
		}
		if elig.InWindow {
			t.Error("InWindow should be false after the slot ends")
		}
	})

	t.Run("already recorded today", func(t *testing.T) {
		existing := []model.Absensi{absensiOn(t, "2025-06-02")}
		elig, err := CheckAttendanceWindow(jadwal, existing, at(t, "2025-06-02 08:30:00"))
		if err != nil {
			t.Fatal(err)
		}
		if elig.Allowed() {
			t.Error("expected not eligible with a record on the same date")
		}
		if !elig.AlreadyToday {
			t.Error("AlreadyToday should be set")
		}
	})

	t.Run("already recorded this iso week", func(t *testing.T) {
		// Sunday 2025-06-01 belongs to the previous ISO week, Tuesday
		// 2025-06-03 does not exist yet; use a same-week record from a
		// makeup session logged earlier that Monday morning.
		existing := []model.Absensi{absensiOn(t, "2025-06-02")}
		elig, err := CheckAttendanceWindow(jadwal, existing, at(t, "2025-06-02 08:45:00"))
		if err != nil {
			t.Fatal(err)
		}
		if !elig.AlreadyWeek {
			t.Error("AlreadyWeek should be set for a same-ISO-week record")
		}
	})

	t.Run("last week's record does not block", func(t *testing.T) {
		existing := []model.Absensi{absensiOn(t, "2025-05-26")}
		elig, err := CheckAttendanceWindow(jadwal, existing, at(t, "2025-06-02 08:30:00"))
		if err != nil {
			t.Fatal(err)
		}
		if !elig.Allowed() {
			t.Errorf("previous-week record should not block, got %+v", elig)
		}
	})

	t.Run("sunday belongs to previous iso week", func(t *testing.T) {
		existing := []model.Absensi{absensiOn(t, "2025-06-01")}
		elig, err := CheckAttendanceWindow(jadwal, existing, at(t, "2025-06-02 08:30:00"))
		if err != nil {
			t.Fatal(err)
		}
		if elig.AlreadyWeek {
			t.Error("Sunday record is in the prior ISO week and must not block Monday")
		}
	})
}

func TestSameISOWeek(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"2025-06-02", "2025-06-08", true},  // Monday..Sunday same ISO week
		{"2025-06-01", "2025-06-02", false}, // Sunday vs next Monday
		{"2025-12-29", "2026-01-01", true},  // ISO week spanning year boundary
	}
	for _, tt := range tests {
		a := at(t, tt.a+" 12:00:00")
		b := at(t, tt.b+" 12:00:00")
		if got := SameISOWeek(a, b); got != tt.want {
			t.Errorf("SameISOWeek(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
