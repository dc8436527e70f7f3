package model

import "time"

type AbsensiStatus string

const (
	StatusHadir AbsensiStatus = "hadir" // present
	StatusSakit AbsensiStatus = "sakit" // sick
	StatusIzin  AbsensiStatus = "izin"  // excused
	StatusAlpa  AbsensiStatus = "alpa"  // absent without leave
)

func (s AbsensiStatus) Valid() bool {
	switch s {
	case StatusHadir, StatusSakit, StatusIzin, StatusAlpa:
		return true
	}
	return false
}

// Absensi is one attendance record for one enrollment on one date.
// Students append at most one row per slot per week; teachers may correct
// the status afterwards.
// swagger:model Absensi
type Absensi struct {
	BaseModel
	JadwalUserID *uint      `gorm:"index;not null" json:"jadwal_user_id"`
	JadwalUser   Enrollment `gorm:"foreignKey:JadwalUserID" json:"jadwal_user"`

	Tanggal time.Time     `gorm:"not null" json:"tanggal"`
	Status  AbsensiStatus `gorm:"type:enum('hadir','sakit','izin','alpa');not null" json:"status"`
}

func (Absensi) TableName() string {
	return "absensis"
}
