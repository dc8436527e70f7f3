package model

// Jadwal is a recurring weekly schedule slot: one class meets one subject with
// one teacher on a fixed day of week and time range. Times are stored as
// "HH:MM:SS" wall-clock strings, the format the clients send and render.
// swagger:model Jadwal
type Jadwal struct {
	BaseModel
	KelasID   *uint   `gorm:"index" json:"kelas_id"`
	Kelas     Kelas   `gorm:"foreignKey:KelasID" json:"kelas"`
	SubjectID *uint   `gorm:"index" json:"subject_id"`
	Subject   Subject `gorm:"foreignKey:SubjectID" json:"subject"`
	GuruID    *uint   `gorm:"index" json:"guru_id"`
	Guru      User    `gorm:"foreignKey:GuruID" json:"guru"`

	Hari       string `gorm:"size:10;not null" json:"hari"`
	JamMulai   string `gorm:"size:8;not null" json:"jam_mulai"`
	JamSelesai string `gorm:"size:8;not null" json:"jam_selesai"`
}

func (Jadwal) TableName() string {
	return "jadwals"
}
