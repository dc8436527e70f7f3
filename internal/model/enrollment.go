package model

// Enrollment links a student to a schedule slot and carries their current
// difficulty placement. DifficultyLevel is nil until the first quiz submission
// places the student, and is only ever mutated by the level transition rule.
// There is exactly one row per (user_id, jadwal_id).
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID   *uint  `gorm:"uniqueIndex:idx_user_jadwal" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`
	JadwalID *uint  `gorm:"uniqueIndex:idx_user_jadwal" json:"jadwal_id"`
	Jadwal   Jadwal `gorm:"foreignKey:JadwalID" json:"jadwal"`

	DifficultyLevel *int `json:"difficulty_level"`
}

func (Enrollment) TableName() string {
	return "jadwal_user"
}
