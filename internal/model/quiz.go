package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	JadwalID    uint   `gorm:"index;not null" json:"jadwal_id"`
	Jadwal      Jadwal `gorm:"foreignKey:JadwalID" json:"jadwal"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// Ordered by creation; question order is part of the quiz contract.
	Questions []Question `gorm:"foreignKey:QuizID" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
