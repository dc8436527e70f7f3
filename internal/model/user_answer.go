package model

// UserAnswer records one student's selection for one question on one attempt.
// IsCorrect is computed and stored at submission time, never re-derived.
// swagger:model UserAnswer
type UserAnswer struct {
	BaseModel
	UserID     uint     `gorm:"index:idx_answer_user_question;not null" json:"user_id"`
	User       User     `gorm:"foreignKey:UserID" json:"user"`
	QuestionID uint     `gorm:"index:idx_answer_user_question;not null" json:"question_id"`
	Question   Question `gorm:"foreignKey:QuestionID" json:"question"`

	SelectedAnswer string `gorm:"size:255;not null" json:"selected_answer"`
	IsCorrect      bool   `gorm:"not null" json:"is_correct"`
	AttemptNumber  int    `gorm:"not null;default:1" json:"attempt_number"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
