package model

import "encoding/json"

const (
	MinDifficultyLevel = 1
	MaxDifficultyLevel = 3
)

// swagger:model Question
type Question struct {
	BaseModel
	QuizID       uint   `gorm:"index;not null" json:"quiz_id"`
	Quiz         *Quiz  `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	QuestionText string `gorm:"type:text;not null" json:"question_text"`

	// Options maps an option key (e.g. "a") to its display text. Stored as a
	// JSON object; key/value pairs round-trip untouched.
	Options       json.RawMessage `gorm:"type:json" json:"options"`
	CorrectAnswer string          `gorm:"size:255;not null" json:"correct_answer"`

	DifficultyLevel int `gorm:"default:1" json:"difficulty_level"`
}

func (Question) TableName() string {
	return "questions"
}

// OptionMap decodes the raw options object. A nil map means the stored JSON
// was absent or malformed.
func (q *Question) OptionMap() map[string]string {
	if len(q.Options) == 0 {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(q.Options, &m); err != nil {
		return nil
	}
	return m
}
