package repository

import (
	"adaptive_learning_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// MaxAttempt returns the highest attempt_number a user has recorded for a
// quiz, 0 when none exist. When called inside a transaction the scanned rows
// are locked so a concurrent submission of the same quiz serializes behind it.
func (r *AnswerRepository) MaxAttempt(tx *gorm.DB, userID, quizID uint) (int, error) {
	var max int
	err := tx.Model(&model.UserAnswer{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Joins("JOIN questions ON questions.id = user_answers.question_id").
		Where("user_answers.user_id = ? AND questions.quiz_id = ?", userID, quizID).
		Select("COALESCE(MAX(user_answers.attempt_number), 0)").
		Scan(&max).Error
	return max, err
}

func (r *AnswerRepository) CreateBatch(tx *gorm.DB, answers []model.UserAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return tx.Create(&answers).Error
}

// Find lists answers, optionally filtered by user and/or quiz.
func (r *AnswerRepository) Find(userID, quizID *uint) ([]model.UserAnswer, error) {
	q := r.DB.Preload("User").Preload("Question.Quiz")
	if userID != nil {
		q = q.Where("user_answers.user_id = ?", *userID)
	}
	if quizID != nil {
		q = q.
			Joins("JOIN questions ON questions.id = user_answers.question_id").
			Where("questions.quiz_id = ?", *quizID)
	}
	var answers []model.UserAnswer
	err := q.Order("user_answers.id").Find(&answers).Error
	return answers, err
}

func (r *AnswerRepository) FindByID(id uint) (*model.UserAnswer, error) {
	var answer model.UserAnswer
	err := r.DB.Preload("User").Preload("Question").First(&answer, id).Error
	return &answer, err
}

func (r *AnswerRepository) Update(answer *model.UserAnswer) error {
	return r.DB.Save(answer).Error
}

func (r *AnswerRepository) Delete(id uint) error {
	return r.DB.Delete(&model.UserAnswer{}, id).Error
}

func (r *AnswerRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserAnswer{}).Count(&count).Error
	return count, err
}
