package repository

import (
	"adaptive_learning_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Quiz").First(&question, id).Error
	return &question, err
}

func (r *QuestionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Order("id").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByQuiz(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("quiz_id = ?", quizID).Order("id").Find(&questions).Error
	return questions, err
}

// FindByJadwal returns every question of every quiz in a schedule slot.
func (r *QuestionRepository) FindByJadwal(jadwalID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.
		Joins("JOIN quizzes ON quizzes.id = questions.quiz_id").
		Where("quizzes.jadwal_id = ? AND quizzes.deleted_at IS NULL", jadwalID).
		Order("questions.id").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
