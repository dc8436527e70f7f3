package repository

import (
	"adaptive_learning_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) withRelations() *gorm.DB {
	return r.DB.
		Preload("Jadwal.Kelas").
		Preload("Jadwal.Subject").
		Preload("Jadwal.Guru").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			// Creation order is the question order the clients render.
			return db.Order("questions.id ASC")
		})
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.withRelations().First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.withRelations().Order("id").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindByJadwal(jadwalID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.withRelations().Where("jadwal_id = ?", jadwalID).Order("id").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

// ReplaceQuestions swaps the quiz's question set in one transaction.
func (r *QuizRepository) ReplaceQuestions(quizID uint, questions []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizID = quizID
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}
