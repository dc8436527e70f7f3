package service

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo}
}

func (s *QuestionService) Create(question *model.Question) error {
	if question.DifficultyLevel < model.MinDifficultyLevel || question.DifficultyLevel > model.MaxDifficultyLevel {
		question.DifficultyLevel = model.MinDifficultyLevel
	}
	if _, ok := question.OptionMap()[question.CorrectAnswer]; !ok {
		return util.ErrCorrectAnswerMissing
	}
	return s.QuestionRepo.Create(question)
}

func (s *QuestionService) GetByID(id uint) (*model.Question, error) {
	return s.QuestionRepo.FindByID(id)
}

func (s *QuestionService) GetAll() ([]model.Question, error) {
	return s.QuestionRepo.FindAll()
}

func (s *QuestionService) GetByQuiz(quizID uint) ([]model.Question, error) {
	return s.QuestionRepo.FindByQuiz(quizID)
}

func (s *QuestionService) GetByJadwal(jadwalID uint) ([]model.Question, error) {
	return s.QuestionRepo.FindByJadwal(jadwalID)
}

func (s *QuestionService) Update(id uint, update *model.Question) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if update.QuestionText != "" {
		question.QuestionText = update.QuestionText
	}
	if len(update.Options) > 0 {
		question.Options = update.Options
	}
	if update.CorrectAnswer != "" {
		question.CorrectAnswer = update.CorrectAnswer
	}
	if update.DifficultyLevel >= model.MinDifficultyLevel && update.DifficultyLevel <= model.MaxDifficultyLevel {
		question.DifficultyLevel = update.DifficultyLevel
	}
	if _, ok := question.OptionMap()[question.CorrectAnswer]; !ok {
		return nil, util.ErrCorrectAnswerMissing
	}
	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Delete(id uint) error {
	if _, err := s.QuestionRepo.FindByID(id); err != nil {
		return err
	}
	return s.QuestionRepo.Delete(id)
}
