package service

import (
	"sort"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
)

type AnswerService struct {
	AnswerRepo *repository.AnswerRepository
}

func NewAnswerService(answerRepo *repository.AnswerRepository) *AnswerService {
	return &AnswerService{AnswerRepo: answerRepo}
}

func (s *AnswerService) List(userID, quizID *uint) ([]model.UserAnswer, error) {
	return s.AnswerRepo.Find(userID, quizID)
}

func (s *AnswerService) GetByID(id uint) (*model.UserAnswer, error) {
	return s.AnswerRepo.FindByID(id)
}

func (s *AnswerService) Delete(id uint) error {
	if _, err := s.AnswerRepo.FindByID(id); err != nil {
		return err
	}
	return s.AnswerRepo.Delete(id)
}

func (s *AnswerService) Count() (int64, error) {
	return s.AnswerRepo.Count()
}

// AttemptSummary aggregates one graded attempt of one quiz.
type AttemptSummary struct {
	QuizID        uint    `json:"quiz_id"`
	QuizTitle     string  `json:"quiz_title"`
	AttemptNumber int     `json:"attempt_number"`
	CorrectCount  int     `json:"correct_count"`
	AnsweredCount int     `json:"answered_count"`
	ScorePct      float64 `json:"score_pct"`
}

// SummaryForUser folds a student's answer rows into per-quiz, per-attempt
// summaries, newest attempt first within each quiz.
func (s *AnswerService) SummaryForUser(userID uint) ([]AttemptSummary, error) {
	answers, err := s.AnswerRepo.Find(&userID, nil)
	if err != nil {
		return nil, err
	}

	type key struct {
		quizID  uint
		attempt int
	}
	grouped := make(map[key]*AttemptSummary)
	for _, a := range answers {
		k := key{quizID: a.Question.QuizID, attempt: a.AttemptNumber}
		summary, ok := grouped[k]
		if !ok {
			summary = &AttemptSummary{
				QuizID:        a.Question.QuizID,
				AttemptNumber: a.AttemptNumber,
			}
			if a.Question.Quiz != nil {
				summary.QuizTitle = a.Question.Quiz.Title
			}
			grouped[k] = summary
		}
		summary.AnsweredCount++
		if a.IsCorrect {
			summary.CorrectCount++
		}
	}

	summaries := make([]AttemptSummary, 0, len(grouped))
	for _, summary := range grouped {
		summary.ScorePct = ScorePercentage(summary.CorrectCount, summary.AnsweredCount)
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].QuizID != summaries[j].QuizID {
			return summaries[i].QuizID < summaries[j].QuizID
		}
		return summaries[i].AttemptNumber > summaries[j].AttemptNumber
	})
	return summaries, nil
}
