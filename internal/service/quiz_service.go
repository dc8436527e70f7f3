package service

import (
	"database/sql"
	"errors"
	"strconv"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"
	"adaptive_learning_backend/pkg/logger"
	"adaptive_learning_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// txRunner runs a function inside a database transaction. *gorm.DB satisfies
// it directly.
type txRunner interface {
	Transaction(fn func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// Store seams over the concrete repositories, so the submission flow can be
// exercised without a live database.
type quizStore interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindAll() ([]model.Quiz, error)
	FindByJadwal(jadwalID uint) ([]model.Quiz, error)
	Update(quiz *model.Quiz) error
	ReplaceQuestions(quizID uint, questions []model.Question) error
	Delete(id uint) error
}

type answerStore interface {
	MaxAttempt(tx *gorm.DB, userID, quizID uint) (int, error)
	CreateBatch(tx *gorm.DB, answers []model.UserAnswer) error
	Find(userID, quizID *uint) ([]model.UserAnswer, error)
}

type enrollmentStore interface {
	FindByUserAndJadwal(userID, jadwalID uint) (*model.Enrollment, error)
	UpdateLevel(tx *gorm.DB, id uint, level int) error
}

type QuizService struct {
	DB             txRunner
	QuizRepo       quizStore
	AnswerRepo     answerStore
	EnrollmentRepo enrollmentStore
}

func NewQuizService(db *gorm.DB, quizRepo *repository.QuizRepository, answerRepo *repository.AnswerRepository, enrollmentRepo *repository.EnrollmentRepository) *QuizService {
	return &QuizService{
		DB:             db,
		QuizRepo:       quizRepo,
		AnswerRepo:     answerRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

func validateQuestions(questions []model.Question) error {
	for i := range questions {
		q := &questions[i]
		if q.DifficultyLevel < model.MinDifficultyLevel || q.DifficultyLevel > model.MaxDifficultyLevel {
			q.DifficultyLevel = model.MinDifficultyLevel
		}
		options := q.OptionMap()
		if _, ok := options[q.CorrectAnswer]; !ok {
			return util.ErrCorrectAnswerMissing
		}
	}
	return nil
}

func (s *QuizService) Create(quiz *model.Quiz) error {
	if err := validateQuestions(quiz.Questions); err != nil {
		return err
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return err
	}
	return nil
}

func (s *QuizService) GetByID(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) GetAll() ([]model.Quiz, error) {
	return s.QuizRepo.FindAll()
}

func (s *QuizService) GetByJadwal(jadwalID uint) ([]model.Quiz, error) {
	return s.QuizRepo.FindByJadwal(jadwalID)
}

// QuizType reports the quiz's classification: QuizTypeEntry for a placement
// quiz, otherwise the fixed difficulty level all its questions share.
func (s *QuizService) QuizType(id uint) (int, error) {
	quiz, err := s.GetByID(id)
	if err != nil {
		return 0, err
	}
	return ClassifyQuiz(quiz.Questions), nil
}

func (s *QuizService) Update(id uint, update *model.Quiz) (*model.Quiz, error) {
	quiz, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if update.Title != "" {
		quiz.Title = update.Title
	}
	if update.Description != "" {
		quiz.Description = update.Description
	}
	if update.JadwalID != 0 {
		quiz.JadwalID = update.JadwalID
	}
	quiz.Questions = nil
	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}

	if update.Questions != nil {
		if err := validateQuestions(update.Questions); err != nil {
			return nil, err
		}
		if err := s.QuizRepo.ReplaceQuestions(id, update.Questions); err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *QuizService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.QuizRepo.Delete(id)
}

// SubmitResult is what a student sees after handing in a quiz.
type SubmitResult struct {
	QuizID         uint    `json:"quiz_id"`
	AttemptNumber  int     `json:"attempt_number"`
	CorrectCount   int     `json:"correct_count"`
	TotalQuestions int     `json:"total_questions"`
	ScorePct       float64 `json:"score_pct"`
	QuizType       int     `json:"quiz_type"`
	PreviousLevel  *int    `json:"previous_level"`
	NewLevel       int     `json:"new_level"`
}

// Submit grades a student's answers, persists them under the next attempt
// number, and moves the student's difficulty placement when the result calls
// for it. Grading and attempt numbering happen inside one transaction so two
// concurrent submissions of the same quiz cannot share an attempt number.
//
// answers maps question id to the selected option key. Unanswered questions
// count against the score but produce no rows.
func (s *QuizService) Submit(userID, quizID uint, answers map[uint]string) (*SubmitResult, error) {
	quiz, err := s.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if len(quiz.Questions) == 0 {
		return nil, util.ErrQuizHasNoQuestions
	}

	byID := make(map[uint]*model.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		byID[quiz.Questions[i].ID] = &quiz.Questions[i]
	}
	for questionID := range answers {
		if _, ok := byID[questionID]; !ok {
			return nil, util.ErrUnknownQuestion
		}
	}

	quizType := ClassifyQuiz(quiz.Questions)

	result := &SubmitResult{
		QuizID:         quizID,
		TotalQuestions: len(quiz.Questions),
		QuizType:       quizType,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		maxAttempt, err := s.AnswerRepo.MaxAttempt(tx, userID, quizID)
		if err != nil {
			return err
		}
		result.AttemptNumber = maxAttempt + 1

		rows := make([]model.UserAnswer, 0, len(answers))
		for i := range quiz.Questions {
			q := &quiz.Questions[i]
			selected, answered := answers[q.ID]
			if !answered {
				continue
			}
			correct := selected == q.CorrectAnswer
			if correct {
				result.CorrectCount++
			}
			rows = append(rows, model.UserAnswer{
				UserID:         userID,
				QuestionID:     q.ID,
				SelectedAnswer: selected,
				IsCorrect:      correct,
				AttemptNumber:  result.AttemptNumber,
			})
		}
		if err := s.AnswerRepo.CreateBatch(tx, rows); err != nil {
			return err
		}

		result.ScorePct = ScorePercentage(result.CorrectCount, result.TotalQuestions)

		enrollment, err := s.EnrollmentRepo.FindByUserAndJadwal(userID, quiz.JadwalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrEnrollmentNotFound
			}
			return err
		}
		result.PreviousLevel = enrollment.DifficultyLevel

		if quizType == QuizTypeEntry {
			result.NewLevel = DetermineEntryLevel(result.ScorePct)
		} else {
			result.NewLevel = DetermineNextLevel(quizType, result.ScorePct)
		}

		if enrollment.DifficultyLevel == nil || *enrollment.DifficultyLevel != result.NewLevel {
			if err := s.EnrollmentRepo.UpdateLevel(tx, enrollment.ID, result.NewLevel); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.QuizSubmissions.WithLabelValues(strconv.Itoa(result.NewLevel)).Inc()
	logger.Log.Info("quiz submitted",
		zap.Uint("user_id", userID),
		zap.Uint("quiz_id", quizID),
		zap.Int("attempt", result.AttemptNumber),
		zap.Float64("score_pct", result.ScorePct),
		zap.Int("new_level", result.NewLevel))
	return result, nil
}

// AnswersForQuiz lists a user's stored answers for a quiz, all attempts.
func (s *QuizService) AnswersForQuiz(userID, quizID uint) ([]model.UserAnswer, error) {
	return s.AnswerRepo.Find(&userID, &quizID)
}
