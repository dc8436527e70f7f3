package service

import (
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/util"

	"gorm.io/gorm"
)

// fakeTxRunner invokes the callback with a nil tx; the fake stores below
// never touch it.
type fakeTxRunner struct{}

func (fakeTxRunner) Transaction(fn func(tx *gorm.DB) error, _ ...*sql.TxOptions) error {
	return fn(nil)
}

type fakeQuizStore struct {
	quiz *model.Quiz
}

func (f *fakeQuizStore) FindByID(id uint) (*model.Quiz, error) {
	if f.quiz == nil || f.quiz.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	q := *f.quiz
	return &q, nil
}

func (f *fakeQuizStore) Create(*model.Quiz) error                      { return nil }
func (f *fakeQuizStore) FindAll() ([]model.Quiz, error)                { return nil, nil }
func (f *fakeQuizStore) FindByJadwal(uint) ([]model.Quiz, error)       { return nil, nil }
func (f *fakeQuizStore) Update(*model.Quiz) error                      { return nil }
func (f *fakeQuizStore) ReplaceQuestions(uint, []model.Question) error { return nil }
func (f *fakeQuizStore) Delete(uint) error                             { return nil }

type fakeAnswerStore struct {
	rows []model.UserAnswer
}

func (f *fakeAnswerStore) MaxAttempt(_ *gorm.DB, userID, _ uint) (int, error) {
	max := 0
	for _, r := range f.rows {
		if r.UserID == userID && r.AttemptNumber > max {
			max = r.AttemptNumber
		}
	}
	return max, nil
}

func (f *fakeAnswerStore) CreateBatch(_ *gorm.DB, answers []model.UserAnswer) error {
	f.rows = append(f.rows, answers...)
	return nil
}

func (f *fakeAnswerStore) Find(_, _ *uint) ([]model.UserAnswer, error) {
	return f.rows, nil
}

type fakeEnrollmentStore struct {
	enrollment    *model.Enrollment
	levelsWritten []int
}

func (f *fakeEnrollmentStore) FindByUserAndJadwal(userID, jadwalID uint) (*model.Enrollment, error) {
	if f.enrollment == nil ||
		f.enrollment.UserID == nil || *f.enrollment.UserID != userID ||
		f.enrollment.JadwalID == nil || *f.enrollment.JadwalID != jadwalID {
		return nil, gorm.ErrRecordNotFound
	}
	e := *f.enrollment
	return &e, nil
}

func (f *fakeEnrollmentStore) UpdateLevel(_ *gorm.DB, _ uint, level int) error {
	l := level
	f.enrollment.DifficultyLevel = &l
	f.levelsWritten = append(f.levelsWritten, level)
	return nil
}

func uintPtr(v uint) *uint { return &v }

func quizWithQuestions(levels ...int) *model.Quiz {
	quiz := &model.Quiz{
		BaseModel: model.BaseModel{ID: 1},
		JadwalID:  10,
		Title:     "Latihan",
	}
	for i, level := range levels {
		quiz.Questions = append(quiz.Questions, model.Question{
			BaseModel:       model.BaseModel{ID: uint(i + 1)},
			QuizID:          1,
			Options:         json.RawMessage(`{"a":"benar","b":"salah"}`),
			CorrectAnswer:   "a",
			DifficultyLevel: level,
		})
	}
	return quiz
}

func submitFixture(quiz *model.Quiz, startLevel *int) (*QuizService, *fakeAnswerStore, *fakeEnrollmentStore) {
	answers := &fakeAnswerStore{}
	enrollments := &fakeEnrollmentStore{
		enrollment: &model.Enrollment{
			BaseModel:       model.BaseModel{ID: 7},
			UserID:          uintPtr(42),
			JadwalID:        uintPtr(quiz.JadwalID),
			DifficultyLevel: startLevel,
		},
	}
	svc := &QuizService{
		DB:             fakeTxRunner{},
		QuizRepo:       &fakeQuizStore{quiz: quiz},
		AnswerRepo:     answers,
		EnrollmentRepo: enrollments,
	}
	return svc, answers, enrollments
}

func allCorrect(quiz *model.Quiz) map[uint]string {
	answers := make(map[uint]string, len(quiz.Questions))
	for _, q := range quiz.Questions {
		answers[q.ID] = q.CorrectAnswer
	}
	return answers
}

func TestSubmitAttemptNumbersAreDense(t *testing.T) {
	quiz := quizWithQuestions(2, 2, 2)
	level := 2
	svc, answers, _ := submitFixture(quiz, &level)

	for want := 1; want <= 3; want++ {
		result, err := svc.Submit(42, 1, allCorrect(quiz))
		if err != nil {
			t.Fatalf("Submit() attempt %d: %v", want, err)
		}
		if result.AttemptNumber != want {
			t.Fatalf("attempt %d numbered %d", want, result.AttemptNumber)
		}
	}

	for _, row := range answers.rows {
		if row.AttemptNumber < 1 || row.AttemptNumber > 3 {
			t.Errorf("stored row has attempt_number %d", row.AttemptNumber)
		}
	}
	if len(answers.rows) != 9 {
		t.Errorf("stored %d rows, want 9", len(answers.rows))
	}
}

func TestSubmitRejectsEmptyQuiz(t *testing.T) {
	svc, answers, _ := submitFixture(quizWithQuestions(), nil)

	_, err := svc.Submit(42, 1, map[uint]string{})
	if !errors.Is(err, util.ErrQuizHasNoQuestions) {
		t.Fatalf("Submit() error = %v, want ErrQuizHasNoQuestions", err)
	}
	if len(answers.rows) != 0 {
		t.Errorf("empty quiz stored %d rows", len(answers.rows))
	}
}

func TestSubmitRejectsUnknownQuestion(t *testing.T) {
	quiz := quizWithQuestions(1, 1)
	level := 1
	svc, answers, _ := submitFixture(quiz, &level)

	_, err := svc.Submit(42, 1, map[uint]string{99: "a"})
	if !errors.Is(err, util.ErrUnknownQuestion) {
		t.Fatalf("Submit() error = %v, want ErrUnknownQuestion", err)
	}
	if len(answers.rows) != 0 {
		t.Errorf("rejected submission stored %d rows", len(answers.rows))
	}
}

func TestSubmitRequiresEnrollment(t *testing.T) {
	quiz := quizWithQuestions(1)
	svc, _, enrollments := submitFixture(quiz, nil)
	enrollments.enrollment.JadwalID = uintPtr(999) // student not enrolled in the quiz's slot

	_, err := svc.Submit(42, 1, allCorrect(quiz))
	if !errors.Is(err, util.ErrEnrollmentNotFound) {
		t.Fatalf("Submit() error = %v, want ErrEnrollmentNotFound", err)
	}
}

func TestSubmitPlacesStudentFromEntryQuiz(t *testing.T) {
	quiz := quizWithQuestions(1, 2, 3) // mixed levels classify as entry
	svc, _, enrollments := submitFixture(quiz, nil)

	result, err := svc.Submit(42, 1, allCorrect(quiz))
	if err != nil {
		t.Fatalf("Submit(): %v", err)
	}
	if result.QuizType != QuizTypeEntry {
		t.Errorf("QuizType = %d, want entry", result.QuizType)
	}
	if result.PreviousLevel != nil {
		t.Errorf("PreviousLevel = %v, want nil", *result.PreviousLevel)
	}
	if result.NewLevel != 3 {
		t.Errorf("NewLevel = %d, want 3", result.NewLevel)
	}
	if len(enrollments.levelsWritten) != 1 || enrollments.levelsWritten[0] != 3 {
		t.Errorf("levels written = %v, want [3]", enrollments.levelsWritten)
	}
}

func TestSubmitMovesPlacementOnLeveledQuiz(t *testing.T) {
	quiz := quizWithQuestions(2, 2, 2, 2)
	level := 2
	svc, _, enrollments := submitFixture(quiz, &level)

	// 4/4 on a level-2 quiz promotes to 3.
	result, err := svc.Submit(42, 1, allCorrect(quiz))
	if err != nil {
		t.Fatalf("Submit(): %v", err)
	}
	if result.NewLevel != 3 {
		t.Errorf("NewLevel = %d, want 3", result.NewLevel)
	}
	if result.PreviousLevel == nil || *result.PreviousLevel != 2 {
		t.Errorf("PreviousLevel = %v, want 2", result.PreviousLevel)
	}

	// 1/4 demotes back down one tier from the quiz's level.
	one := map[uint]string{quiz.Questions[0].ID: "a"}
	result, err = svc.Submit(42, 1, one)
	if err != nil {
		t.Fatalf("Submit(): %v", err)
	}
	if result.CorrectCount != 1 || result.ScorePct != 25 {
		t.Errorf("CorrectCount = %d, ScorePct = %v", result.CorrectCount, result.ScorePct)
	}
	if result.NewLevel != 1 {
		t.Errorf("NewLevel = %d, want 1", result.NewLevel)
	}
	if len(enrollments.levelsWritten) != 2 {
		t.Errorf("levels written = %v, want two writes", enrollments.levelsWritten)
	}
}

func TestSubmitHoldsLevelWithoutWrite(t *testing.T) {
	quiz := quizWithQuestions(2, 2, 2, 2)
	level := 2
	svc, _, enrollments := submitFixture(quiz, &level)

	// 3/4 = 75% sits in the hold band; the placement row stays untouched.
	answers := allCorrect(quiz)
	answers[quiz.Questions[0].ID] = "b"
	result, err := svc.Submit(42, 1, answers)
	if err != nil {
		t.Fatalf("Submit(): %v", err)
	}
	if result.NewLevel != 2 {
		t.Errorf("NewLevel = %d, want 2", result.NewLevel)
	}
	if len(enrollments.levelsWritten) != 0 {
		t.Errorf("hold result wrote levels %v", enrollments.levelsWritten)
	}
}

func TestSubmitCountsUnansweredAgainstScore(t *testing.T) {
	quiz := quizWithQuestions(2, 2, 2, 2)
	level := 2
	svc, answers, _ := submitFixture(quiz, &level)

	two := map[uint]string{
		quiz.Questions[0].ID: "a",
		quiz.Questions[1].ID: "a",
	}
	result, err := svc.Submit(42, 1, two)
	if err != nil {
		t.Fatalf("Submit(): %v", err)
	}
	if result.TotalQuestions != 4 || result.ScorePct != 50 {
		t.Errorf("TotalQuestions = %d, ScorePct = %v, want 4 and 50", result.TotalQuestions, result.ScorePct)
	}
	if len(answers.rows) != 2 {
		t.Errorf("stored %d rows, want 2 (unanswered questions produce none)", len(answers.rows))
	}
}
