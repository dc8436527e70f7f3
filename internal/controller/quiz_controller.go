package controller

import (
	"encoding/json"
	"errors"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// QuestionPayload is one question inside a quiz create/update body.
type QuestionPayload struct {
	QuestionText    string            `json:"question_text" binding:"required"`
	Options         map[string]string `json:"options" binding:"required"`
	CorrectAnswer   string            `json:"correct_answer" binding:"required"`
	DifficultyLevel int               `json:"difficulty_level" binding:"required,min=1,max=3"`
}

func (p *QuestionPayload) toModel() model.Question {
	raw, _ := json.Marshal(p.Options)
	return model.Question{
		QuestionText:    p.QuestionText,
		Options:         raw,
		CorrectAnswer:   p.CorrectAnswer,
		DifficultyLevel: p.DifficultyLevel,
	}
}

type QuizRequest struct {
	JadwalID    uint              `json:"jadwal_id" binding:"required"`
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Questions   []QuestionPayload `json:"questions"`
}

// Create godoc
// @Summary Create a quiz with its questions
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body QuizRequest true "quiz payload"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response
// @Router /api/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz := &model.Quiz{
		JadwalID:    req.JadwalID,
		Title:       req.Title,
		Description: req.Description,
	}
	for i := range req.Questions {
		quiz.Questions = append(quiz.Questions, req.Questions[i].toModel())
	}

	if err := c.QuizService.Create(quiz); err != nil {
		if errors.Is(err, util.ErrCorrectAnswerMissing) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, quiz)
}

// List godoc
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	quizzes, err := c.QuizService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// Get godoc
// @Summary Get a quiz with its questions and classification
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.QuizService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	// Students take quizzes through this endpoint; the answer key stays
	// server-side unless the caller is staff.
	claims := util.GetUserFromContext(ctx)
	if claims != nil && claims.Role == model.Siswa {
		for i := range quiz.Questions {
			quiz.Questions[i].CorrectAnswer = ""
		}
	}

	util.Success(ctx, gin.H{
		"quiz":      quiz,
		"quiz_type": service.ClassifyQuiz(quiz.Questions),
	})
}

// ByJadwal godoc
// @Summary List the quizzes of a schedule slot
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "jadwal id"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/quizzes/jadwal/{id} [get]
func (c *QuizController) ByJadwal(ctx *gin.Context) {
	quizzes, err := c.QuizService.GetByJadwal(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// Update godoc
// @Summary Update a quiz, optionally replacing its questions
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Param body body QuizRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [put]
func (c *QuizController) Update(ctx *gin.Context) {
	var req struct {
		JadwalID    uint              `json:"jadwal_id"`
		Title       string            `json:"title"`
		Description string            `json:"description"`
		Questions   []QuestionPayload `json:"questions"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	update := &model.Quiz{
		JadwalID:    req.JadwalID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Questions != nil {
		update.Questions = make([]model.Question, 0, len(req.Questions))
		for i := range req.Questions {
			update.Questions = append(update.Questions, req.Questions[i].toModel())
		}
	}

	quiz, err := c.QuizService.Update(util.ParseUintOrZero(ctx.Param("id")), update)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCorrectAnswerMissing):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, quiz)
}

// Delete godoc
// @Summary Delete a quiz and its questions
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	if err := c.QuizService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

type SubmitQuizRequest struct {
	// Answers maps question id to the selected option key.
	Answers map[uint]string `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Submit quiz answers for grading and placement
// @Description Grades the submission server-side, assigns the next attempt number, and moves the student's difficulty level per the adaptive rules.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Param body body SubmitQuizRequest true "answers"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Submit(claims.UserID, util.ParseUintOrZero(ctx.Param("id")), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrQuizHasNoQuestions),
			errors.Is(err, util.ErrUnknownQuestion),
			errors.Is(err, util.ErrEnrollmentNotFound):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// Answers godoc
// @Summary List the caller's stored answers for a quiz
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response{data=[]model.UserAnswer}
// @Router /api/quizzes/{id}/answers [get]
func (c *QuizController) Answers(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	userID := claims.UserID
	// Staff may inspect another student's answers.
	if claims.Role != model.Siswa && ctx.Query("user_id") != "" {
		userID = util.ParseUintOrZero(ctx.Query("user_id"))
	}

	answers, err := c.QuizService.AnswersForQuiz(userID, util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, answers)
}
