package controller

import (
	"errors"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	AnswerService   *service.AnswerService
	QuizService     *service.QuizService
	QuestionService *service.QuestionService
}

func NewAnswerController(answerService *service.AnswerService, quizService *service.QuizService, questionService *service.QuestionService) *AnswerController {
	return &AnswerController{
		AnswerService:   answerService,
		QuizService:     quizService,
		QuestionService: questionService,
	}
}

type AnswerItem struct {
	QuestionID     uint   `json:"question_id" binding:"required"`
	SelectedAnswer string `json:"selected_answer" binding:"required"`
}

type BatchAnswerRequest struct {
	QuizID  uint         `json:"quiz_id" binding:"required"`
	Answers []AnswerItem `json:"answers" binding:"required,min=1"`
}

func (c *AnswerController) submit(ctx *gin.Context, quizID uint, items []AnswerItem) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	answers := make(map[uint]string, len(items))
	for _, item := range items {
		answers[item.QuestionID] = item.SelectedAnswer
	}

	result, err := c.QuizService.Submit(claims.UserID, quizID, answers)
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
	util.Created(ctx, result)
}

// CreateBatch godoc
// @Summary Submit a batch of answers for one quiz
// @Description Routes through the same grading path as quiz submission: correctness and attempt numbers are computed server-side.
// @Tags user-answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BatchAnswerRequest true "answer batch"
// @Success 201 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response
// @Router /api/user-answers/batch [post]
func (c *AnswerController) CreateBatch(ctx *gin.Context) {
	var req BatchAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.submit(ctx, req.QuizID, req.Answers)
}

// Create godoc
// @Summary Submit a single answer
// @Description Resolves the question's quiz and grades through the shared submission path.
// @Tags user-answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AnswerItem true "answer"
// @Success 201 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response
// @Router /api/user-answers [post]
func (c *AnswerController) Create(ctx *gin.Context) {
	var req AnswerItem
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.GetByID(req.QuestionID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	c.submit(ctx, question.QuizID, []AnswerItem{req})
}

// List godoc
// @Summary List stored answers
// @Tags user-answers
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "filter by user (staff only)"
// @Param quiz_id query int false "filter by quiz"
// @Success 200 {object} util.Response{data=[]model.UserAnswer}
// @Router /api/user-answers [get]
func (c *AnswerController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	userID := claims.UserID
	if claims.Role != model.Siswa && ctx.Query("user_id") != "" {
		userID = util.ParseUintOrZero(ctx.Query("user_id"))
	}

	var quizID *uint
	if ctx.Query("quiz_id") != "" {
		id := util.ParseUintOrZero(ctx.Query("quiz_id"))
		quizID = &id
	}

	answers, err := c.AnswerService.List(&userID, quizID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, answers)
}

// Get godoc
// @Summary Get a stored answer by id
// @Tags user-answers
// @Produce json
// @Security BearerAuth
// @Param id path int true "answer id"
// @Success 200 {object} util.Response{data=model.UserAnswer}
// @Failure 404 {object} util.Response
// @Router /api/user-answers/{id} [get]
func (c *AnswerController) Get(ctx *gin.Context) {
	answer, err := c.AnswerService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, answer)
}

// Delete godoc
// @Summary Delete a stored answer
// @Tags user-answers
// @Produce json
// @Security BearerAuth
// @Param id path int true "answer id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/user-answers/{id} [delete]
func (c *AnswerController) Delete(ctx *gin.Context) {
	if err := c.AnswerService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

// Count godoc
// @Summary Count stored answers
// @Tags user-answers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/user-answers/count [get]
func (c *AnswerController) Count(ctx *gin.Context) {
	count, err := c.AnswerService.Count()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"count": count})
}

// Summary godoc
// @Summary Per-quiz attempt summaries for a student
// @Tags user-answers
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "student id (staff only, defaults to caller)"
// @Param quiz_id query int false "restrict to one quiz"
// @Success 200 {object} util.Response{data=[]service.AttemptSummary}
// @Router /api/user-answers/summary [get]
func (c *AnswerController) Summary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	userID := claims.UserID
	if claims.Role != model.Siswa && ctx.Query("user_id") != "" {
		userID = util.ParseUintOrZero(ctx.Query("user_id"))
	}

	summaries, err := c.AnswerService.SummaryForUser(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if ctx.Query("quiz_id") != "" {
		quizID := util.ParseUintOrZero(ctx.Query("quiz_id"))
		filtered := summaries[:0]
		for _, s := range summaries {
			if s.QuizID == quizID {
				filtered = append(filtered, s)
			}
		}
		summaries = filtered
	}
	util.Success(ctx, summaries)
}
