package controller

import (
	"encoding/json"
	"errors"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

type QuestionRequest struct {
	QuizID          uint              `json:"quiz_id" binding:"required"`
	QuestionText    string            `json:"question_text" binding:"required"`
	Options         map[string]string `json:"options" binding:"required"`
	CorrectAnswer   string            `json:"correct_answer" binding:"required"`
	DifficultyLevel int               `json:"difficulty_level" binding:"required,min=1,max=3"`
}

// Create godoc
// @Summary Add a question to a quiz
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body QuestionRequest true "question payload"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	raw, _ := json.Marshal(req.Options)
	question := &model.Question{
		QuizID:          req.QuizID,
		QuestionText:    req.QuestionText,
		Options:         raw,
		CorrectAnswer:   req.CorrectAnswer,
		DifficultyLevel: req.DifficultyLevel,
	}
	if err := c.QuestionService.Create(question); err != nil {
		if errors.Is(err, util.ErrCorrectAnswerMissing) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, question)
}

// List godoc
// @Summary List questions, optionally filtered by quiz
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param quiz_id query int false "filter by quiz"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	var (
		questions []model.Question
		err       error
	)
	if ctx.Query("quiz_id") != "" {
		questions, err = c.QuestionService.GetByQuiz(util.ParseUintOrZero(ctx.Query("quiz_id")))
	} else {
		questions, err = c.QuestionService.GetAll()
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// Get godoc
// @Summary Get a question by id
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	question, err := c.QuestionService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, question)
}

// ByJadwal godoc
// @Summary List every question under a schedule's quizzes
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "jadwal id"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /api/questions/jadwal/{id} [get]
func (c *QuestionController) ByJadwal(ctx *gin.Context) {
	questions, err := c.QuestionService.GetByJadwal(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// Update godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body QuestionRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	var req struct {
		QuestionText    string            `json:"question_text"`
		Options         map[string]string `json:"options"`
		CorrectAnswer   string            `json:"correct_answer"`
		DifficultyLevel int               `json:"difficulty_level"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	update := &model.Question{
		QuestionText:    req.QuestionText,
		CorrectAnswer:   req.CorrectAnswer,
		DifficultyLevel: req.DifficultyLevel,
	}
	if req.Options != nil {
		update.Options, _ = json.Marshal(req.Options)
	}

	question, err := c.QuestionService.Update(util.ParseUintOrZero(ctx.Param("id")), update)
	if err != nil {
		if errors.Is(err, util.ErrCorrectAnswerMissing) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, question)
}

// Delete godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	if err := c.QuestionService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}
