package controller

import (
	"errors"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

type EnrollRequest struct {
	UserID   uint `json:"user_id" binding:"required"`
	JadwalID uint `json:"jadwal_id" binding:"required"`
}

// Create godoc
// @Summary Enroll a student in a schedule slot
// @Tags enrollment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EnrollRequest true "enrollment payload"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 409 {object} util.Response
// @Router /api/enrollment [post]
func (c *EnrollmentController) Create(ctx *gin.Context) {
	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(req.UserID, req.JadwalID)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentExists) {
			util.Conflict(ctx, "user already enrolled in this schedule")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, enrollment)
}

// List godoc
// @Summary List enrollments, optionally filtered by user or schedule
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "filter by user"
// @Param jadwal_id query int false "filter by schedule"
// @Success 200 {object} util.Response{data=[]model.Enrollment}
// @Router /api/enrollment [get]
func (c *EnrollmentController) List(ctx *gin.Context) {
	var (
		enrollments []model.Enrollment
		err         error
	)
	switch {
	case ctx.Query("user_id") != "":
		enrollments, err = c.EnrollmentService.GetByUser(util.ParseUintOrZero(ctx.Query("user_id")))
	case ctx.Query("jadwal_id") != "":
		enrollments, err = c.EnrollmentService.GetByJadwal(util.ParseUintOrZero(ctx.Query("jadwal_id")))
	default:
		enrollments, err = c.EnrollmentService.GetAll()
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// Get godoc
// @Summary Get an enrollment by id
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Param id path int true "enrollment id"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response
// @Router /api/enrollment/{id} [get]
func (c *EnrollmentController) Get(ctx *gin.Context) {
	enrollment, err := c.EnrollmentService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, enrollment)
}

// Resolve godoc
// @Summary Resolve the enrollment for a (user, schedule) pair
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Param user_id query int true "user id"
// @Param jadwal_id query int true "jadwal id"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response
// @Router /api/enrollment/get-id [get]
func (c *EnrollmentController) Resolve(ctx *gin.Context) {
	userID := util.ParseUintOrZero(ctx.Query("user_id"))
	jadwalID := util.ParseUintOrZero(ctx.Query("jadwal_id"))
	if userID == 0 || jadwalID == 0 {
		util.BadRequest(ctx, "user_id and jadwal_id are required")
		return
	}

	enrollment, err := c.EnrollmentService.GetByUserAndJadwal(userID, jadwalID)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, enrollment)
}

type SetLevelRequest struct {
	DifficultyLevel int `json:"difficulty_level" binding:"required,min=1,max=3"`
}

// SetLevel godoc
// @Summary Override a student's difficulty placement
// @Tags enrollment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "enrollment id"
// @Param body body SetLevelRequest true "new level"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response
// @Router /api/enrollment/{id} [put]
func (c *EnrollmentController) SetLevel(ctx *gin.Context) {
	var req SetLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.SetLevel(util.ParseUintOrZero(ctx.Param("id")), req.DifficultyLevel)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, enrollment)
}

// Delete godoc
// @Summary Remove an enrollment
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Param id path int true "enrollment id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/enrollment/{id} [delete]
func (c *EnrollmentController) Delete(ctx *gin.Context) {
	if err := c.EnrollmentService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}
