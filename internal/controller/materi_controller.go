package controller

import (
	"strconv"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MateriController struct {
	MateriService     *service.MateriService
	EnrollmentService *service.EnrollmentService
}

func NewMateriController(materiService *service.MateriService, enrollmentService *service.EnrollmentService) *MateriController {
	return &MateriController{
		MateriService:     materiService,
		EnrollmentService: enrollmentService,
	}
}

// Create godoc
// @Summary Create a lesson material, optionally with a file
// @Description Multipart form: title, description, jadwal_id, difficulty_level, and an optional file field. Video files are probed for duration and get a thumbnail.
// @Tags materis
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} util.Response{data=model.Materi}
// @Failure 400 {object} util.Response
// @Router /api/materis [post]
func (c *MateriController) Create(ctx *gin.Context) {
	jadwalID := util.ParseUintOrZero(ctx.PostForm("jadwal_id"))
	title := ctx.PostForm("title")
	if jadwalID == 0 || title == "" {
		util.BadRequest(ctx, "jadwal_id and title are required")
		return
	}
	level, _ := strconv.Atoi(ctx.DefaultPostForm("difficulty_level", "1"))

	materi := &model.Materi{
		JadwalID:        jadwalID,
		Title:           title,
		Description:     ctx.PostForm("description"),
		DifficultyLevel: level,
	}
	if err := c.MateriService.Create(materi); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if file, err := ctx.FormFile("file"); err == nil {
		updated, err := c.MateriService.AttachFile(ctx.Request.Context(), materi.ID, file)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		materi = updated
	}
	util.Created(ctx, materi)
}

// List godoc
// @Summary List lesson materials
// @Tags materis
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Materi}
// @Router /api/materis [get]
func (c *MateriController) List(ctx *gin.Context) {
	materis, err := c.MateriService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, materis)
}

// Get godoc
// @Summary Get a material by id
// @Tags materis
// @Produce json
// @Security BearerAuth
// @Param id path int true "materi id"
// @Success 200 {object} util.Response{data=model.Materi}
// @Failure 404 {object} util.Response
// @Router /api/materis/{id} [get]
func (c *MateriController) Get(ctx *gin.Context) {
	materi, err := c.MateriService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, materi)
}

// ByJadwal godoc
// @Summary List a schedule's materials
// @Description Students see only material at or below their current difficulty placement; staff see everything.
// @Tags materis
// @Produce json
// @Security BearerAuth
// @Param id path int true "jadwal id"
// @Success 200 {object} util.Response{data=[]model.Materi}
// @Router /api/materis/jadwal/{id} [get]
func (c *MateriController) ByJadwal(ctx *gin.Context) {
	jadwalID := util.ParseUintOrZero(ctx.Param("id"))
	claims := util.GetUserFromContext(ctx)

	if claims != nil && claims.Role == model.Siswa {
		enrollment, err := c.EnrollmentService.GetByUserAndJadwal(claims.UserID, jadwalID)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		materis, err := c.MateriService.ForStudentLevel(jadwalID, enrollment.DifficultyLevel)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, materis)
		return
	}

	materis, err := c.MateriService.GetByJadwal(jadwalID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, materis)
}

// Update godoc
// @Summary Update a material, optionally replacing its file
// @Tags materis
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "materi id"
// @Success 200 {object} util.Response{data=model.Materi}
// @Failure 404 {object} util.Response
// @Router /api/materis/{id} [put]
func (c *MateriController) Update(ctx *gin.Context) {
	id := util.ParseUintOrZero(ctx.Param("id"))

	update := &model.Materi{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
		JadwalID:    util.ParseUintOrZero(ctx.PostForm("jadwal_id")),
	}
	if v := ctx.PostForm("difficulty_level"); v != "" {
		update.DifficultyLevel, _ = strconv.Atoi(v)
	}

	materi, err := c.MateriService.Update(id, update)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	if file, err := ctx.FormFile("file"); err == nil {
		materi, err = c.MateriService.AttachFile(ctx.Request.Context(), id, file)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	util.Success(ctx, materi)
}

// Delete godoc
// @Summary Delete a material and its stored files
// @Tags materis
// @Produce json
// @Security BearerAuth
// @Param id path int true "materi id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/materis/{id} [delete]
func (c *MateriController) Delete(ctx *gin.Context) {
	if err := c.MateriService.Delete(ctx.Request.Context(), util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}
