package controller

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type KelasController struct {
	KelasService *service.KelasService
}

func NewKelasController(kelasService *service.KelasService) *KelasController {
	return &KelasController{KelasService: kelasService}
}

type KelasRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create godoc
// @Summary Create a class
// @Tags kelas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body KelasRequest true "class payload"
// @Success 201 {object} util.Response{data=model.Kelas}
// @Router /api/kelas [post]
func (c *KelasController) Create(ctx *gin.Context) {
	var req KelasRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	kelas := &model.Kelas{Name: req.Name}
	if err := c.KelasService.Create(kelas); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, kelas)
}

// List godoc
// @Summary List classes
// @Tags kelas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Kelas}
// @Router /api/kelas [get]
func (c *KelasController) List(ctx *gin.Context) {
	kelas, err := c.KelasService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, kelas)
}

// Get godoc
// @Summary Get a class by id
// @Tags kelas
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Success 200 {object} util.Response{data=model.Kelas}
// @Failure 404 {object} util.Response
// @Router /api/kelas/{id} [get]
func (c *KelasController) Get(ctx *gin.Context) {
	kelas, err := c.KelasService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, kelas)
}

// Update godoc
// @Summary Rename a class
// @Tags kelas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Param body body KelasRequest true "class payload"
// @Success 200 {object} util.Response{data=model.Kelas}
// @Failure 404 {object} util.Response
// @Router /api/kelas/{id} [put]
func (c *KelasController) Update(ctx *gin.Context) {
	var req KelasRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	kelas, err := c.KelasService.Update(util.ParseUintOrZero(ctx.Param("id")), req.Name)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, kelas)
}

// Delete godoc
// @Summary Delete a class
// @Tags kelas
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/kelas/{id} [delete]
func (c *KelasController) Delete(ctx *gin.Context) {
	if err := c.KelasService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

// Count godoc
// @Summary Count classes
// @Tags kelas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/kelas/count [get]
func (c *KelasController) Count(ctx *gin.Context) {
	count, err := c.KelasService.Count()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"count": count})
}
