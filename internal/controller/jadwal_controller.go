package controller

import (
	"errors"
	"strconv"
	"time"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JadwalController struct {
	JadwalService *service.JadwalService
}

func NewJadwalController(jadwalService *service.JadwalService) *JadwalController {
	return &JadwalController{JadwalService: jadwalService}
}

type JadwalRequest struct {
	KelasID    *uint  `json:"kelas_id"`
	SubjectID  *uint  `json:"subject_id"`
	GuruID     *uint  `json:"guru_id"`
	Hari       string `json:"hari" binding:"required"`
	JamMulai   string `json:"jam_mulai" binding:"required"`
	JamSelesai string `json:"jam_selesai" binding:"required"`
}

// Create godoc
// @Summary Create a weekly schedule slot
// @Tags jadwals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body JadwalRequest true "schedule payload"
// @Success 201 {object} util.Response{data=model.Jadwal}
// @Failure 400 {object} util.Response
// @Router /api/jadwals [post]
func (c *JadwalController) Create(ctx *gin.Context) {
	var req JadwalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	jadwal := &model.Jadwal{
		KelasID:    req.KelasID,
		SubjectID:  req.SubjectID,
		GuruID:     req.GuruID,
		Hari:       req.Hari,
		JamMulai:   req.JamMulai,
		JamSelesai: req.JamSelesai,
	}
	if err := c.JadwalService.Create(jadwal); err != nil {
		if errors.Is(err, util.ErrUnknownHari) {
			util.BadRequest(ctx, "unknown day name")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, jadwal)
}

// List godoc
// @Summary List schedule slots
// @Tags jadwals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Jadwal}
// @Router /api/jadwals [get]
func (c *JadwalController) List(ctx *gin.Context) {
	jadwals, err := c.JadwalService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, jadwals)
}

// Get godoc
// @Summary Get a schedule slot by id
// @Tags jadwals
// @Produce json
// @Security BearerAuth
// @Param id path int true "jadwal id"
// @Success 200 {object} util.Response{data=model.Jadwal}
// @Failure 404 {object} util.Response
// @Router /api/jadwals/{id} [get]
func (c *JadwalController) Get(ctx *gin.Context) {
	jadwal, err := c.JadwalService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, jadwal)
}

// Today godoc
// @Summary List slots meeting today
// @Tags jadwals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Jadwal}
// @Router /api/jadwal/today [get]
func (c *JadwalController) Today(ctx *gin.Context) {
	jadwals, err := c.JadwalService.GetToday(time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, jadwals)
}

// Upcoming godoc
// @Summary List the next occurrences across all slots
// @Tags jadwals
// @Produce json
// @Security BearerAuth
// @Param limit query int false "max results" default(5)
// @Success 200 {object} util.Response{data=[]service.UpcomingJadwal}
// @Router /api/jadwal/upcoming [get]
func (c *JadwalController) Upcoming(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "5"))
	if err != nil || limit < 0 {
		limit = 5
	}
	upcoming, err := c.JadwalService.GetUpcoming(time.Now(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, upcoming)
}

// ByGuru godoc
// @Summary List the slots a teacher teaches
// @Tags jadwals
// @Produce json
// @Security BearerAuth
// @Param id path int true "guru id"
// @Success 200 {object} util.Response{data=[]model.Jadwal}
// @Router /api/guru/kelas/{id} [get]
func (c *JadwalController) ByGuru(ctx *gin.Context) {
	jadwals, err := c.JadwalService.GetByGuru(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, jadwals)
}

// BySiswa godoc
// @Summary List the slots a student is enrolled in
// @Tags jadwals
// @Produce json
// @Security BearerAuth
// @Param id path int true "siswa id"
// @Success 200 {object} util.Response{data=[]model.Jadwal}
// @Router /api/siswa/kelas/{id} [get]
func (c *JadwalController) BySiswa(ctx *gin.Context) {
	jadwals, err := c.JadwalService.GetBySiswa(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, jadwals)
}

// Update godoc
// @Summary Update a schedule slot
// @Tags jadwals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "jadwal id"
// @Param body body JadwalRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.Jadwal}
// @Failure 404 {object} util.Response
// @Router /api/jadwals/{id} [put]
func (c *JadwalController) Update(ctx *gin.Context) {
	var req JadwalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	jadwal, err := c.JadwalService.Update(util.ParseUintOrZero(ctx.Param("id")), &model.Jadwal{
		KelasID:    req.KelasID,
		SubjectID:  req.SubjectID,
		GuruID:     req.GuruID,
		Hari:       req.Hari,
		JamMulai:   req.JamMulai,
		JamSelesai: req.JamSelesai,
	})
	if err != nil {
		if errors.Is(err, util.ErrUnknownHari) {
			util.BadRequest(ctx, "unknown day name")
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, jadwal)
}

// Delete godoc
// @Summary Delete a schedule slot
// @Tags jadwals
// @Produce json
// @Security BearerAuth
// @Param id path int true "jadwal id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/jadwals/{id} [delete]
func (c *JadwalController) Delete(ctx *gin.Context) {
	if err := c.JadwalService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}
