package controller

import (
	"errors"
	"time"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AbsensiController struct {
	AbsensiService *service.AbsensiService
}

func NewAbsensiController(absensiService *service.AbsensiService) *AbsensiController {
	return &AbsensiController{AbsensiService: absensiService}
}

// CreateAbsensiRequest is the attendance submission body. Students submit for
// a schedule; staff submit for an enrollment with an explicit date.
type CreateAbsensiRequest struct {
	JadwalID     uint   `json:"jadwal_id"`
	JadwalUserID uint   `json:"jadwal_user_id"`
	Tanggal      string `json:"tanggal"`
	Status       string `json:"status" binding:"required,oneof=hadir sakit izin alpa"`
}

// Create godoc
// @Summary Record attendance
// @Description Students record their own attendance for a schedule; the window and once-per-week rules are enforced server-side. Staff record for an enrollment directly, with an explicit date.
// @Tags absensis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAbsensiRequest true "attendance payload"
// @Success 201 {object} util.Response{data=model.Absensi}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/absensis [post]
func (c *AbsensiController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateAbsensiRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	status := model.AbsensiStatus(req.Status)

	if claims.Role == model.Siswa {
		if req.JadwalID == 0 {
			util.BadRequest(ctx, "jadwal_id is required")
			return
		}
		absensi, err := c.AbsensiService.SubmitOwn(claims.UserID, req.JadwalID, status, time.Now())
		if err != nil {
			switch {
			case errors.Is(err, util.ErrAttendanceClosed):
				util.BadRequest(ctx, "attendance window is closed")
			case errors.Is(err, util.ErrAttendanceDuplicate):
				util.Conflict(ctx, "attendance already submitted this week")
			case errors.Is(err, util.ErrEnrollmentNotFound):
				util.BadRequest(ctx, err.Error())
			default:
				util.LogInternalError(ctx, err)
			}
			return
		}
		util.Created(ctx, absensi)
		return
	}

	if req.JadwalUserID == 0 || req.Tanggal == "" {
		util.BadRequest(ctx, "jadwal_user_id and tanggal are required")
		return
	}
	tanggal, err := util.ParseDate(req.Tanggal)
	if err != nil {
		util.BadRequest(ctx, "tanggal must be YYYY-MM-DD")
		return
	}
	absensi, err := c.AbsensiService.Record(req.JadwalUserID, tanggal, status)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, absensi)
}

// List godoc
// @Summary List attendance records
// @Tags absensis
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Absensi}
// @Router /api/absensis [get]
func (c *AbsensiController) List(ctx *gin.Context) {
	absensis, err := c.AbsensiService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, absensis)
}

// Get godoc
// @Summary Get an attendance record by id
// @Tags absensis
// @Produce json
// @Security BearerAuth
// @Param id path int true "absensi id"
// @Success 200 {object} util.Response{data=model.Absensi}
// @Failure 404 {object} util.Response
// @Router /api/absensis/{id} [get]
func (c *AbsensiController) Get(ctx *gin.Context) {
	absensi, err := c.AbsensiService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, absensi)
}

// ByJadwal godoc
// @Summary List attendance for a schedule slot
// @Tags absensis
// @Produce json
// @Security BearerAuth
// @Param id path int true "jadwal id"
// @Param user_id query int false "filter by student"
// @Success 200 {object} util.Response{data=[]model.Absensi}
// @Router /api/absensis/jadwal/{id} [get]
func (c *AbsensiController) ByJadwal(ctx *gin.Context) {
	var userID *uint
	if ctx.Query("user_id") != "" {
		id := util.ParseUintOrZero(ctx.Query("user_id"))
		userID = &id
	}

	absensis, err := c.AbsensiService.GetByJadwal(util.ParseUintOrZero(ctx.Param("id")), userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, absensis)
}

// Eligibility godoc
// @Summary Check whether the caller may record attendance for a slot now
// @Tags absensis
// @Produce json
// @Security BearerAuth
// @Param jadwal_id path int true "jadwal id"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/absensis/eligibility/{jadwal_id} [get]
func (c *AbsensiController) Eligibility(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	eligibility, err := c.AbsensiService.Eligibility(claims.UserID, util.ParseUintOrZero(ctx.Param("jadwal_id")), time.Now())
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) || errors.Is(err, util.ErrUnknownHari) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.NotFound(ctx)
		}
		return
	}

	util.Success(ctx, gin.H{
		"eligible":      eligibility.Allowed(),
		"in_window":     eligibility.InWindow,
		"already_today": eligibility.AlreadyToday,
		"already_week":  eligibility.AlreadyWeek,
		"date":          eligibility.Window.Date.Format(util.DateFormat),
		"window_start":  eligibility.Window.Start,
		"window_end":    eligibility.Window.End,
	})
}

type UpdateAbsensiRequest struct {
	Status string `json:"status" binding:"required,oneof=hadir sakit izin alpa"`
}

// Update godoc
// @Summary Correct an attendance status
// @Tags absensis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "absensi id"
// @Param body body UpdateAbsensiRequest true "new status"
// @Success 200 {object} util.Response{data=model.Absensi}
// @Failure 404 {object} util.Response
// @Router /api/absensis/{id} [put]
func (c *AbsensiController) Update(ctx *gin.Context) {
	var req UpdateAbsensiRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	absensi, err := c.AbsensiService.UpdateStatus(util.ParseUintOrZero(ctx.Param("id")), model.AbsensiStatus(req.Status))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, absensi)
}

// Delete godoc
// @Summary Delete an attendance record
// @Tags absensis
// @Produce json
// @Security BearerAuth
// @Param id path int true "absensi id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/absensis/{id} [delete]
func (c *AbsensiController) Delete(ctx *gin.Context) {
	if err := c.AbsensiService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

// SummaryToday godoc
// @Summary Attendance ratio for today
// @Tags absensis
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.TodaySummary}
// @Router /api/absensi/summary-today [get]
func (c *AbsensiController) SummaryToday(ctx *gin.Context) {
	summary, err := c.AbsensiService.SummaryToday(time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
