package controller

import (
	"errors"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// CreateUserRequest is the admin user-creation payload.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin guru siswa"`
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateUserRequest true "user payload"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 409 {object} util.Response
// @Router /api/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.UserRole(req.Role),
	}
	if err := c.UserService.Create(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Conflict(ctx, "email already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, user)
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	user, err := c.UserService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}

// GetFull godoc
// @Summary Get a user with enrollments and answer history
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/all/{id} [get]
func (c *UserController) GetFull(ctx *gin.Context) {
	user, err := c.UserService.GetByIDFull(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}

// ListGuru lists teacher accounts.
// @Summary List teachers
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/guru [get]
func (c *UserController) ListGuru(ctx *gin.Context) {
	users, err := c.UserService.GetByRole(model.Guru)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// ListSiswa lists student accounts.
// @Summary List students
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/siswa [get]
func (c *UserController) ListSiswa(ctx *gin.Context) {
	users, err := c.UserService.GetByRole(model.Siswa)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// ListByJadwal godoc
// @Summary List students enrolled in a schedule
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "jadwal id"
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/users/jadwal/{id} [get]
func (c *UserController) ListByJadwal(ctx *gin.Context) {
	users, err := c.UserService.GetByJadwal(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// UpdateUserRequest carries optional profile fields; absent fields keep their
// current values.
type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	Role      *string `json:"role" binding:"omitempty,oneof=admin guru siswa"`
	Gender    *string `json:"gender"`
	BirthDate *string `json:"tanggal_lahir"`
	EntryYear *string `json:"tahun_masuk"`
	Address   *string `json:"address"`
}

func (r *UpdateUserRequest) toUpdate() *service.UserUpdate {
	update := &service.UserUpdate{
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		Gender:    r.Gender,
		BirthDate: r.BirthDate,
		EntryYear: r.EntryYear,
		Address:   r.Address,
	}
	if r.Role != nil {
		role := model.UserRole(*r.Role)
		update.Role = &role
	}
	return update
}

// Update godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param body body UpdateUserRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(util.ParseUintOrZero(ctx.Param("id")), req.toUpdate())
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrEmailRegistered):
			util.Conflict(ctx, "email already registered")
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, user)
}

// UpdateMultipart accepts the browser form convention: a multipart POST with a
// _method=PUT override, optional field values and an optional replacement photo.
// @Summary Update a user via multipart form
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [post]
func (c *UserController) UpdateMultipart(ctx *gin.Context) {
	if method, ok := ctx.GetPostForm("_method"); ok && method != "PUT" {
		util.BadRequest(ctx, "unsupported method override")
		return
	}

	id := util.ParseUintOrZero(ctx.Param("id"))
	update := &service.UserUpdate{}
	if v, ok := ctx.GetPostForm("name"); ok {
		update.Name = &v
	}
	if v, ok := ctx.GetPostForm("email"); ok {
		update.Email = &v
	}
	if v, ok := ctx.GetPostForm("password"); ok {
		update.Password = &v
	}
	if v, ok := ctx.GetPostForm("role"); ok {
		role := model.UserRole(v)
		if !role.Valid() {
			util.BadRequest(ctx, "unknown role")
			return
		}
		update.Role = &role
	}
	if v, ok := ctx.GetPostForm("gender"); ok {
		update.Gender = &v
	}
	if v, ok := ctx.GetPostForm("tanggal_lahir"); ok {
		update.BirthDate = &v
	}
	if v, ok := ctx.GetPostForm("tahun_masuk"); ok {
		update.EntryYear = &v
	}
	if v, ok := ctx.GetPostForm("address"); ok {
		update.Address = &v
	}

	user, err := c.UserService.Update(id, update)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrEmailRegistered):
			util.Conflict(ctx, "email already registered")
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	if file, err := ctx.FormFile("profile"); err == nil {
		user, err = c.UserService.UploadProfilePhoto(ctx.Request.Context(), id, file)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	util.Success(ctx, user)
}

// UpdateProfile lets the logged-in user edit their own profile fields and
// optionally replace their photo via multipart form.
// @Summary Update own profile
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	update := &service.UserUpdate{}
	if v, ok := ctx.GetPostForm("name"); ok {
		update.Name = &v
	}
	if v, ok := ctx.GetPostForm("gender"); ok {
		update.Gender = &v
	}
	if v, ok := ctx.GetPostForm("tanggal_lahir"); ok {
		update.BirthDate = &v
	}
	if v, ok := ctx.GetPostForm("tahun_masuk"); ok {
		update.EntryYear = &v
	}
	if v, ok := ctx.GetPostForm("address"); ok {
		update.Address = &v
	}

	user, err := c.UserService.Update(claims.UserID, update)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if file, err := ctx.FormFile("profile"); err == nil {
		user, err = c.UserService.UploadProfilePhoto(ctx.Request.Context(), claims.UserID, file)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	util.Success(ctx, user)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.UserService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

// Count godoc
// @Summary Count users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/users/count [get]
func (c *UserController) Count(ctx *gin.Context) {
	count, err := c.UserService.Count()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"count": count})
}

// Roles lists the role names the portal recognizes.
// @Summary List roles
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserRole}
// @Router /api/roles [get]
func (c *UserController) Roles(ctx *gin.Context) {
	util.Success(ctx, model.AllRoles())
}

// RoleDistribution godoc
// @Summary Count users per role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.RoleCount}
// @Router /api/roles/distribution [get]
func (c *UserController) RoleDistribution(ctx *gin.Context) {
	distribution, err := c.UserService.RoleDistribution()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, distribution)
}
