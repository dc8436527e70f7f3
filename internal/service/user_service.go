package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo       *repository.UserRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Storage        *StorageService
}

func NewUserService(userRepo *repository.UserRepository, enrollmentRepo *repository.EnrollmentRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo:       userRepo,
		EnrollmentRepo: enrollmentRepo,
		Storage:        storage,
	}
}

func (s *UserService) Create(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if !user.Role.Valid() {
		user.Role = model.Siswa
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Create(user)
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

func (s *UserService) GetByIDFull(id uint) (*model.User, error) {
	return s.UserRepo.FindByIDFull(id)
}

func (s *UserService) GetAll() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) GetByRole(role model.UserRole) ([]model.User, error) {
	return s.UserRepo.FindByRole(role)
}

// GetByJadwal lists the students enrolled in a schedule.
func (s *UserService) GetByJadwal(jadwalID uint) ([]model.User, error) {
	enrollments, err := s.EnrollmentRepo.FindByJadwal(jadwalID)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(enrollments))
	for _, e := range enrollments {
		if e.User.ID != 0 {
			users = append(users, e.User)
		}
	}
	return users, nil
}

// UserUpdate carries the mutable profile fields. Nil pointers leave the
// current value untouched.
type UserUpdate struct {
	Name      *string
	Email     *string
	Password  *string
	Role      *model.UserRole
	Gender    *string
	BirthDate *string
	EntryYear *string
	Address   *string
}

func (s *UserService) Update(id uint, update *UserUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil && *update.Email != user.Email {
		if _, err := s.UserRepo.FindByEmail(*update.Email); err == nil {
			return nil, util.ErrEmailRegistered
		}
		user.Email = *update.Email
	}
	if update.Password != nil && *update.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	if update.Role != nil && update.Role.Valid() {
		user.Role = *update.Role
	}
	if update.Gender != nil {
		user.Gender = update.Gender
	}
	if update.BirthDate != nil {
		parsed, err := util.ParseDate(*update.BirthDate)
		if err != nil {
			return nil, err
		}
		user.BirthDate = &parsed
	}
	if update.EntryYear != nil {
		user.EntryYear = update.EntryYear
	}
	if update.Address != nil {
		user.Address = update.Address
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadProfilePhoto stores a new avatar and records its name and URL on the
// user row.
func (s *UserService) UploadProfilePhoto(ctx context.Context, userID uint, file *multipart.FileHeader) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	mimeType, err := util.ValidateMimeType(src, []string{util.MimeImage})
	src.Close()
	if err != nil {
		return nil, err
	}

	src, err = file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := fmt.Sprintf("profiles/%s%s", uuid.New().String(), ext)
	url, err := s.Storage.Upload(ctx, filename, src, file.Size, mimeType)
	if err != nil {
		return nil, err
	}

	if user.ProfilePath != nil {
		s.Storage.Delete(ctx, strings.TrimPrefix(*user.ProfilePath, "/uploads/"))
	}

	original := file.Filename
	user.ProfileName = &original
	user.ProfilePath = &url
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.UserRepo.FindByID(id); err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.Delete(id)
}

func (s *UserService) Count() (int64, error) {
	return s.UserRepo.Count()
}

// RoleCount pairs a role with how many users hold it.
type RoleCount struct {
	Role  model.UserRole `json:"role"`
	Count int64          `json:"count"`
}

func (s *UserService) RoleDistribution() ([]RoleCount, error) {
	distribution := make([]RoleCount, 0, len(model.AllRoles()))
	for _, role := range model.AllRoles() {
		count, err := s.UserRepo.CountByRole(role)
		if err != nil {
			return nil, err
		}
		distribution = append(distribution, RoleCount{Role: role, Count: count})
	}
	return distribution, nil
}
