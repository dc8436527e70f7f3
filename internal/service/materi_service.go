package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"
	"adaptive_learning_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MateriService struct {
	MateriRepo *repository.MateriRepository
	Storage    *StorageService
}

func NewMateriService(materiRepo *repository.MateriRepository, storage *StorageService) *MateriService {
	return &MateriService{
		MateriRepo: materiRepo,
		Storage:    storage,
	}
}

func (s *MateriService) Create(materi *model.Materi) error {
	if materi.DifficultyLevel < model.MinDifficultyLevel || materi.DifficultyLevel > model.MaxDifficultyLevel {
		materi.DifficultyLevel = model.MinDifficultyLevel
	}
	return s.MateriRepo.Create(materi)
}

// AttachFile stores an uploaded lesson file on a material. Videos are probed
// for duration and get a generated thumbnail; other types are stored as-is.
func (s *MateriService) AttachFile(ctx context.Context, materiID uint, file *multipart.FileHeader) (*model.Materi, error) {
	materi, err := s.MateriRepo.FindByID(materiID)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	mimeType, err := util.ValidateMimeType(src, []string{util.MimeImage, util.MimeVideo, util.MimePDF, util.MimeOctetStream})
	src.Close()
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	isVideo := util.IsVideo(mimeType) || (mimeType == util.MimeOctetStream && util.HasVideoExtension(ext))

	// Spool to a temp file so ffmpeg can read it before it goes to storage.
	tmp, err := os.CreateTemp("", "materi-*"+ext)
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	src, err = file.Open()
	if err != nil {
		tmp.Close()
		return nil, err
	}
	if _, err := tmp.ReadFrom(src); err != nil {
		src.Close()
		tmp.Close()
		return nil, err
	}
	src.Close()
	tmp.Close()

	objectName := fmt.Sprintf("materi/%s%s", uuid.New().String(), ext)
	url, err := s.Storage.UploadFile(ctx, objectName, tmpPath, mimeType)
	if err != nil {
		return nil, err
	}

	original := file.Filename
	materi.FileName = &original
	materi.FilePath = &url
	materi.VideoDuration = nil
	materi.ThumbnailPath = nil

	if isVideo {
		if info, err := util.GetVideoInfo(tmpPath); err != nil {
			logger.Log.Warn("video probe failed", zap.Uint("materi_id", materiID), zap.Error(err))
		} else {
			materi.VideoDuration = &info.Duration
		}

		thumbTmp := tmpPath + ".jpg"
		if err := util.GenerateThumbnail(tmpPath, thumbTmp, "00:00:01"); err != nil {
			logger.Log.Warn("thumbnail generation failed", zap.Uint("materi_id", materiID), zap.Error(err))
		} else {
			defer os.Remove(thumbTmp)
			thumbName := fmt.Sprintf("materi/thumbnails/%s.jpg", uuid.New().String())
			thumbURL, err := s.Storage.UploadFile(ctx, thumbName, thumbTmp, "image/jpeg")
			if err != nil {
				logger.Log.Warn("thumbnail upload failed", zap.Uint("materi_id", materiID), zap.Error(err))
			} else {
				materi.ThumbnailPath = &thumbURL
			}
		}
	}

	if err := s.MateriRepo.Update(materi); err != nil {
		return nil, err
	}
	return materi, nil
}

func (s *MateriService) GetByID(id uint) (*model.Materi, error) {
	return s.MateriRepo.FindByID(id)
}

func (s *MateriService) GetAll() ([]model.Materi, error) {
	return s.MateriRepo.FindAll()
}

func (s *MateriService) GetByJadwal(jadwalID uint) ([]model.Materi, error) {
	return s.MateriRepo.FindByJadwal(jadwalID)
}

// ForStudentLevel filters a schedule's materials to those at or below the
// student's current placement. Unplaced students see level 1 material only.
func (s *MateriService) ForStudentLevel(jadwalID uint, level *int) ([]model.Materi, error) {
	materis, err := s.MateriRepo.FindByJadwal(jadwalID)
	if err != nil {
		return nil, err
	}
	maxLevel := model.MinDifficultyLevel
	if level != nil {
		maxLevel = *level
	}
	filtered := make([]model.Materi, 0, len(materis))
	for _, m := range materis {
		if m.DifficultyLevel <= maxLevel {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func (s *MateriService) Update(id uint, update *model.Materi) (*model.Materi, error) {
	materi, err := s.MateriRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if update.Title != "" {
		materi.Title = update.Title
	}
	if update.Description != "" {
		materi.Description = update.Description
	}
	if update.JadwalID != 0 {
		materi.JadwalID = update.JadwalID
	}
	if update.DifficultyLevel >= model.MinDifficultyLevel && update.DifficultyLevel <= model.MaxDifficultyLevel {
		materi.DifficultyLevel = update.DifficultyLevel
	}
	if err := s.MateriRepo.Update(materi); err != nil {
		return nil, err
	}
	return materi, nil
}

func (s *MateriService) Delete(ctx context.Context, id uint) error {
	materi, err := s.MateriRepo.FindByID(id)
	if err != nil {
		return err
	}
	if materi.FilePath != nil {
		s.Storage.Delete(ctx, strings.TrimPrefix(*materi.FilePath, "/uploads/"))
	}
	if materi.ThumbnailPath != nil {
		s.Storage.Delete(ctx, strings.TrimPrefix(*materi.ThumbnailPath, "/uploads/"))
	}
	return s.MateriRepo.Delete(id)
}
