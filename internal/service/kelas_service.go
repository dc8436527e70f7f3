package service

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
)

type KelasService struct {
	KelasRepo *repository.KelasRepository
}

func NewKelasService(kelasRepo *repository.KelasRepository) *KelasService {
	return &KelasService{KelasRepo: kelasRepo}
}

func (s *KelasService) Create(kelas *model.Kelas) error {
	return s.KelasRepo.Create(kelas)
}

func (s *KelasService) GetByID(id uint) (*model.Kelas, error) {
	return s.KelasRepo.FindByID(id)
}

func (s *KelasService) GetAll() ([]model.Kelas, error) {
	return s.KelasRepo.FindAll()
}

func (s *KelasService) Update(id uint, name string) (*model.Kelas, error) {
	kelas, err := s.KelasRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	kelas.Name = name
	if err := s.KelasRepo.Update(kelas); err != nil {
		return nil, err
	}
	return kelas, nil
}

func (s *KelasService) Delete(id uint) error {
	if _, err := s.KelasRepo.FindByID(id); err != nil {
		return err
	}
	return s.KelasRepo.Delete(id)
}

func (s *KelasService) Count() (int64, error) {
	return s.KelasRepo.Count()
}
