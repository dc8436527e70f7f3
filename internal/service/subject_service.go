package service

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
}

func NewSubjectService(subjectRepo *repository.SubjectRepository) *SubjectService {
	return &SubjectService{SubjectRepo: subjectRepo}
}

func (s *SubjectService) Create(subject *model.Subject) error {
	return s.SubjectRepo.Create(subject)
}

func (s *SubjectService) GetByID(id uint) (*model.Subject, error) {
	return s.SubjectRepo.FindByID(id)
}

func (s *SubjectService) GetAll() ([]model.Subject, error) {
	return s.SubjectRepo.FindAll()
}

func (s *SubjectService) Update(id uint, update *model.Subject) (*model.Subject, error) {
	subject, err := s.SubjectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if update.Name != "" {
		subject.Name = update.Name
	}
	if update.Code != "" {
		subject.Code = update.Code
	}
	if update.Singkatan != "" {
		subject.Singkatan = update.Singkatan
	}
	if err := s.SubjectRepo.Update(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) Delete(id uint) error {
	if _, err := s.SubjectRepo.FindByID(id); err != nil {
		return err
	}
	return s.SubjectRepo.Delete(id)
}

func (s *SubjectService) Count() (int64, error) {
	return s.SubjectRepo.Count()
}
