package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/darkr4m/actually-star-k9/core/constants"
	coreentity "github.com/darkr4m/actually-star-k9/core/entity"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/logger"
	"github.com/darkr4m/actually-star-k9/core/params"
	"github.com/darkr4m/actually-star-k9/core/storage"
	"github.com/darkr4m/actually-star-k9/core/utils"
	"github.com/darkr4m/actually-star-k9/modules/dogs/dto"
	"github.com/darkr4m/actually-star-k9/modules/dogs/entity"
	"github.com/darkr4m/actually-star-k9/modules/dogs/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type DogService interface {
	CreateDog(ctx context.Context, req *dto.CreateDogRequest) (*entity.Dog, error)
	GetDog(ctx context.Context, id uuid.UUID) (*entity.Dog, error)
	ListDogs(ctx context.Context, qp *params.QueryParams) (*coreentity.Pagination[*entity.Dog], error)
	UpdateDog(ctx context.Context, id uuid.UUID, req *dto.UpdateDogRequest) (*entity.Dog, error)
	DeleteDog(ctx context.Context, id uuid.UUID) error
	UploadPhoto(ctx context.Context, id uuid.UUID, body io.Reader, contentType string) (*dto.PhotoUploadResponse, error)
}

type dogService struct {
	repo  repository.DogRepository
	store storage.ObjectStore
}

func NewDogService(repo repository.DogRepository, store storage.ObjectStore) DogService {
	return &dogService{
		repo:  repo,
		store: store,
	}
}

func (s *dogService) CreateDog(ctx context.Context, req *dto.CreateDogRequest) (*entity.Dog, error) {
	sex := entity.DogSex(req.Sex)
	if req.Sex == "" {
		sex = entity.DogSexUnknown
	}
	status := entity.DogStatus(req.Status)
	if req.Status == "" {
		status = entity.DogStatusProspective
	}

	dog, err := s.repo.CreateDog(ctx, &entity.Dog{
		ClientID:              req.ClientID,
		Name:                  strings.TrimSpace(req.Name),
		Breed:                 strings.TrimSpace(req.Breed),
		DateOfBirth:           req.DateOfBirth,
		Sex:                   sex,
		IsAltered:             req.IsAltered,
		ColorMarkings:         strings.TrimSpace(req.ColorMarkings),
		WeightKg:              req.WeightKg,
		Status:                status,
		BehavioralNotes:       req.BehavioralNotes,
		TrainingGoals:         req.TrainingGoals,
		PreviousTraining:      req.PreviousTraining,
		VaccinationRabies:     req.VaccinationRabies,
		VaccinationDHPP:       req.VaccinationDHPP,
		VaccinationBordetella: req.VaccinationBordetella,
		Parasites:             req.Parasites,
		VeterinarianName:      strings.TrimSpace(req.VeterinarianName),
		VeterinarianPhone:     strings.TrimSpace(req.VeterinarianPhone),
		MedicalNotes:          req.MedicalNotes,
	})
	if err != nil {
		logger.Error("DogService:CreateDog:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create dog", err)
	}

	logger.Info("DogService:CreateDog:Success", "dogId", dog.ID)
	return dog, nil
}

func (s *dogService) GetDog(ctx context.Context, id uuid.UUID) (*entity.Dog, error) {
	dog, err := s.repo.GetDogByID(ctx, id)
	if err != nil {
		logger.Error("DogService:GetDog:Error", "error", err, "dogId", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load dog", err)
	}
	if dog == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "dog not found", nil)
	}
	return dog, nil
}

func (s *dogService) ListDogs(ctx context.Context, qp *params.QueryParams) (*coreentity.Pagination[*entity.Dog], error) {
	dogs, total, err := s.repo.ListDogs(ctx, qp)
	if err != nil {
		logger.Error("DogService:ListDogs:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list dogs", err)
	}
	return &coreentity.Pagination[*entity.Dog]{
		Items:      dogs,
		TotalItems: total,
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

func (s *dogService) UpdateDog(ctx context.Context, id uuid.UUID, req *dto.UpdateDogRequest) (*entity.Dog, error) {
	dog, err := s.repo.GetDogByID(ctx, id)
	if err != nil {
		logger.Error("DogService:UpdateDog:Lookup", "error", err, "dogId", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load dog", err)
	}
	if dog == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "dog not found", nil)
	}

	applyDogUpdate(dog, req)

	updated, err := s.repo.UpdateDog(ctx, dog)
	if err != nil {
		logger.Error("DogService:UpdateDog:Update", "error", err, "dogId", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update dog", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "dog not found", nil)
	}

	logger.Info("DogService:UpdateDog:Success", "dogId", id)
	return updated, nil
}

func applyDogUpdate(dog *entity.Dog, req *dto.UpdateDogRequest) {
	if req.ClientID != nil {
		dog.ClientID = req.ClientID
	}
	if req.Name != nil {
		dog.Name = strings.TrimSpace(*req.Name)
	}
	if req.Breed != nil {
		dog.Breed = strings.TrimSpace(*req.Breed)
	}
	if req.DateOfBirth != nil {
		dog.DateOfBirth = req.DateOfBirth
	}
	if req.Sex != nil {
		dog.Sex = entity.DogSex(*req.Sex)
	}
	if req.IsAltered != nil {
		dog.IsAltered = req.IsAltered
	}
	if req.ColorMarkings != nil {
		dog.ColorMarkings = strings.TrimSpace(*req.ColorMarkings)
	}
	if req.WeightKg != nil {
		dog.WeightKg = req.WeightKg
	}
	if req.Status != nil {
		dog.Status = entity.DogStatus(*req.Status)
	}
	if req.BehavioralNotes != nil {
		dog.BehavioralNotes = *req.BehavioralNotes
	}
	if req.TrainingGoals != nil {
		dog.TrainingGoals = *req.TrainingGoals
	}
	if req.PreviousTraining != nil {
		dog.PreviousTraining = *req.PreviousTraining
	}
	if req.VaccinationRabies != nil {
		dog.VaccinationRabies = req.VaccinationRabies
	}
	if req.VaccinationDHPP != nil {
		dog.VaccinationDHPP = req.VaccinationDHPP
	}
	if req.VaccinationBordetella != nil {
		dog.VaccinationBordetella = req.VaccinationBordetella
	}
	if req.Parasites != nil {
		dog.Parasites = req.Parasites
	}
	if req.VeterinarianName != nil {
		dog.VeterinarianName = strings.TrimSpace(*req.VeterinarianName)
	}
	if req.VeterinarianPhone != nil {
		dog.VeterinarianPhone = strings.TrimSpace(*req.VeterinarianPhone)
	}
	if req.MedicalNotes != nil {
		dog.MedicalNotes = *req.MedicalNotes
	}
}

func (s *dogService) DeleteDog(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteDog(ctx, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NewAppError(errors.ErrNotFound, "dog not found", nil)
		}
		logger.Error("DogService:DeleteDog:Error", "error", err, "dogId", id)
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete dog", err)
	}
	logger.Info("DogService:DeleteDog:Success", "dogId", id)
	return nil
}

// UploadPhoto stores the photo under a key derived from the dog's name plus
// a random suffix, then records the public URL on the dog.
func (s *dogService) UploadPhoto(ctx context.Context, id uuid.UUID, body io.Reader, contentType string) (*dto.PhotoUploadResponse, error) {
	if s.store == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "photo uploads are not configured", nil)
	}

	dog, err := s.repo.GetDogByID(ctx, id)
	if err != nil {
		logger.Error("DogService:UploadPhoto:Lookup", "error", err, "dogId", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load dog", err)
	}
	if dog == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "dog not found", nil)
	}

	key := fmt.Sprintf("%s%s-%s", constants.DogPhotoPrefix, slug.Make(dog.Name), utils.GenerateID())
	url, err := s.store.Put(ctx, key, body, contentType)
	if err != nil {
		logger.Error("DogService:UploadPhoto:Put", "error", err, "dogId", id)
		return nil, errors.NewAppError(errors.ErrStorageFailure, "failed to upload photo", err)
	}

	if err := s.repo.SetPhotoURL(ctx, id, url); err != nil {
		logger.Error("DogService:UploadPhoto:Persist", "error", err, "dogId", id)
		return nil, errors.NewAppError(errors.ErrStorageFailure, "failed to record photo url", err)
	}

	logger.Info("DogService:UploadPhoto:Success", "dogId", id, "key", key)
	return &dto.PhotoUploadResponse{PhotoURL: url}, nil
}
