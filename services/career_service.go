package services

import (
	"context"
	"fmt"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/repository"
	"github.com/emrekav/ajansly/ws"
)

// CareerService, açık pozisyon ilanları iş mantığı interface'i.
// GetActive herkese açık kariyer sayfasını, GetAll admin panelini besler.
type CareerService interface {
	GetActive(ctx context.Context) ([]models.Career, error)
	GetAll(ctx context.Context) ([]models.Career, error)
	GetByID(ctx context.Context, id string) (*models.Career, error)
	Create(ctx context.Context, req *models.CreateCareerRequest) (*models.Career, error)
	Update(ctx context.Context, id string, req *models.UpdateCareerRequest) (*models.Career, error)
	Delete(ctx context.Context, id string) error
}

type careerService struct {
	careerRepo repository.CareerRepository
	hub        ws.EventPublisher
}

func NewCareerService(careerRepo repository.CareerRepository, hub ws.EventPublisher) CareerService {
	return &careerService{
		careerRepo: careerRepo,
		hub:        hub,
	}
}

func (s *careerService) GetActive(ctx context.Context) ([]models.Career, error) {
	return s.careerRepo.GetActive(ctx)
}

func (s *careerService) GetAll(ctx context.Context) ([]models.Career, error) {
	return s.careerRepo.GetAll(ctx)
}

func (s *careerService) GetByID(ctx context.Context, id string) (*models.Career, error) {
	return s.careerRepo.GetByID(ctx, id)
}

func (s *careerService) Create(ctx context.Context, req *models.CreateCareerRequest) (*models.Career, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	career := &models.Career{
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Type:        models.CareerType(req.Type),
		Description: req.Description,
		Active:      req.Active,
	}

	if err := s.careerRepo.Create(ctx, career); err != nil {
		return nil, fmt.Errorf("failed to create career: %w", err)
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("careers", ws.ActionCreate),
		Data: career,
	})

	return career, nil
}

func (s *careerService) Update(ctx context.Context, id string, req *models.UpdateCareerRequest) (*models.Career, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	career, err := s.careerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		career.Title = *req.Title
	}
	if req.Department != nil {
		career.Department = *req.Department
	}
	if req.Location != nil {
		career.Location = *req.Location
	}
	if req.Type != nil {
		career.Type = models.CareerType(*req.Type)
	}
	if req.Description != nil {
		career.Description = *req.Description
	}
	if req.Active != nil {
		career.Active = *req.Active
	}

	if err := s.careerRepo.Update(ctx, career); err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("careers", ws.ActionUpdate),
		Data: career,
	})

	return career, nil
}

func (s *careerService) Delete(ctx context.Context, id string) error {
	if err := s.careerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("careers", ws.ActionDelete),
		Data: ws.DeleteData{ID: id},
	})

	return nil
}
