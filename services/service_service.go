package services

import (
	"context"
	"fmt"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/repository"
	"github.com/emrekav/ajansly/ws"
)

// ServiceService, ajansın sunduğu hizmet kartlarının iş mantığı interface'i.
// Domain modeli "Service" olduğu için isim böyle — servis katmanındaki servis.
type ServiceService interface {
	GetAll(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, req *models.CreateServiceRequest, imageURL *string) (*models.Service, error)
	Update(ctx context.Context, id string, req *models.UpdateServiceRequest, imageURL *string) (*models.Service, error)
	Delete(ctx context.Context, id string) error
}

type serviceService struct {
	serviceRepo repository.ServiceRepository
	hub         ws.EventPublisher
}

func NewServiceService(serviceRepo repository.ServiceRepository, hub ws.EventPublisher) ServiceService {
	return &serviceService{
		serviceRepo: serviceRepo,
		hub:         hub,
	}
}

func (s *serviceService) GetAll(ctx context.Context) ([]models.Service, error) {
	return s.serviceRepo.GetAll(ctx)
}

func (s *serviceService) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

func (s *serviceService) Create(ctx context.Context, req *models.CreateServiceRequest, imageURL *string) (*models.Service, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	service := &models.Service{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    imageURL,
	}
	if req.Icon != "" {
		service.Icon = &req.Icon
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("services", ws.ActionCreate),
		Data: service,
	})

	return service, nil
}

func (s *serviceService) Update(ctx context.Context, id string, req *models.UpdateServiceRequest, imageURL *string) (*models.Service, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		service.Title = *req.Title
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Icon != nil {
		if *req.Icon == "" {
			service.Icon = nil
		} else {
			service.Icon = req.Icon
		}
	}
	if imageURL != nil {
		service.ImageURL = imageURL
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("services", ws.ActionUpdate),
		Data: service,
	})

	return service, nil
}

func (s *serviceService) Delete(ctx context.Context, id string) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("services", ws.ActionDelete),
		Data: ws.DeleteData{ID: id},
	})

	return nil
}
