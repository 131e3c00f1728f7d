package services

import (
	"context"
	"fmt"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/repository"
	"github.com/emrekav/ajansly/ws"
)

// PartnerService, partner logoları iş mantığı interface'i.
//
// imageURL parametresi handler katmanında çözülür: multipart upload
// geldiyse kaydedilen dosyanın public URL'i, "image_url" form alanı
// geldiyse o değer, hiçbiri yoksa nil. Update'te nil = mevcut görsel korunur.
type PartnerService interface {
	GetAll(ctx context.Context) ([]models.Partner, error)
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	Create(ctx context.Context, req *models.CreatePartnerRequest, imageURL *string) (*models.Partner, error)
	Update(ctx context.Context, id string, req *models.UpdatePartnerRequest, imageURL *string) (*models.Partner, error)
	Delete(ctx context.Context, id string) error
}

type partnerService struct {
	partnerRepo repository.PartnerRepository
	hub         ws.EventPublisher
}

func NewPartnerService(partnerRepo repository.PartnerRepository, hub ws.EventPublisher) PartnerService {
	return &partnerService{
		partnerRepo: partnerRepo,
		hub:         hub,
	}
}

func (s *partnerService) GetAll(ctx context.Context) ([]models.Partner, error) {
	return s.partnerRepo.GetAll(ctx)
}

func (s *partnerService) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	return s.partnerRepo.GetByID(ctx, id)
}

func (s *partnerService) Create(ctx context.Context, req *models.CreatePartnerRequest, imageURL *string) (*models.Partner, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	partner := &models.Partner{
		Name:     req.Name,
		ImageURL: imageURL,
	}
	if req.Website != "" {
		partner.Website = &req.Website
	}

	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("partners", ws.ActionCreate),
		Data: partner,
	})

	return partner, nil
}

func (s *partnerService) Update(ctx context.Context, id string, req *models.UpdatePartnerRequest, imageURL *string) (*models.Partner, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.Website != nil {
		// Boş string gönderilirse website tamamen kaldırılır
		if *req.Website == "" {
			partner.Website = nil
		} else {
			partner.Website = req.Website
		}
	}
	if imageURL != nil {
		partner.ImageURL = imageURL
	}

	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("partners", ws.ActionUpdate),
		Data: partner,
	})

	return partner, nil
}

func (s *partnerService) Delete(ctx context.Context, id string) error {
	if err := s.partnerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("partners", ws.ActionDelete),
		Data: ws.DeleteData{ID: id},
	})

	return nil
}
