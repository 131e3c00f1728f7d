package services

import (
	"context"
	"fmt"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/repository"
	"github.com/emrekav/ajansly/ws"
)

// TestimonialService, müşteri yorumları iş mantığı interface'i.
type TestimonialService interface {
	GetAll(ctx context.Context) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id string) (*models.Testimonial, error)
	Create(ctx context.Context, req *models.CreateTestimonialRequest, imageURL *string) (*models.Testimonial, error)
	Update(ctx context.Context, id string, req *models.UpdateTestimonialRequest, imageURL *string) (*models.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
	hub             ws.EventPublisher
}

func NewTestimonialService(testimonialRepo repository.TestimonialRepository, hub ws.EventPublisher) TestimonialService {
	return &testimonialService{
		testimonialRepo: testimonialRepo,
		hub:             hub,
	}
}

func (s *testimonialService) GetAll(ctx context.Context) ([]models.Testimonial, error) {
	return s.testimonialRepo.GetAll(ctx)
}

func (s *testimonialService) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	return s.testimonialRepo.GetByID(ctx, id)
}

func (s *testimonialService) Create(ctx context.Context, req *models.CreateTestimonialRequest, imageURL *string) (*models.Testimonial, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	testimonial := &models.Testimonial{
		Author:   req.Author,
		Quote:    req.Quote,
		Rating:   req.Rating,
		ImageURL: imageURL,
	}
	if req.Company != "" {
		testimonial.Company = &req.Company
	}

	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("testimonials", ws.ActionCreate),
		Data: testimonial,
	})

	return testimonial, nil
}

func (s *testimonialService) Update(ctx context.Context, id string, req *models.UpdateTestimonialRequest, imageURL *string) (*models.Testimonial, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	testimonial, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Author != nil {
		testimonial.Author = *req.Author
	}
	if req.Company != nil {
		if *req.Company == "" {
			testimonial.Company = nil
		} else {
			testimonial.Company = req.Company
		}
	}
	if req.Quote != nil {
		testimonial.Quote = *req.Quote
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if imageURL != nil {
		testimonial.ImageURL = imageURL
	}

	if err := s.testimonialRepo.Update(ctx, testimonial); err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("testimonials", ws.ActionUpdate),
		Data: testimonial,
	})

	return testimonial, nil
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
	if err := s.testimonialRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("testimonials", ws.ActionDelete),
		Data: ws.DeleteData{ID: id},
	})

	return nil
}
