package repository

import (
	"context"

	"github.com/emrekav/ajansly/models"
)

// TestimonialRepository, müşteri yorumları için veri erişim sözleşmesi.
// Diğer içerik tiplerinin aksine GetAll en YENİ kayıt önce döner; yeni
// gelen yorumun vitrinde en üstte görünmesi istenir.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, id string) (*models.Testimonial, error)
	GetAll(ctx context.Context) ([]models.Testimonial, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
