package repository

import (
	"context"

	"github.com/emrekav/ajansly/models"
)

// PartnerRepository, iş ortağı veritabanı işlemleri için interface.
// Her method context.Context alır — HTTP isteği iptal edilirse sorgu da durur.
type PartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) error
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	// GetAll, partner listesini ekleme sırasına göre döner (en eski önce) —
	// landing page logo şeridi sabit sırada kalsın.
	GetAll(ctx context.Context) ([]models.Partner, error)
	Update(ctx context.Context, partner *models.Partner) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
