package repository

import (
	"context"

	"github.com/emrekav/ajansly/models"
)

// CareerRepository, açık pozisyon ilanları için veri erişim sözleşmesi.
// GetAll tüm ilanları (admin), GetActive yalnızca active=true olanları
// (herkese açık kariyer sayfası) döner; ikisi de en yeni ilan önce sıralar.
type CareerRepository interface {
	Create(ctx context.Context, career *models.Career) error
	GetByID(ctx context.Context, id string) (*models.Career, error)
	GetAll(ctx context.Context) ([]models.Career, error)
	GetActive(ctx context.Context) ([]models.Career, error)
	Update(ctx context.Context, career *models.Career) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
