package repository

import (
	"context"

	"github.com/emrekav/ajansly/models"
)

// ServiceRepository, ajansın sunduğu hizmet kartları için veri erişim
// sözleşmesi. GetAll en eski kayıt önce olacak şekilde döner.
type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
