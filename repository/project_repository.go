package repository

import (
	"context"

	"github.com/emrekav/ajansly/models"
)

// ProjectRepository, portfolyo projeleri için veri erişim sözleşmesi.
// GetAll kayıtları eklenme sırasına göre (en eski önce) döner; vitrin
// sıralaması bu sırayı temel alır.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
