package repository

import (
	"context"

	"github.com/emrekav/ajansly/models"
)

// TeamMemberRepository, ekip üyeleri için veri erişim sözleşmesi.
// GetAll en eski kayıt önce olacak şekilde döner; ekip sayfasındaki
// sıra ekleme sırasını yansıtır.
type TeamMemberRepository interface {
	Create(ctx context.Context, member *models.TeamMember) error
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	GetAll(ctx context.Context) ([]models.TeamMember, error)
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
