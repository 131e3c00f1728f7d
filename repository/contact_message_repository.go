package repository

import (
	"context"

	"github.com/emrekav/ajansly/models"
)

// ContactMessageRepository, iletişim formu mesajları için veri erişim
// sözleşmesi. GetAll en yeni mesaj önce döner; CountUnread admin
// panelindeki okunmamış rozetini besler.
type ContactMessageRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountUnread(ctx context.Context) (int, error)
}
