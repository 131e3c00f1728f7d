package repository

import (
	"context"

	"github.com/emrekav/ajansly/models"
)

// SessionRepository, refresh token oturumlarının persistence interface'i.
//
// GetByRefreshToken opak token string'i ile arar — token'ın kendisi
// unique index'lidir. DeleteExpired açılışta çağrılır, tablo şişmesin.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByRefreshToken(ctx context.Context, token string) (*models.Session, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) error
}
