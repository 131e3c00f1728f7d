package models

import "time"

// Session, admin panelinin refresh token oturumu.
//
// Access token kısa ömürlüdür (dakikalar) ve server-side state'i yoktur;
// refresh token ise günlerce yaşar ve bu tabloda saklanır. DB'de tutmanın
// karşılığı: çalınan bir refresh token revoke edilebilir, logout sadece
// ilgili satırı siler, her refresh'te token rotate edilir.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	RefreshToken string    `json:"-"` // response'lara asla yazılmaz
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
