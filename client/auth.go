package client

import (
	"context"
	"errors"
	"sync"

	"github.com/emrekav/ajansly/models"
)

// Session, client tarafında oturum durumunu yönetir: login, token
// saklama, 401'de otomatik refresh ve logout.
//
// Refresh token persister'da saklanır — uygulama yeniden açıldığında
// Restore ile oturum geri getirilir. Access token'ın saklanmasına
// gerek yok, kısa ömürlüdür; refresh ile yenisi alınır.
type Session struct {
	client  *Client
	persist Persister

	mu           sync.Mutex
	refreshToken string
	user         *models.User
}

const sessionKey = "/auth/session"

// sessionRecord, persister'a yazılan oturum kaydı.
type sessionRecord struct {
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

// authResponse, login ve refresh endpoint'lerinin data kısmı.
type authResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

// NewSession, verilen client için oturum yöneticisi oluşturur.
// persist nil olabilir — o zaman oturum process ömrüyle sınırlıdır.
func NewSession(c *Client, persist Persister) *Session {
	return &Session{client: c, persist: persist}
}

// User, login olmuş kullanıcıyı döner (nil = oturum yok).
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoggedIn, aktif oturum var mı döner.
func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshToken != ""
}

// Login, kullanıcı adı ve şifreyle oturum açar.
func (s *Session) Login(ctx context.Context, username, password string) (*models.User, error) {
	var resp authResponse
	err := s.client.Post(ctx, "/api/auth/login", models.LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.apply(&resp)
	return s.User(), nil
}

// Refresh, refresh token'la yeni bir access token alır.
// Refresh de reddedilirse oturum düşer — ErrUnauthorized döner ve
// yerel state temizlenir.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	token := s.refreshToken
	s.mu.Unlock()

	if token == "" {
		return ErrUnauthorized
	}

	var resp authResponse
	err := s.client.Post(ctx, "/api/auth/refresh",
		map[string]string{"refresh_token": token}, &resp)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			s.clear()
		}
		return err
	}

	s.apply(&resp)
	return nil
}

// Logout, server'daki session'ı iptal eder ve yerel state'i temizler.
// Server'a ulaşılamasa bile yerel temizlik yapılır.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	token := s.refreshToken
	s.mu.Unlock()

	var err error
	if token != "" {
		err = s.client.Post(ctx, "/api/auth/logout",
			map[string]string{"refresh_token": token}, nil)
	}
	s.clear()
	return err
}

// Restore, persister'daki oturumu geri yükler ve access token almak
// için refresh dener. Kayıt yoksa veya refresh reddedilirse
// (false, nil) döner — kullanıcı login ekranına gider.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	if s.persist == nil {
		return false, nil
	}

	var rec sessionRecord
	ok, err := s.persist.Load(sessionKey, &rec)
	if err != nil || !ok || rec.RefreshToken == "" {
		return false, err
	}

	s.mu.Lock()
	s.refreshToken = rec.RefreshToken
	s.user = &rec.User
	s.mu.Unlock()

	if err := s.Refresh(ctx); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return false, nil
		}
		// Network hatası: oturumu düşürme, offline başlangıç olabilir.
		return false, err
	}
	return true, nil
}

// Do, verilen işlemi çalıştırır; ErrUnauthorized gelirse bir kez
// refresh deneyip işlemi tekrarlar. Tüm authenticated akışlar bu
// sarmalayıcıdan geçmeli.
func (s *Session) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if !errors.Is(err, ErrUnauthorized) {
		return err
	}

	if refreshErr := s.Refresh(ctx); refreshErr != nil {
		return err
	}
	return fn(ctx)
}

// ChangePassword, oturum açmış kullanıcının şifresini değiştirir.
func (s *Session) ChangePassword(ctx context.Context, current, newPassword string) error {
	return s.Do(ctx, func(ctx context.Context) error {
		return s.client.Post(ctx, "/api/auth/change-password", models.ChangePasswordRequest{
			CurrentPassword: current,
			NewPassword:     newPassword,
		}, nil)
	})
}

func (s *Session) apply(resp *authResponse) {
	s.client.SetToken(resp.AccessToken)

	s.mu.Lock()
	s.refreshToken = resp.RefreshToken
	user := resp.User
	s.user = &user
	s.mu.Unlock()

	if s.persist != nil {
		_ = s.persist.Save(sessionKey, sessionRecord{
			RefreshToken: resp.RefreshToken,
			User:         resp.User,
		})
	}
}

func (s *Session) clear() {
	s.client.SetToken("")

	s.mu.Lock()
	s.refreshToken = ""
	s.user = nil
	s.mu.Unlock()

	if s.persist != nil {
		_ = s.persist.Remove(sessionKey)
	}
}
