package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekav/ajansly/models"
)

// fakeAuthServer, login/refresh/logout akışını taklit eder.
// Her refresh'te token rotate edilir — server davranışıyla aynı.
type fakeAuthServer struct {
	mu           sync.Mutex
	accessSeq    int
	validRefresh string
	validAccess  string
	loginCount   int
	refreshCount int
}

func (f *fakeAuthServer) issue(w http.ResponseWriter) {
	f.accessSeq++
	f.validAccess = fmt.Sprintf("access-%d", f.accessSeq)
	f.validRefresh = fmt.Sprintf("refresh-%d", f.accessSeq)
	resp := authResponse{
		AccessToken:  f.validAccess,
		RefreshToken: f.validRefresh,
		User:         models.User{ID: "u1", Username: "admin"},
	}
	writeEnvelope(w, http.StatusOK, resp)
}

func (f *fakeAuthServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.loginCount++

		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "admin" || req.Password != "correct-password" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":"invalid username or password"}`))
			return
		}
		f.issue(w)
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.refreshCount++

		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["refresh_token"] != f.validRefresh || f.validRefresh == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":"invalid refresh token"}`))
			return
		}
		f.issue(w)
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.validRefresh = ""
		f.validAccess = ""
		writeEnvelope(w, http.StatusOK, nil)
	})
	mux.HandleFunc("GET /api/protected", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if r.Header.Get("Authorization") != "Bearer "+f.validAccess || f.validAccess == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":"unauthorized"}`))
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]string{"ok": "yes"})
	})
	return mux
}

func newTestSession(t *testing.T, persist Persister) (*Session, *Client, *fakeAuthServer) {
	t.Helper()
	api := &fakeAuthServer{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	return NewSession(c, persist), c, api
}

func TestSessionLogin(t *testing.T) {
	session, c, _ := newTestSession(t, nil)

	user, err := session.Login(context.Background(), "admin", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, session.LoggedIn())
	assert.NotEmpty(t, c.Token())
}

func TestSessionLoginRejected(t *testing.T) {
	session, c, _ := newTestSession(t, nil)

	_, err := session.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, session.LoggedIn())
	assert.Empty(t, c.Token())
}

func TestSessionRefreshRotatesToken(t *testing.T) {
	session, c, _ := newTestSession(t, nil)
	_, err := session.Login(context.Background(), "admin", "correct-password")
	require.NoError(t, err)
	firstToken := c.Token()

	require.NoError(t, session.Refresh(context.Background()))
	assert.NotEqual(t, firstToken, c.Token())

	// Eski refresh token artık geçersiz olmalı — ikinci kez aynısıyla
	// denenemez, ama Session zaten yenisini sakladığı için akış bozulmaz.
	require.NoError(t, session.Refresh(context.Background()))
}

func TestSessionDoRetriesOnUnauthorized(t *testing.T) {
	session, c, api := newTestSession(t, nil)
	_, err := session.Login(context.Background(), "admin", "correct-password")
	require.NoError(t, err)

	// Access token'ı server tarafında süresi dolmuş gibi geçersiz kıl
	api.mu.Lock()
	api.validAccess = "expired"
	api.mu.Unlock()

	err = session.Do(context.Background(), func(ctx context.Context) error {
		return c.Get(ctx, "/api/protected", nil)
	})
	// Do: 401 aldı, refresh etti, tekrar denedi — başarılı olmalı
	require.NoError(t, err)
}

func TestSessionLogoutClearsState(t *testing.T) {
	persist := NewMemoryPersister()
	session, c, _ := newTestSession(t, persist)
	_, err := session.Login(context.Background(), "admin", "correct-password")
	require.NoError(t, err)

	require.NoError(t, session.Logout(context.Background()))
	assert.False(t, session.LoggedIn())
	assert.Nil(t, session.User())
	assert.Empty(t, c.Token())

	// Persist edilen oturum da silinmiş olmalı
	var rec sessionRecord
	ok, err := persist.Load(sessionKey, &rec)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRestore(t *testing.T) {
	persist := NewMemoryPersister()
	session, _, api := newTestSession(t, persist)
	_, err := session.Login(context.Background(), "admin", "correct-password")
	require.NoError(t, err)

	// Uygulama yeniden açıldı: aynı persister'la yeni session
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	c2 := New(srv.URL)
	session2 := NewSession(c2, persist)

	ok, err := session2.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, session2.LoggedIn())
	assert.NotEmpty(t, c2.Token())
}

func TestSessionRestoreWithoutRecord(t *testing.T) {
	session, _, _ := newTestSession(t, NewMemoryPersister())

	ok, err := session.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
