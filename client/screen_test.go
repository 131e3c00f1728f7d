package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T, api *fakeAPI) *Screen[testItem] {
	t.Helper()
	return NewScreen(newTestController(t, api, InsertAppend))
}

func TestScreenLoadFlow(t *testing.T) {
	api := &fakeAPI{items: []testItem{{ID: "1"}}}
	screen := newTestScreen(t, api)
	assert.Equal(t, ScreenIdle, screen.State())

	require.NoError(t, screen.Load(context.Background()))
	assert.Equal(t, ScreenLoaded, screen.State())
}

func TestScreenLoadFailureThenRetry(t *testing.T) {
	api := &fakeAPI{failAll: true}
	screen := newTestScreen(t, api)

	require.Error(t, screen.Load(context.Background()))
	assert.Equal(t, ScreenErrored, screen.State())

	// Errored'dan tekrar Load çağrılabilmeli (retry)
	api.mu.Lock()
	api.failAll = false
	api.mu.Unlock()
	require.NoError(t, screen.Load(context.Background()))
	assert.Equal(t, ScreenLoaded, screen.State())
}

func TestScreenFormOpenRequiresLoaded(t *testing.T) {
	api := &fakeAPI{}
	screen := newTestScreen(t, api)

	// Idle'dayken form açılamaz
	require.Error(t, screen.OpenCreateForm())

	require.NoError(t, screen.Load(context.Background()))
	require.NoError(t, screen.OpenCreateForm())
	assert.Equal(t, ScreenFormOpen, screen.State())
	assert.Empty(t, screen.EditingID())

	require.NoError(t, screen.CloseForm())
	assert.Equal(t, ScreenLoaded, screen.State())
}

func TestScreenSubmitCreate(t *testing.T) {
	api := &fakeAPI{}
	screen := newTestScreen(t, api)
	require.NoError(t, screen.Load(context.Background()))
	require.NoError(t, screen.OpenCreateForm())

	require.NoError(t, screen.Submit(context.Background(), map[string]string{"name": "x"}))
	assert.Equal(t, ScreenLoaded, screen.State())
	assert.NoError(t, screen.FormError())
}

func TestScreenValidationFailureKeepsFormOpen(t *testing.T) {
	api := &fakeAPI{rejectCreate: true}
	screen := newTestScreen(t, api)
	require.NoError(t, screen.Load(context.Background()))
	require.NoError(t, screen.OpenCreateForm())

	err := screen.Submit(context.Background(), map[string]string{})
	require.Error(t, err)
	// Form AÇIK kalır, hata formda gösterilir
	assert.Equal(t, ScreenFormOpen, screen.State())
	assert.ErrorIs(t, screen.FormError(), ErrValidationFailed)

	// Düzeltip tekrar deneme mümkün
	api.mu.Lock()
	api.rejectCreate = false
	api.mu.Unlock()
	require.NoError(t, screen.Submit(context.Background(), map[string]string{"name": "x"}))
	assert.Equal(t, ScreenLoaded, screen.State())
	assert.NoError(t, screen.FormError())
}

func TestScreenEditFormSubmitsUpdate(t *testing.T) {
	api := &fakeAPI{items: []testItem{{ID: "1", Name: "a"}}}
	screen := newTestScreen(t, api)
	require.NoError(t, screen.Load(context.Background()))

	require.Error(t, screen.OpenEditForm("")) // ID şart
	require.NoError(t, screen.OpenEditForm("1"))
	assert.Equal(t, "1", screen.EditingID())

	require.NoError(t, screen.Submit(context.Background(), map[string]string{"name": "renamed"}))
	assert.Equal(t, ScreenLoaded, screen.State())
}

func TestScreenDeleteFlow(t *testing.T) {
	api := &fakeAPI{items: []testItem{{ID: "1"}}}
	screen := newTestScreen(t, api)
	require.NoError(t, screen.Load(context.Background()))

	require.NoError(t, screen.RequestDelete("1"))
	assert.Equal(t, ScreenConfirmingDelete, screen.State())

	// Onay diyaloğu açıkken başka form açılamaz
	require.Error(t, screen.OpenCreateForm())

	require.NoError(t, screen.CancelDelete())
	assert.Equal(t, ScreenLoaded, screen.State())

	require.NoError(t, screen.RequestDelete("1"))
	require.NoError(t, screen.ConfirmDelete(context.Background()))
	assert.Equal(t, ScreenLoaded, screen.State())
}

func TestScreenConfirmDeleteFailureClosesDialog(t *testing.T) {
	// Silme başarısız olsa da diyalog kapanır, kayıt listede kalır
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"error":"not found"}`))
			return
		}
		writeEnvelope(w, http.StatusOK, []testItem{{ID: "1"}})
	}))
	defer srv.Close()

	ctrl := NewController(New(srv.URL), newTestStore(), "/api/items", InsertAppend)
	screen := NewScreen(ctrl)
	require.NoError(t, screen.Load(context.Background()))
	require.NoError(t, screen.RequestDelete("1"))

	err := screen.ConfirmDelete(context.Background())
	require.Error(t, err)
	assert.Equal(t, ScreenLoaded, screen.State())
	assert.Equal(t, 1, ctrl.Store().Len())
}
