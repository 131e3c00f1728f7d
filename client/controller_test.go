package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI, controller testleri için basit bir in-memory resource server.
type fakeAPI struct {
	mu    sync.Mutex
	items []testItem
	// failAll: true ise liste endpoint'i 500 döner
	failAll bool
	// rejectCreate: true ise create 400 döner
	rejectCreate bool
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/items", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"error":"database is down"}`))
			return
		}
		writeEnvelope(w, http.StatusOK, f.items)
	})
	mux.HandleFunc("GET /api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, it := range f.items {
			if it.ID == r.PathValue("id") {
				writeEnvelope(w, http.StatusOK, it)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"not found"}`))
	})
	mux.HandleFunc("POST /api/items", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.rejectCreate {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"error":"name required"}`))
			return
		}
		item := testItem{ID: "srv-1", Name: "from-server"}
		f.items = append(f.items, item)
		writeEnvelope(w, http.StatusCreated, item)
	})
	mux.HandleFunc("PUT /api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.items {
			if f.items[i].ID == r.PathValue("id") {
				f.items[i].Name = "renamed"
				writeEnvelope(w, http.StatusOK, f.items[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"not found"}`))
	})
	mux.HandleFunc("DELETE /api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.items {
			if f.items[i].ID == r.PathValue("id") {
				f.items = append(f.items[:i], f.items[i+1:]...)
				writeEnvelope(w, http.StatusOK, map[string]string{"message": "deleted"})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"not found"}`))
	})
	return mux
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	type env struct {
		Success bool `json:"success"`
		Data    any  `json:"data"`
	}
	_ = json.NewEncoder(w).Encode(env{Success: true, Data: data})
}

func newTestController(t *testing.T, api *fakeAPI, policy InsertPolicy, opts ...ControllerOption[testItem]) *Controller[testItem] {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	return NewController(c, newTestStore(), "/api/items", policy, opts...)
}

func TestControllerFetchAll(t *testing.T) {
	api := &fakeAPI{items: []testItem{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}}
	ctrl := newTestController(t, api, InsertAppend)

	require.NoError(t, ctrl.FetchAll(context.Background()))
	items := ctrl.Store().Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Name)
	assert.False(t, ctrl.Store().Loading())
	assert.NoError(t, ctrl.Store().Err())
}

func TestControllerFetchAllFailureEmptiesList(t *testing.T) {
	api := &fakeAPI{items: []testItem{{ID: "1"}}}
	ctrl := newTestController(t, api, InsertAppend)

	// İlk fetch başarılı
	require.NoError(t, ctrl.FetchAll(context.Background()))
	require.Equal(t, 1, ctrl.Store().Len())

	// Server çöktü: ikinci fetch bayat listeyi bırakmamalı, boşaltmalı
	api.mu.Lock()
	api.failAll = true
	api.mu.Unlock()

	err := ctrl.FetchAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerRejected)
	assert.Empty(t, ctrl.Store().Items())
	assert.ErrorIs(t, ctrl.Store().Err(), ErrServerRejected)
}

func TestControllerCreateNoOptimisticUpdate(t *testing.T) {
	api := &fakeAPI{rejectCreate: true}
	ctrl := newTestController(t, api, InsertAppend)

	_, err := ctrl.Create(context.Background(), map[string]string{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	// Başarısız create listeye HİÇBİR ŞEY eklememeli
	assert.Empty(t, ctrl.Store().Items())
}

func TestControllerCreateUsesServerResponse(t *testing.T) {
	api := &fakeAPI{}
	ctrl := newTestController(t, api, InsertAppend)

	created, err := ctrl.Create(context.Background(), map[string]string{"name": "whatever"})
	require.NoError(t, err)
	// Listede server'ın döndüğü kayıt olmalı, client'ın gönderdiği değil
	assert.Equal(t, "srv-1", created.ID)
	items := ctrl.Store().Items()
	require.Len(t, items, 1)
	assert.Equal(t, "from-server", items[0].Name)
}

func TestControllerInsertPolicy(t *testing.T) {
	t.Run("append", func(t *testing.T) {
		api := &fakeAPI{}
		ctrl := newTestController(t, api, InsertAppend)
		ctrl.Store().SetAll([]testItem{{ID: "old"}})

		_, err := ctrl.Create(context.Background(), nil)
		require.NoError(t, err)
		items := ctrl.Store().Items()
		require.Len(t, items, 2)
		assert.Equal(t, "srv-1", items[1].ID)
	})

	t.Run("prepend", func(t *testing.T) {
		api := &fakeAPI{}
		ctrl := newTestController(t, api, InsertPrepend)
		ctrl.Store().SetAll([]testItem{{ID: "old"}})

		_, err := ctrl.Create(context.Background(), nil)
		require.NoError(t, err)
		items := ctrl.Store().Items()
		require.Len(t, items, 2)
		assert.Equal(t, "srv-1", items[0].ID)
	})
}

func TestControllerUpdateReplacesInPlace(t *testing.T) {
	api := &fakeAPI{items: []testItem{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}}
	ctrl := newTestController(t, api, InsertAppend)
	require.NoError(t, ctrl.FetchAll(context.Background()))

	updated, err := ctrl.Update(context.Background(), "1", map[string]string{"name": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)

	items := ctrl.Store().Items()
	require.Len(t, items, 2)
	assert.Equal(t, "renamed", items[0].Name)
	assert.Equal(t, "1", items[0].ID) // sıra korunur
}

func TestControllerDeleteFailureKeepsItem(t *testing.T) {
	api := &fakeAPI{items: []testItem{{ID: "1"}}}
	ctrl := newTestController(t, api, InsertAppend)
	require.NoError(t, ctrl.FetchAll(context.Background()))

	err := ctrl.Delete(context.Background(), "does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	// Silinemeyen kayıt listede kalmalı
	assert.Equal(t, 1, ctrl.Store().Len())
}

func TestControllerDeleteRemovesItem(t *testing.T) {
	api := &fakeAPI{items: []testItem{{ID: "1"}, {ID: "2"}}}
	ctrl := newTestController(t, api, InsertAppend)
	require.NoError(t, ctrl.FetchAll(context.Background()))

	require.NoError(t, ctrl.Delete(context.Background(), "1"))
	items := ctrl.Store().Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
}

func TestControllerFetchByIDDoesNotTouchStore(t *testing.T) {
	api := &fakeAPI{items: []testItem{{ID: "1", Name: "a"}}}
	ctrl := newTestController(t, api, InsertAppend)

	item, err := ctrl.FetchByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "a", item.Name)
	assert.Empty(t, ctrl.Store().Items())

	_, err = ctrl.FetchByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestControllerStaleFetchDropped(t *testing.T) {
	// Fetch yarışı: yavaş kalan ilk istek, kendisinden sonra başlayan
	// ikinci fetch'in yazdığı listeyi ezmemeli.
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	var calls int
	var mu sync.Mutex

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			close(firstStarted)
			<-releaseFirst
			writeEnvelope(w, http.StatusOK, []testItem{{ID: "stale"}})
			return
		}
		writeEnvelope(w, http.StatusOK, []testItem{{ID: "fresh"}})
	}))
	defer srv.Close()

	ctrl := NewController(New(srv.URL), newTestStore(), "/api/items", InsertAppend)

	done := make(chan error)
	go func() { done <- ctrl.FetchAll(context.Background()) }()
	<-firstStarted

	// İlk istek server'da beklerken ikinci fetch tamamlanır
	require.NoError(t, ctrl.FetchAll(context.Background()))

	close(releaseFirst)
	<-done

	items := ctrl.Store().Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].ID)
}

func TestControllerPersistsOnSuccess(t *testing.T) {
	api := &fakeAPI{items: []testItem{{ID: "1", Name: "a"}}}
	persist := NewMemoryPersister()
	ctrl := newTestController(t, api, InsertAppend, WithPersister[testItem](persist))

	require.NoError(t, ctrl.FetchAll(context.Background()))

	// Yeni controller cache'ten yükleyebilmeli
	fresh := NewController(New("http://unused"), newTestStore(), "/api/items",
		InsertAppend, WithPersister[testItem](persist))
	fresh.LoadCached()
	items := fresh.Store().Items()
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Name)
}
