package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGetDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/partners", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"1","name":"acme"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	var items []testItem
	err := c.Get(context.Background(), "/api/partners", &items)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "acme", items[0].Name)
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("abc123")
	require.NoError(t, c.Get(context.Background(), "/x", nil))
	assert.Equal(t, "Bearer abc123", gotAuth)

	// Token temizlenince header gitmemeli
	c.SetToken("")
	require.NoError(t, c.Get(context.Background(), "/x", nil))
	assert.Empty(t, gotAuth)
}

func TestClientPostMarshalsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "acme", body["name"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"1","name":"acme"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	var created testItem
	err := c.Post(context.Background(), "/api/partners", map[string]string{"name": "acme"}, &created)
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
}

func TestClientErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"not found", http.StatusNotFound, `{"success":false,"error":"resource not found"}`, ErrNotFound},
		{"validation", http.StatusBadRequest, `{"success":false,"error":"name required"}`, ErrValidationFailed},
		{"unprocessable", http.StatusUnprocessableEntity, `{"success":false,"error":"bad"}`, ErrValidationFailed},
		{"unauthorized", http.StatusUnauthorized, `{"success":false,"error":"invalid token"}`, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, `{"success":false,"error":"no"}`, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, `{"success":false,"error":"boom"}`, ErrServerRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := New(srv.URL).Get(context.Background(), "/x", nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestClientSuccessFalseIsError(t *testing.T) {
	// HTTP 200 ama envelope success=false: yine hata sayılmalı
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"something failed"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Get(context.Background(), "/x", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerRejected)
	assert.Contains(t, err.Error(), "something failed")
}

func TestClientNetworkErrorIsNetworkUnavailable(t *testing.T) {
	// Kapalı server'a istek: bağlantı reddedilir
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := New(url).Get(context.Background(), "/x", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}

func TestClientPostMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var payload testItem
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("payload")), &payload))
		assert.Equal(t, "acme", payload.Name)

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "logo.png", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake-png", string(data))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"1","name":"acme"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	var created testItem
	err := c.PostMultipart(context.Background(), "POST", "/api/partners",
		testItem{Name: "acme"}, "logo.png", strings.NewReader("fake-png"), &created)
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
}

func TestClientNullDataLeavesDestZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":null,"message":"deleted"}`))
	}))
	defer srv.Close()

	var item testItem
	require.NoError(t, New(srv.URL).Get(context.Background(), "/x", &item))
	assert.Empty(t, item.ID)
}
