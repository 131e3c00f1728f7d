package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/services"
)

// stubPartnerService, handler testleri için servis implementasyonu.
// İş mantığı servis testlerinde ayrıca test edilir — burada sadece
// handler'ın decode/encode/status davranışı önemli.
type stubPartnerService struct {
	partners []models.Partner
}

func (s *stubPartnerService) GetAll(ctx context.Context) ([]models.Partner, error) {
	return s.partners, nil
}

func (s *stubPartnerService) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	for _, p := range s.partners {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (s *stubPartnerService) Create(ctx context.Context, req *models.CreatePartnerRequest, imageURL *string) (*models.Partner, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	partner := models.Partner{ID: uuid.NewString(), Name: req.Name, ImageURL: imageURL}
	s.partners = append(s.partners, partner)
	return &partner, nil
}

func (s *stubPartnerService) Update(ctx context.Context, id string, req *models.UpdatePartnerRequest, imageURL *string) (*models.Partner, error) {
	for i := range s.partners {
		if s.partners[i].ID == id {
			if req.Name != nil {
				s.partners[i].Name = *req.Name
			}
			if imageURL != nil {
				s.partners[i].ImageURL = imageURL
			}
			out := s.partners[i]
			return &out, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (s *stubPartnerService) Delete(ctx context.Context, id string) error {
	for i := range s.partners {
		if s.partners[i].ID == id {
			s.partners = append(s.partners[:i], s.partners[i+1:]...)
			return nil
		}
	}
	return pkg.ErrNotFound
}

func newPartnerTestServer(t *testing.T, svc services.PartnerService) *httptest.Server {
	t.Helper()
	upload := services.NewUploadService(t.TempDir(), 5<<20)
	h := NewPartnerHandler(svc, upload, 5<<20)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/partners", h.List)
	mux.HandleFunc("GET /api/partners/{id}", h.Get)
	mux.HandleFunc("POST /api/partners", h.Create)
	mux.HandleFunc("PUT /api/partners/{id}", h.Update)
	mux.HandleFunc("DELETE /api/partners/{id}", h.Delete)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func decodeData[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.True(t, env.Success, "error: %s", env.Error)

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestPartnerHandlerList(t *testing.T) {
	svc := &stubPartnerService{partners: []models.Partner{{ID: "1", Name: "Acme"}}}
	srv := newPartnerTestServer(t, svc)

	resp, err := http.Get(srv.URL + "/api/partners")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	partners := decodeData[[]models.Partner](t, resp)
	require.Len(t, partners, 1)
	assert.Equal(t, "Acme", partners[0].Name)
}

func TestPartnerHandlerCreateJSON(t *testing.T) {
	srv := newPartnerTestServer(t, &stubPartnerService{})

	resp, err := http.Post(srv.URL+"/api/partners", "application/json",
		strings.NewReader(`{"name":"Acme","website":"https://acme.example"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	partner := decodeData[models.Partner](t, resp)
	assert.NotEmpty(t, partner.ID)
	assert.Equal(t, "Acme", partner.Name)
	assert.Nil(t, partner.ImageURL)
}

func TestPartnerHandlerCreateMultipart(t *testing.T) {
	srv := newPartnerTestServer(t, &stubPartnerService{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("payload", `{"name":"Acme"}`))
	part, err := writer.CreateFormFile("image", "logo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(srv.URL+"/api/partners", writer.FormDataContentType(), &buf)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	partner := decodeData[models.Partner](t, resp)
	require.NotNil(t, partner.ImageURL)
	assert.True(t, strings.HasPrefix(*partner.ImageURL, "/api/uploads/"))
	assert.True(t, strings.HasSuffix(*partner.ImageURL, "logo.png"))
}

func TestPartnerHandlerCreateMultipartImageURLField(t *testing.T) {
	// Dosya yerine image_url form alanı da kabul edilir
	srv := newPartnerTestServer(t, &stubPartnerService{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("payload", `{"name":"Acme"}`))
	require.NoError(t, writer.WriteField("image_url", "https://cdn.example/logo.png"))
	require.NoError(t, writer.Close())

	resp, err := http.Post(srv.URL+"/api/partners", writer.FormDataContentType(), &buf)
	require.NoError(t, err)

	partner := decodeData[models.Partner](t, resp)
	require.NotNil(t, partner.ImageURL)
	assert.Equal(t, "https://cdn.example/logo.png", *partner.ImageURL)
}

func TestPartnerHandlerCreateValidationError(t *testing.T) {
	srv := newPartnerTestServer(t, &stubPartnerService{})

	resp, err := http.Post(srv.URL+"/api/partners", "application/json",
		strings.NewReader(`{"name":"   "}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var env pkg.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestPartnerHandlerGetNotFound(t *testing.T) {
	srv := newPartnerTestServer(t, &stubPartnerService{})

	resp, err := http.Get(srv.URL + "/api/partners/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPartnerHandlerUpdateAndDelete(t *testing.T) {
	svc := &stubPartnerService{partners: []models.Partner{{ID: "p1", Name: "Old"}}}
	srv := newPartnerTestServer(t, svc)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/partners/p1",
		strings.NewReader(`{"name":"New"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	partner := decodeData[models.Partner](t, resp)
	assert.Equal(t, "New", partner.Name)

	del, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/partners/p1", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(del)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, svc.partners)
}
