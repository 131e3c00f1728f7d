package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Timeout sabitleri.
//
// Okuma istekleri (GET) hızlı olmalı — 5 saniyede cevap gelmiyorsa
// kullanıcıya beklemek yerine hata göstermek daha iyi. Yazma istekleri
// (POST/PUT/PATCH/DELETE) görsel upload taşıyabilir, 10 saniye tanınır.
const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

// envelope, server'ın standart response zarfı.
// Data ham bırakılır — çağıran hedef tipe göre unmarshal eder.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Client, API'ye erişen HTTP sarmalayıcı.
// Tüm Controller'lar aynı Client'ı paylaşır — token tek yerde yaşar.
type Client struct {
	baseURL string
	readHC  *http.Client
	writeHC *http.Client

	// mu: accessToken'ı korur — token refresh goroutine'i ile
	// istek atan goroutine'ler çakışabilir.
	mu          sync.RWMutex
	accessToken string
}

// New, baseURL'e bağlı yeni bir Client oluşturur.
// baseURL sonundaki slash temizlenir: "http://localhost:9090".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		readHC:  &http.Client{Timeout: readTimeout},
		writeHC: &http.Client{Timeout: writeTimeout},
	}
}

// SetToken, sonraki isteklerde kullanılacak Bearer token'ı ayarlar.
// Boş string token'ı temizler (logout).
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

// Token, mevcut access token'ı döner.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// Get, GET isteği atar ve envelope'taki data'yı out'a çözer.
// out nil olabilir — data önemsizse.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, c.readHC, http.MethodGet, path, nil, "", out)
}

// Post, JSON body ile POST isteği atar.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// Put, JSON body ile PUT isteği atar.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

// Patch, JSON body ile PATCH isteği atar.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

// Delete, DELETE isteği atar.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, c.writeHC, http.MethodDelete, path, nil, "", nil)
}

// PostMultipart, payload JSON'ı + opsiyonel görseli multipart form olarak gönderir.
//
// Form yapısı server'ın beklediğiyle aynı:
//   - "payload" alanı: request struct'ının JSON'ı
//   - "image" dosya alanı: imageName/imageData doluysa eklenir
//
// method POST veya PUT olabilir (create/update).
func (c *Client) PostMultipart(ctx context.Context, method, path string, payload any, imageName string, imageData io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		if err := writer.WriteField("payload", string(raw)); err != nil {
			return fmt.Errorf("failed to write payload field: %w", err)
		}
	}

	if imageData != nil && imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		if err != nil {
			return fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := io.Copy(part, imageData); err != nil {
			return fmt.Errorf("failed to copy image data: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return c.do(ctx, c.writeHC, method, path, &buf, writer.FormDataContentType(), out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	return c.do(ctx, c.writeHC, method, path, reader, "application/json", out)
}

// do, isteği atar, envelope'u çözer ve hataları sınıflandırır.
func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		// Body envelope değil (proxy hatası vb.) — status koduna göre sınıfla
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return &APIError{Kind: ErrServerRejected, Status: resp.StatusCode, Message: "malformed response body"}
		}
		return classifyStatus(resp.StatusCode, "")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		message := env.Error
		if message == "" {
			message = env.Message
		}
		return classifyStatus(resp.StatusCode, message)
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Kind: ErrServerRejected, Status: resp.StatusCode,
				Message: fmt.Sprintf("failed to decode data: %v", err)}
		}
	}

	return nil
}
