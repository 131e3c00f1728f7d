package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/services"
)

// decodeContentRequest, içerik create/update isteklerini çözer.
//
// Admin paneli iki formatta istek gönderir:
//
//  1. application/json — görsel değişmiyor. Body doğrudan request
//     struct'ına decode edilir, imageURL nil döner.
//
//  2. multipart/form-data — görsel de gönderiliyor. "payload" form
//     alanı JSON request'i taşır, "image" dosya alanı varsa görsel
//     diske kaydedilip URL'i döner. Dosya yerine hazır bir
//     "image_url" form alanı da kabul edilir (harici CDN görselleri).
//
// Dönen imageURL nil ise handler service'e nil geçer — update'te mevcut
// görsel korunur, create'te görselsiz kayıt oluşur.
func decodeContentRequest(r *http.Request, upload services.UploadService, maxSize int64, dest any) (*string, error) {
	contentType := r.Header.Get("Content-Type")

	if !strings.HasPrefix(contentType, "multipart/form-data") {
		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return nil, fmt.Errorf("%w: invalid request body", pkg.ErrBadRequest)
		}
		return nil, nil
	}

	// maxSize + 1MB: form alanları için küçük bir pay — dosya limiti
	// asıl olarak UploadService içinde kontrol edilir.
	if err := r.ParseMultipartForm(maxSize + 1<<20); err != nil {
		return nil, fmt.Errorf("%w: invalid multipart form", pkg.ErrBadRequest)
	}

	if payload := r.FormValue("payload"); payload != "" {
		if err := json.Unmarshal([]byte(payload), dest); err != nil {
			return nil, fmt.Errorf("%w: invalid payload field", pkg.ErrBadRequest)
		}
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		url, saveErr := upload.SaveImage(file, header)
		if saveErr != nil {
			return nil, saveErr
		}
		return &url, nil
	}

	if imageURL := strings.TrimSpace(r.FormValue("image_url")); imageURL != "" {
		return &imageURL, nil
	}

	return nil, nil
}
