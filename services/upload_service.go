package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/emrekav/ajansly/pkg"
)

// UploadService, görsel yükleme iş mantığı interface'i.
//
// Site içeriği yalnızca görsel taşır (logo, proje görseli, avatar) —
// video/PDF gibi türler kabul edilmez. Dönen değer görselin public
// URL'idir (/api/uploads/... altında servis edilir), DB kaydı yoktur;
// URL ilgili içerik kaydının image_url kolonunda yaşar.
type UploadService interface {
	SaveImage(file multipart.File, header *multipart.FileHeader) (string, error)
}

type uploadService struct {
	uploadDir string
	maxSize   int64
}

// NewUploadService, constructor.
func NewUploadService(uploadDir string, maxSize int64) UploadService {
	return &uploadService{
		uploadDir: uploadDir,
		maxSize:   maxSize,
	}
}

// allowedImageTypes, yüklemeye izin verilen görsel türleri.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// SaveImage, görseli doğrular ve diske kaydeder, public URL'ini döner.
func (s *uploadService) SaveImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	// Boyut kontrolü
	if header.Size > s.maxSize {
		return "", fmt.Errorf("%w: image too large (max %dMB)", pkg.ErrBadRequest, s.maxSize/(1024*1024))
	}

	// MIME type kontrolü
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	// Sadece base MIME type'ı al (charset vb. parametre olabilir)
	mimeBase := strings.TrimSpace(strings.Split(contentType, ";")[0])

	if !allowedImageTypes[mimeBase] {
		return "", fmt.Errorf("%w: file type not allowed: %s", pkg.ErrBadRequest, mimeBase)
	}

	// Unique dosya adı oluştur — çakışma ve güvenlik için
	// {random_hex}_{original_filename} formatı
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random filename: %w", err)
	}
	diskFilename := hex.EncodeToString(randomBytes) + "_" + sanitizeFilename(header.Filename)

	destPath := filepath.Join(s.uploadDir, diskFilename)
	destFile, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, file); err != nil {
		// Hata durumunda dosyayı temizle
		os.Remove(destPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return "/api/uploads/" + diskFilename, nil
}

// sanitizeFilename, dosya adını güvenli hale getirir.
// Path traversal saldırılarını önler (../../etc/passwd gibi).
func sanitizeFilename(name string) string {
	// Sadece dosya adını al (dizin yolunu kaldır)
	name = filepath.Base(name)

	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == '\x00' {
			return -1
		}
		return r
	}, name)

	if name == "" || name == "." || name == ".." {
		name = "unnamed"
	}

	return name
}
