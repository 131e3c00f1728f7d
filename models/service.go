package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Service, ajansın sunduğu bir hizmeti temsil eder (web tasarım, SEO, vb.).
// Icon, frontend'deki icon set'inden bir isim taşır (ör: "code", "chart") —
// görselden bağımsızdır, görsel ayrıca image_url ile gelir.
type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        *string   `json:"icon"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateServiceRequest, yeni hizmet oluşturma isteği.
type CreateServiceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Validate, CreateServiceRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateServiceRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	titleLen := utf8.RuneCountInString(r.Title)
	if titleLen < 1 || titleLen > 100 {
		return fmt.Errorf("service title must be between 1 and 100 characters")
	}

	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		return fmt.Errorf("service description is required")
	}
	if utf8.RuneCountInString(r.Description) > 2000 {
		return fmt.Errorf("service description must be at most 2000 characters")
	}

	r.Icon = strings.TrimSpace(r.Icon)
	if utf8.RuneCountInString(r.Icon) > 50 {
		return fmt.Errorf("service icon must be at most 50 characters")
	}

	return nil
}

// UpdateServiceRequest, hizmet güncelleme isteği (partial update).
type UpdateServiceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// Validate, UpdateServiceRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateServiceRequest) Validate() error {
	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
		titleLen := utf8.RuneCountInString(*r.Title)
		if titleLen < 1 || titleLen > 100 {
			return fmt.Errorf("service title must be between 1 and 100 characters")
		}
	}

	if r.Description != nil {
		*r.Description = strings.TrimSpace(*r.Description)
		if *r.Description == "" {
			return fmt.Errorf("service description is required")
		}
		if utf8.RuneCountInString(*r.Description) > 2000 {
			return fmt.Errorf("service description must be at most 2000 characters")
		}
	}

	if r.Icon != nil {
		*r.Icon = strings.TrimSpace(*r.Icon)
		if utf8.RuneCountInString(*r.Icon) > 50 {
			return fmt.Errorf("service icon must be at most 50 characters")
		}
	}

	return nil
}
