package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Testimonial, bir müşteri yorumunu temsil eder.
// Rating 1-5 arası bir tam sayıdır — hem burada hem DB'de (CHECK constraint)
// doğrulanır. Liste her zaman en yeni yorum en üstte gösterilir.
type Testimonial struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Company   *string   `json:"company"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTestimonialRequest, yeni müşteri yorumu oluşturma isteği.
type CreateTestimonialRequest struct {
	Author  string `json:"author"`
	Company string `json:"company"`
	Quote   string `json:"quote"`
	Rating  int    `json:"rating"`
}

// Validate, CreateTestimonialRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateTestimonialRequest) Validate() error {
	r.Author = strings.TrimSpace(r.Author)
	authorLen := utf8.RuneCountInString(r.Author)
	if authorLen < 1 || authorLen > 100 {
		return fmt.Errorf("testimonial author must be between 1 and 100 characters")
	}

	r.Company = strings.TrimSpace(r.Company)
	if utf8.RuneCountInString(r.Company) > 100 {
		return fmt.Errorf("testimonial company must be at most 100 characters")
	}

	r.Quote = strings.TrimSpace(r.Quote)
	if r.Quote == "" {
		return fmt.Errorf("testimonial quote is required")
	}
	if utf8.RuneCountInString(r.Quote) > 2000 {
		return fmt.Errorf("testimonial quote must be at most 2000 characters")
	}

	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("testimonial rating must be between 1 and 5")
	}

	return nil
}

// UpdateTestimonialRequest, müşteri yorumu güncelleme isteği (partial update).
type UpdateTestimonialRequest struct {
	Author  *string `json:"author"`
	Company *string `json:"company"`
	Quote   *string `json:"quote"`
	Rating  *int    `json:"rating"`
}

// Validate, UpdateTestimonialRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateTestimonialRequest) Validate() error {
	if r.Author != nil {
		*r.Author = strings.TrimSpace(*r.Author)
		authorLen := utf8.RuneCountInString(*r.Author)
		if authorLen < 1 || authorLen > 100 {
			return fmt.Errorf("testimonial author must be between 1 and 100 characters")
		}
	}

	if r.Company != nil {
		*r.Company = strings.TrimSpace(*r.Company)
		if utf8.RuneCountInString(*r.Company) > 100 {
			return fmt.Errorf("testimonial company must be at most 100 characters")
		}
	}

	if r.Quote != nil {
		*r.Quote = strings.TrimSpace(*r.Quote)
		if *r.Quote == "" {
			return fmt.Errorf("testimonial quote is required")
		}
		if utf8.RuneCountInString(*r.Quote) > 2000 {
			return fmt.Errorf("testimonial quote must be at most 2000 characters")
		}
	}

	if r.Rating != nil {
		if *r.Rating < 1 || *r.Rating > 5 {
			return fmt.Errorf("testimonial rating must be between 1 and 5")
		}
	}

	return nil
}
