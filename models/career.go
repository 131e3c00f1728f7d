package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// CareerType, iş ilanının çalışma şeklini temsil eder.
// Go'da enum yerine typed constant kullanılır.
type CareerType string

const (
	CareerTypeFullTime CareerType = "full-time"
	CareerTypePartTime CareerType = "part-time"
	CareerTypeContract CareerType = "contract"
	CareerTypeIntern   CareerType = "internship"
)

// Career, ajansın açık bir iş ilanını temsil eder.
// Active false olan ilanlar public listede görünmez (arşiv).
type Career struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Department  string     `json:"department"`
	Location    string     `json:"location"`
	Type        CareerType `json:"type"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateCareerRequest, yeni iş ilanı oluşturma isteği.
type CreateCareerRequest struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// Validate, CreateCareerRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateCareerRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	titleLen := utf8.RuneCountInString(r.Title)
	if titleLen < 1 || titleLen > 150 {
		return fmt.Errorf("career title must be between 1 and 150 characters")
	}

	r.Department = strings.TrimSpace(r.Department)
	if r.Department == "" {
		return fmt.Errorf("career department is required")
	}

	r.Location = strings.TrimSpace(r.Location)
	if r.Location == "" {
		return fmt.Errorf("career location is required")
	}

	if !isValidCareerType(r.Type) {
		return fmt.Errorf("career type must be one of: full-time, part-time, contract, internship")
	}

	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		return fmt.Errorf("career description is required")
	}

	return nil
}

// UpdateCareerRequest, iş ilanı güncelleme isteği (partial update).
type UpdateCareerRequest struct {
	Title       *string `json:"title"`
	Department  *string `json:"department"`
	Location    *string `json:"location"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// Validate, UpdateCareerRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateCareerRequest) Validate() error {
	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
		titleLen := utf8.RuneCountInString(*r.Title)
		if titleLen < 1 || titleLen > 150 {
			return fmt.Errorf("career title must be between 1 and 150 characters")
		}
	}

	if r.Department != nil {
		*r.Department = strings.TrimSpace(*r.Department)
		if *r.Department == "" {
			return fmt.Errorf("career department is required")
		}
	}

	if r.Location != nil {
		*r.Location = strings.TrimSpace(*r.Location)
		if *r.Location == "" {
			return fmt.Errorf("career location is required")
		}
	}

	if r.Type != nil {
		if !isValidCareerType(*r.Type) {
			return fmt.Errorf("career type must be one of: full-time, part-time, contract, internship")
		}
	}

	if r.Description != nil {
		*r.Description = strings.TrimSpace(*r.Description)
		if *r.Description == "" {
			return fmt.Errorf("career description is required")
		}
	}

	return nil
}

// isValidCareerType, verilen string'in geçerli bir CareerType olup olmadığını kontrol eder.
func isValidCareerType(t string) bool {
	switch CareerType(t) {
	case CareerTypeFullTime, CareerTypePartTime, CareerTypeContract, CareerTypeIntern:
		return true
	}
	return false
}
