package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Project, ajansın portföyündeki bir projeyi temsil eder.
// TechStack, DB'de JSON array olarak saklanır (tech_stack TEXT kolonu) —
// repository katmanı marshal/unmarshal eder.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	TechStack   []string  `json:"tech_stack"`
	ProjectURL  *string   `json:"project_url"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectRequest, yeni proje oluşturma isteği.
type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	TechStack   []string `json:"tech_stack"`
	ProjectURL  string   `json:"project_url"`
}

// Validate, CreateProjectRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateProjectRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	titleLen := utf8.RuneCountInString(r.Title)
	if titleLen < 1 || titleLen > 150 {
		return fmt.Errorf("project title must be between 1 and 150 characters")
	}

	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		return fmt.Errorf("project description is required")
	}
	if utf8.RuneCountInString(r.Description) > 5000 {
		return fmt.Errorf("project description must be at most 5000 characters")
	}

	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		return fmt.Errorf("project category is required")
	}

	if err := validateTechStack(r.TechStack); err != nil {
		return err
	}

	r.ProjectURL = strings.TrimSpace(r.ProjectURL)
	if r.ProjectURL != "" {
		if err := validateWebsiteURL(r.ProjectURL); err != nil {
			return fmt.Errorf("project url must be a valid http(s) URL")
		}
	}

	return nil
}

// UpdateProjectRequest, proje güncelleme isteği (partial update).
type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	TechStack   *[]string `json:"tech_stack"`
	ProjectURL  *string   `json:"project_url"`
}

// Validate, UpdateProjectRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateProjectRequest) Validate() error {
	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
		titleLen := utf8.RuneCountInString(*r.Title)
		if titleLen < 1 || titleLen > 150 {
			return fmt.Errorf("project title must be between 1 and 150 characters")
		}
	}

	if r.Description != nil {
		*r.Description = strings.TrimSpace(*r.Description)
		if *r.Description == "" {
			return fmt.Errorf("project description is required")
		}
		if utf8.RuneCountInString(*r.Description) > 5000 {
			return fmt.Errorf("project description must be at most 5000 characters")
		}
	}

	if r.Category != nil {
		*r.Category = strings.TrimSpace(*r.Category)
		if *r.Category == "" {
			return fmt.Errorf("project category is required")
		}
	}

	if r.TechStack != nil {
		if err := validateTechStack(*r.TechStack); err != nil {
			return err
		}
	}

	if r.ProjectURL != nil {
		*r.ProjectURL = strings.TrimSpace(*r.ProjectURL)
		if *r.ProjectURL != "" {
			if err := validateWebsiteURL(*r.ProjectURL); err != nil {
				return fmt.Errorf("project url must be a valid http(s) URL")
			}
		}
	}

	return nil
}

// validateTechStack, tech stack listesindeki her entry'yi kontrol eder.
// Boş string'lere ve aşırı uzun listelere izin verilmez.
func validateTechStack(stack []string) error {
	if len(stack) > 20 {
		return fmt.Errorf("tech stack can contain at most 20 entries")
	}
	for i, tech := range stack {
		stack[i] = strings.TrimSpace(tech)
		if stack[i] == "" {
			return fmt.Errorf("tech stack entries cannot be empty")
		}
		if utf8.RuneCountInString(stack[i]) > 50 {
			return fmt.Errorf("tech stack entries must be at most 50 characters")
		}
	}
	return nil
}
