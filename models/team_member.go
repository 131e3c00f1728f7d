package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// TeamMember, ajans ekibindeki bir kişiyi temsil eder.
// "Ekibimiz" sayfasında kart olarak gösterilir.
type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"` // Ünvan (ör: "Creative Director")
	Bio       *string   `json:"bio"`
	LinkedIn  *string   `json:"linkedin"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTeamMemberRequest, yeni ekip üyesi oluşturma isteği.
type CreateTeamMemberRequest struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	LinkedIn string `json:"linkedin"`
}

// Validate, CreateTeamMemberRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateTeamMemberRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	nameLen := utf8.RuneCountInString(r.Name)
	if nameLen < 1 || nameLen > 100 {
		return fmt.Errorf("member name must be between 1 and 100 characters")
	}

	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("member title is required")
	}
	if utf8.RuneCountInString(r.Title) > 100 {
		return fmt.Errorf("member title must be at most 100 characters")
	}

	r.Bio = strings.TrimSpace(r.Bio)
	if utf8.RuneCountInString(r.Bio) > 1000 {
		return fmt.Errorf("member bio must be at most 1000 characters")
	}

	r.LinkedIn = strings.TrimSpace(r.LinkedIn)
	if r.LinkedIn != "" {
		if err := validateWebsiteURL(r.LinkedIn); err != nil {
			return fmt.Errorf("linkedin must be a valid http(s) URL")
		}
	}

	return nil
}

// UpdateTeamMemberRequest, ekip üyesi güncelleme isteği (partial update).
type UpdateTeamMemberRequest struct {
	Name     *string `json:"name"`
	Title    *string `json:"title"`
	Bio      *string `json:"bio"`
	LinkedIn *string `json:"linkedin"`
}

// Validate, UpdateTeamMemberRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateTeamMemberRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		nameLen := utf8.RuneCountInString(*r.Name)
		if nameLen < 1 || nameLen > 100 {
			return fmt.Errorf("member name must be between 1 and 100 characters")
		}
	}

	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
		if *r.Title == "" {
			return fmt.Errorf("member title is required")
		}
		if utf8.RuneCountInString(*r.Title) > 100 {
			return fmt.Errorf("member title must be at most 100 characters")
		}
	}

	if r.Bio != nil {
		*r.Bio = strings.TrimSpace(*r.Bio)
		if utf8.RuneCountInString(*r.Bio) > 1000 {
			return fmt.Errorf("member bio must be at most 1000 characters")
		}
	}

	if r.LinkedIn != nil {
		*r.LinkedIn = strings.TrimSpace(*r.LinkedIn)
		if *r.LinkedIn != "" {
			if err := validateWebsiteURL(*r.LinkedIn); err != nil {
				return fmt.Errorf("linkedin must be a valid http(s) URL")
			}
		}
	}

	return nil
}
