package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Partner, ajansın birlikte çalıştığı bir iş ortağını temsil eder.
// Landing page'deki partner logo şeridinde gösterilir.
type Partner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Website   *string   `json:"website"` // *string = nullable — Go'da nil olabilir
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePartnerRequest, yeni partner oluşturma isteği.
// Image alanı request body'de değil — multipart form'daki "image" dosyası
// veya "image_url" string alanı olarak handler katmanında çözülür.
type CreatePartnerRequest struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

// Validate, CreatePartnerRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreatePartnerRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	nameLen := utf8.RuneCountInString(r.Name)
	if nameLen < 1 || nameLen > 100 {
		return fmt.Errorf("partner name must be between 1 and 100 characters")
	}

	r.Website = strings.TrimSpace(r.Website)
	if r.Website != "" {
		if err := validateWebsiteURL(r.Website); err != nil {
			return err
		}
	}

	return nil
}

// UpdatePartnerRequest, partner güncelleme isteği.
// Pointer (*string) kullanılır — nil ise o alan güncellenmez (partial update).
type UpdatePartnerRequest struct {
	Name    *string `json:"name"`
	Website *string `json:"website"`
}

// Validate, UpdatePartnerRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdatePartnerRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		nameLen := utf8.RuneCountInString(*r.Name)
		if nameLen < 1 || nameLen > 100 {
			return fmt.Errorf("partner name must be between 1 and 100 characters")
		}
	}

	if r.Website != nil {
		*r.Website = strings.TrimSpace(*r.Website)
		if *r.Website != "" {
			if err := validateWebsiteURL(*r.Website); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateWebsiteURL, website alanının http(s) URL olduğunu kontrol eder.
// Partner ve TeamMember (linkedin) alanları tarafından ortak kullanılır.
func validateWebsiteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("website must be a valid http(s) URL")
	}
	return nil
}
