package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// emailRegex, pratik bir email format kontrolü.
// RFC 5322'nin tamamını kapsamaz — amaç bariz hatalı girdileri elemek.
// Gerçek doğrulama zaten mümkün değil (mailbox'ın varlığı bilinemez).
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// EmailRegex, email format regex'ini döner.
// models dışındaki katmanlar (services) da aynı kontrolü kullanır.
func EmailRegex() *regexp.Regexp {
	return emailRegex
}

// ContactMessage, public iletişim formundan gelen bir mesajı temsil eder.
//
// Tek public-write entity'dir: site ziyaretçisi auth olmadan POST eder,
// admin panelinde okunur/silinir. Read flag'i admin'in mesajı
// görüp görmediğini işaretler. Liste her zaman en yeni mesaj en üstte.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateContactMessageRequest, iletişim formu gönderme isteği.
type CreateContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate, CreateContactMessageRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateContactMessageRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	nameLen := utf8.RuneCountInString(r.Name)
	if nameLen < 1 || nameLen > 100 {
		return fmt.Errorf("name must be between 1 and 100 characters")
	}

	r.Email = strings.TrimSpace(r.Email)
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("invalid email format")
	}

	r.Subject = strings.TrimSpace(r.Subject)
	if utf8.RuneCountInString(r.Subject) > 200 {
		return fmt.Errorf("subject must be at most 200 characters")
	}

	r.Body = strings.TrimSpace(r.Body)
	if r.Body == "" {
		return fmt.Errorf("message body is required")
	}
	if utf8.RuneCountInString(r.Body) > 5000 {
		return fmt.Errorf("message body must be at most 5000 characters")
	}

	return nil
}
