// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model nedir?
// Veritabanındaki bir tablonun Go karşılığıdır.
// Aynı zamanda API'den gelen/giden verilerin şeklini de belirler.
//
// Go'da `json:"username"` gibi tag'ler, struct field'larının JSON'a
// nasıl serialize/deserialize edileceğini belirler.
package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// User, bir admin kullanıcısını temsil eder.
// Bu sitede public kayıt yoktur — kullanıcılar sadece admin panelini
// kullanan ajans çalışanlarıdır. İlk admin açılışta env'den bootstrap edilir.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // json:"-" → API response'a DAHİL ETME (güvenlik!)
	CreatedAt    time.Time `json:"created_at"`
}

// LoginRequest, admin girişinde frontend'den gelen veri.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
func (r *LoginRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ChangePasswordRequest, admin şifre değiştirme isteği.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Validate, ChangePasswordRequest'in geçerli olup olmadığını kontrol eder.
func (r *ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" {
		return fmt.Errorf("current password is required")
	}
	if utf8.RuneCountInString(r.NewPassword) < 8 {
		return fmt.Errorf("new password must be at least 8 characters")
	}
	return nil
}
