// Package client, ajansly API'si için Go SDK'sıdır.
//
// Admin panel ve site frontend'inin kullandığı veri katmanını üçe ayırır:
//   - Client: HTTP sarmalayıcı — envelope çözme, timeout, hata sınıflandırma
//   - Store: Bir kaynağın bellek içi durumu (liste + loading + hata)
//   - Controller: CRUD operasyonları — Client'ı çağırır, Store'u günceller
//
// Controller hiçbir zaman "optimistic update" yapmaz: Store yalnızca
// server'dan dönen onaylı veriyle değişir. Server hata dönerse liste
// olduğu gibi kalır, yalnızca hata durumu set edilir.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Hata sınıfları — çağıran taraf errors.Is ile ayırt eder.
//
// Sınıflandırma UI davranışını belirler:
//   - ErrNetworkUnavailable / ErrTimeout → "bağlantı sorunu" banner'ı, retry önerilir
//   - ErrValidationFailed → form açık kalır, alan hataları gösterilir
//   - ErrNotFound → kayıt silinmiş, listeden düşürülür
//   - ErrUnauthorized → login ekranına yönlendirilir
//   - ErrServerRejected → genel hata mesajı
var (
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrTimeout            = errors.New("request timed out")
	ErrServerRejected     = errors.New("server rejected request")
	ErrNotFound           = errors.New("resource not found")
	ErrValidationFailed   = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
)

// APIError, sınıflandırılmış bir API hatasını server mesajıyla birlikte taşır.
// errors.Is(err, client.ErrValidationFailed) sınıfı yakalar,
// errors.As(err, &apiErr) ile mesaj ve status koduna erişilir.
type APIError struct {
	Kind    error  // Yukarıdaki sentinel'lerden biri
	Status  int    // HTTP status kodu (network hatalarında 0)
	Message string // Server'ın envelope'taki message/error alanı
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Message)
	}
	return e.Kind.Error()
}

// Unwrap, errors.Is'in sentinel sınıfa ulaşmasını sağlar.
func (e *APIError) Unwrap() error {
	return e.Kind
}

// classifyStatus, HTTP status kodunu hata sınıfına çevirir.
func classifyStatus(status int, message string) error {
	var kind error
	switch {
	case status == 401 || status == 403:
		kind = ErrUnauthorized
	case status == 404:
		kind = ErrNotFound
	case status == 400 || status == 422:
		kind = ErrValidationFailed
	default:
		kind = ErrServerRejected
	}
	return &APIError{Kind: kind, Status: status, Message: message}
}

// classifyTransport, request hiç tamamlanamadığında (DNS, bağlantı reddi,
// timeout) hata sınıfını belirler.
func classifyTransport(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &APIError{Kind: ErrTimeout, Message: err.Error()}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{Kind: ErrTimeout, Message: err.Error()}
	}
	return &APIError{Kind: ErrNetworkUnavailable, Message: err.Error()}
}
