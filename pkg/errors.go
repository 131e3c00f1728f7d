// Package pkg, katmanlar arasında paylaşılan yardımcıları barındırır:
// sentinel error'lar ve API response envelope'u.
//
// Go'da error sadece bir değerdir; errors.New() ile sabit tanımlanır
// ve errors.Is() ile karşılaştırılır:
//
//	return fmt.Errorf("%w: partner %s", pkg.ErrNotFound, id)
//	...
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// %w ile sarmalama sayesinde service katmanı bağlam ekleyebilir,
// handler katmanı yine de hangi sentinel olduğunu ayırt edebilir.
package pkg

import "errors"

// Sentinel error'lar — service katmanı döner, pkg.Error HTTP status'a çevirir.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)
