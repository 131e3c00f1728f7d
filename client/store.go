package client

import "sync"

// Store, tek bir listeleme için istemci tarafı state'i tutar:
// item'lar, yüklenme bayrağı ve son hata.
//
// Go'da generic type parametresi [T any] sayesinde her entity için
// ayrı store yazmak gerekmez — Store[models.Partner], Store[models.BlogPost]
// aynı koddan türetilir.
//
// Store pasiftir: server'a istek atmaz, Controller ne derse onu saklar.
// Tüm metodlar goroutine-safe'tir.
type Store[T any] struct {
	mu      sync.RWMutex
	items   []T
	loading bool
	err     error

	// id, bir item'ın kimliğini çıkarır — ReplaceByID/RemoveByID için gerekli.
	id func(T) string

	// listeners: state değişince haber verilen callback'ler.
	// UI katmanı buraya abone olup yeniden çizer.
	listeners []func()
}

// NewStore, verilen ID extractor'la boş bir store oluşturur.
func NewStore[T any](id func(T) string) *Store[T] {
	return &Store[T]{id: id}
}

// Subscribe, her state değişiminde çağrılacak bir listener ekler.
// Listener'lar lock dışında, kayıt sırasıyla çağrılır.
func (s *Store[T]) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store[T]) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// Items, mevcut item'ların kopyasını döner.
// Kopya dönmek şart: çağıran slice'ı değiştirirse store bozulmamalı.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len, item sayısını döner.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Loading, yükleme devam ediyor mu döner.
func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err, son kaydedilen hatayı döner (nil = hata yok).
func (s *Store[T]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// SetAll, listeyi komple değiştirir. nil verilirse boş liste saklanır —
// Items() hiçbir zaman nil dönmemeli.
func (s *Store[T]) SetAll(items []T) {
	s.mu.Lock()
	s.items = make([]T, len(items))
	copy(s.items, items)
	s.mu.Unlock()
	s.notify()
}

// Append, item'ı listenin sonuna ekler.
// created_at ASC sıralanan entity'ler için: en yeni kayıt sona gelir.
func (s *Store[T]) Append(item T) {
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
	s.notify()
}

// Prepend, item'ı listenin başına ekler.
// created_at DESC sıralanan entity'ler için: en yeni kayıt başa gelir.
func (s *Store[T]) Prepend(item T) {
	s.mu.Lock()
	s.items = append([]T{item}, s.items...)
	s.mu.Unlock()
	s.notify()
}

// ReplaceByID, aynı ID'li item'ı yenisiyle değiştirir.
// ID listede yoksa sessizce no-op — sıralama asla değişmez.
func (s *Store[T]) ReplaceByID(item T) {
	id := s.id(item)

	s.mu.Lock()
	replaced := false
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = item
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if replaced {
		s.notify()
	}
}

// RemoveByID, verilen ID'li item'ı listeden çıkarır.
// ID yoksa no-op.
func (s *Store[T]) RemoveByID(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.notify()
	}
}

// SetLoading, yükleme bayrağını ayarlar.
func (s *Store[T]) SetLoading(loading bool) {
	s.mu.Lock()
	changed := s.loading != loading
	s.loading = loading
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// SetError, hata state'ini ayarlar (nil hata temizler).
func (s *Store[T]) SetError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	s.notify()
}
