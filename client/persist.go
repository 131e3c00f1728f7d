package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Persister, liste state'inin oturumlar arası saklanacağı yer.
// Key olarak resource path kullanılır ("/api/partners" gibi).
type Persister interface {
	// Save, value'yu key altında saklar.
	Save(key string, value any) error
	// Load, key altındaki değeri dest'e çözer.
	// Kayıt yoksa (false, nil) döner.
	Load(key string, dest any) (bool, error)
	// Remove, key altındaki kaydı siler. Kayıt yoksa no-op.
	Remove(key string) error
}

// filePersister, her key'i ayrı bir JSON dosyasına yazar.
// Admin paneli gibi tek process'li kullanım için yeterli;
// eşzamanlılık process içi mutex'le sağlanır.
type filePersister struct {
	dir string
	mu  sync.Mutex
}

// NewFilePersister, dir altında dosya tabanlı persister oluşturur.
// Dizin yoksa oluşturulur.
func NewFilePersister(dir string) (Persister, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &filePersister{dir: dir}, nil
}

// keyToFilename, path karakterlerini dosya adına uygun hale getirir:
// "/api/partners" -> "api_partners.json".
func (p *filePersister) keyToFilename(key string) string {
	clean := strings.Trim(key, "/")
	clean = strings.ReplaceAll(clean, "/", "_")
	if clean == "" {
		clean = "root"
	}
	return filepath.Join(p.dir, clean+".json")
}

func (p *filePersister) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Önce temp dosyaya yaz, sonra rename — yarım dosya kalmasın.
	target := p.keyToFilename(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("failed to replace cache file: %w", err)
	}
	return nil
}

func (p *filePersister) Load(key string, dest any) (bool, error) {
	p.mu.Lock()
	raw, err := os.ReadFile(p.keyToFilename(key))
	p.mu.Unlock()

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache file: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (p *filePersister) Remove(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := os.Remove(p.keyToFilename(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove cache file: %w", err)
	}
	return nil
}

// memoryPersister, test ve geçici kullanım için RAM'de tutan persister.
type memoryPersister struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryPersister, bellek içi persister oluşturur.
func NewMemoryPersister() Persister {
	return &memoryPersister{data: make(map[string][]byte)}
}

func (p *memoryPersister) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.data[key] = raw
	p.mu.Unlock()
	return nil
}

func (p *memoryPersister) Load(key string, dest any) (bool, error) {
	p.mu.Lock()
	raw, ok := p.data[key]
	p.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (p *memoryPersister) Remove(key string) error {
	p.mu.Lock()
	delete(p.data, key)
	p.mu.Unlock()
	return nil
}
