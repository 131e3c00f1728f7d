package client

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
)

// InsertPolicy, create sonrası yeni kaydın listeye nereden gireceğini belirler.
// Server'daki ORDER BY yönüyle eşleşmeli: ASC sıralanan listeler Append,
// DESC sıralananlar Prepend kullanır.
type InsertPolicy int

const (
	InsertAppend InsertPolicy = iota
	InsertPrepend
)

// Controller, tek bir resource için CRUD akışını yönetir:
// server'a istek atar, sonucu Store'a yazar.
//
// Önemli kural: optimistic update YOK. Store yalnızca server'ın
// onayladığı (response'ta dönen) veriyle güncellenir. İstek başarısız
// olursa liste olduğu gibi kalır, sadece hata kaydedilir.
type Controller[T any] struct {
	client   *Client
	store    *Store[T]
	basePath string
	policy   InsertPolicy
	notifier Notifier
	persist  Persister

	// generation: her FetchAll çağrısında artan sayaç.
	// Yavaş gelen eski bir fetch cevabı, daha yeni bir fetch'in
	// yazdığı listeyi ezemesin diye cevap yazılmadan önce
	// generation hâlâ aynı mı diye bakılır.
	generation atomic.Int64
}

// ControllerOption, opsiyonel Controller ayarları.
type ControllerOption[T any] func(*Controller[T])

// WithNotifier, işlem sonuçlarını kullanıcıya duyuracak notifier'ı bağlar.
func WithNotifier[T any](n Notifier) ControllerOption[T] {
	return func(c *Controller[T]) { c.notifier = n }
}

// WithPersister, listenin son başarılı halini saklayacak persister'ı bağlar.
// Fetch başarılı olunca liste persist edilir; uygulama açılışında
// LoadCached ile geri okunabilir.
func WithPersister[T any](p Persister) ControllerOption[T] {
	return func(c *Controller[T]) { c.persist = p }
}

// NewController, verilen resource path'ine bağlı controller oluşturur.
// basePath "/api/partners" gibi tam API yoludur.
func NewController[T any](client *Client, store *Store[T], basePath string, policy InsertPolicy, opts ...ControllerOption[T]) *Controller[T] {
	c := &Controller[T]{
		client:   client,
		store:    store,
		basePath: basePath,
		policy:   policy,
		notifier: noopNotifier{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store, controller'ın bağlı olduğu store'u döner.
func (c *Controller[T]) Store() *Store[T] {
	return c.store
}

// FetchAll, listeyi server'dan çeker ve store'a yazar.
//
// Hata durumunda liste BOŞALTILIR: bayat veri göstermektense boş liste
// göstermek tercih edilir. Hata ayrıca store'a kaydedilir ve döner.
func (c *Controller[T]) FetchAll(ctx context.Context) error {
	gen := c.generation.Add(1)

	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	var items []T
	err := c.client.Get(ctx, c.basePath, &items)

	// Bu fetch başladıktan sonra yeni bir fetch tetiklendiyse
	// sonucumuz bayat — store'a dokunma.
	if c.generation.Load() != gen {
		return err
	}

	if err != nil {
		c.store.SetAll(nil)
		c.store.SetError(err)
		return err
	}

	c.store.SetAll(items)
	c.store.SetError(nil)
	c.saveCache(items)
	return nil
}

// FetchByID, tek kaydı çeker. Store'a yazmaz — detay görünümleri
// kendi kopyasıyla çalışır.
func (c *Controller[T]) FetchByID(ctx context.Context, id string) (T, error) {
	var item T
	if err := c.client.Get(ctx, c.basePath+"/"+id, &item); err != nil {
		return item, err
	}
	return item, nil
}

// Create, yeni kayıt oluşturur ve server'dan dönen kaydı insert
// policy'ye göre listeye ekler.
func (c *Controller[T]) Create(ctx context.Context, req any) (T, error) {
	var created T
	if err := c.client.Post(ctx, c.basePath, req, &created); err != nil {
		c.store.SetError(err)
		c.notifier.Error(fmt.Sprintf("create failed: %v", err))
		return created, err
	}

	switch c.policy {
	case InsertPrepend:
		c.store.Prepend(created)
	default:
		c.store.Append(created)
	}
	c.store.SetError(nil)
	c.notifier.Success("created")
	c.saveCache(c.store.Items())
	return created, nil
}

// Update, mevcut kaydı günceller ve dönen halini listedekiyle değiştirir.
// Kayıt listede yoksa ReplaceByID no-op'tur — sorun değil, detay
// ekranından güncelleme yapılmış olabilir.
func (c *Controller[T]) Update(ctx context.Context, id string, req any) (T, error) {
	var updated T
	if err := c.client.Put(ctx, c.basePath+"/"+id, req, &updated); err != nil {
		c.store.SetError(err)
		c.notifier.Error(fmt.Sprintf("update failed: %v", err))
		return updated, err
	}

	c.store.ReplaceByID(updated)
	c.store.SetError(nil)
	c.notifier.Success("updated")
	c.saveCache(c.store.Items())
	return updated, nil
}

// Delete, kaydı siler ve başarılıysa listeden çıkarır.
// Server onaylamadan listeye dokunulmaz.
func (c *Controller[T]) Delete(ctx context.Context, id string) error {
	if err := c.client.Delete(ctx, c.basePath+"/"+id); err != nil {
		c.store.SetError(err)
		c.notifier.Error(fmt.Sprintf("delete failed: %v", err))
		return err
	}

	c.store.RemoveByID(id)
	c.store.SetError(nil)
	c.notifier.Success("deleted")
	c.saveCache(c.store.Items())
	return nil
}

// CreateMultipart, payload + görselle multipart create yapar.
func (c *Controller[T]) CreateMultipart(ctx context.Context, payload any, imageName string, imageData io.Reader) (T, error) {
	var created T
	if err := c.client.PostMultipart(ctx, "POST", c.basePath, payload, imageName, imageData, &created); err != nil {
		c.store.SetError(err)
		c.notifier.Error(fmt.Sprintf("create failed: %v", err))
		return created, err
	}

	switch c.policy {
	case InsertPrepend:
		c.store.Prepend(created)
	default:
		c.store.Append(created)
	}
	c.store.SetError(nil)
	c.notifier.Success("created")
	c.saveCache(c.store.Items())
	return created, nil
}

// UpdateMultipart, payload + görselle multipart update yapar.
func (c *Controller[T]) UpdateMultipart(ctx context.Context, id string, payload any, imageName string, imageData io.Reader) (T, error) {
	var updated T
	if err := c.client.PostMultipart(ctx, "PUT", c.basePath+"/"+id, payload, imageName, imageData, &updated); err != nil {
		c.store.SetError(err)
		c.notifier.Error(fmt.Sprintf("update failed: %v", err))
		return updated, err
	}

	c.store.ReplaceByID(updated)
	c.store.SetError(nil)
	c.notifier.Success("updated")
	c.saveCache(c.store.Items())
	return updated, nil
}

// LoadCached, persister'dan son kaydedilen listeyi okuyup store'a koyar.
// Cache yoksa veya bozuksa sessizce atlanır — ilk fetch nasılsa gelecek.
func (c *Controller[T]) LoadCached() {
	if c.persist == nil {
		return
	}
	var items []T
	ok, err := c.persist.Load(c.basePath, &items)
	if err != nil || !ok {
		return
	}
	c.store.SetAll(items)
}

func (c *Controller[T]) saveCache(items []T) {
	if c.persist == nil {
		return
	}
	if err := c.persist.Save(c.basePath, items); err != nil {
		// Cache yazılamadı diye akış bozulmaz.
		c.notifier.Error(fmt.Sprintf("cache save failed: %v", err))
	}
}
