package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// BlogPost, ajans blogundaki bir yazıyı temsil eder.
//
// Slug, URL'de kullanılan okunabilir kimliktir (ör: "yeni-web-sitemiz").
// Başlıktan otomatik üretilir ve DB'de unique'tir — service katmanı
// çakışma durumunda sonuna sayaç ekler.
//
// Published false olan yazılar (draft) sadece admin listesinde görünür.
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   *string   `json:"excerpt"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	ImageURL  *string   `json:"image_url"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBlogPostRequest, yeni blog yazısı oluşturma isteği.
// Slug istek ile gelmez — service katmanı başlıktan üretir.
type CreateBlogPostRequest struct {
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Published bool   `json:"published"`
}

// Validate, CreateBlogPostRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateBlogPostRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	titleLen := utf8.RuneCountInString(r.Title)
	if titleLen < 1 || titleLen > 200 {
		return fmt.Errorf("post title must be between 1 and 200 characters")
	}

	r.Excerpt = strings.TrimSpace(r.Excerpt)
	if utf8.RuneCountInString(r.Excerpt) > 500 {
		return fmt.Errorf("post excerpt must be at most 500 characters")
	}

	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		return fmt.Errorf("post content is required")
	}

	r.Author = strings.TrimSpace(r.Author)
	if r.Author == "" {
		return fmt.Errorf("post author is required")
	}
	if utf8.RuneCountInString(r.Author) > 100 {
		return fmt.Errorf("post author must be at most 100 characters")
	}

	return nil
}

// UpdateBlogPostRequest, blog yazısı güncelleme isteği (partial update).
// Title değişirse slug yeniden üretilmez — yayınlanmış URL'ler kırılmasın.
type UpdateBlogPostRequest struct {
	Title     *string `json:"title"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	Author    *string `json:"author"`
	Published *bool   `json:"published"`
}

// Validate, UpdateBlogPostRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateBlogPostRequest) Validate() error {
	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
		titleLen := utf8.RuneCountInString(*r.Title)
		if titleLen < 1 || titleLen > 200 {
			return fmt.Errorf("post title must be between 1 and 200 characters")
		}
	}

	if r.Excerpt != nil {
		*r.Excerpt = strings.TrimSpace(*r.Excerpt)
		if utf8.RuneCountInString(*r.Excerpt) > 500 {
			return fmt.Errorf("post excerpt must be at most 500 characters")
		}
	}

	if r.Content != nil {
		*r.Content = strings.TrimSpace(*r.Content)
		if *r.Content == "" {
			return fmt.Errorf("post content is required")
		}
	}

	if r.Author != nil {
		*r.Author = strings.TrimSpace(*r.Author)
		if *r.Author == "" {
			return fmt.Errorf("post author is required")
		}
		if utf8.RuneCountInString(*r.Author) > 100 {
			return fmt.Errorf("post author must be at most 100 characters")
		}
	}

	return nil
}

// Slugify, başlıktan URL-safe slug üretir.
//
// Dönüşüm kuralları:
// - Unicode harfler küçültülür, Türkçe karakterler ASCII karşılığına çevrilir
//   (ş→s, ç→c, ğ→g, ı→i, ö→o, ü→u)
// - Harf/rakam dışındaki karakterler tire olur, ardışık tireler teklenir
// - Baş ve sondaki tireler atılır
//
// Örnek: "Yeni Web Sitemiz Yayında!" → "yeni-web-sitemiz-yayinda"
func Slugify(title string) string {
	// Türkçe karakterleri ASCII karşılıklarına çevir
	replacer := strings.NewReplacer(
		"ş", "s", "Ş", "s",
		"ç", "c", "Ç", "c",
		"ğ", "g", "Ğ", "g",
		"ı", "i", "İ", "i",
		"ö", "o", "Ö", "o",
		"ü", "u", "Ü", "u",
	)
	title = replacer.Replace(title)

	var b strings.Builder
	prevDash := true // baştaki tireleri engelle
	for _, ch := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(ch) || unicode.IsDigit(ch):
			// ASCII dışı harfler atlanır — URL'de güvenli olmayabilir
			if ch > unicode.MaxASCII {
				continue
			}
			b.WriteRune(ch)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "post"
	}
	return slug
}
