// Package email, uygulama genelinde email gönderimi için soyutlama katmanı sağlar.
//
// EmailSender interface'i ile email gönderim detayları soyutlanır (Dependency Inversion).
// Şu anki implementasyon Resend API kullanır. İleride farklı bir sağlayıcıya
// geçmek için sadece yeni bir implementasyon yazıp constructor'da değiştirmek yeterli.
//
// Bu paket dışarıya üç şey sunar:
// 1. EmailSender interface — service'ler buna bağımlı olur
// 2. NewResendSender constructor — main.go'da wire-up için
// 3. NewNoopSender — API key verilmediğinde sessiz no-op (development)
package email

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/resend/resend-go/v3"
)

// EmailSender, email gönderimi için interface.
// Service katmanı bu interface'e bağımlıdır, concrete Resend implementasyonuna değil.
type EmailSender interface {
	// SendContactNotification, iletişim formundan yeni mesaj geldiğinde
	// ajans ekibine bildirim gönderir. subject boş olabilir.
	SendContactNotification(ctx context.Context, name, fromEmail, subject, body string) error
}

// resendSender, Resend API ile email gönderen EmailSender implementasyonu.
type resendSender struct {
	client      *resend.Client
	fromEmail   string // Gönderici adresi (Resend'de doğrulanmış domain altında olmalı)
	notifyEmail string // Bildirimlerin gideceği ekip adresi
}

// NewResendSender, Resend API client'ı ile yeni bir EmailSender oluşturur.
//
// apiKey: Resend dashboard'dan alınan API key (re_xxxxxxxx formatında).
func NewResendSender(apiKey, fromEmail, notifyEmail string) EmailSender {
	return &resendSender{
		client:      resend.NewClient(apiKey),
		fromEmail:   fromEmail,
		notifyEmail: notifyEmail,
	}
}

// SendContactNotification, yeni iletişim mesajı bildirimini gönderir.
//
// Ziyaretçi girdisi HTML'e gömülmeden önce escape edilir — form alanları
// üzerinden HTML injection yapılamaz. Reply-To ziyaretçinin adresine
// ayarlanır, ekip doğrudan yanıtlayabilir.
func (s *resendSender) SendContactNotification(ctx context.Context, name, fromEmail, subject, body string) error {
	displaySubject := subject
	if displaySubject == "" {
		displaySubject = "(no subject)"
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:24px;background-color:#f8fafc;font-family:Arial,Helvetica,sans-serif;">
  <table width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:32px;margin:0 auto;">
    <tr>
      <td>
        <h2 style="color:#0f172a;font-size:18px;margin:0 0 16px 0;">New contact message</h2>
        <p style="color:#334155;font-size:14px;margin:0 0 4px 0;"><strong>From:</strong> %s (%s)</p>
        <p style="color:#334155;font-size:14px;margin:0 0 16px 0;"><strong>Subject:</strong> %s</p>
        <p style="color:#475569;font-size:14px;line-height:1.6;margin:0;white-space:pre-wrap;">%s</p>
      </td>
    </tr>
  </table>
</body>
</html>`,
		html.EscapeString(name),
		html.EscapeString(fromEmail),
		html.EscapeString(displaySubject),
		html.EscapeString(body),
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("ajansly <%s>", s.fromEmail),
		To:      []string{s.notifyEmail},
		ReplyTo: fromEmail,
		Subject: fmt.Sprintf("New contact message from %s", name),
		Html:    htmlBody,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send contact notification email: %w", err)
	}

	return nil
}

// noopSender, email gönderimini loglayıp geçen EmailSender implementasyonu.
// RESEND_API_KEY yoksa (development ortamı) bu kullanılır.
type noopSender struct{}

// NewNoopSender, no-op EmailSender oluşturur.
func NewNoopSender() EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendContactNotification(_ context.Context, name, fromEmail, _, _ string) error {
	log.Printf("[email] notification skipped (no API key configured): message from %s <%s>", name, fromEmail)
	return nil
}
