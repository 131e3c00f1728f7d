package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/pkg/email"
	"github.com/emrekav/ajansly/repository"
	"github.com/emrekav/ajansly/ws"
)

// ContactService, iletişim formu mesajları iş mantığı interface'i.
//
// Submit herkese açıktır (rate limit handler'da uygulanır), diğer
// operasyonlar admin paneline aittir.
type ContactService interface {
	Submit(ctx context.Context, req *models.CreateContactMessageRequest) (*models.ContactMessage, error)
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
	CountUnread(ctx context.Context) (int, error)
}

type contactService struct {
	messageRepo repository.ContactMessageRepository
	sender      email.EmailSender
	hub         ws.EventPublisher
}

func NewContactService(
	messageRepo repository.ContactMessageRepository,
	sender email.EmailSender,
	hub ws.EventPublisher,
) ContactService {
	return &contactService{
		messageRepo: messageRepo,
		sender:      sender,
		hub:         hub,
	}
}

// Submit, ziyaretçiden gelen formu kaydeder, admin paneline broadcast eder
// ve ekibe email bildirimi gönderir.
//
// Email gönderimi fire-and-forget goroutine'de yapılır: Resend API'nin
// yavaşlığı veya hatası ziyaretçinin form yanıtını geciktirmemeli.
// Hata sadece loglanır — mesaj zaten DB'dedir, kaybolmaz.
func (s *contactService) Submit(ctx context.Context, req *models.CreateContactMessageRequest) (*models.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	message := &models.ContactMessage{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Body,
	}
	if req.Subject != "" {
		message.Subject = &req.Subject
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.OpMessageReceived,
		Data: message,
	})

	subject := ""
	if message.Subject != nil {
		subject = *message.Subject
	}
	go func(name, fromEmail, subject, body string) {
		// Request context'i handler dönünce iptal olur — kendi timeout'umuzu kurarız.
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := s.sender.SendContactNotification(sendCtx, name, fromEmail, subject, body); err != nil {
			log.Printf("[contact] failed to send notification email: %v", err)
		}
	}(message.Name, message.Email, subject, message.Body)

	return message, nil
}

func (s *contactService) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	return s.messageRepo.GetAll(ctx)
}

func (s *contactService) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	return s.messageRepo.GetByID(ctx, id)
}

// MarkRead, mesajı okundu işaretler ve güncel halini döner.
func (s *contactService) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	if err := s.messageRepo.MarkRead(ctx, id); err != nil {
		return nil, err
	}

	message, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("messages", ws.ActionUpdate),
		Data: message,
	})

	return message, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if err := s.messageRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("messages", ws.ActionDelete),
		Data: ws.DeleteData{ID: id},
	})

	return nil
}

func (s *contactService) CountUnread(ctx context.Context) (int, error) {
	return s.messageRepo.CountUnread(ctx)
}
