package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/events"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// ContactService handles public contact form submissions.
type ContactService struct {
	messages   repository.ContactRepository
	dispatcher events.Dispatcher
}

// NewContactService builds the service.
func NewContactService(messages repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{messages: messages, dispatcher: dispatcher}
}

// Submit stores a contact message from anyone, authenticated or not.
func (s *ContactService) Submit(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" {
		return nil, apperrors.NewValidationError("name and email are required", nil)
	}
	if strings.TrimSpace(msg.Body) == "" {
		return nil, apperrors.NewValidationError("message body is required", nil)
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactReceived,
			EntityID:  msg.ID,
			Timestamp: time.Now(),
			Payload: events.ContactReceivedPayload{
				Name:    msg.Name,
				Email:   msg.Email,
				Subject: msg.Subject,
			},
		})
	}
	return msg, nil
}

// Get returns one message.
func (s *ContactService) Get(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	return s.messages.GetByID(ctx, id)
}

// List returns all messages, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messages.List(ctx)
}

// MarkRead flags a message as handled.
func (s *ContactService) MarkRead(ctx context.Context, id int64) error {
	return s.messages.MarkRead(ctx, id)
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.messages.Delete(ctx, id)
}
