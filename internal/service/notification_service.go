package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/gym-service/internal/config"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/events"
	"github.com/spec-kit/gym-service/internal/repository"
)

// How far ahead the expiry reminder looks.
const membershipExpiryWindow = 30 * 24 * time.Hour

// NotificationService emits notifications, both reactively (domain events)
// and on demand (admin-triggered reminders). Delivery is stubbed: email and
// webhook sends log what would go out.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
	members    repository.MemberRepository
	classes    repository.ClassRepository
	bookings   repository.BookingRepository
	payments   repository.PaymentRepository
}

// NewNotificationService creates the service.
func NewNotificationService(
	dispatcher events.Dispatcher,
	logger *zap.Logger,
	cfg config.NotificationConfig,
	members repository.MemberRepository,
	classes repository.ClassRepository,
	bookings repository.BookingRepository,
	payments repository.PaymentRepository,
) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		members:    members,
		classes:    classes,
		bookings:   bookings,
		payments:   payments,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventBookingCreated, n.handleBookingCreated)
	n.dispatcher.Subscribe(events.EventBookingCancelled, n.handleBookingCancelled)
	n.dispatcher.Subscribe(events.EventPaymentRecorded, n.handlePaymentRecorded)
	n.dispatcher.Subscribe(events.EventContactReceived, n.handleContactReceived)
}

// SendClassReminders notifies every member with an active booking for the
// class. Returns how many reminders went out.
func (n *NotificationService) SendClassReminders(ctx context.Context, classID int64) (int, error) {
	class, err := n.classes.GetByID(ctx, classID)
	if err != nil {
		return 0, err
	}
	bookings, err := n.bookings.ListByClass(ctx, classID)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, booking := range bookings {
		if booking.Status != domain.BookingStatusActive {
			continue
		}
		n.sendEmailStub("class reminder",
			zap.Int64("member_id", booking.MemberID),
			zap.String("class", class.Name),
			zap.Time("start_time", class.StartTime))
		sent++
	}
	n.logger.Info("class reminders sent", zap.Int64("class_id", classID), zap.Int("count", sent))
	return sent, nil
}

// SendPaymentReminders nudges every member with a pending payment.
func (n *NotificationService) SendPaymentReminders(ctx context.Context) (int, error) {
	pending, err := n.payments.ListByStatus(ctx, domain.PaymentStatusPending)
	if err != nil {
		return 0, err
	}
	for _, payment := range pending {
		n.sendEmailStub("payment reminder",
			zap.Int64("member_id", payment.MemberID),
			zap.Int64("payment_id", payment.ID),
			zap.Float64("amount", payment.Amount))
	}
	n.logger.Info("payment reminders sent", zap.Int("count", len(pending)))
	return len(pending), nil
}

// SendMembershipExpiryReminders warns active members whose membership ends
// within the expiry window.
func (n *NotificationService) SendMembershipExpiryReminders(ctx context.Context) (int, error) {
	members, err := n.members.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	cutoff := now.Add(membershipExpiryWindow)
	sent := 0
	for _, member := range members {
		if member.MembershipEnd == nil {
			continue
		}
		end := *member.MembershipEnd
		if end.Before(now) || end.After(cutoff) {
			continue
		}
		n.sendEmailStub("membership expiry reminder",
			zap.Int64("member_id", member.ID),
			zap.Time("membership_end", end))
		sent++
	}
	n.logger.Info("membership expiry reminders sent", zap.Int("count", sent))
	return sent, nil
}

// SendWelcome sends the welcome message to a single member.
func (n *NotificationService) SendWelcome(ctx context.Context, memberID int64) error {
	member, err := n.members.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	n.sendEmailStub("welcome",
		zap.Int64("member_id", member.ID),
		zap.String("membership_type", string(member.MembershipType)))
	n.logger.Info("welcome sent", zap.Int64("member_id", memberID))
	return nil
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.Int64("entity_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleBookingCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("BookingCreated", zap.Int64("entity_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleBookingCancelled(ctx context.Context, event events.Event) error {
	n.logger.Info("BookingCancelled", zap.Int64("entity_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePaymentRecorded(ctx context.Context, event events.Event) error {
	n.logger.Info("PaymentRecorded", zap.Int64("entity_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleContactReceived(ctx context.Context, event events.Event) error {
	n.logger.Info("ContactReceived", zap.Int64("entity_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailStub(kind string, fields ...zap.Field) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	fields = append(fields, zap.String("from", n.cfg.EmailFrom), zap.String("kind", kind))
	n.logger.Debug("sendEmailStub", fields...)
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.Int64("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
