package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/venue-service/internal/config"
	"github.com/spec-kit/venue-service/internal/events"
)

// NotificationService handles emitting notifications for staff lifecycle
// events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventStaffProvisioned, n.handleStaffProvisioned)
	n.dispatcher.Subscribe(events.EventStaffDeprovisioned, n.handleStaffDeprovisioned)
	n.dispatcher.Subscribe(events.EventStaffDisabled, n.handleStaffDisabled)
	n.dispatcher.Subscribe(events.EventManagerAssigned, n.handleManagerAssigned)
}

func (n *NotificationService) handleStaffProvisioned(ctx context.Context, event events.Event) error {
	n.logger.Info("StaffProvisioned", zap.String("account_id", event.AccountID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStaffDeprovisioned(ctx context.Context, event events.Event) error {
	n.logger.Info("StaffDeprovisioned", zap.String("account_id", event.AccountID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStaffDisabled(ctx context.Context, event events.Event) error {
	n.logger.Info("StaffDisabled", zap.String("account_id", event.AccountID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleManagerAssigned(ctx context.Context, event events.Event) error {
	n.logger.Info("ManagerAssigned", zap.String("account_id", event.AccountID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("account_id", event.AccountID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("account_id", event.AccountID),
		zap.String("event_type", string(event.Type)))
}
