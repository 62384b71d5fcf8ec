package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/gym-service/internal/service"
)

// StartNotificationWorker subscribes the notification handlers to the
// event dispatcher. No-op when notifications are not configured.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification worker started")
}
