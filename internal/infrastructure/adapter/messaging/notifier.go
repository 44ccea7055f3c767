package messaging

import (
	"context"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/notification"
)

var (
	_ notification.Notifier = (*QueueNotifier)(nil)
	_ notification.Notifier = (*NoopNotifier)(nil)
)

// jsonPublisher is the part of Client the notifier needs
type jsonPublisher interface {
	PublishJSON(ctx context.Context, body any) (string, error)
}

// QueueNotifier puts redemption notices on the notification queue
type QueueNotifier struct {
	publisher jsonPublisher
	logger    coreport.Logger
}

// NewQueueNotifier creates a QueueNotifier
func NewQueueNotifier(publisher jsonPublisher, logger coreport.Logger) *QueueNotifier {
	return &QueueNotifier{publisher: publisher, logger: logger}
}

// NotifyRedemption publishes notice
func (n *QueueNotifier) NotifyRedemption(ctx context.Context, notice notification.RedemptionNotice) error {
	messageID, err := n.publisher.PublishJSON(ctx, notice)
	if err != nil {
		return err
	}

	n.logger.Debug("Redemption notice queued", map[string]any{
		"message_id": messageID,
		"user_id":    notice.UserID,
		"product_id": notice.ProductID,
	})
	return nil
}

// NoopNotifier drops notices. Used when RabbitMQ is disabled.
type NoopNotifier struct {
	logger coreport.Logger
}

// NewNoopNotifier creates a NoopNotifier
func NewNoopNotifier(logger coreport.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}

// NotifyRedemption logs and discards notice
func (n *NoopNotifier) NotifyRedemption(_ context.Context, notice notification.RedemptionNotice) error {
	n.logger.Debug("Notifications disabled, dropping redemption notice", map[string]any{
		"user_id":    notice.UserID,
		"product_id": notice.ProductID,
	})
	return nil
}
