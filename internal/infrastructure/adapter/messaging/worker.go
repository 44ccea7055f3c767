package messaging

import (
	"context"
	"encoding/json"
	"errors"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/notification"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrPermanent marks handler failures that retrying cannot fix
var ErrPermanent = errors.New("permanent failure")

// RedemptionHandler processes one decoded notice
type RedemptionHandler interface {
	HandleRedemption(ctx context.Context, notice notification.RedemptionNotice) error
}

// RedemptionWorker acknowledges notices once the handler succeeds
type RedemptionWorker struct {
	handler RedemptionHandler
	logger  coreport.Logger
}

// NewRedemptionWorker creates a RedemptionWorker
func NewRedemptionWorker(handler RedemptionHandler, logger coreport.Logger) *RedemptionWorker {
	return &RedemptionWorker{handler: handler, logger: logger}
}

// Handle decodes and processes one delivery. Undecodable and permanently
// failing messages are dropped; a failure is requeued once, then dropped.
func (w *RedemptionWorker) Handle(ctx context.Context, d amqp.Delivery) {
	fields := map[string]any{"message_id": d.MessageId, "redelivered": d.Redelivered}

	var notice notification.RedemptionNotice
	if err := json.Unmarshal(d.Body, &notice); err != nil {
		fields["error"] = err.Error()
		w.logger.Error("Dropping undecodable redemption notice", fields)
		_ = d.Nack(false, false)
		return
	}

	if err := w.handler.HandleRedemption(ctx, notice); err != nil {
		fields["error"] = err.Error()
		fields["user_id"] = notice.UserID

		requeue := !d.Redelivered && !errors.Is(err, ErrPermanent)
		if requeue {
			w.logger.Warn("Redemption notice failed, requeueing", fields)
		} else {
			w.logger.Error("Redemption notice failed, dropping", fields)
		}
		_ = d.Nack(false, requeue)
		return
	}

	_ = d.Ack(false)
}
