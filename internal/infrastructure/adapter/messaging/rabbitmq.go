package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Options configures the RabbitMQ connection
type Options struct {
	URL           string
	Queue         string
	PrefetchCount int
}

// Client wraps a RabbitMQ connection/channel pair bound to one durable queue
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  coreport.Logger
	timer   coreport.TimeProvider

	// amqp channels must not be used for concurrent publishes
	mu sync.Mutex
}

// NewClient dials RabbitMQ and declares the durable queue
func NewClient(opts Options, logger coreport.Logger, timeProvider coreport.TimeProvider) (*Client, error) {
	if strings.TrimSpace(opts.URL) == "" {
		return nil, errors.New("rabbitmq url is required")
	}
	if strings.TrimSpace(opts.Queue) == "" {
		return nil, errors.New("rabbitmq queue is required")
	}

	conn, err := amqp.Dial(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	if opts.PrefetchCount > 0 {
		if err := ch.Qos(opts.PrefetchCount, 0, false); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("amqp qos: %w", err)
		}
	}

	if _, err := ch.QueueDeclare(
		opts.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}

	logger.Info("Connected to RabbitMQ", map[string]any{"queue": opts.Queue})
	return &Client{conn: conn, channel: ch, queue: opts.Queue, logger: logger, timer: timeProvider}, nil
}

// PublishJSON publishes a persistent JSON message to the queue and returns its message id
func (c *Client) PublishJSON(ctx context.Context, body any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode message: %w", err)
	}

	messageID := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.channel.PublishWithContext(ctx,
		"",      // default exchange
		c.queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID,
			Timestamp:    c.timer.Now(),
			Body:         payload,
		},
	)
	if err != nil {
		return "", fmt.Errorf("amqp publish: %w", err)
	}
	return messageID, nil
}

// Consume delivers queue messages to handle until ctx is done
func (c *Client) Consume(ctx context.Context, handle func(ctx context.Context, d amqp.Delivery)) error {
	consumerTag := "portal-" + uuid.NewString()
	deliveries, err := c.channel.Consume(c.queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("amqp consume: %w", err)
	}
	defer func() {
		_ = c.channel.Cancel(consumerTag, false)
	}()

	c.logger.Info("Consuming queue", map[string]any{"queue": c.queue, "consumer": consumerTag})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("rabbitmq delivery channel closed")
			}
			handle(ctx, delivery)
		}
	}
}

// Close closes the underlying channel and connection
func (c *Client) Close() error {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
