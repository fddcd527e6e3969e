package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/gateway"
)

// DefaultQueue receives transaction verified events when no queue is configured
const DefaultQueue = "raffle.transactions.verified"

// Channel is the subset of *amqp.Channel the notifier publishes through
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPNotifier publishes verification events to a durable RabbitMQ queue.
// An email worker consumes the queue.
type AMQPNotifier struct {
	mu             sync.Mutex
	channel        Channel
	queue          string
	publishTimeout time.Duration
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

var _ gateway.Notifier = (*AMQPNotifier)(nil)

// NewAMQPNotifier declares the queue and returns a notifier publishing to it
func NewAMQPNotifier(ch Channel, queue string, publishTimeout time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) (*AMQPNotifier, error) {
	if queue == "" {
		queue = DefaultQueue
	}
	if publishTimeout <= 0 {
		publishTimeout = 5 * time.Second
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declaring queue %s: %w", queue, err)
	}

	return &AMQPNotifier{
		channel:        ch,
		queue:          queue,
		publishTimeout: publishTimeout,
		timeProvider:   timeProvider,
		logger:         logger,
	}, nil
}

// NotifyTransactionVerified publishes one persistent JSON message for the whole transaction
func (n *AMQPNotifier) NotifyTransactionVerified(ctx context.Context, transactionID string, tickets []*entity.Ticket, raffle *entity.Raffle) error {
	now := n.timeProvider.Now()
	event := NewTransactionVerifiedEvent(transactionID, tickets, raffle, now)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event.Type, err)
	}

	ctx, cancel := n.timeProvider.WithTimeout(ctx, n.publishTimeout)
	defer cancel()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    transactionID,
		Type:         event.Type,
		Timestamp:    now.UTC(),
		Body:         body,
	}

	n.mu.Lock()
	err = n.channel.PublishWithContext(ctx, "", n.queue, false, false, msg)
	n.mu.Unlock()
	if err != nil {
		n.logger.Error("Failed to publish notification", map[string]any{
			"transaction_id": transactionID,
			"queue":          n.queue,
			"error":          err.Error(),
		})
		return fmt.Errorf("publishing %s event: %w", event.Type, err)
	}

	n.logger.Info("Notification published", map[string]any{
		"transaction_id": transactionID,
		"queue":          n.queue,
		"tickets":        len(event.Numbers),
	})
	return nil
}

// Close closes the underlying channel
func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.channel.Close()
}

// Dial opens a connection and a channel to the broker
func Dial(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dialing broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("opening channel: %w", err)
	}
	return conn, ch, nil
}
