package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/glkeru/cardfee/internal/config"
	models "github.com/glkeru/cardfee/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationPublisher публикует решения по годовой плате
type NotificationPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	mu    sync.Mutex
}

func NewNotificationPublisher(cfg config.RabbitConfig) (*NotificationPublisher, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("rabbit URL is not set")
	}
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, err
	}
	// канал для исходящих
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &NotificationPublisher{conn: conn, ch: ch, queue: cfg.Queue}, nil
}

func (r *NotificationPublisher) Close() {
	r.ch.Close()
	r.conn.Close()
}

func encodeNotification(n models.FeeNotification, at time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(n)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    fmt.Sprintf("%s:%d", n.CardID, n.FeeYear),
		Timestamp:    at,
		Body:         body,
	}, nil
}

// канал общий, публикуем по одному
func (r *NotificationPublisher) Publish(ctx context.Context, n models.FeeNotification) error {
	msg, err := encodeNotification(n, time.Now().UTC())
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ch.PublishWithContext(ctx,
		"",      // exchange
		r.queue, // routing key
		false,   // mandatory
		false,   // immediate
		msg)
}
