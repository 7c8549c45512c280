package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"resort-engine/internal/pkg/config"
	"resort-engine/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPSink publishes notifications as persistent JSON messages on a topic
// exchange. The routing key is "<prefix>.<template>".
type AMQPSink struct {
	conn       *amqp.Connection
	mu         sync.Mutex
	ch         *amqp.Channel
	exchange   string
	routingKey string
}

func DialAMQP(cfg config.BrokerConfig) (*AMQPSink, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial failed: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: channel open failed: %w", err)
	}
	if err := ch.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // kind
		true,         // durable
		false,        // autoDelete
		false,        // internal
		false,        // noWait
		nil,          // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: exchange declare failed: %w", err)
	}
	return &AMQPSink{conn: conn, ch: ch, exchange: cfg.Exchange, routingKey: cfg.RoutingKey}, nil
}

func (s *AMQPSink) Send(ctx context.Context, n shared.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal notification failed: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         n.Template,
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch.PublishWithContext(ctx, s.exchange, s.routingKey+"."+n.Template, false, false, pub)
}

func (s *AMQPSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.ch.Close()
	return s.conn.Close()
}
