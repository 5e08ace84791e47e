package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{conn: conn, channel: ch}
	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}
	return producer, nil
}

func (p *Producer) setupTopology() error {
	err := p.channel.ExchangeDeclare(
		WatchEventExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare watch event exchange: %w", err)
	}

	q, err := p.channel.QueueDeclare(
		WatchEventQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare watch event queue: %w", err)
	}

	return p.channel.QueueBind(q.Name, WatchEventKey, WatchEventExchange, false, nil)
}

func (p *Producer) PublishWatchEvent(ctx context.Context, event *WatchEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal watch event: %w", err)
	}
	err = p.channel.PublishWithContext(ctx,
		WatchEventExchange,
		WatchEventKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		})
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to publish watch event: %v", err)
		return err
	}
	return nil
}

func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// DefaultProducer is wired at startup; nil when RabbitMQ is not configured.
var DefaultProducer *Producer

func InitProducer(rabbitmqURL string) error {
	var err error
	DefaultProducer, err = NewProducer(rabbitmqURL)
	return err
}
