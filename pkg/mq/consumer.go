package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type WatchEventHandler interface {
	HandleWatchEvent(ctx context.Context, event *WatchEvent) error
}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if err := ch.Qos(10, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	return &Consumer{conn: conn, channel: ch}, nil
}

// ConsumeWatchEvents loops until the context is cancelled, acking each event
// after the handler accepts it. Undecodable bodies are dropped, handler
// failures requeued.
func (c *Consumer) ConsumeWatchEvents(ctx context.Context, handler WatchEventHandler) error {
	deliveries, err := c.channel.Consume(
		WatchEventQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register watch consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("watch event channel closed")
			}
			var event WatchEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				hlog.CtxErrorf(ctx, "Failed to decode watch event: %v", err)
				d.Nack(false, false)
				continue
			}
			if err := handler.HandleWatchEvent(ctx, &event); err != nil {
				hlog.CtxErrorf(ctx, "Failed to handle watch event %s: %v", event.EventID, err)
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
