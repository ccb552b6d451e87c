package indexer

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/exceptions"
	"context"
	"log"
	"sync"

	"github.com/rabbitmq/amqp091-go"
)

type reindexPublisher struct {
	channel *amqp091.Channel
}

var (
	reindexPublisherInstance contracts.ReindexPublisher
	onceReindexPublisher     sync.Once
)

func NewReindexPublisher(conn *amqp091.Connection) contracts.ReindexPublisher {
	onceReindexPublisher.Do(func() {
		channel, err := conn.Channel()
		if err != nil {
			log.Fatalf("failed to open rabbitmq channel: %v", err)
		}
		if _, err := channel.QueueDeclare(
			constvars.PropertyReindexQueue,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		); err != nil {
			log.Fatalf("failed to declare queue %s: %v", constvars.PropertyReindexQueue, err)
		}
		reindexPublisherInstance = &reindexPublisher{channel: channel}
	})
	return reindexPublisherInstance
}

func (p *reindexPublisher) EnqueueReindex(ctx context.Context) error {
	err := p.channel.PublishWithContext(ctx,
		"",
		constvars.PropertyReindexQueue,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			DeliveryMode: amqp091.Persistent,
			ContentType:  constvars.MIMEApplicationJSON,
			Body:         []byte(`{"action":"reindex"}`),
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.PropertyReindexQueue)
	}
	return nil
}
