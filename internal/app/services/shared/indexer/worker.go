package indexer

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/pkg/constvars"
	"context"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ReindexWorker consumes reindex triggers and rebuilds the property search
// index from the relational store. Triggers carry no payload; every message
// means "rebuild everything now".
type ReindexWorker struct {
	conn               *amqp091.Connection
	propertyRepository contracts.PropertyRepository
	searchEngine       contracts.SearchEngine
	log                *zap.Logger
}

func NewReindexWorker(
	conn *amqp091.Connection,
	propertyRepository contracts.PropertyRepository,
	searchEngine contracts.SearchEngine,
	log *zap.Logger,
) *ReindexWorker {
	return &ReindexWorker{
		conn:               conn,
		propertyRepository: propertyRepository,
		searchEngine:       searchEngine,
		log:                log,
	}
}

// Start opens a consumer on the reindex queue and processes triggers until
// the returned stop function is called or ctx is cancelled.
func (w *ReindexWorker) Start(ctx context.Context) (func(), error) {
	channel, err := w.conn.Channel()
	if err != nil {
		return nil, err
	}

	if _, err := channel.QueueDeclare(constvars.PropertyReindexQueue, true, false, false, false, nil); err != nil {
		channel.Close()
		return nil, err
	}

	deliveries, err := channel.Consume(constvars.PropertyReindexQueue, "", false, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	workerCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-workerCtx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handle(workerCtx, delivery)
			}
		}
	}()

	stop := func() {
		cancel()
		channel.Close()
		<-done
	}
	return stop, nil
}

func (w *ReindexWorker) handle(ctx context.Context, delivery amqp091.Delivery) {
	w.log.Info("ReindexWorker.handle called")

	properties, err := w.propertyRepository.FindAll(ctx)
	if err != nil {
		w.log.Error("ReindexWorker.handle failed to load properties", zap.Error(err))
		delivery.Nack(false, true)
		return
	}

	if err := w.searchEngine.IndexProperties(ctx, properties); err != nil {
		w.log.Error("ReindexWorker.handle failed to rebuild index", zap.Error(err))
		delivery.Nack(false, true)
		return
	}

	delivery.Ack(false)
	w.log.Info("ReindexWorker.handle succeeded", zap.Int("indexed", len(properties)))
}
