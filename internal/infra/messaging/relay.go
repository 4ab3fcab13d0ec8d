package messaging

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.BrokerList()...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// OutboxRelay publishes committed outbox rows. Rows are marked sent in the
// same transaction that locked them, so delivery is at least once.
type OutboxRelay struct {
	uow      shared.UnitOfWork
	writer   MessageWriter
	clock    clock.Clock
	interval time.Duration
	batch    int32

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOutboxRelay(uow shared.UnitOfWork, writer MessageWriter, clk clock.Clock, cfg config.OutboxConfig) *OutboxRelay {
	return &OutboxRelay{
		uow:      uow,
		writer:   writer,
		clock:    clk,
		interval: cfg.PollInterval,
		batch:    cfg.BatchSize,
	}
}

func (r *OutboxRelay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go r.loop(ctx)
	slog.Info("outbox relay started", "interval", r.interval.String(), "batch", r.batch)
}

func (r *OutboxRelay) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.writer.Close()
}

func (r *OutboxRelay) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// drain backlog without waiting for the next tick
			for {
				n, err := r.RunOnce(ctx)
				if err != nil {
					if ctx.Err() == nil {
						slog.Error("outbox relay failed", "error", err)
					}
					break
				}
				if n < int(r.batch) {
					break
				}
			}
		}
	}
}

// RunOnce publishes one batch and returns how many events were sent.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	var sent int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events, err := tx.Outbox().FetchPending(ctx, tx.DB(), r.batch)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, len(events))
		ids := make([]int64, len(events))
		for i, ev := range events {
			msgs[i] = toMessage(ev)
			ids[i] = ev.ID
		}
		if err := r.writer.WriteMessages(ctx, msgs...); err != nil {
			return errs.Wrap(err, "publish outbox events")
		}
		if err := tx.Outbox().MarkSent(ctx, tx.DB(), ids, r.clock.Now()); err != nil {
			return err
		}
		sent = len(events)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if sent > 0 {
		slog.Debug("outbox events published", "count", sent)
	}
	return sent, nil
}

// toMessage keys by aggregate so one order's events stay on one partition.
func toMessage(ev shared.OutboxEvent) kafka.Message {
	return kafka.Message{
		Key:   []byte(ev.AggregateType + ":" + strconv.FormatInt(ev.AggregateID, 10)),
		Value: ev.Payload,
		Time:  ev.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(ev.EventID.String())},
			{Key: "event_type", Value: []byte(ev.EventType)},
		},
	}
}
