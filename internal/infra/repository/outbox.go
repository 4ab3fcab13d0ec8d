package repository

import (
	"context"
	"time"

	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/shared"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
	FetchPendingOutboxEvents(ctx context.Context, db sqlc.DBTX, rowLimit int32) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventsSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventsSentParams) (int64, error)
}

type OutboxRepository struct {
	queries OutboxWriteQueries
}

func NewOutboxRepository(queries OutboxWriteQueries) *OutboxRepository {
	return &OutboxRepository{queries: queries}
}

func (r *OutboxRepository) Append(ctx context.Context, tx sqlc.DBTX, ev shared.OutboxEvent) error {
	err := r.queries.InsertOutboxEvent(ctx, tx, sqlc.InsertOutboxEventParams{
		EventID:       ev.EventID,
		AggregateType: ev.AggregateType,
		AggregateID:   ev.AggregateID,
		EventType:     ev.EventType,
		Payload:       ev.Payload,
		CreatedAt:     pgconv.TimeToPgtype(ev.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}

// FetchPending locks up to limit unsent rows until the surrounding transaction ends.
func (r *OutboxRepository) FetchPending(ctx context.Context, tx sqlc.DBTX, limit int32) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.FetchPendingOutboxEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch pending outbox events", err)
	}
	events := make([]shared.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = shared.OutboxEvent{
			ID:            row.ID,
			EventID:       row.EventID,
			AggregateType: row.AggregateType,
			AggregateID:   row.AggregateID,
			EventType:     row.EventType,
			Payload:       row.Payload,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return events, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.queries.MarkOutboxEventsSent(ctx, tx, sqlc.MarkOutboxEventsSentParams{
		SentAt: pgconv.TimeToPgtype(at),
		Ids:    ids,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox events sent", err)
	}
	return nil
}
