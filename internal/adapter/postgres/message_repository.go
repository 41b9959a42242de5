package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

// MessageRepository implements port.MessageLog on the message_records table.
type MessageRepository struct {
	pool *pgxpool.Pool
}

var _ port.MessageLog = (*MessageRepository)(nil)

// NewMessageRepository returns a new repository instance.
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

const messageColumns = `id, prospect_id, kind, outcome, attempts, created_at, updated_at`

func scanMessage(row pgx.CollectableRow) (domain.MessageRecord, error) {
	var m domain.MessageRecord
	err := row.Scan(&m.ID, &m.ProspectID, &m.Kind, &m.Outcome, &m.Attempts, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// AcquireMessage inserts a pending record or re-arms a failed one. A
// delivered or pending record is left untouched and false is returned.
func (r *MessageRepository) AcquireMessage(ctx context.Context, prospectID int64, kind domain.MessageKind, at time.Time) (bool, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO message_records (id, prospect_id, kind, outcome, attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $5)
		ON CONFLICT (prospect_id, kind) DO UPDATE SET
			outcome = EXCLUDED.outcome,
			attempts = message_records.attempts + 1,
			updated_at = EXCLUDED.updated_at
		WHERE message_records.outcome = $6
		RETURNING id`,
		uuid.New(), prospectID, kind, domain.OutcomePending, at, domain.OutcomeFailed,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CompleteMessage records the outcome of a dispatch.
func (r *MessageRepository) CompleteMessage(ctx context.Context, prospectID int64, kind domain.MessageKind, outcome domain.MessageOutcome, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE message_records SET outcome = $3, updated_at = $4
		WHERE prospect_id = $1 AND kind = $2`,
		prospectID, kind, outcome, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// GetMessage returns the record for the prospect and kind.
func (r *MessageRepository) GetMessage(ctx context.Context, prospectID int64, kind domain.MessageKind) (*domain.MessageRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+messageColumns+` FROM message_records WHERE prospect_id = $1 AND kind = $2`, prospectID, kind)
	if err != nil {
		return nil, err
	}
	m, err := pgx.CollectOneRow(rows, scanMessage)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMessages returns the message history of a prospect.
func (r *MessageRepository) ListMessages(ctx context.Context, prospectID int64) ([]domain.MessageRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+messageColumns+` FROM message_records WHERE prospect_id = $1 ORDER BY created_at, kind`, prospectID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanMessage)
}
