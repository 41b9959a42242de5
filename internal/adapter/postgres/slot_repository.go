package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

// uniqueViolation is the SQLSTATE raised when a holder would hold a second slot.
const uniqueViolation = "23505"

// SlotRepository implements port.SlotStore using pgxpool.
type SlotRepository struct {
	pool *pgxpool.Pool
}

var _ port.SlotStore = (*SlotRepository)(nil)

// NewSlotRepository returns a new repository instance.
func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

const slotColumns = `location_key, city, country, holder_id, is_paid, expires_at, version, created_at, updated_at`

func scanSlot(row pgx.CollectableRow) (domain.Slot, error) {
	var s domain.Slot
	err := row.Scan(
		&s.LocationKey,
		&s.City,
		&s.Country,
		&s.HolderID,
		&s.IsPaid,
		&s.ExpiresAt,
		&s.Version,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

func (r *SlotRepository) one(ctx context.Context, query string, args ...any) (*domain.Slot, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	s, err := pgx.CollectOneRow(rows, scanSlot)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSlot returns the slot stored under key.
func (r *SlotRepository) GetSlot(ctx context.Context, key string) (*domain.Slot, error) {
	return r.one(ctx, `SELECT `+slotColumns+` FROM slots WHERE location_key = $1`, key)
}

// FindSlotByHolder returns the slot held by the prospect.
func (r *SlotRepository) FindSlotByHolder(ctx context.Context, holderID int64) (*domain.Slot, error) {
	return r.one(ctx, `SELECT `+slotColumns+` FROM slots WHERE holder_id = $1`, holderID)
}

// UpsertSlot inserts a new slot or updates an existing one under its version.
func (r *SlotRepository) UpsertSlot(ctx context.Context, slot *domain.Slot) error {
	var err error
	if slot.Version == 0 {
		err = r.pool.QueryRow(ctx, `
			INSERT INTO slots (location_key, city, country, holder_id, is_paid, expires_at, version, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, 1, now(), now())
			ON CONFLICT (location_key) DO NOTHING
			RETURNING version, created_at, updated_at`,
			slot.LocationKey, slot.City, slot.Country, slot.HolderID, slot.IsPaid, slot.ExpiresAt,
		).Scan(&slot.Version, &slot.CreatedAt, &slot.UpdatedAt)
	} else {
		err = r.pool.QueryRow(ctx, `
			UPDATE slots SET
				holder_id = $2, is_paid = $3, expires_at = $4,
				version = version + 1, updated_at = now()
			WHERE location_key = $1 AND version = $5
			RETURNING version, updated_at`,
			slot.LocationKey, slot.HolderID, slot.IsPaid, slot.ExpiresAt, slot.Version,
		).Scan(&slot.Version, &slot.UpdatedAt)
	}
	return slotWriteErr(err)
}

// ReleaseSlot clears the holder of slot under its version.
func (r *SlotRepository) ReleaseSlot(ctx context.Context, slot *domain.Slot) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE slots SET
			holder_id = NULL, is_paid = false, expires_at = NULL,
			version = version + 1, updated_at = now()
		WHERE location_key = $1 AND version = $2
		RETURNING version, updated_at`,
		slot.LocationKey, slot.Version,
	).Scan(&slot.Version, &slot.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		existing, getErr := r.GetSlot(ctx, slot.LocationKey)
		if getErr != nil {
			return getErr
		}
		if existing == nil {
			return port.ErrNotFound
		}
		return port.ErrConflict
	}
	if err != nil {
		return err
	}
	slot.HolderID = nil
	slot.IsPaid = false
	slot.ExpiresAt = nil
	return nil
}

func slotWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return port.ErrConflict
	}
	return err
}

// ListSlots returns every slot with a holder ordered by location key.
func (r *SlotRepository) ListSlots(ctx context.Context) ([]domain.Slot, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+slotColumns+` FROM slots WHERE holder_id IS NOT NULL ORDER BY location_key`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSlot)
}

// ListExpiredSlots returns held provisional slots whose expiry has passed.
func (r *SlotRepository) ListExpiredSlots(ctx context.Context, now time.Time, limit int) ([]domain.Slot, error) {
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+slotColumns+` FROM slots
		WHERE holder_id IS NOT NULL AND NOT is_paid
		  AND expires_at IS NOT NULL AND expires_at <= $1
		ORDER BY expires_at, location_key
		LIMIT $2`, now, lim)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSlot)
}
