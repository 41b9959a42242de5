package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

// ProspectRepository implements port.ProspectStore using pgxpool.
type ProspectRepository struct {
	pool *pgxpool.Pool
}

var _ port.ProspectStore = (*ProspectRepository)(nil)

// NewProspectRepository returns a new repository instance.
func NewProspectRepository(pool *pgxpool.Pool) *ProspectRepository {
	return &ProspectRepository{pool: pool}
}

const prospectColumns = `id, name, email, city, country, category, stage,
	initial_contacted_at, follow_up_contacted_at,
	confirmed, confirmed_at, opted_out, opted_out_at,
	replacement_offered, slot_assigned, slot_expires_at,
	replaces_prospect_id, version, created_at, updated_at`

func scanProspect(row pgx.CollectableRow) (domain.Prospect, error) {
	var p domain.Prospect
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.City,
		&p.Country,
		&p.Category,
		&p.Stage,
		&p.InitialContactedAt,
		&p.FollowUpContactedAt,
		&p.Confirmed,
		&p.ConfirmedAt,
		&p.OptedOut,
		&p.OptedOutAt,
		&p.ReplacementOffered,
		&p.SlotAssigned,
		&p.SlotExpiresAt,
		&p.ReplacesProspectID,
		&p.Version,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// normalizedName mirrors domain.NormalizeName for column in SQL.
func normalizedName(column string) string {
	return `btrim(regexp_replace(lower(` + column + `), '\s+', ' ', 'g'))`
}

// FindProspects returns prospects matching the filter.
func (r *ProspectRepository) FindProspects(ctx context.Context, f port.ProspectFilter) ([]domain.Prospect, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Stage != "" {
		add("stage = $%d", f.Stage)
	}
	if f.InitialContactedUntil != nil {
		add("initial_contacted_at <= $%d", *f.InitialContactedUntil)
	}
	if f.FollowUpContactedUntil != nil {
		add("follow_up_contacted_at <= $%d", *f.FollowUpContactedUntil)
	}
	if f.ReplacementOffered != nil {
		add("replacement_offered = $%d", *f.ReplacementOffered)
	}
	if f.NeverContacted {
		where = append(where, "initial_contacted_at IS NULL")
	}
	if f.City != "" {
		add(normalizedName("city")+" = $%d", domain.NormalizeName(f.City))
	}
	if f.Country != "" {
		add(normalizedName("country")+" = $%d", domain.NormalizeName(f.Country))
	}
	if f.ExcludeCity != "" {
		add(normalizedName("city")+" <> $%d", domain.NormalizeName(f.ExcludeCity))
	}
	if f.ReplacesProspectID != nil {
		add("replaces_prospect_id = $%d", *f.ReplacesProspectID)
	}
	if f.Unclaimed {
		where = append(where, "replaces_prospect_id IS NULL")
	}

	query := `SELECT ` + prospectColumns + ` FROM prospects`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	if f.OrderBy == port.OrderByCreated {
		query += ` ORDER BY created_at ASC, id ASC`
	} else {
		query += ` ORDER BY id ASC`
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanProspect)
}

// GetProspect returns a prospect by id.
func (r *ProspectRepository) GetProspect(ctx context.Context, id int64) (*domain.Prospect, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+prospectColumns+` FROM prospects WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	p, err := pgx.CollectOneRow(rows, scanProspect)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProspect inserts p and assigns its id.
func (r *ProspectRepository) CreateProspect(ctx context.Context, p *domain.Prospect) error {
	if p.Stage == "" {
		p.Stage = domain.StagePending
	}
	var createdAt any
	if !p.CreatedAt.IsZero() {
		createdAt = p.CreatedAt
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO prospects (name, email, city, country, category, stage,
			initial_contacted_at, follow_up_contacted_at, replaces_prospect_id,
			version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1, COALESCE($10::timestamptz, now()), now())
		RETURNING id, version, created_at, updated_at`,
		p.Name, p.Email, p.City, p.Country, p.Category, p.Stage,
		p.InitialContactedAt, p.FollowUpContactedAt, p.ReplacesProspectID, createdAt,
	).Scan(&p.ID, &p.Version, &p.CreatedAt, &p.UpdatedAt)
}

// UpdateProspect writes p if the stored version equals p.Version.
func (r *ProspectRepository) UpdateProspect(ctx context.Context, p *domain.Prospect) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE prospects SET
			name = $2, email = $3, city = $4, country = $5, category = $6, stage = $7,
			initial_contacted_at = $8, follow_up_contacted_at = $9,
			confirmed = $10, confirmed_at = $11, opted_out = $12, opted_out_at = $13,
			replacement_offered = $14, slot_assigned = $15, slot_expires_at = $16,
			replaces_prospect_id = $17,
			version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $18
		RETURNING version, updated_at`,
		p.ID, p.Name, p.Email, p.City, p.Country, p.Category, p.Stage,
		p.InitialContactedAt, p.FollowUpContactedAt,
		p.Confirmed, p.ConfirmedAt, p.OptedOut, p.OptedOutAt,
		p.ReplacementOffered, p.SlotAssigned, p.SlotExpiresAt,
		p.ReplacesProspectID, p.Version,
	).Scan(&p.Version, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.missingOrStale(ctx, p.ID)
	}
	return slotWriteErr(err)
}

func (r *ProspectRepository) missingOrStale(ctx context.Context, id int64) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM prospects WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return port.ErrNotFound
	}
	return port.ErrConflict
}

// CountByStage returns the number of prospects per stage.
func (r *ProspectRepository) CountByStage(ctx context.Context) (map[domain.Stage]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT stage, count(*) FROM prospects GROUP BY stage`)
	if err != nil {
		return nil, err
	}
	type stageCount struct {
		Stage domain.Stage
		Count int64
	}
	counts, err := pgx.CollectRows(rows, pgx.RowToStructByPos[stageCount])
	if err != nil {
		return nil, err
	}
	out := make(map[domain.Stage]int64, len(counts))
	for _, c := range counts {
		out[c.Stage] = c.Count
	}
	return out, nil
}
