package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-outreach/internal/core/port"
)

// Store bundles the Postgres repositories behind port.Store.
type Store struct {
	*ProspectRepository
	*SlotRepository
	*MessageRepository
}

var _ port.Store = (*Store)(nil)

// NewStore returns a Store whose repositories share pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		ProspectRepository: NewProspectRepository(pool),
		SlotRepository:     NewSlotRepository(pool),
		MessageRepository:  NewMessageRepository(pool),
	}
}
