package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedLocation struct {
	city    string
	country string
}

var seedLocations = []seedLocation{
	{"Leeds", "UK"},
	{"Manchester", "UK"},
	{"York", "UK"},
	{"Lyon", "France"},
	{"Paris", "France"},
	{"Yerevan", "Armenia"},
}

var seedCategories = []string{"restaurant", "gym", "bookshop", "florist", "cafe"}

// Seed inserts demo prospects into the outreach database. Rows are keyed by
// id so running it twice is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	id := 1
	for _, loc := range seedLocations {
		// spread creation times so the oldest-first replacement order is visible
		for j := 1; j <= 4; j++ {
			name := fmt.Sprintf("%s %s %d", loc.city, seedCategories[r.Intn(len(seedCategories))], j)
			email := fmt.Sprintf("owner%d@example.com", id)
			created := time.Now().Add(-time.Duration(24*(5-j)) * time.Hour)
			_, err := db.Exec(ctx, `INSERT INTO prospects
(id, name, email, city, country, category, stage, version, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,'pending',1,$7,$7) ON CONFLICT DO NOTHING`,
				id, name, email, loc.city, loc.country, seedCategories[(id-1)%len(seedCategories)], created)
			if err != nil {
				return err
			}
			id++
		}
	}
	// explicit ids bypass the sequence
	_, err := db.Exec(ctx, `SELECT setval(pg_get_serial_sequence('prospects', 'id'), GREATEST((SELECT max(id) FROM prospects), 1))`)
	return err
}
