package database

import (
	"context"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/atriumhq/atrium_backend/config"
	"github.com/atriumhq/atrium_backend/internal/repo"
)

// NewEntClient creates a new Ent client from central config
func NewEntClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	db, err := New(FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	return NewEntClientFromDB(db), nil
}

// NewEntClientFromDB builds an Ent client over an existing connection pool,
// so health checks and the ORM share one pool.
func NewEntClientFromDB(db *DB) *repo.Client {
	drv := entsql.OpenDB(dialect.Postgres, db.GetConnection())
	return repo.NewClient(repo.Driver(drv))
}

func MigrateEnt(ctx context.Context, client *repo.Client) error {
	return client.Schema.Create(ctx)
}
