package repository

import (
	"context"

	"github.com/iamdanusabu/laundryapp/internal/db"
)

type StoreRepository struct {
	DB *db.Postgres
}

// Ensure inserts the store row if it does not exist yet. Registration for an
// already-known store id is a no-op.
func (r StoreRepository) Ensure(ctx context.Context, id, name string) error {
	_, err := r.DB.Pool.Exec(ctx, `
		INSERT INTO stores (id, name, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (id) DO NOTHING
	`, id, name)
	return err
}
