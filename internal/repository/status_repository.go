package repository

import (
	"context"
	"errors"

	"github.com/iamdanusabu/laundryapp/internal/db"
	"github.com/iamdanusabu/laundryapp/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ErrReorderMismatch is returned when a reorder request is not a permutation
// of the stored status ids.
var ErrReorderMismatch = errors.New("reorder ids do not match stored statuses")

type StatusRepository struct {
	DB *db.Postgres
}

func (r StatusRepository) List(ctx context.Context) ([]domain.Status, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, ord, created_at, updated_at
		FROM statuses
		ORDER BY ord ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Status
	for rows.Next() {
		var s domain.Status
		if err := rows.Scan(&s.ID, &s.Name, &s.Ord, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// Add appends a status at the end of the ordering.
func (r StatusRepository) Add(ctx context.Context, name string) (*domain.Status, error) {
	var s domain.Status
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO statuses (name, ord, created_at, updated_at)
		VALUES ($1, (SELECT COUNT(*) FROM statuses), now(), now())
		RETURNING id, name, ord, created_at, updated_at
	`, name).Scan(&s.ID, &s.Name, &s.Ord, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r StatusRepository) Rename(ctx context.Context, id int64, name string) error {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE statuses SET name=$2, updated_at=now() WHERE id=$1
	`, id, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r StatusRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `DELETE FROM statuses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder rewrites ord for every status so it matches the given id sequence.
// The ids must be a permutation of the stored set; otherwise nothing changes
// and ErrReorderMismatch is returned. The whole rewrite runs in one
// transaction, so a mid-flight failure leaves the stored order untouched.
func (r StatusRepository) Reorder(ctx context.Context, ids []int64) error {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `SELECT id FROM statuses FOR UPDATE`)
	if err != nil {
		return err
	}
	var current []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		current = append(current, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if !sameIDSet(current, ids) {
		return ErrReorderMismatch
	}

	for ord, id := range ids {
		if _, err := tx.Exec(ctx, `
			UPDATE statuses SET ord=$2, updated_at=now() WHERE id=$1
		`, id, ord); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// InitialName returns the name of the lowest-ordered status, falling back to
// the built-in default when the registry is empty.
func (r StatusRepository) InitialName(ctx context.Context) (string, error) {
	var name string
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT name FROM statuses ORDER BY ord ASC LIMIT 1
	`).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultInitialStatus, nil
		}
		return "", err
	}
	return name, nil
}

// SeedDefaults populates the registry on first run.
func (r StatusRepository) SeedDefaults(ctx context.Context) error {
	defaults := []string{"In Queue", "Washing", "Ironing", "Ready for Pickup", "Done"}
	var count int
	if err := r.DB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM statuses`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for ord, name := range defaults {
		if _, err := r.DB.Pool.Exec(ctx, `
			INSERT INTO statuses (name, ord, created_at, updated_at)
			VALUES ($1, $2, now(), now())
		`, name, ord); err != nil {
			return err
		}
	}
	return nil
}

// sameIDSet reports whether b is a permutation of a.
func sameIDSet(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int64]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}
