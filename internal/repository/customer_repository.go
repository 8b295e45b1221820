package repository

import (
	"context"
	"errors"

	"github.com/iamdanusabu/laundryapp/internal/db"
	"github.com/iamdanusabu/laundryapp/internal/domain"
	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	DB *db.Postgres
}

func (r CustomerRepository) List(ctx context.Context, limit int) ([]domain.Customer, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT phone, name, address, tag, created_at, updated_at
		FROM customers
		ORDER BY name ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.Phone, &c.Name, &c.Address, &c.Tag, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// GetByPhone is the exact-match lookup behind the intake form's
// "customer exists" check.
func (r CustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT phone, name, address, tag, created_at, updated_at
		FROM customers
		WHERE phone=$1
	`, phone)
	var c domain.Customer
	if err := row.Scan(&c.Phone, &c.Name, &c.Address, &c.Tag, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r CustomerRepository) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	var out domain.Customer
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO customers (phone, name, address, tag, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING phone, name, address, tag, created_at, updated_at
	`, c.Phone, c.Name, c.Address, c.Tag).Scan(&out.Phone, &out.Name, &out.Address, &out.Tag, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
