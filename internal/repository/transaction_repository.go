package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iamdanusabu/laundryapp/internal/db"
	"github.com/iamdanusabu/laundryapp/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ErrReceiptExhausted is returned when receipt id generation keeps colliding.
var ErrReceiptExhausted = errors.New("could not allocate a free receipt id")

const receiptIDAttempts = 8

type TransactionRepository struct {
	DB *db.Postgres
}

// Create persists an intake draft: the customer row is inserted when the
// phone is unseen, a free 6-digit receipt id is allocated, and the
// transaction lands with the registry's initial status. Everything runs in
// one database transaction; on any failure nothing is persisted.
func (r TransactionRepository) Create(ctx context.Context, draft domain.TransactionDraft, initialStatus string) (*domain.Transaction, error) {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM customers WHERE phone=$1)
	`, draft.CustomerPhone).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		if _, err := tx.Exec(ctx, `
			INSERT INTO customers (phone, name, created_at, updated_at)
			VALUES ($1, $2, now(), now())
		`, draft.CustomerPhone, draft.CustomerName); err != nil {
			return nil, err
		}
	}

	id, err := allocateReceiptID(ctx, tx)
	if err != nil {
		return nil, err
	}

	itemsJSON, err := json.Marshal(draft.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}
	total := domain.ComputeTotal(draft.Items)

	out := domain.Transaction{
		ID:            id,
		CustomerPhone: draft.CustomerPhone,
		Items:         draft.Items,
		Status:        initialStatus,
		TotalAmount:   total,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO transactions (id, customer_phone, items, status, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING created_at, updated_at
	`, id, draft.CustomerPhone, itemsJSON, initialStatus, total).Scan(&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

// allocateReceiptID draws random 6-digit ids until one is unused. The check
// runs inside the caller's transaction; a losing race still trips the primary
// key on insert, which is the intended backstop.
func allocateReceiptID(ctx context.Context, tx pgx.Tx) (string, error) {
	for i := 0; i < receiptIDAttempts; i++ {
		id := domain.NewReceiptID()
		var taken bool
		if err := tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM transactions WHERE id=$1)
		`, id).Scan(&taken); err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", ErrReceiptExhausted
}

// List applies the server-side predicate stage: optional status equality and
// an inclusive created_at range. Results come back newest first.
func (r TransactionRepository) List(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `
		SELECT id, customer_phone, items, status, total_amount, created_at, updated_at
		FROM transactions
		WHERE 1=1
	`
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status=$%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *t)
	}
	return txs, rows.Err()
}

func (r TransactionRepository) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, customer_phone, items, status, total_amount, created_at, updated_at
		FROM transactions
		WHERE id=$1
	`, id)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// UpdateStatus is the single-row, unbatched update path.
func (r TransactionRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE transactions SET status=$2, updated_at=now() WHERE id=$1
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkUpdateStatus applies one status to every selected id in a single
// statement, so either all selected rows move or none do.
func (r TransactionRepository) BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error) {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE transactions SET status=$2, updated_at=now() WHERE id = ANY($1)
	`, ids, status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// StatusesByID returns the current status per transaction id. Used when a
// restrictive transition policy needs the from-state before an update.
func (r TransactionRepository) StatusesByID(ctx context.Context, ids []string) (map[string]string, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, status FROM transactions WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]string, len(ids))
	for rows.Next() {
		var id, status string
		if err := rows.Scan(&id, &status); err != nil {
			return nil, err
		}
		out[id] = status
	}
	return out, rows.Err()
}

// GetPublic reads the unauthenticated status view by exact receipt id.
func (r TransactionRepository) GetPublic(ctx context.Context, id string) (*domain.PublicTransaction, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, status, created_at, updated_at
		FROM public_transactions
		WHERE id=$1
	`, id)
	var p domain.PublicTransaction
	if err := row.Scan(&p.ID, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanTransaction(row interface {
	Scan(dest ...any) error
}) (*domain.Transaction, error) {
	var (
		t         domain.Transaction
		itemsJSON []byte
	)
	if err := row.Scan(
		&t.ID,
		&t.CustomerPhone,
		&itemsJSON,
		&t.Status,
		&t.TotalAmount,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &t.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}
	return &t, nil
}
