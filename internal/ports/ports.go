package ports

import (
	"context"

	"github.com/iamdanusabu/laundryapp/internal/domain"
)

// HealthChecker is used to probe dependencies.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// StatusStore is the status registry as seen by handlers.
type StatusStore interface {
	List(ctx context.Context) ([]domain.Status, error)
	Add(ctx context.Context, name string) (*domain.Status, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, ids []int64) error
	InitialName(ctx context.Context) (string, error)
}

// CustomerStore exposes the customer lookup and create flows.
type CustomerStore interface {
	List(ctx context.Context, limit int) ([]domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}

// TransactionStore exposes intake, the filtered list, and status updates.
type TransactionStore interface {
	Create(ctx context.Context, draft domain.TransactionDraft, initialStatus string) (*domain.Transaction, error)
	List(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error)
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id, status string) error
	BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error)
	StatusesByID(ctx context.Context, ids []string) (map[string]string, error)
}

// PublicStatusStore is the unauthenticated lookup by receipt id.
type PublicStatusStore interface {
	GetPublic(ctx context.Context, id string) (*domain.PublicTransaction, error)
}
