package domain

import "time"

// Enumerations
const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

type UserRole string

// DefaultInitialStatus is used when the status registry is empty.
const DefaultInitialStatus = "In Queue"

// Status is an administrator-defined stage in the transaction lifecycle.
// Ord defines the total ordering used by every status selector.
type Status struct {
	ID        int64
	Name      string
	Ord       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transaction is a customer's laundry order. The ID is a 6-digit numeric
// receipt string handed to the customer for public status lookup.
type Transaction struct {
	ID            string
	CustomerPhone string
	Items         []TransactionItem
	Status        string
	TotalAmount   int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type TransactionItem struct {
	Name      string   `json:"name"`
	Procedure string   `json:"procedure,omitempty"`
	Quantity  int      `json:"quantity"`
	Price     int64    `json:"price"`
	Tags      []string `json:"tags,omitempty"`
}

// TransactionDraft is the intake payload before a receipt id and initial
// status are assigned.
type TransactionDraft struct {
	CustomerPhone string
	CustomerName  string
	Items         []TransactionItem
}

// TransactionFilter is the server-side predicate stage of the two-stage
// transaction filter. The free-text search stage runs in-process afterwards.
type TransactionFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
}

// PublicTransaction is the unauthenticated view of a transaction, keyed by
// receipt id. It exposes status and timestamps only.
type PublicTransaction struct {
	ID        string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Customer is keyed by phone number.
type Customer struct {
	Phone     string
	Name      string
	Address   string
	Tag       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type User struct {
	ID           int64
	Name         string
	Email        string
	StoreID      string
	Role         UserRole
	IsGoogle     bool
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type Store struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
