package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("store name cannot be empty")
	ErrEmptyCode = errors.New("store code cannot be empty")
)

// Status is the operational state of a store.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "DEACTIVE"
)

// Store is one physical point of sale. Its code is the branch code embedded
// in bill numbers.
type Store struct {
	ID        string    `json:"id"`
	StoreCode string    `json:"store_code"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates an active store.
func New(storeCode, name, address, phone string) (*Store, error) {
	if storeCode == "" {
		return nil, ErrEmptyCode
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Store{
		ID:        uuid.New().String(),
		StoreCode: storeCode,
		Name:      name,
		Address:   address,
		Phone:     phone,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
