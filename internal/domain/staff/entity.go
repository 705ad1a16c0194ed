package staff

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("staff name cannot be empty")
	ErrEmptyStoreID = errors.New("staff must be assigned to a store")
	ErrNoStore      = errors.New("no store assigned to staff")
)

// Staff is a store employee. The settlement engine resolves the selling store
// through the authenticated staff member's assignment.
type Staff struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	StoreID   string    `json:"store_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a staff member assigned to a store. accountID links the staff
// record to the credential managed by the external auth system.
func New(accountID, name, phone, storeID string) (*Staff, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if storeID == "" {
		return nil, ErrEmptyStoreID
	}

	now := time.Now()
	return &Staff{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Name:      name,
		Phone:     phone,
		StoreID:   storeID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
