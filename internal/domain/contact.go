package domain

import (
	"context"
	"errors"
	"time"
)

// ContactNameSuffix is appended to every caller-supplied name before a
// contact is persisted, marking numbers collected through this platform.
const ContactNameSuffix = " (RXP)"

// Common domain errors, mapped to HTTP codes at the usecase layer.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrDuplicateNumber = errors.New("phone number already registered")
)

type Contact struct {
	ID            string     `json:"id"`
	Nom           string     `json:"nom"`
	CodePays      string     `json:"code_pays"`
	Numero        string     `json:"numero"`
	NumeroComplet string     `json:"numero_complet"`
	Email         *string    `json:"email,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ContactSummary is the narrow projection exposed on the public
// recent/search endpoints: display name and full number only.
type ContactSummary struct {
	Nom           string `json:"nom"`
	NumeroComplet string `json:"numero_complet"`
}

// ContactRequest is a public registration submission.
type ContactRequest struct {
	Nom      string `json:"nom" binding:"required"`
	CodePays string `json:"codePays" binding:"required"`
	Numero   string `json:"numero" binding:"required"`
}

// ContactUpdateRequest is the admin PATCH body. Fields are not bound as
// required: the legacy wire contract reserves 400 for submissions.
type ContactUpdateRequest struct {
	Nom      string `json:"nom"`
	CodePays string `json:"codePays"`
	Numero   string `json:"numero"`
}

type ContactRepository interface {
	// Insert persists a new contact and fills in the store-generated id
	// and timestamp. Returns ErrDuplicateNumber when numero_complet is
	// already taken (unique constraint, not a separate existence probe).
	Insert(ctx context.Context, contact *Contact) error
	FetchAll(ctx context.Context) ([]Contact, error)
	FetchRecent(ctx context.Context, limit int) ([]ContactSummary, error)
	Search(ctx context.Context, query string, limit int) ([]ContactSummary, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
	// Update rewrites the mutable columns. Returns ErrNotFound when no row
	// matches and ErrDuplicateNumber when the new numero_complet belongs
	// to a different contact.
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	// FetchTimestamps returns creation timestamps only, for stats.
	FetchTimestamps(ctx context.Context) ([]time.Time, error)
}

type ContactUsecase interface {
	Submit(ctx context.Context, req *ContactRequest) (*Contact, error)
	ListRecent(ctx context.Context) ([]ContactSummary, int64, error)
	Search(ctx context.Context, query string) ([]ContactSummary, error)
	GetAll(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
	Update(ctx context.Context, id string, req *ContactUpdateRequest) (*Contact, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
