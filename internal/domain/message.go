package domain

import (
	"context"
	"time"
)

// Message statuses exposed on the wire. The stored read flag is
// authoritative; the text exists only because the admin frontend reads it.
const (
	MessageStatusNew  = "new"
	MessageStatusRead = "read"
)

// StatusForRead derives the textual status from the read flag.
func StatusForRead(read bool) string {
	if read {
		return MessageStatusRead
	}
	return MessageStatusNew
}

type Message struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Email     string    `json:"email"`
	Telephone *string   `json:"telephone"`
	Sujet     string    `json:"sujet"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageRequest is a public contact-form submission. Telephone is
// optional and stored as NULL when omitted.
type MessageRequest struct {
	Nom       string  `json:"nom" binding:"required" validate:"required"`
	Email     string  `json:"email" binding:"required,email" validate:"required,email"`
	Telephone *string `json:"telephone"`
	Sujet     string  `json:"sujet" binding:"required" validate:"required"`
	Message   string  `json:"message" binding:"required" validate:"required"`
}

// MessageStat is the minimal row the stats aggregator fetches.
type MessageStat struct {
	Read      bool
	Timestamp time.Time
}

type MessageRepository interface {
	Insert(ctx context.Context, msg *Message) error
	FetchAll(ctx context.Context) ([]Message, error)
	// SetRead flips the read flag. Returns ErrNotFound when no row matches.
	SetRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error
	// FetchStats returns the read flag and creation timestamp of every
	// message, for in-memory aggregation.
	FetchStats(ctx context.Context) ([]MessageStat, error)
}

type MessageUsecase interface {
	Submit(ctx context.Context, req *MessageRequest) (*Message, error)
	ListAll(ctx context.Context) ([]Message, error)
	SetReadState(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error
}
