package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ralph-xpert-backend/internal/domain"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Insert(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO messages (nom, email, telephone, sujet, message, "read")
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, timestamp`
	return r.db.QueryRow(ctx, query,
		msg.Nom, msg.Email, msg.Telephone, msg.Sujet, msg.Message, msg.Read,
	).Scan(&msg.ID, &msg.Timestamp)
}

func (r *messageRepo) FetchAll(ctx context.Context) ([]domain.Message, error) {
	query := `SELECT id, nom, email, telephone, sujet, message, "read", timestamp
	          FROM messages ORDER BY timestamp DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.Nom, &m.Email, &m.Telephone, &m.Sujet,
			&m.Message, &m.Read, &m.Timestamp); err != nil {
			return nil, err
		}
		// The textual status only exists on the wire; the read flag is
		// the stored truth.
		m.Status = domain.StatusForRead(m.Read)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *messageRepo) SetRead(ctx context.Context, id string, read bool) error {
	query := `UPDATE messages SET "read" = $2 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, read)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *messageRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	return err
}

func (r *messageRepo) FetchStats(ctx context.Context) ([]domain.MessageStat, error) {
	rows, err := r.db.Query(ctx, `SELECT "read", timestamp FROM messages`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.MessageStat{}
	for rows.Next() {
		var s domain.MessageStat
		if err := rows.Scan(&s.Read, &s.Timestamp); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
