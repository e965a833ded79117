package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ralph-xpert-backend/internal/domain"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

// isUniqueViolation reports whether err is the unique constraint on
// numero_complet firing (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *contactRepo) Insert(ctx context.Context, contact *domain.Contact) error {
	query := `INSERT INTO contacts (nom, code_pays, numero, numero_complet)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, timestamp`
	err := r.db.QueryRow(ctx, query,
		contact.Nom, contact.CodePays, contact.Numero, contact.NumeroComplet,
	).Scan(&contact.ID, &contact.Timestamp)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateNumber
	}
	return err
}

func (r *contactRepo) FetchAll(ctx context.Context) ([]domain.Contact, error) {
	query := `SELECT id, nom, code_pays, numero, numero_complet, email, timestamp, updated_at
	          FROM contacts ORDER BY timestamp DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Nom, &c.CodePays, &c.Numero, &c.NumeroComplet,
			&c.Email, &c.Timestamp, &c.UpdatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *contactRepo) FetchRecent(ctx context.Context, limit int) ([]domain.ContactSummary, error) {
	query := `SELECT nom, numero_complet FROM contacts
	          ORDER BY timestamp DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (r *contactRepo) Search(ctx context.Context, query string, limit int) ([]domain.ContactSummary, error) {
	sql := `SELECT nom, numero_complet FROM contacts
	        WHERE nom ILIKE $1 OR numero_complet ILIKE $1
	        ORDER BY timestamp DESC LIMIT $2`
	rows, err := r.db.Query(ctx, sql, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func scanSummaries(rows pgx.Rows) ([]domain.ContactSummary, error) {
	summaries := []domain.ContactSummary{}
	for rows.Next() {
		var s domain.ContactSummary
		if err := rows.Scan(&s.Nom, &s.NumeroComplet); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *contactRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	query := `SELECT id, nom, code_pays, numero, numero_complet, email, timestamp, updated_at
	          FROM contacts WHERE id = $1`
	var c domain.Contact
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Nom, &c.CodePays, &c.Numero,
		&c.NumeroComplet, &c.Email, &c.Timestamp, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	query := `UPDATE contacts
	          SET nom = $2, code_pays = $3, numero = $4, numero_complet = $5, updated_at = $6
	          WHERE id = $1
	          RETURNING email, timestamp`
	err := r.db.QueryRow(ctx, query,
		contact.ID, contact.Nom, contact.CodePays, contact.Numero,
		contact.NumeroComplet, contact.UpdatedAt,
	).Scan(&contact.Email, &contact.Timestamp)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateNumber
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	return err
}

func (r *contactRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM contacts`)
	return err
}

func (r *contactRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count)
	return count, err
}

func (r *contactRepo) FetchTimestamps(ctx context.Context) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, `SELECT timestamp FROM contacts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timestamps := []time.Time{}
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, err
		}
		timestamps = append(timestamps, ts)
	}
	return timestamps, rows.Err()
}
