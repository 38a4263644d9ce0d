package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"eventportal/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

// Create inserts the registration. The unique index on (event_id,
// lower(email)) makes the duplicate check and insert serializable: of two
// concurrent registrations for the same pair, exactly one insert succeeds
// and the other surfaces here as ErrDuplicateRegistration.
func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `
		INSERT INTO guests (full_name, email, phone, event_id, registered_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, g.FullName, g.Email, g.PhoneNumber, g.EventID, g.RegisteredAt).Scan(&g.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

func (r *guestRepository) GetByID(ctx context.Context, id int64) (*domain.GuestDetails, error) {
	query := `
		SELECT g.id, g.full_name, g.email, g.phone, g.event_id, g.registered_at, e.title
		FROM guests g
		INNER JOIN events e ON e.id = g.event_id
		WHERE g.id = $1
	`
	d := &domain.GuestDetails{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&d.ID, &d.FullName, &d.Email, &d.PhoneNumber, &d.EventID, &d.RegisteredAt, &d.EventTitle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *guestRepository) GetByEventAndEmail(ctx context.Context, eventID int64, email string) (*domain.Guest, error) {
	query := `
		SELECT id, full_name, email, phone, event_id, registered_at
		FROM guests
		WHERE event_id = $1 AND lower(email) = lower($2)
	`
	g := &domain.Guest{}
	err := r.DB.QueryRowContext(ctx, query, eventID, strings.TrimSpace(email)).
		Scan(&g.ID, &g.FullName, &g.Email, &g.PhoneNumber, &g.EventID, &g.RegisteredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Guest, error) {
	query := `
		SELECT id, full_name, email, phone, event_id, registered_at
		FROM guests
		WHERE event_id = $1
		ORDER BY registered_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g := &domain.Guest{}
		if err := rows.Scan(&g.ID, &g.FullName, &g.Email, &g.PhoneNumber, &g.EventID, &g.RegisteredAt); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (r *guestRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM guests`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
