package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines storage access for bookings. Reserve and Cancel span
// the slot and booking tables, so both run as single transactions inside
// the repository rather than as service-level check-then-act sequences.
type Repository interface {
	// Reserve claims the slot identified by (facility, court, date, time)
	// and creates the booking. The slot row is locked before the occupancy
	// check, so concurrent attempts on one cell serialize and exactly one
	// succeeds; the rest get ErrSlotAlreadyBooked.
	Reserve(ctx context.Context, b *Booking) error

	// Cancel frees the booked slot and deletes the booking, atomically.
	// Unknown id: ErrNotFound. Booking owned by someone else:
	// ErrPermissionDenied.
	Cancel(ctx context.Context, id string, userID string) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Reserve(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reserve tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the slot row first; the occupancy check below is then valid for
	// the rest of the transaction.
	const lockQuery = `
		SELECT id, is_booked
		FROM public.slots
		WHERE facility_id = $1 AND court_number = $2 AND date = $3 AND time = $4
		FOR UPDATE
	`

	var (
		slotID   int64
		isBooked bool
	)
	err = tx.QueryRow(ctx, lockQuery, b.FacilityID, b.CourtNumber, b.Date, b.Time).
		Scan(&slotID, &isBooked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("lock slot failed: %w", err)
	}
	if isBooked {
		return ErrSlotAlreadyBooked
	}

	if _, err := tx.Exec(ctx, `UPDATE public.slots SET is_booked = true WHERE id = $1`, slotID); err != nil {
		return fmt.Errorf("mark slot booked failed: %w", err)
	}

	const insertQuery = `
		INSERT INTO public.bookings (user_id, facility_id, court_number, date, time, formatted_slot)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err = tx.QueryRow(ctx, insertQuery,
		b.UserID, b.FacilityID, b.CourtNumber, b.Date, b.Time, b.FormattedSlot,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reserve tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Cancel(ctx context.Context, id string, userID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cancel tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	const lockQuery = `
		SELECT user_id, facility_id, court_number, date, time
		FROM public.bookings
		WHERE id = $1
		FOR UPDATE
	`

	var (
		ownerID     string
		facilityID  int64
		courtNumber int
		date        string
		slotTime    string
	)
	err = tx.QueryRow(ctx, lockQuery, id).
		Scan(&ownerID, &facilityID, &courtNumber, &date, &slotTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lock booking failed: %w", err)
	}
	if ownerID != userID {
		return ErrPermissionDenied
	}

	const freeSlotQuery = `
		UPDATE public.slots SET is_booked = false
		WHERE facility_id = $1 AND court_number = $2 AND date = $3 AND time = $4
	`
	if _, err := tx.Exec(ctx, freeSlotQuery, facilityID, courtNumber, date, slotTime); err != nil {
		return fmt.Errorf("free slot failed: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM public.bookings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cancel tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.user_id", "u.username", "b.facility_id", "f.name",
		"b.court_number", "b.date", "b.time", "b.formatted_slot", "b.created_at",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.facilities f ON b.facility_id = f.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.UserID, &b.Username, &b.FacilityID, &b.FacilityName,
		&b.CourtNumber, &b.Date, &b.Time, &b.FormattedSlot, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.user_id", "u.username", "b.facility_id", "f.name",
		"b.court_number", "b.date", "b.time", "b.formatted_slot", "b.created_at",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.facilities f ON b.facility_id = f.id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.date", "b.time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Username, &b.FacilityID, &b.FacilityName,
			&b.CourtNumber, &b.Date, &b.Time, &b.FormattedSlot, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}
