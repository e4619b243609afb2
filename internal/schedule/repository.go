package schedule

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines storage access for the slot grid.
type Repository interface {
	// Seed populates the facility catalog and its slot grid for the given
	// dates, in one transaction. It is a no-op when facilities already
	// exist, so restarts never duplicate the grid.
	Seed(ctx context.Context, seeds []FacilitySeed, dates []string) (int, error)

	ListOpen(ctx context.Context, facilityID int64) ([]*Slot, error)
	BookedCells(ctx context.Context, facilityID int64, date string) ([]Cell, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Seed(ctx context.Context, seeds []FacilitySeed, dates []string) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin seed tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var existing int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM public.facilities`).Scan(&existing); err != nil {
		return 0, fmt.Errorf("count facilities failed: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	var slotRows [][]any
	for _, seed := range seeds {
		var facilityID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO public.facilities (name, sport, court_count) VALUES ($1, $2, $3) RETURNING id`,
			seed.Name, seed.Sport, seed.CourtCount,
		).Scan(&facilityID)
		if err != nil {
			return 0, fmt.Errorf("insert facility %q failed: %w", seed.Name, err)
		}

		for _, date := range dates {
			for _, gridTime := range GridTimes {
				for court := 1; court <= seed.CourtCount; court++ {
					slotRows = append(slotRows, []any{facilityID, court, date, gridTime, false})
				}
			}
		}
	}

	inserted, err := tx.CopyFrom(ctx,
		pgx.Identifier{"public", "slots"},
		[]string{"facility_id", "court_number", "date", "time", "is_booked"},
		pgx.CopyFromRows(slotRows),
	)
	if err != nil {
		return 0, fmt.Errorf("bulk insert slots failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit seed tx failed: %w", err)
	}
	return int(inserted), nil
}

func (r *pgxRepository) ListOpen(ctx context.Context, facilityID int64) ([]*Slot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"s.id", "s.facility_id", "f.name", "s.court_number", "s.date", "s.time", "s.is_booked",
	).
		From("public.slots s").
		Join("public.facilities f ON s.facility_id = f.id").
		Where(squirrel.Eq{"s.facility_id": facilityID, "s.is_booked": false}).
		OrderBy("s.date", "s.time", "s.court_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list open slots query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list open slots failed: %w", err)
	}
	defer rows.Close()

	var slots []*Slot
	for rows.Next() {
		var s Slot
		if err := rows.Scan(
			&s.ID, &s.FacilityID, &s.FacilityName, &s.CourtNumber, &s.Date, &s.Time, &s.IsBooked,
		); err != nil {
			return nil, fmt.Errorf("scan slot failed: %w", err)
		}
		slots = append(slots, &s)
	}
	return slots, rows.Err()
}

func (r *pgxRepository) BookedCells(ctx context.Context, facilityID int64, date string) ([]Cell, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("court_number", "time").
		From("public.slots").
		Where(squirrel.Eq{"facility_id": facilityID, "date": date, "is_booked": true}).
		OrderBy("time", "court_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booked cells query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list booked cells failed: %w", err)
	}
	defer rows.Close()

	var cells []Cell
	for rows.Next() {
		var cell Cell
		if err := rows.Scan(&cell.CourtNumber, &cell.Time); err != nil {
			return nil, fmt.Errorf("scan booked cell failed: %w", err)
		}
		cells = append(cells, cell)
	}
	return cells, rows.Err()
}
