package facility

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for reading the facility catalog.
type Repository interface {
	List(ctx context.Context) ([]*Facility, error)
	GetByID(ctx context.Context, id int64) (*Facility, error)
	ListBySport(ctx context.Context, sport string) ([]*Facility, error)
	Sports(ctx context.Context) ([]SportCount, error)
	Count(ctx context.Context) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) List(ctx context.Context) ([]*Facility, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "sport", "court_count").
		From("public.facilities").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list facilities query failed: %w", err)
	}

	return r.queryFacilities(ctx, query, args...)
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Facility, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "sport", "court_count").
		From("public.facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get facility query failed: %w", err)
	}

	var f Facility
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&f.ID, &f.Name, &f.Sport, &f.CourtCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get facility failed: %w", err)
	}
	return &f, nil
}

// ListBySport returns facilities offering the sport, lowest id first.
// The ordering is the documented tie-break for sport resolution.
func (r *pgxRepository) ListBySport(ctx context.Context, sport string) ([]*Facility, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "sport", "court_count").
		From("public.facilities").
		Where(squirrel.Eq{"sport": sport}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list facilities by sport query failed: %w", err)
	}

	return r.queryFacilities(ctx, query, args...)
}

func (r *pgxRepository) Sports(ctx context.Context) ([]SportCount, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("sport", "COUNT(*)").
		From("public.facilities").
		GroupBy("sport").
		OrderBy("sport").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sports query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sports failed: %w", err)
	}
	defer rows.Close()

	var sports []SportCount
	for rows.Next() {
		var sc SportCount
		if err := rows.Scan(&sc.Sport, &sc.FacilityCount); err != nil {
			return nil, fmt.Errorf("scan sport failed: %w", err)
		}
		sports = append(sports, sc)
	}
	return sports, rows.Err()
}

func (r *pgxRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM public.facilities`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count facilities failed: %w", err)
	}
	return count, nil
}

func (r *pgxRepository) queryFacilities(ctx context.Context, query string, args ...any) ([]*Facility, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query facilities failed: %w", err)
	}
	defer rows.Close()

	var facilities []*Facility
	for rows.Next() {
		var f Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.Sport, &f.CourtCount); err != nil {
			return nil, fmt.Errorf("scan facility failed: %w", err)
		}
		facilities = append(facilities, &f)
	}
	return facilities, rows.Err()
}
