package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Statements run in order at startup. Every statement is idempotent so the
// server can be restarted against an existing database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS public.users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_login_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS public.facilities (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		sport TEXT NOT NULL,
		court_count INT NOT NULL CHECK (court_count >= 1)
	)`,
	`CREATE TABLE IF NOT EXISTS public.slots (
		id BIGSERIAL PRIMARY KEY,
		facility_id BIGINT NOT NULL REFERENCES public.facilities(id),
		court_number INT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		is_booked BOOLEAN NOT NULL DEFAULT false,
		UNIQUE (facility_id, court_number, date, time)
	)`,
	`CREATE TABLE IF NOT EXISTS public.bookings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES public.users(id),
		facility_id BIGINT NOT NULL REFERENCES public.facilities(id),
		court_number INT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		formatted_slot TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_slots_facility_date ON public.slots (facility_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON public.bookings (user_id)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
