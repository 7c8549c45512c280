//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"resort-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateCustomer inserts a verified customer and returns its id.
func CreateCustomer(t *testing.T, conn db.DBTX, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := conn.Exec(context.Background(),
		`INSERT INTO customers (id, email, first_name, last_name, locale, verified) VALUES ($1, $2, 'Test', 'Guest', 'en', true)`,
		id, email)
	require.NoError(t, err)
	return id
}

// CreateRoom inserts a room priced at dailyCents on every weekday.
func CreateRoom(t *testing.T, conn db.DBTX, roomTypeID uuid.UUID, capacity int, dailyCents int64) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	id := uuid.New()
	_, err := conn.Exec(ctx,
		`INSERT INTO resources (id, kind, name, room_type_id, capacity) VALUES ($1, 'room', $2, $3, $4)`,
		id, "Room "+id.String()[:8], roomTypeID, capacity)
	require.NoError(t, err)

	for day := time.Sunday; day <= time.Saturday; day++ {
		_, err = conn.Exec(ctx,
			`INSERT INTO weekly_rates (resource_id, weekday, price_cents) VALUES ($1, $2, $3)`,
			id, int(day), dailyCents)
		require.NoError(t, err)
	}
	return id
}

// CreatePool inserts a shared-capacity pool billed per guest-hour.
func CreatePool(t *testing.T, conn db.DBTX, capacity int, hourlyCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := conn.Exec(context.Background(),
		`INSERT INTO resources (id, kind, name, capacity, hourly_rate_cents) VALUES ($1, 'pool', 'Main Pool', $2, $3)`,
		id, capacity, hourlyCents)
	require.NoError(t, err)
	return id
}

var resetTables = []string{
	"payments",
	"verification_codes",
	"reservations",
	"rate_overrides",
	"weekly_rates",
	"customers",
	"resources",
}

// ResetDB truncates every table the engine writes to.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(resetTables, ", ")+" RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("reset database: %w", err)
	}
	return nil
}
