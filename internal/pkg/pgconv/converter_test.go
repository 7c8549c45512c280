//go:build unit

package pgconv_test

import (
	"fmt"
	"testing"
	"time"

	"resort-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUUIDNullability(t *testing.T) {
	assert.False(t, pgconv.UUIDToPgtype(uuid.Nil).Valid)

	id := uuid.New()
	assert.Equal(t, id, pgconv.UUIDFromPgtype(pgconv.UUIDToPgtype(id)))
	assert.Equal(t, uuid.Nil, pgconv.UUIDFromPgtype(pgconv.UUIDPtrToPgtype(nil)))
}

func TestTimePtr(t *testing.T) {
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))

	now := time.Date(2030, 6, 3, 8, 0, 0, 0, time.UTC)
	got := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now))
	if assert.NotNil(t, got) {
		assert.True(t, now.Equal(*got))
	}
}

func TestDateKeepsCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	local := time.Date(2030, 6, 3, 1, 0, 0, 0, loc)

	d := pgconv.DateToPgtype(local)
	back := pgconv.DateFromPgtype(d, loc)

	assert.Equal(t, 3, back.Day())
	assert.Equal(t, time.June, back.Month())
	assert.Equal(t, loc, back.Location())
}

func TestErrorCode(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgconv.CodeExclusionViolation})
	assert.Equal(t, pgconv.CodeExclusionViolation, pgconv.ErrorCode(err))
	assert.Equal(t, "", pgconv.ErrorCode(assert.AnError))

	assert.True(t, pgconv.IsNoRows(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))
}
