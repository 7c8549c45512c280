//go:build unit

package queries

import (
	"testing"
	"time"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectReportsCopyFailures(t *testing.T) {
	snap := reservation.Snapshot{ID: uuid.New(), TotalPrice: money.FromCents(2000), Start: time.Date(2030, 6, 3, 12, 0, 0, 0, time.UTC)}

	var view ReservationView
	require.NoError(t, project(&view, snap))
	assert.Equal(t, snap.ID, view.ID)
	assert.Equal(t, "20.00", view.TotalPrice)

	err := project(view, snap)
	require.Error(t, err)
	assert.True(t, errs.Is(err, copier.ErrInvalidCopyDestination))
	assert.Equal(t, errs.KindInternal, errs.KindOf(err))
}

func TestMoneyConverterRejectsForeignValues(t *testing.T) {
	conv := copyOption.Converters[0]

	out, err := conv.Fn(money.FromCents(150))
	require.NoError(t, err)
	assert.Equal(t, "1.50", out)

	_, err = conv.Fn(int64(150))
	assert.Error(t, err)
}
