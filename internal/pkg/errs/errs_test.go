//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"resort-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errFull := errs.Conflict("capacity exceeded")
	errMismatch := errs.Refine(errs.Validation("invalid amount"), errs.KindValidation, "amount mismatch")

	cases := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{"nil", nil, ""},
		{"domain sentinel", errFull, errs.KindConflict},
		{"wrapped sentinel", errs.Wrapf(errFull, "room %d", 7), errs.KindConflict},
		{"marked plain error", errs.Mark(errors.New("stale row"), errs.ErrConflict), errs.KindConflict},
		{"refined", errMismatch, errs.KindValidation},
		{"plain error", errors.New("boom"), errs.KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.KindOf(tc.err))
		})
	}
}

func TestIs(t *testing.T) {
	parent := errs.Validation("invalid amount")
	child := errs.Refine(parent, errs.KindValidation, "amount mismatch")

	assert.True(t, errs.Is(errs.Wrap(child, "pay"), parent))
	assert.True(t, errs.Is(child, errs.ErrValidation))
	assert.False(t, errs.Is(child, errs.ErrConflict))
	assert.False(t, errs.Is(parent, child))
	assert.Nil(t, errs.Wrap(nil, "ignored"))
}
