package repository

import (
	"log/slog"

	"resort-engine/internal/infra"
	"resort-engine/internal/pkg/pgconv"
)

// classify maps a driver error onto a repository error kind.
func classify(logger *slog.Logger, msg string, err error) error {
	if err == nil {
		return nil
	}
	kind := infra.KindDBFailure
	switch {
	case pgconv.IsNoRows(err):
		kind = infra.KindNotFound
	default:
		switch pgconv.ErrorCode(err) {
		case pgconv.CodeExclusionViolation:
			kind = infra.KindConflict
		case pgconv.CodeUniqueViolation:
			kind = infra.KindDuplicateKey
		case pgconv.CodeForeignKeyViolation:
			kind = infra.KindForeignKeyViolated
		}
	}
	return infra.WrapRepoErr(logger, kind, msg, err)
}
