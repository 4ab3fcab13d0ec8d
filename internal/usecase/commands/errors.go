package commands

import (
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
)

// mapRepoErr translates repository kinds into use case sentinels while keeping
// the cause chain for logging and retry classification.
func mapRepoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrConflict)
	case infra.IsKind(err, infra.KindCheckViolated):
		return errs.Mark(err, errs.ErrConstraintFailed)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return err
}
