package postgres

import (
	"errors"

	"github.com/lib/pq"

	"eventhub/internal/domain"
)

// Postgres error codes mapped to domain errors.
const (
	pqInvalidTextRepresentation = "22P02"
	pqForeignKeyViolation       = "23503"
)

// mapError translates driver errors a caller can act on into domain errors:
// a malformed UUID cannot match any row, and a missing foreign key means the
// referenced event does not exist.
func mapError(err error) error {
	var perr *pq.Error
	if errors.As(err, &perr) {
		switch perr.Code {
		case pqInvalidTextRepresentation, pqForeignKeyViolation:
			return domain.ErrNotFound
		}
	}
	return err
}
