package persistence

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/partysvc/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateDuplicateKey maps driver-level unique-constraint violations to
// shared.ErrAlreadyExists so the service layer can fall back to a lookup
// when it loses an insert race. Covers the gorm translator (enabled on the
// postgres connection), raw lib/pq errors (23505), and the sqlite driver
// used by the in-memory test suite.
func translateDuplicateKey(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return shared.ErrAlreadyExists
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return shared.ErrAlreadyExists
	}
	return err
}

// translateError wraps residual driver failures as PERSISTENCE domain errors.
// Errors already carrying a domain code, such as the not-found and
// duplicate-key sentinels, pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return shared.NewPersistenceError(err.Error())
}
