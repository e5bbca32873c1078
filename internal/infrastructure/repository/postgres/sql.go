package postgres

import (
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy-draft/internal/platform/validation"
)

const pqUniqueViolation = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUniqueViolation
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

// validRow rejects rows that do not satisfy the domain record's tags.
func validRow(kind string, record any) error {
	if err := validation.Struct(record); err != nil {
		return errors.Newf("invalid %s row: %s", kind, validation.Describe(err))
	}
	return nil
}
