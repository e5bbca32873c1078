package postgres

import (
	"database/sql"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy-draft/internal/domain/performance"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches unique violation code", func(t *testing.T) {
		err := errors.Wrap(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}, "insert allocation")
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other pq errors", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "42P01"}) {
			t.Fatalf("expected false for undefined table")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(errors.New("boom")) {
			t.Fatalf("expected false for plain error")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(errors.Wrap(sql.ErrNoRows, "get snapshot")) {
		t.Fatalf("expected wrapped ErrNoRows to match")
	}
	if isNotFound(errors.New("timeout")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestValidRow(t *testing.T) {
	ok := performance.PlayerGameweekPerformance{PlayerID: "idn-fwd-01", Gameweek: 1, Points: 6, Minutes: 90}
	if err := validRow("performance", ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := ok
	bad.Minutes = 120
	if err := validRow("performance", bad); err == nil {
		t.Fatalf("expected minutes over 90 to be rejected")
	}
}
