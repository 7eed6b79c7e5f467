package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("get league: %w", sql.ErrNoRows)) {
		t.Fatal("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("connection refused")) {
		t.Fatal("expected false for unrelated error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	pqErr := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
	if !isUniqueViolation(pqErr) {
		t.Fatal("expected true for 23505")
	}
	if !isUniqueViolation(fmt.Errorf("create league: %w", pqErr)) {
		t.Fatal("expected true for wrapped 23505")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("expected false for foreign key violation")
	}
	if isUniqueViolation(fmt.Errorf("plain error")) {
		t.Fatal("expected false for non-pq error")
	}
}
