package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes we care about
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, optionally restricted to a constraint whose name contains
// the given fragment (empty fragment matches any unique violation).
func IsUniqueViolation(err error, constraintFragment string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != pgUniqueViolation {
		return false
	}
	if constraintFragment == "" {
		return true
	}
	return strings.Contains(pgErr.ConstraintName, constraintFragment)
}

// IsCheckViolation reports whether err is a Postgres check-constraint
// violation
func IsCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation
}
