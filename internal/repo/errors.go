package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrConstraintViolation marks a write rejected by a unique or foreign-key
// constraint. The driver error stays in the chain.
var ErrConstraintViolation = errors.New("constraint violation")

// MySQL error numbers and PostgreSQL SQLSTATE codes for key violations.
const (
	mysqlDupEntry         = 1062
	mysqlRowIsReferenced  = 1451
	mysqlNoReferencedRow  = 1452
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classify wraps constraint failures with ErrConstraintViolation and returns
// every other error unchanged.
func classify(err error) error {
	if err == nil || !isConstraintViolation(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
}

func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDupEntry, mysqlRowIsReferenced, mysqlNoReferencedRow:
			return true
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			return true
		}
	}

	// glebarez/sqlite often returns plain-text errors for constraint failures.
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique") ||
		strings.Contains(low, "foreign key constraint failed") ||
		strings.Contains(low, "constraint failed: foreign key")
}
