// Package repository implements the persistence layer on top of GORM.
// Every method returns domain errors: NotFound for absent rows, Conflict for
// unique-constraint violations and Infrastructure for everything else.
package repository

import (
	"errors" // Error inspection

	"fragrance_finder/internal/domain"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY
const mysqlDuplicateEntry = 1062

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *gomysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}

// infra wraps a driver failure; broken MySQL connections are retryable like timeouts
func infra(op string, err error) error {
	if errors.Is(err, gomysql.ErrInvalidConn) {
		return &domain.Error{Kind: domain.KindInfrastructure, Op: op, Err: err, Retryable: true}
	}
	return domain.Infrastructure(op, err)
}
