// Package service holds the stock-accounting core: inventory entry, bill
// commits and the profit report. Every service takes its *gorm.DB through its
// constructor; nothing here reaches for global state.
package service

import (
	"errors"
	"fmt"

	"github.com/tayyabriaz60/Cloth-Product/models"

	"github.com/jackc/pgx/v5/pgconn"
)

// wrapStorage annotates a persistence failure, keeping the Postgres error
// code visible when there is one.
func wrapStorage(op string, err error) *models.StorageError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		op = fmt.Sprintf("%s (pg %s)", op, pgErr.Code)
	}
	return &models.StorageError{Op: op, Err: err}
}
