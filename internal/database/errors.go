package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned by store lookups when the requested row does
// not exist. Services translate it into their entity-specific messages.
var ErrNotFound = errors.New("entity not found")

// NotFound maps pgx's no-rows sentinel to ErrNotFound, passing every
// other error through unchanged.
func NotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
