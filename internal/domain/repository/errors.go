package repository

import "nms/internal/errors"

// ErrNoRowsAffected is returned by update operations when the store did not
// confirm the write, e.g. the row was removed concurrently.
var ErrNoRowsAffected = errors.New("no rows affected")
