// Package stores holds the MongoDB-backed persistence for every collection.
// Each store wraps one collection behind a small interface consumed by the
// handlers, so business code never touches the driver directly.
package stores

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound reports that no document matched the lookup key.
	ErrNotFound = errors.New("stores: document not found")

	// ErrDuplicate reports a conditional insert that lost to an existing
	// document (user email, wishlist pair).
	ErrDuplicate = errors.New("stores: duplicate document")

	// ErrStateConflict reports an order transition whose source state did
	// not allow the requested move.
	ErrStateConflict = errors.New("stores: conflicting order state")
)

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
