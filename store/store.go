package store

import (
	"errors"

	"gorm.io/gorm"
)

// Query-layer errors. Callers can tell "no such record" apart from a
// failed query instead of both collapsing into an empty result.
var (
	ErrNotFound  = errors.New("record not found")
	ErrEmptyCart = errors.New("cart is empty")
)

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
