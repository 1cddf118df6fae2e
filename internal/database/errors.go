package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate")
)

// isUniqueViolation reports unique-key failures. gorm translates them for
// the bundled drivers; the message checks catch the rest.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value")
}

func isNoRows(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
