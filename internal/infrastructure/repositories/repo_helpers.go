package repositories

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	domainerrors "talenthub.backend/internal/domain/errors"
)

// encodeStringSlice serializes a string slice for a JSON text column.
// A nil slice encodes as "[]" so columns never hold SQL NULL.
func encodeStringSlice(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeStringSlice deserializes a JSON text column into a string slice.
// Malformed stored values decode as empty rather than failing a read.
func decodeStringSlice(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

// translateCreateErr maps driver-level uniqueness violations onto
// domainerrors.ErrAlreadyExists so migration callers can treat a
// duplicate primary key as "already migrated".
func translateCreateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrAlreadyExists
	}
	// Drivers without error translation report uniqueness in text.
	msg := err.Error()
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint") {
		return domainerrors.ErrAlreadyExists
	}
	return err
}

// searchTerm builds a case-insensitive LIKE pattern.
func searchTerm(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
