package utils

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewHexID returns a 32-character lowercase hexadecimal identifier.
// Uniqueness is enforced by the database, not by the generator.
func NewHexID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
