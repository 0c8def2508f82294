package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewTicketCode returns a random 32 character hex ticket code derived from
// a version 4 UUID.
func NewTicketCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
