package utils

import (
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateQuotationNo builds a quotation number from the timestamp:
// "ITA" followed by day, month, year, hour and minute.
func GenerateQuotationNo(t time.Time) string {
	return "ITA" + t.Format("02012006") + t.Format("1504")
}
