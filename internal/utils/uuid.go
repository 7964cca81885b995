package utils

import "github.com/google/uuid"

// UUIDGenerator produces row identifiers. Version 7 ids are time-ordered,
// which keeps "ORDER BY id" stable with insertion order.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUID v7 string, or a random v4 one if the v7
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
