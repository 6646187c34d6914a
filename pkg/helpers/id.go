package helpers

import "github.com/google/uuid"

// IDGenerator supplies opaque unique identifiers.
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// UUIDGenerator returns the uuid-backed IDGenerator.
func UUIDGenerator() IDGenerator {
	return uuidGenerator{}
}
