package id

import "github.com/google/uuid"

// New returns a random v4 UUID for entity identities.
func New() uuid.UUID { return uuid.New() }
