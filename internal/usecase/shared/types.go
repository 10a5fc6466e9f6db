package shared

import "github.com/google/uuid"

type PackageSnapshot struct {
	ID             uuid.UUID
	Name           string
	SessionCount   int
	TotalCostCents int64
}

type TherapyTypeSnapshot struct {
	ID   uuid.UUID
	Name string
}

// CapacityDelta is one signed adjustment of a (date, slot) booked counter.
type CapacityDelta struct {
	Date   string
	SlotID string
	Delta  int
}
