package model

import (
	"time"

	"visitpazar/shared/timezone"
)

type Metadata struct {
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMetadata stamps both timestamps with the current application time.
func NewMetadata() Metadata {
	now := timezone.Now()

	return Metadata{
		CreatedAt: now,
		UpdatedAt: now,
	}
}
