package model

import (
	"visitpazar/shared/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "guide"
	EntityName     = "guide"
)

const (
	DefaultRating       = 4.6
	DefaultPricePerHour = 0.0
	DefaultIsVerified   = true
)

// DefaultLanguages is a function so callers never share the backing array.
func DefaultLanguages() []string {
	return []string{"sr", "en"}
}

type Guide struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Bio          *string            `bson:"bio"`
	Languages    []string           `bson:"languages"`
	PricePerHour float64            `bson:"price_per_hour"`
	ContactPhone *string            `bson:"contact_phone"`
	ContactEmail *string            `bson:"contact_email"`
	AvatarURL    *string            `bson:"avatar_url"`
	Rating       float64            `bson:"rating"`
	IsVerified   bool               `bson:"is_verified"`
	model.Metadata `bson:",inline"`
}
