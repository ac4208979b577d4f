package model

import (
	"time"

	"visitpazar/shared/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "booking"
	EntityName     = "booking"

	FieldType        = "type"
	FieldReferenceID = "reference_id"
)

const (
	DefaultPartySize = 1
)

// Types is the closed set a booking type is drawn from.
var Types = []string{"guide", "tour", "event", "restaurant"}

// Booking points at a guide, place or event through ReferenceID. The
// reference is stored as given and never resolved.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Type        string             `bson:"type"`
	ReferenceID string             `bson:"reference_id"`
	UserName    string             `bson:"user_name"`
	UserContact string             `bson:"user_contact"`
	Date        time.Time          `bson:"date"`
	PartySize   int                `bson:"party_size"`
	Notes       *string            `bson:"notes"`
	model.Metadata `bson:",inline"`
}
