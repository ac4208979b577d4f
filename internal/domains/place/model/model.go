package model

import (
	"visitpazar/shared/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "place"
	EntityName     = "place"

	FieldCategory   = "category"
	FieldIsFeatured = "is_featured"
)

const (
	DefaultRating = 4.5
)

// Categories is the closed set a place category is drawn from.
var Categories = []string{"restaurant", "cafe", "hotel", "museum", "landmark", "shop", "park", "other"}

type Place struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Category       string             `bson:"category"`
	Description    *string            `bson:"description"`
	Location       model.GeoLocation  `bson:"location"`
	Images         []string           `bson:"images"`
	ContactPhone   *string            `bson:"contact_phone"`
	ContactWebsite *string            `bson:"contact_website"`
	PriceRange     *string            `bson:"price_range"`
	Rating         float64            `bson:"rating"`
	IsFeatured     bool               `bson:"is_featured"`
	Tags           []string           `bson:"tags"`
	model.Metadata `bson:",inline"`
}
