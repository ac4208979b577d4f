package model

import (
	"time"

	"visitpazar/shared/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "event"
	EntityName     = "event"

	FieldFeatured  = "featured"
	FieldStartTime = "start_time"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description *string            `bson:"description"`
	StartTime   time.Time          `bson:"start_time"`
	EndTime     *time.Time         `bson:"end_time"`
	Location    model.GeoLocation  `bson:"location"`
	Price       float64            `bson:"price"`
	Featured    bool               `bson:"featured"`
	ImageURL    *string            `bson:"image_url"`
	Categories  []string           `bson:"categories"`
	model.Metadata `bson:",inline"`
}
