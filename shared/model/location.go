package model

// GeoLocation is the point embedded in places and events.
type GeoLocation struct {
	Lat     float64 `bson:"lat"`
	Lng     float64 `bson:"lng"`
	Address *string `bson:"address"`
}
