package dto

import "visitpazar/shared/model"

type GeoLocation struct {
	Lat     *float64 `json:"lat" validate:"required"`
	Lng     *float64 `json:"lng" validate:"required"`
	Address *string  `json:"address"`
}

// ToModel expects a validated request, so both coordinates are set.
func (g *GeoLocation) ToModel() model.GeoLocation {
	location := model.GeoLocation{Address: g.Address}

	if g.Lat != nil {
		location.Lat = *g.Lat
	}

	if g.Lng != nil {
		location.Lng = *g.Lng
	}

	return location
}

type GeoLocationResponse struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address *string `json:"address"`
}

func (r *GeoLocationResponse) FromModel(model model.GeoLocation) {
	r.Lat = model.Lat
	r.Lng = model.Lng
	r.Address = model.Address
}

// CreatedResponse is returned by every create endpoint.
type CreatedResponse struct {
	ID string `json:"id"`
}
