package dto

import (
	"visitpazar/internal/domains/place/model"
	"visitpazar/shared"
	gDto "visitpazar/shared/dto"
	gModel "visitpazar/shared/model"
)

type CreatePlaceRequest struct {
	Name           string            `json:"name" validate:"required"`
	Category       string            `json:"category" validate:"required,oneof=restaurant cafe hotel museum landmark shop park other"`
	Description    *string           `json:"description"`
	Location       *gDto.GeoLocation `json:"location" validate:"required"`
	Images         []string          `json:"images"`
	ContactPhone   *string           `json:"contact_phone"`
	ContactWebsite *string           `json:"contact_website"`
	PriceRange     *string           `json:"price_range"`
	Rating         *float64          `json:"rating" validate:"omitempty,gte=0,lte=5"`
	IsFeatured     *bool             `json:"is_featured"`
	Tags           []string          `json:"tags"`
}

func (c *CreatePlaceRequest) ToModel() model.Place {
	place := model.Place{
		Name:           c.Name,
		Category:       c.Category,
		Description:    c.Description,
		Images:         shared.SliceOr(c.Images, []string{}),
		ContactPhone:   c.ContactPhone,
		ContactWebsite: c.ContactWebsite,
		PriceRange:     c.PriceRange,
		Rating:         shared.ValueOr(c.Rating, model.DefaultRating),
		IsFeatured:     shared.ValueOr(c.IsFeatured, false),
		Tags:           shared.SliceOr(c.Tags, []string{}),
		Metadata:       gModel.NewMetadata(),
	}

	if c.Location != nil {
		place.Location = c.Location.ToModel()
	}

	return place
}

type PlaceResponse struct {
	ID             string                   `json:"_id"`
	Name           string                   `json:"name"`
	Category       string                   `json:"category"`
	Description    *string                  `json:"description"`
	Location       gDto.GeoLocationResponse `json:"location"`
	Images         []string                 `json:"images"`
	ContactPhone   *string                  `json:"contact_phone"`
	ContactWebsite *string                  `json:"contact_website"`
	PriceRange     *string                  `json:"price_range"`
	Rating         float64                  `json:"rating"`
	IsFeatured     bool                     `json:"is_featured"`
	Tags           []string                 `json:"tags"`
	gDto.Metadata
}

func (r *PlaceResponse) FromModel(model model.Place) {
	r.ID = model.ID.Hex()
	r.Name = model.Name
	r.Category = model.Category
	r.Description = model.Description
	r.Location.FromModel(model.Location)
	r.Images = shared.SliceOr(model.Images, []string{})
	r.ContactPhone = model.ContactPhone
	r.ContactWebsite = model.ContactWebsite
	r.PriceRange = model.PriceRange
	r.Rating = model.Rating
	r.IsFeatured = model.IsFeatured
	r.Tags = shared.SliceOr(model.Tags, []string{})
	r.Metadata.FromModel(model.Metadata)
}

type GetPlacesResponse struct {
	Items []PlaceResponse `json:"items"`
}

func (r *GetPlacesResponse) FromModels(models []model.Place) {
	r.Items = make([]PlaceResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
