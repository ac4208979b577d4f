package dto

import (
	"visitpazar/internal/domains/guide/model"
	"visitpazar/shared"
	gDto "visitpazar/shared/dto"
	gModel "visitpazar/shared/model"
)

type CreateGuideRequest struct {
	Name         string   `json:"name" validate:"required"`
	Bio          *string  `json:"bio"`
	Languages    []string `json:"languages"`
	PricePerHour *float64 `json:"price_per_hour" validate:"omitempty,gte=0"`
	ContactPhone *string  `json:"contact_phone"`
	ContactEmail *string  `json:"contact_email"`
	AvatarURL    *string  `json:"avatar_url"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	IsVerified   *bool    `json:"is_verified"`
}

func (c *CreateGuideRequest) ToModel() model.Guide {
	return model.Guide{
		Name:         c.Name,
		Bio:          c.Bio,
		Languages:    shared.SliceOr(c.Languages, model.DefaultLanguages()),
		PricePerHour: shared.ValueOr(c.PricePerHour, model.DefaultPricePerHour),
		ContactPhone: c.ContactPhone,
		ContactEmail: c.ContactEmail,
		AvatarURL:    c.AvatarURL,
		Rating:       shared.ValueOr(c.Rating, model.DefaultRating),
		IsVerified:   shared.ValueOr(c.IsVerified, model.DefaultIsVerified),
		Metadata:     gModel.NewMetadata(),
	}
}

type GuideResponse struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Bio          *string  `json:"bio"`
	Languages    []string `json:"languages"`
	PricePerHour float64  `json:"price_per_hour"`
	ContactPhone *string  `json:"contact_phone"`
	ContactEmail *string  `json:"contact_email"`
	AvatarURL    *string  `json:"avatar_url"`
	Rating       float64  `json:"rating"`
	IsVerified   bool     `json:"is_verified"`
	gDto.Metadata
}

func (r *GuideResponse) FromModel(model model.Guide) {
	r.ID = model.ID.Hex()
	r.Name = model.Name
	r.Bio = model.Bio
	r.Languages = shared.SliceOr(model.Languages, []string{})
	r.PricePerHour = model.PricePerHour
	r.ContactPhone = model.ContactPhone
	r.ContactEmail = model.ContactEmail
	r.AvatarURL = model.AvatarURL
	r.Rating = model.Rating
	r.IsVerified = model.IsVerified
	r.Metadata.FromModel(model.Metadata)
}

type GetGuidesResponse struct {
	Items []GuideResponse `json:"items"`
}

func (r *GetGuidesResponse) FromModels(models []model.Guide) {
	r.Items = make([]GuideResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
