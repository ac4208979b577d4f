package dto

import (
	"visitpazar/internal/domains/booking/model"
	"visitpazar/shared"
	gDto "visitpazar/shared/dto"
	gModel "visitpazar/shared/model"
)

type CreateBookingRequest struct {
	Type        string         `json:"type" validate:"required,oneof=guide tour event restaurant"`
	ReferenceID string         `json:"reference_id" validate:"required"`
	UserName    string         `json:"user_name" validate:"required"`
	UserContact string         `json:"user_contact" validate:"required"`
	Date        *gDto.DateTime `json:"date" validate:"required"`
	PartySize   *int           `json:"party_size" validate:"omitempty,gte=1"`
	Notes       *string        `json:"notes"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	booking := model.Booking{
		Type:        c.Type,
		ReferenceID: c.ReferenceID,
		UserName:    c.UserName,
		UserContact: c.UserContact,
		PartySize:   shared.ValueOr(c.PartySize, model.DefaultPartySize),
		Notes:       c.Notes,
		Metadata:    gModel.NewMetadata(),
	}

	if c.Date != nil {
		booking.Date = c.Date.Time
	}

	return booking
}
