package dto

import (
	"visitpazar/internal/domains/event/model"
	"visitpazar/shared"
	"visitpazar/shared/constant"
	gDto "visitpazar/shared/dto"
	gModel "visitpazar/shared/model"
	"visitpazar/shared/timezone"
)

type CreateEventRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description *string           `json:"description"`
	StartTime   *gDto.DateTime    `json:"start_time" validate:"required"`
	EndTime     *gDto.DateTime    `json:"end_time"`
	Location    *gDto.GeoLocation `json:"location" validate:"required"`
	Price       *float64          `json:"price"`
	Featured    *bool             `json:"featured"`
	ImageURL    *string           `json:"image_url"`
	Categories  []string          `json:"categories"`
}

func (c *CreateEventRequest) ToModel() model.Event {
	event := model.Event{
		Title:       c.Title,
		Description: c.Description,
		EndTime:     c.EndTime.Ptr(),
		Price:       shared.ValueOr(c.Price, 0),
		Featured:    shared.ValueOr(c.Featured, false),
		ImageURL:    c.ImageURL,
		Categories:  shared.SliceOr(c.Categories, []string{}),
		Metadata:    gModel.NewMetadata(),
	}

	if c.StartTime != nil {
		event.StartTime = c.StartTime.Time
	}

	if c.Location != nil {
		event.Location = c.Location.ToModel()
	}

	return event
}

type EventResponse struct {
	ID          string                   `json:"_id"`
	Title       string                   `json:"title"`
	Description *string                  `json:"description"`
	StartTime   string                   `json:"start_time"`
	EndTime     *string                  `json:"end_time"`
	Location    gDto.GeoLocationResponse `json:"location"`
	Price       float64                  `json:"price"`
	Featured    bool                     `json:"featured"`
	ImageURL    *string                  `json:"image_url"`
	Categories  []string                 `json:"categories"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID.Hex()
	r.Title = model.Title
	r.Description = model.Description
	r.StartTime = timezone.Format(model.StartTime, constant.DateFormat)
	r.EndTime = nil

	if model.EndTime != nil {
		r.EndTime = shared.Ptr(timezone.Format(*model.EndTime, constant.DateFormat))
	}

	r.Location.FromModel(model.Location)
	r.Price = model.Price
	r.Featured = model.Featured
	r.ImageURL = model.ImageURL
	r.Categories = shared.SliceOr(model.Categories, []string{})
	r.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Items []EventResponse `json:"items"`
}

func (r *GetEventsResponse) FromModels(models []model.Event) {
	r.Items = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
