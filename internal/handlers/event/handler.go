package event

import (
	"net/http"

	"visitpazar/infras/otel"
	"visitpazar/internal/domains/event/model/dto"
	"visitpazar/internal/domains/event/service"
	"visitpazar/shared/constant"
	gDto "visitpazar/shared/dto"
	"visitpazar/shared/validator"
	"visitpazar/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Event
	otel    otel.Otel
}

func New(service service.Event, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEvent)
		routerGroup.Get("/", handler.GetEvents)
	})
}

// CreateEvent announces an event.
// @Summary Create an event
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Create Event Request"
// @Success 201 {object} gDto.CreatedResponse
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/events [post]
func (handler *Handler) CreateEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateEventRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate event")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetEvents lists events.
// @Summary List events
// @Tags Event
// @Produce json
// @Param limit query int false "Maximum number of items (capped at 100)"
// @Success 200 {object} dto.GetEventsResponse
// @Failure 500 {object} response.Error
// @Router /api/events [get]
func (handler *Handler) GetEvents(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request)

	events, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, events)
}
