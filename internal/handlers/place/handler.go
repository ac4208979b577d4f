package place

import (
	"fmt"
	"net/http"

	"visitpazar/infras/otel"
	"visitpazar/internal/domains/place/model"
	"visitpazar/internal/domains/place/model/dto"
	"visitpazar/internal/domains/place/service"
	"visitpazar/shared"
	"visitpazar/shared/constant"
	gDto "visitpazar/shared/dto"
	"visitpazar/shared/failure"
	"visitpazar/shared/validator"
	"visitpazar/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryCategory = "category"
	queryFeatured = "featured"
)

type Handler struct {
	service service.Place
	otel    otel.Otel
}

func New(service service.Place, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/places", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePlace)
		routerGroup.Get("/", handler.GetPlaces)
	})
}

// CreatePlace stores a new place.
// @Summary Create a place
// @Description Create a place shown on the map and in recommendations.
// @Tags Place
// @Accept json
// @Produce json
// @Param request body dto.CreatePlaceRequest true "Create Place Request"
// @Success 201 {object} gDto.CreatedResponse
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/places [post]
func (handler *Handler) CreatePlace(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePlace")
	defer scope.End()

	req := dto.CreatePlaceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate place")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create place")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Place created " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPlaces lists places.
// @Summary List places
// @Description List up to 100 places, optionally filtered by category and featured flag. Filters combine with AND.
// @Tags Place
// @Produce json
// @Param category query string false "Exact category"
// @Param featured query boolean false "Featured flag"
// @Param limit query int false "Maximum number of items (capped at 100)"
// @Success 200 {object} dto.GetPlacesResponse
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/places [get]
func (handler *Handler) GetPlaces(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlaces")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request)

	filterGroup, err := placeFilter(request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	places, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get places")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, places)
}

// placeFilter builds the AND of the optional category and featured constraints.
func placeFilter(request *http.Request) (gDto.FilterGroup, error) {
	query := request.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category := query.Get(queryCategory); category != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
		})
	}

	featured, err := shared.ConvertStringToBool(query.Get(queryFeatured))
	if err != nil {
		msg := fmt.Sprintf("%s must be a boolean", queryFeatured)

		return filterGroup, failure.Unprocessable(msg, failure.FieldError{Field: queryFeatured, Message: msg}) //nolint:wrapcheck
	}

	if featured != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsFeatured,
			Operator: gDto.FilterOperatorEq,
			Value:    *featured,
		})
	}

	return filterGroup, nil
}
