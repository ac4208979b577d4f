package guide

import (
	"net/http"

	"visitpazar/infras/otel"
	"visitpazar/internal/domains/guide/model/dto"
	"visitpazar/internal/domains/guide/service"
	"visitpazar/shared/constant"
	gDto "visitpazar/shared/dto"
	"visitpazar/shared/validator"
	"visitpazar/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guide
	otel    otel.Otel
}

func New(service service.Guide, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guides", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuide)
		routerGroup.Get("/", handler.GetGuides)
	})
}

// CreateGuide registers a local guide.
// @Summary Create a guide
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body dto.CreateGuideRequest true "Create Guide Request"
// @Success 201 {object} gDto.CreatedResponse
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/guides [post]
func (handler *Handler) CreateGuide(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuide")
	defer scope.End()

	req := dto.CreateGuideRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate guide")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guide")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetGuides lists guides.
// @Summary List guides
// @Tags Guide
// @Produce json
// @Param limit query int false "Maximum number of items (capped at 100)"
// @Success 200 {object} dto.GetGuidesResponse
// @Failure 500 {object} response.Error
// @Router /api/guides [get]
func (handler *Handler) GetGuides(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuides")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request)

	guides, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guides")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, guides)
}
