package system

import (
	"net/http"

	"visitpazar/infras/otel"
	"visitpazar/internal/domains/system/service"
	"visitpazar/shared/constant"
	"visitpazar/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.System
	otel    otel.Otel
}

func New(service service.System, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Root)
	router.Get("/test", handler.Diagnostics)
}

// Root answers liveness checks.
// @Summary Service banner
// @Tags System
// @Produce json
// @Success 200 {object} dto.RootResponse
// @Router / [get]
func (handler *Handler) Root(writer http.ResponseWriter, _ *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.Root())
}

// Diagnostics reports backend and database status. It always answers 200.
// @Summary Backend and database diagnostics
// @Tags System
// @Produce json
// @Success 200 {object} dto.DiagnosticsResponse
// @Router /test [get]
func (handler *Handler) Diagnostics(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Diagnostics")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Diagnostics(ctx))
}
