package media

import (
	"errors"
	"fmt"
	"net/http"

	"visitpazar/infras/otel"
	"visitpazar/internal/domains/media/model/dto"
	"visitpazar/internal/domains/media/service"
	"visitpazar/shared/constant"
	"visitpazar/shared/failure"
	"visitpazar/shared/validator"
	"visitpazar/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/media", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadMedia)
	})
}

// UploadMedia stores an image and returns its public URL.
// @Summary Upload an image
// @Description The returned URL goes into images, image_url or avatar_url.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PNG, JPEG or WebP image, at most 5 MB"
// @Success 201 {object} dto.UploadMediaResponse
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /api/media [post]
func (handler *Handler) UploadMedia(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadMedia")
	defer scope.End()

	if !handler.service.Enabled() {
		response.WithError(writer, failure.MediaStorageDisabled)

		return
	}

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err)))

		return
	}

	req := dto.UploadMediaRequest{}

	file, header, err := request.FormFile(constant.FormFile)
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	if file != nil {
		defer file.Close()

		req.File = header
		req.Content = file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate media upload")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload media")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
