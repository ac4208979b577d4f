package service

import (
	"context"
	"fmt"

	"visitpazar/infras/otel"
	"visitpazar/infras/s3"
	"visitpazar/internal/domains/media/model"
	"visitpazar/internal/domains/media/model/dto"
	"visitpazar/shared/constant"
	"visitpazar/shared/failure"

	"github.com/rs/zerolog/log"
)

type Media interface {
	Enabled() bool
	Upload(ctx context.Context, req dto.UploadMediaRequest) (dto.UploadMediaResponse, error)
}

type serviceImpl struct {
	s3   s3.S3
	otel otel.Otel
}

func New(s3 s3.S3, otel otel.Otel) Media {
	return &serviceImpl{
		s3:   s3,
		otel: otel,
	}
}

func (s *serviceImpl) Enabled() bool {
	return s.s3.Enabled()
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadMediaRequest) (res dto.UploadMediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.s3.Enabled() {
		return res, failure.MediaStorageDisabled
	}

	url, err := s.s3.UploadFile(ctx, model.Directory, req.ObjectName(), req.ContentType(), req.Content)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload media")

		return res, failure.InternalError(fmt.Errorf("failed to upload media: %w", err)) //nolint:wrapcheck
	}

	res.URL = url

	return res, nil
}
