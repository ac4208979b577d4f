package service

import (
	"context"
	"fmt"

	"visitpazar/infras/otel"
	"visitpazar/internal/domains/booking/model/dto"
	"visitpazar/internal/domains/booking/repository"
	"visitpazar/shared/constant"
	gDto "visitpazar/shared/dto"
	"visitpazar/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (gDto.CreatedResponse, error)
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res gDto.CreatedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking := req.ToModel()

	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Str("type", booking.Type).Msg("failed to create booking")

		return res, failure.InternalError(fmt.Errorf("failed to create booking: %w", err)) //nolint:wrapcheck
	}

	log.Info().Str("id", id).Str("type", booking.Type).Str("reference_id", booking.ReferenceID).Msg("booking created")

	res.ID = id

	return res, nil
}
