package service

import (
	"context"
	"fmt"

	"visitpazar/config"
	"visitpazar/infras/otel"
	"visitpazar/internal/domains/event/model/dto"
	"visitpazar/internal/domains/event/repository"
	"visitpazar/shared"
	"visitpazar/shared/cache"
	"visitpazar/shared/constant"
	gDto "visitpazar/shared/dto"
	"visitpazar/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllEvent     = "event:get_all"
	cacheGenerationEvent = "event:generation"
)

type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (gDto.CreatedResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
}

type serviceImpl struct {
	repo  repository.Event
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Event {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (res gDto.CreatedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return res, failure.InternalError(fmt.Errorf("failed to create event: %w", err)) //nolint:wrapcheck
	}

	cacheCtx := context.WithoutCancel(ctx)
	shared.BumpListingGeneration(cacheCtx, s.cache, cacheGenerationEvent)
	shared.InvalidateCaches(cacheCtx, s.cache, cacheGetAllEvent)

	res.ID = id

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	generation := shared.ListingGeneration(ctx, s.cache, cacheGenerationEvent)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllEvent, generation), req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for events")

		return res, nil
	}

	events, err := s.repo.Find(ctx, filter, req.Limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")

		return res, failure.InternalError(fmt.Errorf("failed to get events: %w", err)) //nolint:wrapcheck
	}

	res.FromModels(events)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save events to cache")
		}
	}()

	return res, nil
}
