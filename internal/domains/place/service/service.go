package service

import (
	"context"
	"fmt"

	"visitpazar/config"
	"visitpazar/infras/otel"
	"visitpazar/internal/domains/place/model/dto"
	"visitpazar/internal/domains/place/repository"
	"visitpazar/shared"
	"visitpazar/shared/cache"
	"visitpazar/shared/constant"
	gDto "visitpazar/shared/dto"
	"visitpazar/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllPlace     = "place:get_all"
	cacheGenerationPlace = "place:generation"
)

type Place interface {
	Create(ctx context.Context, req dto.CreatePlaceRequest) (gDto.CreatedResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPlacesResponse, error)
}

type serviceImpl struct {
	repo  repository.Place
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Place, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Place {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePlaceRequest) (res gDto.CreatedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".place.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create place")

		return res, failure.InternalError(fmt.Errorf("failed to create place: %w", err)) //nolint:wrapcheck
	}

	cacheCtx := context.WithoutCancel(ctx)
	shared.BumpListingGeneration(cacheCtx, s.cache, cacheGenerationPlace)
	shared.InvalidateCaches(cacheCtx, s.cache, cacheGetAllPlace)

	res.ID = id

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPlacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".place.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	generation := shared.ListingGeneration(ctx, s.cache, cacheGenerationPlace)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllPlace, generation), req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for places")

		return res, nil
	}

	places, err := s.repo.Find(ctx, filter, req.Limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get places")

		return res, failure.InternalError(fmt.Errorf("failed to get places: %w", err)) //nolint:wrapcheck
	}

	res.FromModels(places)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save places to cache")
		}
	}()

	return res, nil
}
