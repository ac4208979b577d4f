package service

import (
	"context"
	"fmt"

	"visitpazar/config"
	"visitpazar/infras/otel"
	"visitpazar/internal/domains/guide/model/dto"
	"visitpazar/internal/domains/guide/repository"
	"visitpazar/shared"
	"visitpazar/shared/cache"
	"visitpazar/shared/constant"
	gDto "visitpazar/shared/dto"
	"visitpazar/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllGuide     = "guide:get_all"
	cacheGenerationGuide = "guide:generation"
)

type Guide interface {
	Create(ctx context.Context, req dto.CreateGuideRequest) (gDto.CreatedResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuidesResponse, error)
}

type serviceImpl struct {
	repo  repository.Guide
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guide, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guide {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuideRequest) (res gDto.CreatedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guide.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create guide")

		return res, failure.InternalError(fmt.Errorf("failed to create guide: %w", err)) //nolint:wrapcheck
	}

	cacheCtx := context.WithoutCancel(ctx)
	shared.BumpListingGeneration(cacheCtx, s.cache, cacheGenerationGuide)
	shared.InvalidateCaches(cacheCtx, s.cache, cacheGetAllGuide)

	res.ID = id

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuidesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guide.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	generation := shared.ListingGeneration(ctx, s.cache, cacheGenerationGuide)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllGuide, generation), req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for guides")

		return res, nil
	}

	guides, err := s.repo.Find(ctx, filter, req.Limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guides")

		return res, failure.InternalError(fmt.Errorf("failed to get guides: %w", err)) //nolint:wrapcheck
	}

	res.FromModels(guides)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guides to cache")
		}
	}()

	return res, nil
}
