package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"visitpazar/config"
	"visitpazar/infras/otel/mocks"
	placeMocks "visitpazar/internal/domains/place/mocks"
	"visitpazar/internal/domains/place/model"
	"visitpazar/internal/domains/place/model/dto"
	"visitpazar/internal/domains/place/service"
	"visitpazar/shared"
	"visitpazar/shared/cache"
	cacheMocks "visitpazar/shared/cache/mocks"
	gDto "visitpazar/shared/dto"
	"visitpazar/shared/failure"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Place, *placeMocks.MockPlace, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := placeMocks.NewMockPlace(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func validRequest() dto.CreatePlaceRequest {
	return dto.CreatePlaceRequest{
		Name:     "Kafana Lotos",
		Category: "cafe",
		Location: &gDto.GeoLocation{Lat: shared.Ptr(43.14), Lng: shared.Ptr(20.51)},
	}
}

func TestPlaceService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *placeMocks.MockPlace, c *cacheMocks.MockRedisCache)
		wantID    string
		wantCode  int
	}{
		{
			name: "successful creation invalidates listings",
			setupMock: func(repo *placeMocks.MockPlace, c *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Place) (string, error) {
						assert.Equal(t, model.DefaultRating, m.Rating)

						return "665f1c2e8a1b2c3d4e5f6a7b", nil
					})
				c.EXPECT().Incr(gomock.Any(), "place:generation", 0).Return(int64(3), nil)
				c.EXPECT().Clear(gomock.Any(), "place:get_all:*").Return(nil)
			},
			wantID: "665f1c2e8a1b2c3d4e5f6a7b",
		},
		{
			name: "cache failure does not fail the request",
			setupMock: func(repo *placeMocks.MockPlace, c *cacheMocks.MockRedisCache) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return("665f1c2e8a1b2c3d4e5f6a7c", nil)
				c.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down"))
				c.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			wantID: "665f1c2e8a1b2c3d4e5f6a7c",
		},
		{
			name: "repository error",
			setupMock: func(repo *placeMocks.MockPlace, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return("", errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, c := newService(t)
			tt.setupMock(repo, c)

			res, err := svc.Create(context.Background(), validRequest())

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Contains(t, err.Error(), "database error")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}

func TestPlaceService_CreateTracesRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := placeMocks.NewMockPlace(ctrl)
	rec := mocks.NewRecorder()

	svc := service.New(mockRepo, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), rec)

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return("", errors.New("database error"))

	_, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)

	span, ok := rec.Span("service.place.Create")
	require.True(t, ok)
	assert.True(t, span.Ended)
	require.Len(t, span.Errors, 1)
	assert.Contains(t, span.Errors[0].Error(), "failed to create place")
}

func TestPlaceService_GetAll(t *testing.T) {
	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldCategory, Value: "cafe", Operator: gDto.FilterOperatorEq},
	}}
	params := gDto.DefaultQueryParams()

	t.Run("cache miss reads repository and saves", func(t *testing.T) {
		svc, repo, c := newService(t)
		id := primitive.NewObjectID()
		saved := make(chan struct{})
		var listingKey string

		c.EXPECT().
			Get(gomock.Any(), "place:generation", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*string)) = "7"

				return nil
			})
		c.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ any) error {
				listingKey = key

				return errors.New("miss")
			})
		repo.EXPECT().
			Find(gomock.Any(), filter, params.Limit).
			Return([]model.Place{{ID: id, Name: "Kafana Lotos", Category: "cafe"}}, nil)
		c.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).
			DoAndReturn(func(context.Context, string, any, int) error {
				close(saved)

				return nil
			})

		res, err := svc.GetAll(context.Background(), params, filter)

		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, id.Hex(), res.Items[0].ID)
		assert.True(t, strings.HasPrefix(listingKey, "place:get_all:7:"), listingKey)

		select {
		case <-saved:
		case <-time.After(time.Second):
			t.Fatal("listing was not cached")
		}
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, c := newService(t)

		c.EXPECT().Get(gomock.Any(), "place:generation", gomock.Any()).Return(cache.Nil)
		c.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.GetPlacesResponse)
				require.True(t, ok)
				res.Items = []dto.PlaceResponse{{Name: "cached"}}

				return nil
			})

		res, err := svc.GetAll(context.Background(), params, filter)

		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "cached", res.Items[0].Name)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, c := newService(t)

		c.EXPECT().Get(gomock.Any(), "place:generation", gomock.Any()).Return(cache.Nil)
		c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().Find(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Place{}, errors.New("connection refused"))

		_, err := svc.GetAll(context.Background(), params, filter)

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

// heldSaveCache delays the first Save until release is closed.
type heldSaveCache struct {
	cache.RedisCache

	once    sync.Once
	release chan struct{}
	done    chan struct{}
}

func (c *heldSaveCache) Save(ctx context.Context, key string, value any, duration int) error {
	first := false
	c.once.Do(func() { first = true })

	if !first {
		return c.RedisCache.Save(ctx, key, value, duration)
	}

	<-c.release
	defer close(c.done)

	return c.RedisCache.Save(ctx, key, value, duration)
}

func TestPlaceService_ListingAfterCreate(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	held := &heldSaveCache{
		RedisCache: cache.NewRedisCache(client, mocks.NewOtel()),
		release:    make(chan struct{}),
		done:       make(chan struct{}),
	}

	ctrl := gomock.NewController(t)
	repo := placeMocks.NewMockPlace(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(repo, cfg, held, mocks.NewOtel())
	params := gDto.DefaultQueryParams()
	created := model.Place{ID: primitive.NewObjectID(), Name: "Kafana Lotos", Category: "cafe"}

	gomock.InOrder(
		repo.EXPECT().Find(gomock.Any(), gomock.Any(), params.Limit).Return([]model.Place{}, nil),
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(created.ID.Hex(), nil),
		repo.EXPECT().Find(gomock.Any(), gomock.Any(), params.Limit).Return([]model.Place{created}, nil),
	)

	before, err := svc.GetAll(ctx, params, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Empty(t, before.Items)

	_, err = svc.Create(ctx, validRequest())
	require.NoError(t, err)

	// the listing read before the insert lands in the cache only now
	close(held.release)

	select {
	case <-held.done:
	case <-time.After(time.Second):
		t.Fatal("delayed save did not finish")
	}

	after, err := svc.GetAll(ctx, params, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, after.Items, 1)
	assert.Equal(t, created.ID.Hex(), after.Items[0].ID)
}
