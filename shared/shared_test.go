package shared_test

import (
	"context"
	"errors"
	"testing"

	"visitpazar/shared"
	"visitpazar/shared/cache"
	cacheMocks "visitpazar/shared/cache/mocks"
	"visitpazar/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
		wantErr  bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: shared.Ptr(true)},
		{name: "valid false string", input: "false", expected: shared.Ptr(false)},
		{name: "valid 1 string", input: "1", expected: shared.Ptr(true)},
		{name: "valid 0 string", input: "0", expected: shared.Ptr(false)},
		{name: "valid T string", input: "T", expected: shared.Ptr(true)},
		{name: "invalid string", input: "yes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ConvertStringToBool(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, 4.5, shared.ValueOr[float64](nil, 4.5))
	assert.Equal(t, 0.0, shared.ValueOr(shared.Ptr(0.0), 4.5))
	assert.True(t, shared.ValueOr[bool](nil, true))
	assert.False(t, shared.ValueOr(shared.Ptr(false), true))
}

func TestSliceOr(t *testing.T) {
	def := []string{"sr", "en"}

	assert.Equal(t, def, shared.SliceOr[string](nil, def))
	assert.Equal(t, []string{}, shared.SliceOr([]string{}, def))
	assert.Equal(t, []string{"de"}, shared.SliceOr([]string{"de"}, def))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "place:gets", shared.BuildCacheKey("place:gets"))
	assert.Equal(t, "limiter:127.0.0.1:curl", shared.BuildCacheKey("limiter", "127.0.0.1", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Limit: 100}
	cafes := dto.FilterGroup{Filters: []any{dto.Filter{Field: "category", Value: "cafe", Operator: dto.FilterOperatorEq}}}
	parks := dto.FilterGroup{Filters: []any{dto.Filter{Field: "category", Value: "park", Operator: dto.FilterOperatorEq}}}

	first := shared.BuildCacheKeyWithQuery("place:gets", params, cafes)
	second := shared.BuildCacheKeyWithQuery("place:gets", params, cafes)
	other := shared.BuildCacheKeyWithQuery("place:gets", params, parks)
	smaller := shared.BuildCacheKeyWithQuery("place:gets", dto.QueryParams{Limit: 10}, cafes)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.NotEqual(t, first, smaller)
	assert.Contains(t, first, "place:gets:100:")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "place:gets:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "place:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "guide:gets:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "guide:gets")
}

func TestListingGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	ctx := context.Background()

	mockCache.EXPECT().
		Get(gomock.Any(), "place:generation", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*string)) = "12"

			return nil
		})
	assert.Equal(t, "12", shared.ListingGeneration(ctx, mockCache, "place:generation"))

	mockCache.EXPECT().Get(gomock.Any(), "place:generation", gomock.Any()).Return(cache.Nil)
	assert.Equal(t, "0", shared.ListingGeneration(ctx, mockCache, "place:generation"))
}

func TestBumpListingGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Incr(gomock.Any(), "guide:generation", 0).Return(int64(0), errors.New("redis down"))

	assert.NotPanics(t, func() {
		shared.BumpListingGeneration(context.Background(), mockCache, "guide:generation")
	})
}
