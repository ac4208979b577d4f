package shared

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"visitpazar/shared/cache"
	"visitpazar/shared/dto"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	cacheKeySeparator = ":"
	initialGeneration = "0"
)

// ConvertStringToBool parses a query value. An empty value yields nil, a value
// strconv.ParseBool rejects yields an error.
func ConvertStringToBool(value string) (*bool, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean %q: %w", value, err)
	}

	return &boolValue, nil
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// ValueOr dereferences p, or returns def when p is nil.
func ValueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}

// SliceOr returns s, or def when s is nil. An explicit empty slice is kept.
func SliceOr[T any](s []T, def []T) []T {
	if s == nil {
		return def
	}

	return s
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from the listing parameters and filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	raw, err := bson.MarshalExtJSON(filter.ToBSON(), true, false)
	if err != nil {
		raw = []byte(fmt.Sprintf("%v", filter.ToBSON()))
	}

	sum := sha1.Sum(raw) //nolint:gosec

	return BuildCacheKey(prefix, strconv.Itoa(params.Limit), hex.EncodeToString(sum[:]))
}

// InvalidateCaches drops every key under prefix. Errors are only logged.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, BuildCacheKey(prefix, "*")); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// ListingGeneration returns the counter stored at key, "0" when it is unset or
// the cache is unavailable. Listings are cached under their generation.
func ListingGeneration(ctx context.Context, c cache.RedisCache, key string) string {
	var generation string
	if err := c.Get(ctx, key, &generation); err != nil || generation == "" {
		return initialGeneration
	}

	return generation
}

// BumpListingGeneration advances the counter at key so that no listing cached
// under an earlier generation is read again, including one whose write is
// still in flight. Errors are only logged.
func BumpListingGeneration(ctx context.Context, c cache.RedisCache, key string) {
	if _, err := c.Incr(ctx, key, 0); err != nil && !errors.Is(err, cache.Nil) {
		log.Error().Err(err).Str("key", key).Msg("failed to bump listing generation")
	}
}
