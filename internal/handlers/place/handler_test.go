package place_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"visitpazar/config"
	"visitpazar/infras/otel/mocks"
	"visitpazar/internal/domains/place/model"
	"visitpazar/internal/domains/place/model/dto"
	"visitpazar/internal/domains/place/service"
	"visitpazar/internal/handlers/place"
	"visitpazar/shared/cache"
	gDto "visitpazar/shared/dto"
	"visitpazar/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryRepo keeps places in insertion order and understands equality filters.
type memoryRepo struct {
	mu     sync.Mutex
	places []model.Place
}

func (r *memoryRepo) Insert(_ context.Context, m model.Place) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = primitive.NewObjectID()
	r.places = append(r.places, m)

	return m.ID.Hex(), nil
}

func (r *memoryRepo) Find(_ context.Context, filter gDto.FilterGroup, limit int) ([]model.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := []model.Place{}

	for _, p := range r.places {
		if matches(p, filter) {
			found = append(found, p)
		}

		if limit > 0 && len(found) == limit {
			break
		}
	}

	return found, nil
}

func matches(p model.Place, group gDto.FilterGroup) bool {
	for _, f := range group.Filters {
		filter, ok := f.(gDto.Filter)
		if !ok {
			continue
		}

		switch filter.Field {
		case model.FieldCategory:
			if p.Category != filter.Value {
				return false
			}
		case model.FieldIsFeatured:
			if p.IsFeatured != filter.Value {
				return false
			}
		}
	}

	return true
}

func newRouter(repo *memoryRepo) http.Handler {
	otl := mocks.NewOtel()
	svc := service.New(repo, &config.Config{}, cache.NewRedisCache(nil, otl), otl)
	handler := place.New(svc, otl)

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func placeBody(name, category string, featured bool) string {
	return fmt.Sprintf(`{"name":%q,"category":%q,"is_featured":%t,"location":{"lat":43.1367,"lng":20.5122}}`, name, category, featured)
}

func list(t *testing.T, router http.Handler, target string) dto.GetPlacesResponse {
	t.Helper()

	rec := do(t, router, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.GetPlacesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return res
}

func TestCreateThenList(t *testing.T) {
	router := newRouter(&memoryRepo{})

	rec := do(t, router, http.MethodPost, "/api/places", `{
		"name": "Amir Hamam",
		"category": "museum",
		"description": "Ottoman bathhouse",
		"location": {"lat": 43.1367, "lng": 20.5122, "address": "Stari grad"},
		"tags": ["history"]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created gDto.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Len(t, created.ID, 24)

	res := list(t, router, "/api/places")
	require.Len(t, res.Items, 1)

	got := res.Items[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Amir Hamam", got.Name)
	assert.Equal(t, "museum", got.Category)
	assert.Equal(t, "Ottoman bathhouse", *got.Description)
	assert.Equal(t, "Stari grad", *got.Location.Address)
	assert.Equal(t, 4.5, got.Rating)
	assert.False(t, got.IsFeatured)
	assert.Equal(t, []string{"history"}, got.Tags)
	assert.Equal(t, []string{}, got.Images)
	assert.NotEmpty(t, got.CreatedAt)
}

func TestIdenticalPostsCreateTwoRecords(t *testing.T) {
	router := newRouter(&memoryRepo{})
	body := placeBody("Kafana Lotos", "cafe", false)

	first := do(t, router, http.MethodPost, "/api/places", body)
	second := do(t, router, http.MethodPost, "/api/places", body)

	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.NotEqual(t, first.Body.String(), second.Body.String())
	assert.Len(t, list(t, router, "/api/places").Items, 2)
}

func TestListFilters(t *testing.T) {
	repo := &memoryRepo{}
	router := newRouter(repo)

	for _, body := range []string{
		placeBody("Kafana Lotos", "cafe", true),
		placeBody("Caffe Sedef", "cafe", false),
		placeBody("Hotel Vrbak", "hotel", true),
	} {
		require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/places", body).Code)
	}

	tests := []struct {
		name     string
		target   string
		expected []string
	}{
		{name: "no filter", target: "/api/places", expected: []string{"Kafana Lotos", "Caffe Sedef", "Hotel Vrbak"}},
		{name: "category", target: "/api/places?category=cafe", expected: []string{"Kafana Lotos", "Caffe Sedef"}},
		{name: "featured", target: "/api/places?featured=true", expected: []string{"Kafana Lotos", "Hotel Vrbak"}},
		{name: "category and featured", target: "/api/places?category=cafe&featured=true", expected: []string{"Kafana Lotos"}},
		{name: "empty category is ignored", target: "/api/places?category=&featured=false", expected: []string{"Caffe Sedef"}},
		{name: "unknown category", target: "/api/places?category=casino", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := list(t, router, tt.target)

			names := []string{}
			for _, item := range res.Items {
				names = append(names, item.Name)
			}

			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestListIsCappedAtHundred(t *testing.T) {
	repo := &memoryRepo{}
	for i := range 150 {
		repo.places = append(repo.places, model.Place{ID: primitive.NewObjectID(), Name: fmt.Sprintf("place %d", i), Category: "other"})
	}

	router := newRouter(repo)

	assert.Len(t, list(t, router, "/api/places").Items, 100)
	assert.Len(t, list(t, router, "/api/places?limit=500").Items, 100)
	assert.Len(t, list(t, router, "/api/places?limit=7").Items, 7)
}

func TestInvalidRequests(t *testing.T) {
	router := newRouter(&memoryRepo{})

	tests := []struct {
		name   string
		method string
		target string
		body   string
		fields []string
	}{
		{
			name:   "featured is not a boolean",
			method: http.MethodGet,
			target: "/api/places?featured=maybe",
			fields: []string{"featured"},
		},
		{
			name:   "rating above five",
			method: http.MethodPost,
			target: "/api/places",
			body:   `{"name":"x","category":"cafe","rating":6,"location":{"lat":1,"lng":2}}`,
			fields: []string{"rating"},
		},
		{
			name:   "rating below zero",
			method: http.MethodPost,
			target: "/api/places",
			body:   `{"name":"x","category":"cafe","rating":-1,"location":{"lat":1,"lng":2}}`,
			fields: []string{"rating"},
		},
		{
			name:   "unknown category",
			method: http.MethodPost,
			target: "/api/places",
			body:   `{"name":"x","category":"casino","location":{"lat":1,"lng":2}}`,
			fields: []string{"category"},
		},
		{
			name:   "every missing field is listed",
			method: http.MethodPost,
			target: "/api/places",
			body:   `{"location":{}}`,
			fields: []string{"name", "category", "location.lat", "location.lng"},
		},
		{
			name:   "rating as text",
			method: http.MethodPost,
			target: "/api/places",
			body:   `{"name":"x","category":"cafe","rating":"great","location":{"lat":1,"lng":2}}`,
			fields: []string{"rating"},
		},
		{
			name:   "rating as text alongside other violations",
			method: http.MethodPost,
			target: "/api/places",
			body:   `{"category":"casino","rating":"great","location":{"lat":1}}`,
			fields: []string{"rating", "name", "category", "location.lng"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.target, tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			fields := []string{}
			for _, f := range body.Fields {
				fields = append(fields, f.Field)
			}

			assert.Equal(t, tt.fields, fields)
		})
	}

	assert.Empty(t, list(t, router, "/api/places").Items)
}
