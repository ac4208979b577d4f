package guide_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"visitpazar/config"
	"visitpazar/infras/otel/mocks"
	guideMocks "visitpazar/internal/domains/guide/mocks"
	"visitpazar/internal/domains/guide/model"
	"visitpazar/internal/domains/guide/model/dto"
	"visitpazar/internal/domains/guide/service"
	"visitpazar/internal/handlers/guide"
	"visitpazar/shared/cache"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *guideMocks.MockGuide) {
	ctrl := gomock.NewController(t)
	repo := guideMocks.NewMockGuide(ctrl)

	otl := mocks.NewOtel()
	handler := guide.New(service.New(repo, &config.Config{}, cache.NewRedisCache(nil, otl), otl), otl)

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router, repo
}

func TestCreateGuide(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, g model.Guide) (string, error) {
			assert.Equal(t, "Adnan", g.Name)
			assert.Equal(t, 4.6, g.Rating)
			assert.True(t, g.IsVerified)

			return "665f1c2e8a1b2c3d4e5f6a7b", nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/guides", strings.NewReader(`{"name":"Adnan"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"665f1c2e8a1b2c3d4e5f6a7b"}`, rec.Body.String())
}

func TestCreateGuide_RatingOutOfRange(t *testing.T) {
	router, _ := newRouter(t)

	for _, body := range []string{`{"name":"Adnan","rating":5.5}`, `{"name":"Adnan","rating":-0.5}`, `{"name":"Adnan","price_per_hour":-1}`} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/guides", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)
	}
}

func TestGetGuides(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().
		Find(gomock.Any(), gomock.Any(), 100).
		Return([]model.Guide{{Name: "Adnan", Languages: []string{"sr", "en"}, Rating: 4.6, IsVerified: true}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/guides", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.GetGuidesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, []string{"sr", "en"}, res.Items[0].Languages)
}
