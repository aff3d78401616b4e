package adaptor

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviehub/internal/data/filter"
	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
	"moviehub/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubCatalog records the arguments the handler passes down and returns
// canned results.
type stubCatalog struct {
	lastCriteria filter.MovieCriteria
	lastPage     *request.PageRequest
	result       *response.MovieResponse
	err          error
}

func (s *stubCatalog) Search(_ context.Context, criteria filter.MovieCriteria, page *request.PageRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	s.lastCriteria = criteria
	s.lastPage = page
	if s.err != nil {
		return nil, s.err
	}
	return response.NewPaginatedResponse([]response.MovieResponse{}, page.Page, page.Size, 0), nil
}

func (s *stubCatalog) GetByID(context.Context, string) (*response.MovieResponse, error) {
	return s.result, s.err
}

func (s *stubCatalog) Create(context.Context, *request.MovieRequest) (*response.MovieResponse, error) {
	return s.result, s.err
}

func (s *stubCatalog) Update(context.Context, string, *request.MovieRequest) (*response.MovieResponse, error) {
	return s.result, s.err
}

func (s *stubCatalog) Delete(context.Context, string) error {
	return s.err
}

func (s *stubCatalog) SetPoster(context.Context, string, string, string, io.Reader, int64) (*response.MovieResponse, error) {
	return s.result, s.err
}

func movieRouter(service usecase.CatalogService) *chi.Mux {
	handler := NewMovieHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/movies", handler.SearchMovies)
	r.Get("/api/movies/{id}", handler.GetMovieByID)
	r.Post("/api/movies", handler.CreateMovie)
	return r
}

func TestSearchMoviesParsesQuery(t *testing.T) {
	stub := &stubCatalog{}
	router := movieRouter(stub)

	url := "/api/movies?title=matrix&genres=Sci-Fi,Action&genres=Drama" +
		"&minRating=7.5&maxRating=9&releasedAfter=1999-01-01" +
		"&page=2&size=10&sortBy=rating&direction=asc"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	criteria := stub.lastCriteria
	require.NotNil(t, criteria.Title)
	assert.Equal(t, "matrix", *criteria.Title)
	assert.Equal(t, []string{"Sci-Fi", "Action", "Drama"}, criteria.Genres)
	require.NotNil(t, criteria.MinRating)
	assert.Equal(t, 7.5, *criteria.MinRating)
	require.NotNil(t, criteria.MaxRating)
	assert.Equal(t, 9.0, *criteria.MaxRating)
	require.NotNil(t, criteria.ReleasedAfter)
	assert.Equal(t, "1999-01-01", criteria.ReleasedAfter.Format("2006-01-02"))
	assert.Nil(t, criteria.ReleasedBefore)

	require.NotNil(t, stub.lastPage)
	assert.Equal(t, 2, stub.lastPage.Page)
	assert.Equal(t, 10, stub.lastPage.Size)
	assert.Equal(t, "rating", stub.lastPage.SortBy)
	assert.Equal(t, "asc", stub.lastPage.Direction)
}

func TestSearchMoviesIgnoresMalformedParams(t *testing.T) {
	stub := &stubCatalog{}
	router := movieRouter(stub)

	url := "/api/movies?minRating=high&releasedAfter=last-year&page=-3&size=0"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Nil(t, stub.lastCriteria.MinRating)
	assert.Nil(t, stub.lastCriteria.ReleasedAfter)
	assert.Equal(t, 0, stub.lastPage.Page)
	assert.Equal(t, 0, stub.lastPage.Size)
}

func TestGetMovieByIDMapsNotFound(t *testing.T) {
	router := movieRouter(&stubCatalog{err: usecase.ErrMovieNotFound})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "movie not found")
}

func TestCreateMovieRejectsBadJSON(t *testing.T) {
	router := movieRouter(&stubCatalog{})

	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRespondServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"movie not found", usecase.ErrMovieNotFound, http.StatusNotFound},
		{"review not found", usecase.ErrReviewNotFound, http.StatusNotFound},
		{"validation", usecase.NewValidationError("title", "This field is required"), http.StatusBadRequest},
		{"duplicate review", usecase.ErrDuplicateReview, http.StatusConflict},
		{"email taken", usecase.ErrEmailTaken, http.StatusConflict},
		{"not owner", usecase.ErrNotReviewOwner, http.StatusForbidden},
		{"bad credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"storage down", &usecase.StorageError{Err: assert.AnError}, http.StatusBadGateway},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondServiceError(rec, zap.NewNop(), tc.err, "test operation")
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
